package database

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"learnhub/config"
	"learnhub/models"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured data store, applies pool settings and migrates the schema.
func Connect(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.DBDriver, BuildDSN(cfg.DatabaseURL, cfg.DatabaseKey))
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger(cfg.DBLogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info("connected to data store", zap.String("driver", cfg.DBDriver))

	if err := Migrate(db, log); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the tables of every model.
func Migrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("running migrations")
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	log.Info("migrations completed")
	return nil
}

// Dialector picks the gorm driver for the given name.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "", "postgres", "postgresql":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlite", "sqlite3":
		if dsn == "" {
			dsn = "learnhub.db"
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

// BuildDSN injects the access key as the password of a URL-form DSN that has none.
// Key/value DSNs get a password=... pair appended instead.
func BuildDSN(rawURL, key string) string {
	if key == "" || rawURL == "" {
		return rawURL
	}

	if strings.Contains(rawURL, "://") {
		u, err := url.Parse(rawURL)
		if err != nil || u.User == nil {
			return rawURL
		}
		if _, has := u.User.Password(); has {
			return rawURL
		}
		u.User = url.UserPassword(u.User.Username(), key)
		return u.String()
	}

	if strings.Contains(rawURL, "password=") {
		return rawURL
	}
	return rawURL + " password=" + key
}

func gormLogger(level string) logger.Interface {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Default.LogMode(logger.Silent)
	case "error":
		return logger.Default.LogMode(logger.Error)
	case "info":
		return logger.Default.LogMode(logger.Info)
	default:
		return logger.Default.LogMode(logger.Warn)
	}
}
