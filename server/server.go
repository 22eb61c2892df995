package server

import (
	"io"
	"os"

	"learnhub/config"
	authControllers "learnhub/controllers/auth"
	courseControllers "learnhub/controllers/course"
	userControllers "learnhub/controllers/userControllers"
	"learnhub/middleware"
	"learnhub/routers/authRoutes"
	"learnhub/routers/courseRoutes"
	userRoutes "learnhub/routers/userRoutes"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Options struct {
	// AccessLog receives one line per request; nil means stdout.
	AccessLog io.Writer
}

// New builds the HTTP application with every route wired to db.
func New(cfg *config.Config, db *gorm.DB, log *zap.Logger, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "learnhub",
		ErrorHandler: utils.ErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	accessLog := opts.AccessLog
	if accessLog == nil {
		accessLog = os.Stdout
	}
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${ip} ${method} ${path} ${status} ${latency}\n",
		Output: accessLog,
	}))

	auth := middleware.JWTMiddleware(db, cfg.JWTKey)
	api := app.Group("/api")

	api.Get("/health", healthCheck(db))

	authRoutes.SetupAuthRoutes(api, authControllers.NewAuthController(db, cfg))
	courseRoutes.SetupCourseRoutes(api, courseControllers.NewCourseController(db), auth)
	userRoutes.SetupUserRoutes(api, userControllers.NewUserController(db), auth)

	return app
}

func healthCheck(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err != nil {
			return utils.NewAppError(utils.KindUnavailable, "", err)
		}
		if err := sqlDB.PingContext(c.UserContext()); err != nil {
			return utils.NewAppError(utils.KindUnavailable, "", err)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"status": "ok"})
	}
}
