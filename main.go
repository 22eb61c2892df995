package main

import (
	"log"

	"learnhub/config"
	"learnhub/database"
	"learnhub/server"
	"learnhub/utils"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := utils.NewLogger(cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	for _, warning := range cfg.Warnings() {
		logger.Warn(warning)
	}

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to data store", zap.Error(err))
	}

	app := server.New(cfg, db, logger, server.Options{})

	logger.Info("server is running", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
