package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/crewbase-dev/crewbase/db"
	"github.com/crewbase-dev/crewbase/internal/auth"
	"github.com/crewbase-dev/crewbase/internal/config"
	"github.com/crewbase-dev/crewbase/internal/router"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("8002")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	database, err := db.Connect(cfg.DSN())
	if err != nil {
		logger.Fatal("Failed to connect to the database", zap.Error(err))
	}

	if err := db.Migrate(database, db.TaskServiceModels()); err != nil {
		logger.Fatal("Failed to migrate the database", zap.Error(err))
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTAlgorithm)
	if err != nil {
		logger.Fatal("Failed to configure token signing", zap.Error(err))
	}

	r := router.NewTaskRouter(logger, database, tokens)

	logger.Info("Starting task/motivation service", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
