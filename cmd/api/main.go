package main

import (
	"log"

	_ "resource_management/docs"
	"resource_management/internal/adapter/http/routes"
	"resource_management/internal/infrastructure/config"
	"resource_management/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Resource Management API
// @version         1.0
// @description     Accounts and staffing demands with dashboard statistics and search.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	zapLogger.Info("Configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("version", cfg.Version),
		zap.String("store", cfg.StoreDriver),
		zap.String("port", cfg.Port),
	)

	if err := routes.Run(cfg, zapLogger); err != nil {
		zapLogger.Fatal("Failed to startup the application", zap.Error(err))
	}
}
