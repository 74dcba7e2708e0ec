package main

import (
	"log"

	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/records-service/config"
	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/records-service/handlers"
	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/records-service/routes"
	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/records-service/services"
	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/shared/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	zlog, err := logger.New("records-service", cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zlog.Sync()

	store, err := services.NewEmployeeStore(cfg.SupabaseURL, cfg.SupabaseKey)
	if err != nil {
		zlog.Fatal("failed to connect to record store", zap.Error(err))
	}

	serviceManager := services.NewServiceManager(store)
	handlerManager := handlers.NewHandlerManager(serviceManager)

	r := routes.SetupRoutes(handlerManager, zlog)

	zlog.Info("Records Service starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
