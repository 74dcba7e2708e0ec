package main

import (
	"log"

	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/prediction-service/config"
	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/prediction-service/handlers"
	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/prediction-service/predictor"
	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/prediction-service/routes"
	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/prediction-service/services"
	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/shared/logger"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New("prediction-service", cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zlog.Sync()

	// Load the model artifact once at startup. A failed load leaves the
	// service running in degraded mode: /health reports unhealthy and
	// every prediction returns 503 until a restart with a valid artifact.
	var model predictor.Predictor
	if loaded, err := predictor.LoadXGBoost(cfg.ModelPath); err != nil {
		zlog.Error("model failed to load, running in degraded mode",
			zap.String("path", cfg.ModelPath),
			zap.Error(err))
	} else {
		model = loaded
		zlog.Info("model loaded successfully", zap.String("path", cfg.ModelPath))
	}

	serviceManager := services.NewServiceManager(model, zlog)
	handlerManager := handlers.NewHandlerManager(serviceManager)

	r := routes.SetupRoutes(handlerManager, zlog)

	zlog.Info("Prediction Service starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
