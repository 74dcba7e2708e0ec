package services

import (
	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/prediction-service/predictor"
	"go.uber.org/zap"
)

type ServiceManager struct {
	PredictService PredictService
}

func NewServiceManager(p predictor.Predictor, logger *zap.Logger) *ServiceManager {
	return &ServiceManager{
		PredictService: NewPredictService(p, logger),
	}
}
