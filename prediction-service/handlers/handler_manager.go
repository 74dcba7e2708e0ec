package handlers

import (
	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/prediction-service/services"
)

type HandlerManager struct {
	PredictHandler *PredictHandler
	MetaHandler    *MetaHandler
}

func NewHandlerManager(sm *services.ServiceManager) *HandlerManager {
	return &HandlerManager{
		PredictHandler: NewPredictHandler(sm.PredictService),
		MetaHandler:    NewMetaHandler(sm.PredictService),
	}
}
