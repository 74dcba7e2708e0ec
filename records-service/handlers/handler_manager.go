package handlers

import (
	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/records-service/services"
)

type HandlerManager struct {
	EmployeesHandler *EmployeesHandler
}

func NewHandlerManager(sm *services.ServiceManager) *HandlerManager {
	return &HandlerManager{
		EmployeesHandler: NewEmployeesHandler(sm.EmployeeStore),
	}
}
