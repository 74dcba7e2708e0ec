package routes

import (
	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/records-service/handlers"
	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/shared/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRoutes(hm *handlers.HandlerManager, log *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))

	r.GET("/", hm.EmployeesHandler.Root)
	r.POST("/add_employee", hm.EmployeesHandler.AddEmployee)
	r.GET("/employees", hm.EmployeesHandler.GetEmployees)

	return r
}
