package routes

import (
	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/prediction-service/handlers"
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

	r.GET("/", hm.MetaHandler.Root)
	r.GET("/health", hm.MetaHandler.Health)
	r.GET("/sample-data", hm.MetaHandler.SampleData)
	r.POST("/predict", hm.PredictHandler.Predict)
	r.POST("/test-prediction", hm.PredictHandler.TestPrediction)

	return r
}
