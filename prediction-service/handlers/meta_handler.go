package handlers

import (
	"net/http"

	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/prediction-service/models"
	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/prediction-service/services"
	"github.com/gin-gonic/gin"
)

// MetaHandler serves the informational endpoints: root, health and the
// sample records.
type MetaHandler struct {
	predictService services.PredictService
}

func NewMetaHandler(predictService services.PredictService) *MetaHandler {
	return &MetaHandler{predictService: predictService}
}

func (h *MetaHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Attrition Prediction API is running!",
		"endpoints": gin.H{
			"health":          "/health - Check API and model status",
			"sample_data":     "/sample-data - Get sample employee data for testing",
			"test_prediction": "/test-prediction - Test model with sample data",
			"predict":         "/predict - Make attrition predictions",
		},
		"model_loaded": h.predictService.ModelLoaded(),
	})
}

func (h *MetaHandler) Health(c *gin.Context) {
	loaded := h.predictService.ModelLoaded()

	resp := models.HealthResponse{
		Status:      "healthy",
		ModelLoaded: loaded,
		Message:     "Model loaded successfully",
	}
	if !loaded {
		resp.Status = "unhealthy"
		resp.Message = "Model failed to load"
	}

	c.JSON(http.StatusOK, resp)
}

func (h *MetaHandler) SampleData(c *gin.Context) {
	c.JSON(http.StatusOK, models.Samples())
}
