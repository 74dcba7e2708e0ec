package handlers

import (
	"errors"
	"net/http"

	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/prediction-service/models"
	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/prediction-service/services"
	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/shared/ginx"
	"github.com/gin-gonic/gin"
)

const modelNotLoadedDetail = "Model not loaded. Please check /health endpoint."

type PredictHandler struct {
	predictService services.PredictService
}

func NewPredictHandler(predictService services.PredictService) *PredictHandler {
	return &PredictHandler{
		predictService: predictService,
	}
}

// Predict accepts employee features and returns the attrition
// prediction with probability and confidence tier.
func (h *PredictHandler) Predict(c *gin.Context) {
	var features models.EmployeeFeatures
	if err := c.ShouldBindJSON(&features); err != nil {
		ginx.BadRequest(c, err)
		return
	}

	result, err := h.predictService.Predict(c.Request.Context(), features)
	if err != nil {
		if errors.Is(err, services.ErrModelNotLoaded) {
			ginx.Error(c, http.StatusServiceUnavailable, modelNotLoadedDetail)
			return
		}
		ginx.Error(c, http.StatusInternalServerError, "Prediction error: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

// TestPrediction runs the fixed high-risk sample through the model and
// returns the raw class id, probability vector and model introspection.
func (h *PredictHandler) TestPrediction(c *gin.Context) {
	result, err := h.predictService.TestPrediction(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrModelNotLoaded) {
			ginx.Error(c, http.StatusServiceUnavailable, "Model not loaded")
			return
		}
		// The original surface reports test failures in the body, not
		// via the status code.
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
