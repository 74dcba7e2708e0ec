package handlers

import (
	"net/http"

	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/records-service/models"
	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/records-service/services"
	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/shared/ginx"
	"github.com/gin-gonic/gin"
)

type EmployeesHandler struct {
	store services.EmployeeStore
}

func NewEmployeesHandler(store services.EmployeeStore) *EmployeesHandler {
	return &EmployeesHandler{store: store}
}

func (h *EmployeesHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Records API connected to employees store",
	})
}

// AddEmployee forwards a record to the datastore insert.
func (h *EmployeesHandler) AddEmployee(c *gin.Context) {
	var record models.EmployeeRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		ginx.BadRequest(c, err)
		return
	}

	data, err := h.store.Insert(c.Request.Context(), record)
	if err != nil {
		ginx.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, models.StoreResponse{Success: true, Data: data})
}

// GetEmployees forwards a read-all to the datastore.
func (h *EmployeesHandler) GetEmployees(c *gin.Context) {
	data, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		ginx.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, models.StoreResponse{Success: true, Data: data})
}
