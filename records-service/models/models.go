package models

import "encoding/json"

// EmployeeRecord is a row in the external employees table: a subset of
// the model features plus the prediction outcome. The table schema is
// owned by the datastore; column names here follow it exactly,
// including the existing "perfomance_rating" spelling.
type EmployeeRecord struct {
	Name            string  `json:"name" binding:"required"`
	Age             int     `json:"age" binding:"required"`
	Gender          string  `json:"gender" binding:"required"`
	Department      string  `json:"department" binding:"required"`
	JobRole         string  `json:"job_role" binding:"required"`
	YearsAtCompany  int     `json:"years_at_company"`
	MonthlyIncome   float64 `json:"monthly_income"`
	Overtime        bool    `json:"overtime"`
	JobSatisfaction int     `json:"job_satisfaction"`
	PerfomanceRate  int     `json:"perfomance_rating"`
	AttritionPred   string  `json:"attrition_pred" binding:"required"`
	PredictionProb  float64 `json:"prediction_prob"`
}

// StoreResponse wraps whatever the datastore returned, untouched.
type StoreResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}
