package models

// EmployeeFeatures is the fixed input schema for an attrition prediction.
// Field names match the training dataset columns, so the JSON keys are
// PascalCase on the wire.
type EmployeeFeatures struct {
	// Basic demographics
	Age           int    `json:"Age" binding:"required,gte=18,lte=100"`
	Gender        string `json:"Gender" binding:"required,oneof=Male Female"`
	MaritalStatus string `json:"MaritalStatus" binding:"required,oneof=Single Married Divorced"`

	// Job information
	Department      string `json:"Department" binding:"required"`
	JobRole         string `json:"JobRole" binding:"required"`
	JobLevel        int    `json:"JobLevel" binding:"min=1,max=5"`
	JobSatisfaction int    `json:"JobSatisfaction" binding:"min=1,max=4"`

	// Compensation
	MonthlyIncome float64 `json:"MonthlyIncome" binding:"required,gt=0"`
	DailyRate     float64 `json:"DailyRate" binding:"required,gt=0"`
	HourlyRate    float64 `json:"HourlyRate" binding:"required,gt=0"`
	MonthlyRate   float64 `json:"MonthlyRate" binding:"required,gt=0"`

	// Work experience
	YearsAtCompany          int `json:"YearsAtCompany" binding:"gte=0"`
	YearsInCurrentRole      int `json:"YearsInCurrentRole" binding:"gte=0"`
	YearsSinceLastPromotion int `json:"YearsSinceLastPromotion" binding:"gte=0"`
	TotalWorkingYears       int `json:"TotalWorkingYears" binding:"gte=0"`
	YearsWithCurrManager    int `json:"YearsWithCurrManager" binding:"gte=0"`
	NumCompaniesWorked      int `json:"NumCompaniesWorked" binding:"gte=0"`

	// Performance and training
	PerformanceRating     int     `json:"PerformanceRating" binding:"min=1,max=4"`
	PercentSalaryHike     float64 `json:"PercentSalaryHike" binding:"gte=0"`
	TrainingTimesLastYear int     `json:"TrainingTimesLastYear" binding:"gte=0"`

	// Work conditions
	OverTime                 string `json:"OverTime" binding:"required,oneof=Yes No"`
	BusinessTravel           string `json:"BusinessTravel" binding:"required,oneof=Travel_Rarely Travel_Frequently Non-Travel"`
	DistanceFromHome         int    `json:"DistanceFromHome" binding:"gte=0"`
	WorkLifeBalance          int    `json:"WorkLifeBalance" binding:"min=1,max=4"`
	EnvironmentSatisfaction  int    `json:"EnvironmentSatisfaction" binding:"min=1,max=4"`
	RelationshipSatisfaction int    `json:"RelationshipSatisfaction" binding:"min=1,max=4"`

	// Education
	Education      int    `json:"Education" binding:"min=1,max=5"`
	EducationField string `json:"EducationField" binding:"required"`

	// Stock options
	StockOptionLevel int `json:"StockOptionLevel" binding:"gte=0,lte=3"`
}

// PredictionResponse is the result of a single inference call.
type PredictionResponse struct {
	Prediction  string  `json:"prediction"`
	Probability float64 `json:"probability"`
	Confidence  string  `json:"confidence"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	Message     string `json:"message"`
}

// ModelInfo is introspection metadata about the loaded predictor,
// returned by the test-prediction endpoint.
type ModelInfo struct {
	PipelineType    string `json:"pipeline_type"`
	HasPredictProba bool   `json:"has_predict_proba"`
}

type TestPredictionResponse struct {
	TestData      EmployeeFeatures `json:"test_data"`
	Prediction    int              `json:"prediction"`
	Probabilities []float64        `json:"probabilities"`
	ModelInfo     ModelInfo        `json:"model_info"`
}

// SampleData holds the two literal example records served by the
// sample-data endpoint.
type SampleData struct {
	HighRiskEmployee EmployeeFeatures `json:"high_risk_employee"`
	LowRiskEmployee  EmployeeFeatures `json:"low_risk_employee"`
}
