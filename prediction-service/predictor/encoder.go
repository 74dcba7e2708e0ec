package predictor

import (
	"fmt"

	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/prediction-service/models"
)

// Categorical encodings baked into the training pipeline. The maps and
// the feature order below must stay in sync with the artifact; changing
// either requires retraining.
var (
	genderCodes = map[string]float64{
		"Female": 0,
		"Male":   1,
	}

	maritalStatusCodes = map[string]float64{
		"Divorced": 0,
		"Married":  1,
		"Single":   2,
	}

	departmentCodes = map[string]float64{
		"Human Resources":        0,
		"Research & Development": 1,
		"Sales":                  2,
	}

	jobRoleCodes = map[string]float64{
		"Healthcare Representative": 0,
		"Human Resources":           1,
		"Laboratory Technician":     2,
		"Manager":                   3,
		"Manufacturing Director":    4,
		"Research Director":         5,
		"Research Scientist":        6,
		"Sales Executive":           7,
		"Sales Representative":      8,
	}

	overTimeCodes = map[string]float64{
		"No":  0,
		"Yes": 1,
	}

	businessTravelCodes = map[string]float64{
		"Non-Travel":        0,
		"Travel_Rarely":     1,
		"Travel_Frequently": 2,
	}

	educationFieldCodes = map[string]float64{
		"Human Resources":  0,
		"Life Sciences":    1,
		"Marketing":        2,
		"Medical":          3,
		"Other":            4,
		"Technical Degree": 5,
	}
)

// NumFeatures is the width of the encoded feature vector.
const NumFeatures = 29

// Encode maps an EmployeeFeatures record onto the model's float vector.
// The order matches the training dataset column order.
func Encode(f models.EmployeeFeatures) ([]float64, error) {
	gender, err := code(genderCodes, "Gender", f.Gender)
	if err != nil {
		return nil, err
	}
	marital, err := code(maritalStatusCodes, "MaritalStatus", f.MaritalStatus)
	if err != nil {
		return nil, err
	}
	department, err := code(departmentCodes, "Department", f.Department)
	if err != nil {
		return nil, err
	}
	jobRole, err := code(jobRoleCodes, "JobRole", f.JobRole)
	if err != nil {
		return nil, err
	}
	overTime, err := code(overTimeCodes, "OverTime", f.OverTime)
	if err != nil {
		return nil, err
	}
	travel, err := code(businessTravelCodes, "BusinessTravel", f.BusinessTravel)
	if err != nil {
		return nil, err
	}
	eduField, err := code(educationFieldCodes, "EducationField", f.EducationField)
	if err != nil {
		return nil, err
	}

	return []float64{
		float64(f.Age),
		gender,
		marital,
		department,
		jobRole,
		float64(f.JobLevel),
		float64(f.JobSatisfaction),
		f.MonthlyIncome,
		f.DailyRate,
		f.HourlyRate,
		f.MonthlyRate,
		float64(f.YearsAtCompany),
		float64(f.YearsInCurrentRole),
		float64(f.YearsSinceLastPromotion),
		float64(f.TotalWorkingYears),
		float64(f.YearsWithCurrManager),
		float64(f.NumCompaniesWorked),
		float64(f.PerformanceRating),
		f.PercentSalaryHike,
		float64(f.TrainingTimesLastYear),
		overTime,
		travel,
		float64(f.DistanceFromHome),
		float64(f.WorkLifeBalance),
		float64(f.EnvironmentSatisfaction),
		float64(f.RelationshipSatisfaction),
		float64(f.Education),
		eduField,
		float64(f.StockOptionLevel),
	}, nil
}

func code(codes map[string]float64, field, value string) (float64, error) {
	v, ok := codes[value]
	if !ok {
		return 0, fmt.Errorf("unknown %s category: %q", field, value)
	}
	return v, nil
}
