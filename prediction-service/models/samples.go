package models

// HighRiskEmployee is a young, low-salary profile working overtime with
// frequent travel. Also used as the fixed input for test predictions.
var HighRiskEmployee = EmployeeFeatures{
	Age:                      25,
	Gender:                   "Male",
	MaritalStatus:            "Single",
	Department:               "Sales",
	JobRole:                  "Sales Representative",
	JobLevel:                 1,
	JobSatisfaction:          2,
	MonthlyIncome:            2000.0,
	DailyRate:                100.0,
	HourlyRate:               12.0,
	MonthlyRate:              2000.0,
	YearsAtCompany:           1,
	YearsInCurrentRole:       1,
	YearsSinceLastPromotion:  1,
	TotalWorkingYears:        2,
	YearsWithCurrManager:     1,
	NumCompaniesWorked:       1,
	PerformanceRating:        2,
	PercentSalaryHike:        5.0,
	TrainingTimesLastYear:    1,
	OverTime:                 "Yes",
	BusinessTravel:           "Travel_Frequently",
	DistanceFromHome:         20,
	WorkLifeBalance:          2,
	EnvironmentSatisfaction:  2,
	RelationshipSatisfaction: 2,
	Education:                2,
	EducationField:           "Life Sciences",
	StockOptionLevel:         0,
}

// LowRiskEmployee is an experienced, well-compensated profile with good
// work-life balance.
var LowRiskEmployee = EmployeeFeatures{
	Age:                      45,
	Gender:                   "Female",
	MaritalStatus:            "Married",
	Department:               "Research & Development",
	JobRole:                  "Research Scientist",
	JobLevel:                 4,
	JobSatisfaction:          4,
	MonthlyIncome:            8000.0,
	DailyRate:                400.0,
	HourlyRate:               50.0,
	MonthlyRate:              8000.0,
	YearsAtCompany:           10,
	YearsInCurrentRole:       5,
	YearsSinceLastPromotion:  2,
	TotalWorkingYears:        15,
	YearsWithCurrManager:     3,
	NumCompaniesWorked:       2,
	PerformanceRating:        4,
	PercentSalaryHike:        15.0,
	TrainingTimesLastYear:    3,
	OverTime:                 "No",
	BusinessTravel:           "Travel_Rarely",
	DistanceFromHome:         5,
	WorkLifeBalance:          4,
	EnvironmentSatisfaction:  4,
	RelationshipSatisfaction: 4,
	Education:                4,
	EducationField:           "Life Sciences",
	StockOptionLevel:         2,
}

// Samples returns the literal records for the sample-data endpoint. The
// response is identical on every call.
func Samples() SampleData {
	return SampleData{
		HighRiskEmployee: HighRiskEmployee,
		LowRiskEmployee:  LowRiskEmployee,
	}
}
