// Package predictor adapts a serialized, pre-trained classification
// artifact into a narrow capability interface used by the prediction
// service. The artifact is opaque: it is loaded once at startup and
// read-only afterwards.
package predictor

import (
	"fmt"

	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/prediction-service/models"
)

// Predictor produces an integer class id (0 = stays, 1 = leaves) for a
// feature record.
type Predictor interface {
	Predict(features models.EmployeeFeatures) (int, error)
}

// ProbabilityPredictor is the optional probability capability. Concrete
// predictors that can estimate class probabilities implement it in
// addition to Predictor; callers discover it by type assertion.
type ProbabilityPredictor interface {
	PredictProba(features models.EmployeeFeatures) ([]float64, error)
}

// HasPredictProba reports whether p exposes the probability capability.
func HasPredictProba(p Predictor) bool {
	_, ok := p.(ProbabilityPredictor)
	return ok
}

// TypeName returns the concrete predictor type, for introspection output.
func TypeName(p Predictor) string {
	return fmt.Sprintf("%T", p)
}
