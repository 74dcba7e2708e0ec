package predictor

import (
	"fmt"
	"os"

	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/prediction-service/models"
	"github.com/dmitryikh/leaves"
)

// XGBoostPredictor wraps a leaves ensemble loaded from a serialized
// XGBoost artifact. The ensemble is immutable after loading and safe for
// concurrent use.
type XGBoostPredictor struct {
	ensemble *leaves.Ensemble
}

// LoadXGBoost reads an XGBoost model file from disk. The transformation
// (binary logistic) is loaded with the trees so predictions come out as
// probabilities of the positive class.
func LoadXGBoost(path string) (*XGBoostPredictor, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("model file not found at %s: %w", path, err)
	}

	ensemble, err := leaves.XGEnsembleFromFile(path, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load model from %s: %w", path, err)
	}

	if ensemble.NRawOutputGroups() != 1 {
		return nil, fmt.Errorf("unsupported model: expected binary classifier, got %d output groups", ensemble.NRawOutputGroups())
	}
	if ensemble.NFeatures() != NumFeatures {
		return nil, fmt.Errorf("model expects %d features, encoder produces %d", ensemble.NFeatures(), NumFeatures)
	}

	return &XGBoostPredictor{ensemble: ensemble}, nil
}

var _ Predictor = (*XGBoostPredictor)(nil)
var _ ProbabilityPredictor = (*XGBoostPredictor)(nil)

// Predict returns 1 when the positive-class probability crosses the
// classifier's 0.5 decision threshold, else 0.
func (p *XGBoostPredictor) Predict(features models.EmployeeFeatures) (int, error) {
	proba, err := p.PredictProba(features)
	if err != nil {
		return 0, err
	}
	if proba[1] >= 0.5 {
		return 1, nil
	}
	return 0, nil
}

// PredictProba returns [P(class 0), P(class 1)].
func (p *XGBoostPredictor) PredictProba(features models.EmployeeFeatures) ([]float64, error) {
	fvals, err := Encode(features)
	if err != nil {
		return nil, err
	}

	positive := p.ensemble.PredictSingle(fvals, 0)
	return []float64{1 - positive, positive}, nil
}

// Name reports the underlying ensemble flavor (e.g. xgboost.gbtree).
func (p *XGBoostPredictor) Name() string {
	return p.ensemble.Name()
}
