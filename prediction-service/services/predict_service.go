package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/prediction-service/models"
	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/prediction-service/predictor"
	"go.uber.org/zap"
)

// ErrModelNotLoaded is returned for every prediction attempt while the
// service runs without a model artifact. It is never retried here; the
// process must be restarted with a valid artifact.
var ErrModelNotLoaded = errors.New("model not loaded")

// defaultProbability stands in when the predictor has no probability
// estimate. It lands in the Low confidence tier, which is the degraded
// signal callers see.
const defaultProbability = 0.5

type PredictService interface {
	ModelLoaded() bool
	Predict(ctx context.Context, features models.EmployeeFeatures) (*models.PredictionResponse, error)
	TestPrediction(ctx context.Context) (*models.TestPredictionResponse, error)
}

type predictService struct {
	predictor predictor.Predictor
	logger    *zap.Logger
}

// NewPredictService wires the loaded predictor into the service. A nil
// predictor means the artifact failed to load at startup; the service
// then answers every call with ErrModelNotLoaded.
func NewPredictService(p predictor.Predictor, logger *zap.Logger) PredictService {
	return &predictService{
		predictor: p,
		logger:    logger,
	}
}

func (s *predictService) ModelLoaded() bool {
	return s.predictor != nil
}

func (s *predictService) Predict(ctx context.Context, features models.EmployeeFeatures) (*models.PredictionResponse, error) {
	if s.predictor == nil {
		return nil, ErrModelNotLoaded
	}

	class, err := s.predictor.Predict(features)
	if err != nil {
		return nil, fmt.Errorf("prediction failed: %w", err)
	}

	probability := s.probabilityFor(features)

	label := "No"
	if class == 1 {
		label = "Yes"
	}

	return &models.PredictionResponse{
		Prediction:  label,
		Probability: probability,
		Confidence:  confidenceFor(probability),
	}, nil
}

// probabilityFor extracts the positive-class probability. Predictors
// without the probability capability, and probability calls that fail,
// degrade to the fixed default rather than failing the prediction.
func (s *predictService) probabilityFor(features models.EmployeeFeatures) float64 {
	pp, ok := s.predictor.(predictor.ProbabilityPredictor)
	if !ok {
		s.logger.Warn("predictor has no probability estimate, using degraded default",
			zap.Float64("default", defaultProbability))
		return defaultProbability
	}

	proba, err := pp.PredictProba(features)
	if err != nil {
		s.logger.Warn("probability estimate failed, using degraded default", zap.Error(err))
		return defaultProbability
	}

	switch {
	case len(proba) > 1:
		return proba[1]
	case len(proba) == 1:
		return proba[0]
	default:
		return defaultProbability
	}
}

func (s *predictService) TestPrediction(ctx context.Context) (*models.TestPredictionResponse, error) {
	if s.predictor == nil {
		return nil, ErrModelNotLoaded
	}

	sample := models.HighRiskEmployee

	class, err := s.predictor.Predict(sample)
	if err != nil {
		return nil, fmt.Errorf("prediction failed: %w", err)
	}

	pp, ok := s.predictor.(predictor.ProbabilityPredictor)
	if !ok {
		return nil, errors.New("predictor does not support probability estimates")
	}
	proba, err := pp.PredictProba(sample)
	if err != nil {
		return nil, fmt.Errorf("probability estimate failed: %w", err)
	}

	return &models.TestPredictionResponse{
		TestData:      sample,
		Prediction:    class,
		Probabilities: proba,
		ModelInfo: models.ModelInfo{
			PipelineType:    predictor.TypeName(s.predictor),
			HasPredictProba: true,
		},
	}, nil
}

// confidenceFor buckets a probability into the three display tiers.
func confidenceFor(probability float64) string {
	switch {
	case probability >= 0.8:
		return "High"
	case probability >= 0.6:
		return "Medium"
	default:
		return "Low"
	}
}
