package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/prediction-service/models"
	"go.uber.org/zap"
)

// classOnlyPredictor implements Predict without the probability capability.
type classOnlyPredictor struct {
	class int
	err   error
}

func (p *classOnlyPredictor) Predict(models.EmployeeFeatures) (int, error) {
	return p.class, p.err
}

// probaPredictor implements both capabilities.
type probaPredictor struct {
	class    int
	proba    []float64
	probaErr error
}

func (p *probaPredictor) Predict(models.EmployeeFeatures) (int, error) {
	return p.class, nil
}

func (p *probaPredictor) PredictProba(models.EmployeeFeatures) ([]float64, error) {
	return p.proba, p.probaErr
}

func TestPredictLabelMapping(t *testing.T) {
	cases := []struct {
		class int
		want  string
	}{
		{1, "Yes"},
		{0, "No"},
	}

	for _, tc := range cases {
		svc := NewPredictService(&probaPredictor{class: tc.class, proba: []float64{0.5, 0.5}}, zap.NewNop())

		result, err := svc.Predict(context.Background(), models.HighRiskEmployee)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Prediction != tc.want {
			t.Fatalf("class %d: expected label %q, got %q", tc.class, tc.want, result.Prediction)
		}
	}
}

func TestPredictConfidenceTiers(t *testing.T) {
	cases := []struct {
		probability float64
		want        string
	}{
		{0.95, "High"},
		{0.8, "High"}, // boundary
		{0.79, "Medium"},
		{0.6, "Medium"}, // boundary
		{0.59, "Low"},
		{0.0, "Low"},
	}

	for _, tc := range cases {
		svc := NewPredictService(&probaPredictor{class: 1, proba: []float64{1 - tc.probability, tc.probability}}, zap.NewNop())

		result, err := svc.Predict(context.Background(), models.HighRiskEmployee)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Probability != tc.probability {
			t.Fatalf("expected probability %v, got %v", tc.probability, result.Probability)
		}
		if result.Confidence != tc.want {
			t.Fatalf("probability %v: expected confidence %q, got %q", tc.probability, tc.want, result.Confidence)
		}
	}
}

func TestPredictUsesPositiveClassProbability(t *testing.T) {
	svc := NewPredictService(&probaPredictor{class: 1, proba: []float64{0.3, 0.7}}, zap.NewNop())

	result, err := svc.Predict(context.Background(), models.HighRiskEmployee)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Probability != 0.7 {
		t.Fatalf("expected positive-class probability 0.7, got %v", result.Probability)
	}
}

func TestPredictSingleElementProbabilityVector(t *testing.T) {
	svc := NewPredictService(&probaPredictor{class: 1, proba: []float64{0.65}}, zap.NewNop())

	result, err := svc.Predict(context.Background(), models.HighRiskEmployee)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Probability != 0.65 {
		t.Fatalf("expected probability 0.65, got %v", result.Probability)
	}
}

func TestPredictWithoutProbabilityCapability(t *testing.T) {
	svc := NewPredictService(&classOnlyPredictor{class: 1}, zap.NewNop())

	result, err := svc.Predict(context.Background(), models.HighRiskEmployee)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Probability != 0.5 {
		t.Fatalf("expected degraded default 0.5, got %v", result.Probability)
	}
	if result.Confidence != "Low" {
		t.Fatalf("expected Low confidence for degraded default, got %q", result.Confidence)
	}
	if result.Prediction != "Yes" {
		t.Fatalf("expected label Yes, got %q", result.Prediction)
	}
}

func TestPredictProbabilityErrorFallsBack(t *testing.T) {
	svc := NewPredictService(&probaPredictor{class: 0, probaErr: errors.New("no estimate")}, zap.NewNop())

	result, err := svc.Predict(context.Background(), models.HighRiskEmployee)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Probability != 0.5 {
		t.Fatalf("expected degraded default 0.5, got %v", result.Probability)
	}
}

func TestPredictModelNotLoaded(t *testing.T) {
	svc := NewPredictService(nil, zap.NewNop())

	if _, err := svc.Predict(context.Background(), models.HighRiskEmployee); !errors.Is(err, ErrModelNotLoaded) {
		t.Fatalf("expected ErrModelNotLoaded, got %v", err)
	}
	if svc.ModelLoaded() {
		t.Fatal("expected ModelLoaded to report false")
	}
}

func TestPredictErrorSurfaces(t *testing.T) {
	svc := NewPredictService(&classOnlyPredictor{err: errors.New("boom")}, zap.NewNop())

	_, err := svc.Predict(context.Background(), models.HighRiskEmployee)
	if err == nil {
		t.Fatal("expected prediction error")
	}
	if errors.Is(err, ErrModelNotLoaded) {
		t.Fatalf("prediction error must not be ErrModelNotLoaded: %v", err)
	}
}

func TestTestPrediction(t *testing.T) {
	svc := NewPredictService(&probaPredictor{class: 1, proba: []float64{0.2, 0.8}}, zap.NewNop())

	result, err := svc.TestPrediction(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Prediction != 1 {
		t.Fatalf("expected raw class 1, got %d", result.Prediction)
	}
	if len(result.Probabilities) != 2 || result.Probabilities[1] != 0.8 {
		t.Fatalf("unexpected probability vector: %v", result.Probabilities)
	}
	if result.TestData != models.HighRiskEmployee {
		t.Fatal("expected the fixed high-risk sample as test data")
	}
	if !result.ModelInfo.HasPredictProba {
		t.Fatal("expected has_predict_proba to be true")
	}
	if result.ModelInfo.PipelineType == "" {
		t.Fatal("expected pipeline type to be reported")
	}
}

func TestTestPredictionRequiresProbabilityCapability(t *testing.T) {
	svc := NewPredictService(&classOnlyPredictor{class: 0}, zap.NewNop())

	if _, err := svc.TestPrediction(context.Background()); err == nil {
		t.Fatal("expected error for predictor without probability estimates")
	}
}

func TestTestPredictionModelNotLoaded(t *testing.T) {
	svc := NewPredictService(nil, zap.NewNop())

	if _, err := svc.TestPrediction(context.Background()); !errors.Is(err, ErrModelNotLoaded) {
		t.Fatalf("expected ErrModelNotLoaded, got %v", err)
	}
}
