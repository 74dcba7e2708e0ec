package predictor

import "testing"

func TestLoadXGBoostMissingFile(t *testing.T) {
	if _, err := LoadXGBoost("testdata/does-not-exist.model"); err == nil {
		t.Fatal("expected error for missing model file")
	}
}
