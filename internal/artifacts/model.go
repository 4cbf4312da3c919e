package artifacts

import (
	"fmt"
	"math"
)

// LinearModel is a regression estimator exported by the training pipeline as
// intercept plus per-feature coefficients.
type LinearModel struct {
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

// Predict evaluates the regressor on one feature vector.
func (m *LinearModel) Predict(vec []float64) (float64, error) {
	if len(vec) != len(m.Coefficients) {
		return 0, fmt.Errorf("%w: model fitted on %d features, got %d",
			ErrDimensionMismatch, len(m.Coefficients), len(vec))
	}
	y := m.Intercept
	for i, c := range m.Coefficients {
		y += c * vec[i]
	}
	return y, nil
}

// LogisticModel is a binary classifier exported as a logistic-regression
// coefficient set.
type LogisticModel struct {
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
	Threshold    float64   `json:"threshold"`
}

// PredictProba returns the positive-class probability for one feature vector.
func (m *LogisticModel) PredictProba(vec []float64) (float64, error) {
	if len(vec) != len(m.Coefficients) {
		return 0, fmt.Errorf("%w: model fitted on %d features, got %d",
			ErrDimensionMismatch, len(m.Coefficients), len(vec))
	}
	z := m.Intercept
	for i, c := range m.Coefficients {
		z += c * vec[i]
	}
	return 1 / (1 + math.Exp(-z)), nil
}

// Predict returns the class decision using the fitted threshold (0.5 when
// the artifact does not carry one).
func (m *LogisticModel) Predict(vec []float64) (bool, error) {
	p, err := m.PredictProba(vec)
	if err != nil {
		return false, err
	}
	threshold := m.Threshold
	if threshold == 0 {
		threshold = 0.5
	}
	return p >= threshold, nil
}
