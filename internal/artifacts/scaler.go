package artifacts

import "fmt"

// Scaler is a pre-fitted zero-mean/unit-variance affine scaler applied to a
// fixed subset of feature-vector columns. The column list comes from model-fit
// time and is not validated against the serving vector until Apply.
type Scaler struct {
	Columns []int     `json:"columns"`
	Means   []float64 `json:"means"`
	Stds    []float64 `json:"stds"`
}

// Apply returns a scaled copy of vec. It fails (rather than truncating or
// guessing) when the fitted columns do not line up with the vector; callers
// treat that as a soft failure and proceed with the unscaled vector.
func (s *Scaler) Apply(vec []float64) ([]float64, error) {
	if len(s.Columns) != len(s.Means) || len(s.Columns) != len(s.Stds) {
		return nil, fmt.Errorf("%w: %d columns, %d means, %d stds",
			ErrDimensionMismatch, len(s.Columns), len(s.Means), len(s.Stds))
	}

	out := make([]float64, len(vec))
	copy(out, vec)

	for i, col := range s.Columns {
		if col < 0 || col >= len(vec) {
			return nil, fmt.Errorf("%w: column %d, vector width %d", ErrColumnOutOfRange, col, len(vec))
		}
		std := s.Stds[i]
		if std <= 0 {
			// Constant feature during fitting; matches scikit-learn behavior.
			std = 1
		}
		out[col] = (vec[col] - s.Means[i]) / std
	}

	return out, nil
}
