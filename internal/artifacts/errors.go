// Package artifacts loads the trained model artifacts consumed by the
// prediction pipeline.
package artifacts

import "errors"

var (
	// ErrUnavailable indicates a required model artifact is missing or
	// unreadable. Raised at load time only; the strategy synthesizer and the
	// grid-perturbation fallback never depend on artifacts.
	ErrUnavailable = errors.New("model artifacts unavailable")

	// ErrDimensionMismatch indicates a feature vector does not match the
	// width a model or scaler was fitted with.
	ErrDimensionMismatch = errors.New("feature dimension mismatch")

	// ErrColumnOutOfRange indicates the scaler's fitted column indices do not
	// fit the feature vector.
	ErrColumnOutOfRange = errors.New("scaler column index out of range")
)
