package artifacts

import "sort"

// LabelEncoder is a fixed string→code mapping fitted once on training data.
type LabelEncoder map[string]int

// EncoderSet holds the label encoders keyed by feature name (driver,
// constructor, circuit, weather, tire_strategy, circuit_type). Read-only
// after load.
type EncoderSet struct {
	encoders map[string]LabelEncoder
}

// NewEncoderSet builds an encoder set from pre-fitted mappings.
func NewEncoderSet(encoders map[string]LabelEncoder) *EncoderSet {
	return &EncoderSet{encoders: encoders}
}

// Encode looks up the code for a categorical value. The second return is
// false on any miss: unknown feature name or a value never seen during
// fitting. Callers substitute code 0 on a miss; encoding never fails hard.
func (e *EncoderSet) Encode(feature, value string) (int, bool) {
	enc, ok := e.encoders[feature]
	if !ok {
		return 0, false
	}
	code, ok := enc[value]
	return code, ok
}

// Features returns the names of the fitted encoders, sorted.
func (e *EncoderSet) Features() []string {
	names := make([]string, 0, len(e.encoders))
	for name := range e.encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
