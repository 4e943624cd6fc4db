package stepcast

import (
	"github.com/stepcast/stepcast/evaluate"
)

// ForecastResult holds one forecast along with the ground truth recorded for
// the same horizon. The actual values may be shorter than the predictions
// when the forecast horizon runs past the end of the series. Owned by the
// caller and never mutated after construction.
type ForecastResult struct {
	InitialWindow []float64 `json:"initial_sequence"`
	Predictions   []float64 `json:"predictions"`
	Actual        []float64 `json:"actual_values"`
	StartIndex    int       `json:"start_index"`
}

// Evaluate scores the forecast against the recorded ground truth. Both sides
// are truncated to their overlapping length before any statistic is computed.
func (r *ForecastResult) Evaluate() (*evaluate.Metrics, error) {
	return evaluate.Evaluate(r.Predictions, r.Actual)
}
