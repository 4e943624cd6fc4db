// Package evaluate computes error statistics between a forecast and its
// ground truth and converts them into a tiered quality assessment.
package evaluate

import (
	"errors"
	"math"

	"github.com/stepcast/stepcast/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var ErrNoSamples = errors.New("no overlapping samples to evaluate")

// Metrics is a flat record of error statistics over a forecast and ground
// truth pair, produced once per evaluation and immutable thereafter.
type Metrics struct {
	MSE                 float64     `json:"mse"`
	MAE                 float64     `json:"mae"`
	RMSE                float64     `json:"rmse"`
	Correlation         float64     `json:"correlation"`
	RSquared            float64     `json:"r_squared"`
	ErrorStd            float64     `json:"error_std"`
	ErrorVar            float64     `json:"error_var"`
	MaxError            float64     `json:"max_error"`
	MinError            float64     `json:"min_error"`
	Error95thPercentile float64     `json:"error_95th_percentile"`
	Error75thPercentile float64     `json:"error_75th_percentile"`
	ErrorMedian         float64     `json:"error_median"`
	NormalizedRMSE      float64     `json:"normalized_rmse"`
	DataRange           float64     `json:"data_range"`
	Samples             int         `json:"samples"`
	Assessment          *Assessment `json:"accuracy_assessment"`
}

// Evaluate computes error statistics between predictions and actual values.
// Both inputs are truncated to their common length before anything is
// computed, bounding the metrics to the overlap. Degenerate inputs resolve to
// sentinel values rather than errors: correlation is 0 with a single sample,
// r-squared is 0 over constant ground truth, and normalized rmse is +Inf when
// the ground truth has zero range. Fails only when the overlap is empty.
func Evaluate(predictions, actual []float64) (*Metrics, error) {
	n := min(len(predictions), len(actual))
	if n == 0 {
		return nil, ErrNoSamples
	}
	pred := predictions[:n]
	act := actual[:n]

	errs := make([]float64, n)
	absErrs := make([]float64, n)
	var mse, mae float64
	for i := 0; i < n; i++ {
		errs[i] = pred[i] - act[i]
		absErrs[i] = math.Abs(errs[i])
		mse += errs[i] * errs[i]
		mae += absErrs[i]
	}
	ssRes := mse
	mse /= float64(n)
	mae /= float64(n)
	rmse := math.Sqrt(mse)

	errVar := stat.PopVariance(errs, nil)

	correlation := 0.0
	if n > 1 {
		correlation = stat.Correlation(pred, act, nil)
	}

	actMean := stat.Mean(act, nil)
	var ssTot float64
	for i := 0; i < n; i++ {
		diff := act[i] - actMean
		ssTot += diff * diff
	}
	rSquared := 0.0
	if ssTot != 0 {
		rSquared = 1.0 - ssRes/ssTot
	}

	dataRange := floats.Max(act) - floats.Min(act)
	normalizedRMSE := math.Inf(1)
	if dataRange != 0 {
		normalizedRMSE = rmse / dataRange
	}

	m := &Metrics{
		MSE:                 mse,
		MAE:                 mae,
		RMSE:                rmse,
		Correlation:         correlation,
		RSquared:            rSquared,
		ErrorStd:            math.Sqrt(errVar),
		ErrorVar:            errVar,
		MaxError:            floats.Max(absErrs),
		MinError:            floats.Min(absErrs),
		Error95thPercentile: stats.Percentile(absErrs, 95.0),
		Error75thPercentile: stats.Percentile(absErrs, 75.0),
		ErrorMedian:         stats.Median(absErrs),
		NormalizedRMSE:      normalizedRMSE,
		DataRange:           dataRange,
		Samples:             n,
	}
	m.Assessment = Assess(correlation, rSquared, normalizedRMSE, mae, dataRange)
	return m, nil
}
