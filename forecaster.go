// Package stepcast produces multi-step forecasts of a scalar time series by
// repeatedly applying a single-step predictor to its own outputs, and scores
// the resulting forecast against ground truth.
package stepcast

import (
	"errors"
	"fmt"

	"github.com/stepcast/stepcast/predictor"
	"github.com/stepcast/stepcast/timedataset"
)

var (
	ErrNoPredictor        = errors.New("no step predictor")
	ErrInvalidInputSize   = errors.New("input size must be positive")
	ErrNoSeries           = errors.New("no series to forecast from")
	ErrNegativeStartIndex = errors.New("start index must not be negative")
	ErrStartIndexTooLarge = errors.New("start index too large")
	ErrNegativeSteps      = errors.New("steps must not be negative")
	ErrPredictionFailed   = errors.New("step predictor failed")
)

// Forecaster drives a step predictor over a sliding window to produce
// multi-step forecasts. It holds no mutable state across calls, so a single
// instance may forecast concurrently as long as the underlying predictor is
// safe for concurrent use.
type Forecaster struct {
	predictor predictor.StepPredictor
	inputSize int
}

// New creates a Forecaster around the given step predictor. inputSize is the
// window length the predictor consumes, supplied alongside it by the model
// owner.
func New(p predictor.StepPredictor, inputSize int) (*Forecaster, error) {
	if p == nil {
		return nil, ErrNoPredictor
	}
	if inputSize < 1 {
		return nil, ErrInvalidInputSize
	}
	return &Forecaster{
		predictor: p,
		inputSize: inputSize,
	}, nil
}

// InputSize returns the window length fed to the step predictor.
func (f *Forecaster) InputSize() int {
	return f.inputSize
}

// Forecast produces a steps-long forecast starting from the window of the
// series at startIndex. Every prediction after the first consumes prior model
// outputs rather than ground truth, so error may compound step over step.
// That compounding is a characteristic the evaluation is meant to measure.
//
// The recorded actual values cover the same horizon and are truncated to the
// end of the series when the horizon extends past it, so they may be shorter
// than the predictions. A predictor failure at any step abandons the whole
// forecast with no partial result.
func (f *Forecaster) Forecast(series *timedataset.TimeSeries, startIndex, steps int) (*ForecastResult, error) {
	if series == nil {
		return nil, ErrNoSeries
	}
	if startIndex < 0 {
		return nil, fmt.Errorf("start index %d, %w", startIndex, ErrNegativeStartIndex)
	}
	if startIndex+f.inputSize >= series.Len() {
		return nil, fmt.Errorf(
			"start index %d with input size %d leaves no values to forecast in series of %d, %w",
			startIndex, f.inputSize, series.Len(), ErrStartIndexTooLarge,
		)
	}
	if steps < 0 {
		return nil, fmt.Errorf("requested %d steps, %w", steps, ErrNegativeSteps)
	}

	initial := series.Slice(startIndex, startIndex+f.inputSize)

	window := make([]float64, f.inputSize)
	copy(window, initial)

	predictions := make([]float64, 0, steps)
	for i := 0; i < steps; i++ {
		next, err := f.predictor.Predict(window)
		if err != nil {
			return nil, fmt.Errorf("unable to predict step %d of %d, %w, %w", i+1, steps, ErrPredictionFailed, err)
		}
		predictions = append(predictions, next)

		// slide the window forward, feeding the prediction back in
		copy(window, window[1:])
		window[f.inputSize-1] = next
	}

	actualEnd := min(startIndex+f.inputSize+steps, series.Len())
	actual := series.Slice(startIndex+f.inputSize, actualEnd)

	return &ForecastResult{
		InitialWindow: initial,
		Predictions:   predictions,
		Actual:        actual,
		StartIndex:    startIndex,
	}, nil
}
