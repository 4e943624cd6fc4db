// Package predictor defines the single-step prediction capability consumed by
// the autoregressive forecaster along with reference implementations.
package predictor

import (
	"errors"
)

var ErrWindowLenMismatch = errors.New("window length does not match predictor input size")

// StepPredictor produces the next value of a series given a fixed-length
// window of the most recent samples. Implementations must not retain the
// window slice since callers may reuse it between calls. Implementations that
// are not safe for concurrent use must be serialized by the caller.
type StepPredictor interface {
	Predict(window []float64) (float64, error)
}

// Func adapts a plain function to the StepPredictor interface.
type Func func(window []float64) (float64, error)

// Predict calls the wrapped function.
func (f Func) Predict(window []float64) (float64, error) {
	return f(window)
}

// Config describes a step predictor and is supplied alongside it by whatever
// component constructed the model. Only InputSize is meaningful to the
// forecaster. The remaining fields are opaque model geometry.
type Config struct {
	InputSize  int `json:"input_size"`
	HiddenSize int `json:"hidden_size"`
	OutputSize int `json:"output_size"`
}

// NewDefaultConfig returns the default predictor configuration.
func NewDefaultConfig() *Config {
	return &Config{
		InputSize:  20,
		HiddenSize: 128,
		OutputSize: 1,
	}
}
