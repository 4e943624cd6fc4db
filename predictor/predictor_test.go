package predictor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunc(t *testing.T) {
	var p StepPredictor = Func(func(window []float64) (float64, error) {
		return window[len(window)-1] + 1.0, nil
	})

	val, err := p.Predict([]float64{1.0, 2.0, 3.0})
	require.Nil(t, err)
	assert.Equal(t, 4.0, val)
}

func TestFuncError(t *testing.T) {
	errModel := errors.New("model unavailable")
	p := Func(func(window []float64) (float64, error) {
		return 0.0, errModel
	})

	_, err := p.Predict([]float64{1.0})
	assert.ErrorIs(t, err, errModel)
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.Equal(t, 20, cfg.InputSize)
	assert.Equal(t, 128, cfg.HiddenSize)
	assert.Equal(t, 1, cfg.OutputSize)
}
