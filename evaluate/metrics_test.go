package evaluate

import (
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluatePerfectForecast(t *testing.T) {
	vals := []float64{1.5, 2.5, 0.5, 3.5}

	m, err := Evaluate(vals, vals)
	require.Nil(t, err)

	assert.Equal(t, 4, m.Samples)
	assert.Zero(t, m.MSE)
	assert.Zero(t, m.MAE)
	assert.Zero(t, m.RMSE)
	assert.Zero(t, m.ErrorStd)
	assert.Zero(t, m.ErrorVar)
	assert.Zero(t, m.MaxError)
	assert.Zero(t, m.MinError)
	assert.Zero(t, m.ErrorMedian)
	assert.Zero(t, m.Error75thPercentile)
	assert.Zero(t, m.Error95thPercentile)
	assert.Zero(t, m.NormalizedRMSE)
	assert.InDelta(t, 1.0, m.Correlation, 1e-12)
	assert.InDelta(t, 1.0, m.RSquared, 1e-12)
	assert.InDelta(t, 3.0, m.DataRange, 1e-12)

	require.NotNil(t, m.Assessment)
	assert.Equal(t, LevelExcellent, m.Assessment.Level)
	assert.Equal(t, 3, m.Assessment.OverallScore)
	assert.True(t, m.Assessment.Acceptable)
}

func TestEvaluateKnownValues(t *testing.T) {
	pred := []float64{2.0, 4.0, 6.0, 8.0}
	actual := []float64{1.0, 3.0, 5.0, 9.0}

	m, err := Evaluate(pred, actual)
	require.Nil(t, err)

	assert.Equal(t, 4, m.Samples)
	assert.InDelta(t, 1.0, m.MSE, 1e-12)
	assert.InDelta(t, 1.0, m.MAE, 1e-12)
	assert.InDelta(t, 1.0, m.RMSE, 1e-12)
	assert.InDelta(t, 0.75, m.ErrorVar, 1e-12)
	assert.InDelta(t, math.Sqrt(0.75), m.ErrorStd, 1e-12)
	assert.InDelta(t, 1.0, m.MaxError, 1e-12)
	assert.InDelta(t, 1.0, m.MinError, 1e-12)
	assert.InDelta(t, 1.0, m.ErrorMedian, 1e-12)
	assert.InDelta(t, 1.0, m.Error75thPercentile, 1e-12)
	assert.InDelta(t, 1.0, m.Error95thPercentile, 1e-12)
	assert.InDelta(t, 26.0/math.Sqrt(700.0), m.Correlation, 1e-12)
	assert.InDelta(t, 1.0-4.0/35.0, m.RSquared, 1e-12)
	assert.InDelta(t, 8.0, m.DataRange, 1e-12)
	assert.InDelta(t, 0.125, m.NormalizedRMSE, 1e-12)

	require.NotNil(t, m.Assessment)
	assert.Equal(t, 3, m.Assessment.CorrelationScore)
	assert.Equal(t, 2, m.Assessment.RSquaredScore)
	assert.Equal(t, 1, m.Assessment.NormalizedRMSEScore)
	assert.Equal(t, 0, m.Assessment.MAERatioScore)
	assert.Equal(t, 0, m.Assessment.OverallScore)
	assert.Equal(t, LevelInsufficient, m.Assessment.Level)
	assert.False(t, m.Assessment.Acceptable)
}

func TestEvaluateConstantGroundTruth(t *testing.T) {
	pred := []float64{5.1, 4.9, 5.2, 5.0}
	actual := []float64{5.0, 5.0, 5.0, 5.0}

	m, err := Evaluate(pred, actual)
	require.Nil(t, err)

	assert.Zero(t, m.DataRange)
	assert.True(t, math.IsInf(m.NormalizedRMSE, 1))
	assert.Zero(t, m.RSquared)
	// correlation is undefined over constant ground truth and poisons the
	// score chain as NaN
	assert.True(t, math.IsNaN(m.Correlation))

	require.NotNil(t, m.Assessment)
	assert.True(t, math.IsInf(m.Assessment.MAERatio, 1))
	assert.Equal(t, 0, m.Assessment.OverallScore)
	assert.Equal(t, LevelInsufficient, m.Assessment.Level)
	assert.False(t, m.Assessment.Acceptable)
}

func TestEvaluateSingleSample(t *testing.T) {
	m, err := Evaluate([]float64{2.0}, []float64{1.0})
	require.Nil(t, err)

	assert.Equal(t, 1, m.Samples)
	assert.InDelta(t, 1.0, m.MSE, 1e-12)
	assert.Zero(t, m.Correlation)
	assert.Zero(t, m.RSquared)
	assert.True(t, math.IsInf(m.NormalizedRMSE, 1))
}

func TestEvaluateTruncatesToOverlap(t *testing.T) {
	pred := []float64{1.0, 2.0, 3.0, 99.0, 99.0}
	actual := []float64{1.0, 2.0, 3.0}

	m, err := Evaluate(pred, actual)
	require.Nil(t, err)

	assert.Equal(t, 3, m.Samples)
	assert.Zero(t, m.MSE)
	assert.InDelta(t, 1.0, m.Correlation, 1e-12)
}

func TestEvaluateNoSamples(t *testing.T) {
	testData := map[string]struct {
		pred   []float64
		actual []float64
	}{
		"both empty":   {nil, nil},
		"empty pred":   {nil, []float64{1.0}},
		"empty actual": {[]float64{1.0}, nil},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := Evaluate(td.pred, td.actual)
			assert.ErrorIs(t, err, ErrNoSamples)
		})
	}
}

func TestMetricsJSON(t *testing.T) {
	m, err := Evaluate([]float64{1.0, 2.0, 3.0}, []float64{1.1, 2.1, 2.9})
	require.Nil(t, err)

	out, err := json.Marshal(m)
	require.Nil(t, err)

	var decoded map[string]any
	require.Nil(t, json.Unmarshal(out, &decoded))
	assert.Contains(t, decoded, "mse")
	assert.Contains(t, decoded, "normalized_rmse")
	assert.Contains(t, decoded, "samples")

	assessment, ok := decoded["accuracy_assessment"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, assessment, "overall_score")
	assert.Contains(t, assessment, "recommendation")
}
