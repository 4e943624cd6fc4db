package timedataset

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// Series is a mutable slice of samples used to compose synthetic data before
// wrapping it in a TimeSeries.
type Series []float64

// Add sums src element-wise into the receiver and returns it for chaining.
func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

// TimeSeries wraps the composed samples in an immutable TimeSeries.
func (s Series) TimeSeries() (*TimeSeries, error) {
	return New(s)
}

// GenerateSineWave produces n samples of a sine wave spanning [0, 4π] with
// the given frequency and amplitude plus gaussian noise scaled by noiseLevel.
// The same seed always yields the same series.
func GenerateSineWave(n int, frequency, amplitude, noiseLevel float64, seed uint64) Series {
	r := rand.New(rand.NewPCG(seed, seed))

	span := float64(n - 1)
	if n <= 1 {
		span = 1.0
	}
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		t := 4.0 * math.Pi * float64(i) / span
		y = append(y, amplitude*math.Sin(frequency*t)+r.NormFloat64()*noiseLevel)
	}
	return Series(y)
}
