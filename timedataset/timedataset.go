// Package timedataset provides the scalar time series container along with
// utilities to generate, load, and window series data.
package timedataset

import (
	"errors"
)

var ErrNoData = errors.New("no data in series")

// TimeSeries is an ordered sequence of scalar samples where insertion order
// is temporal order. The series is immutable once constructed.
type TimeSeries struct {
	values []float64
}

// New returns a TimeSeries copying the input values so later mutations of the
// caller's slice do not leak into the series.
func New(values []float64) (*TimeSeries, error) {
	if len(values) == 0 {
		return nil, ErrNoData
	}
	vals := make([]float64, len(values))
	copy(vals, values)
	return &TimeSeries{values: vals}, nil
}

// Len returns the number of samples in the series.
func (ts *TimeSeries) Len() int {
	return len(ts.values)
}

// At returns the sample at index i.
func (ts *TimeSeries) At(i int) float64 {
	return ts.values[i]
}

// Values returns a copy of all samples in temporal order.
func (ts *TimeSeries) Values() []float64 {
	vals := make([]float64, len(ts.values))
	copy(vals, ts.values)
	return vals
}

// Slice returns a copy of the samples in the half-open range [start, end).
// Bounds follow Go slicing rules.
func (ts *TimeSeries) Slice(start, end int) []float64 {
	vals := make([]float64, end-start)
	copy(vals, ts.values[start:end])
	return vals
}
