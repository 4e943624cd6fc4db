package timedataset

import (
	"errors"
	"fmt"
)

var (
	ErrSeriesTooShort = errors.New("series too short for requested window size")
	ErrInvalidWindow  = errors.New("window size must be positive")
	ErrBadSplitRatio  = errors.New("train ratio must be greater than 0 and less than 1")
	ErrSplitMismatch  = errors.New("windows and targets have different lengths")
)

// CreateSequences slices values into overlapping input windows of length
// inputSize, each paired with the sample immediately following the window.
// Used to build supervised training pairs for step predictors.
func CreateSequences(values []float64, inputSize int) ([][]float64, []float64, error) {
	if inputSize < 1 {
		return nil, nil, ErrInvalidWindow
	}
	n := len(values) - inputSize
	if n < 1 {
		return nil, nil, fmt.Errorf(
			"need more than %d samples for a window of %d, got %d, %w",
			inputSize, inputSize, len(values), ErrSeriesTooShort,
		)
	}

	windows := make([][]float64, 0, n)
	targets := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		window := make([]float64, inputSize)
		copy(window, values[i:i+inputSize])
		windows = append(windows, window)
		targets = append(targets, values[i+inputSize])
	}
	return windows, targets, nil
}

// TrainTestSplit partitions windowed pairs into a training and test portion
// preserving temporal order. trainRatio is the fraction of pairs assigned to
// the training portion.
func TrainTestSplit(windows [][]float64, targets []float64, trainRatio float64) (
	trainWindows [][]float64, trainTargets []float64,
	testWindows [][]float64, testTargets []float64,
	err error,
) {
	if len(windows) != len(targets) {
		return nil, nil, nil, nil, fmt.Errorf(
			"%d windows with %d targets, %w",
			len(windows), len(targets), ErrSplitMismatch,
		)
	}
	if trainRatio <= 0.0 || trainRatio >= 1.0 {
		return nil, nil, nil, nil, ErrBadSplitRatio
	}

	cut := int(float64(len(windows)) * trainRatio)
	return windows[:cut], targets[:cut], windows[cut:], targets[cut:], nil
}
