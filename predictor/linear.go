package predictor

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrInvalidInputSize     = errors.New("input size must be positive")
	ErrNoTrainingWindows    = errors.New("no training windows")
	ErrTargetLenMismatch    = errors.New("target length does not match number of windows")
	ErrInsufficientTraining = errors.New("need more training windows than model coefficients")
	ErrUntrained            = errors.New("linear model has not been fit")
)

// LinearAR is an autoregressive linear step predictor. The next value is a
// learned affine combination of the window, fit with ordinary least squares
// using QR factorization.
type LinearAR struct {
	inputSize int
	intercept float64
	coef      []float64
	trained   bool
}

// NewLinearAR initializes a linear autoregressive model for windows of
// inputSize samples, ready for fitting.
func NewLinearAR(inputSize int) (*LinearAR, error) {
	if inputSize < 1 {
		return nil, ErrInvalidInputSize
	}
	return &LinearAR{inputSize: inputSize}, nil
}

// Fit estimates the model coefficients from lagged windows and their next
// values, as produced by timedataset.CreateSequences.
func (l *LinearAR) Fit(windows [][]float64, targets []float64) error {
	m := len(windows)
	if m == 0 {
		return ErrNoTrainingWindows
	}
	if m != len(targets) {
		return fmt.Errorf("%d windows with %d targets, %w", m, len(targets), ErrTargetLenMismatch)
	}
	// one column per lag plus the intercept column
	n := l.inputSize + 1
	if m < n {
		return fmt.Errorf("%d windows for %d coefficients, %w", m, n, ErrInsufficientTraining)
	}

	x := mat.NewDense(m, n, nil)
	ones := make([]float64, m)
	floats.AddConst(1.0, ones)
	x.SetCol(0, ones)
	for i, window := range windows {
		if len(window) != l.inputSize {
			return fmt.Errorf("window %d has length %d, expected %d, %w",
				i, len(window), l.inputSize, ErrWindowLenMismatch)
		}
		for j, val := range window {
			x.Set(i, j+1, val)
		}
	}
	y := mat.NewDense(1, m, targets)

	qr := new(mat.QR)
	qr.Factorize(x)

	q := new(mat.Dense)
	r := new(mat.Dense)
	qr.QTo(q)
	qr.RTo(r)

	yq := new(mat.Dense)
	yq.Mul(y, q)

	c := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		c[i] = yq.At(0, i)
		for j := i + 1; j < n; j++ {
			c[i] -= c[j] * r.At(i, j)
		}
		c[i] /= r.At(i, i)
	}

	l.intercept = c[0]
	l.coef = c[1:]
	l.trained = true
	return nil
}

// Predict returns the next value given the most recent window of samples.
func (l *LinearAR) Predict(window []float64) (float64, error) {
	if !l.trained {
		return 0.0, ErrUntrained
	}
	if len(window) != l.inputSize {
		return 0.0, fmt.Errorf("got window of length %d, expected %d, %w",
			len(window), l.inputSize, ErrWindowLenMismatch)
	}

	return l.intercept + floats.Dot(l.coef, window), nil
}

// InputSize returns the window length the model consumes.
func (l *LinearAR) InputSize() int {
	return l.inputSize
}

// Intercept returns the fitted intercept. Defaults to 0.0 before fitting.
func (l *LinearAR) Intercept() float64 {
	return l.intercept
}

// Coef returns a copy of the fitted lag coefficients ordered oldest lag
// first.
func (l *LinearAR) Coef() []float64 {
	c := make([]float64, len(l.coef))
	copy(c, l.coef)
	return c
}
