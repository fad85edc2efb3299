package prior

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sentinel errors returned by the prior constructors.
var (
	// ErrNonPositiveParam indicates a shape or rate parameter ≤ 0.
	ErrNonPositiveParam = errors.New("prior: parameter must be positive")

	// ErrBadInterval indicates Uniform bounds with lo ≥ hi.
	ErrBadInterval = errors.New("prior: interval lower bound must be below upper bound")

	// ErrNotFinite indicates a NaN or ±Inf parameter.
	ErrNotFinite = errors.New("prior: parameter must be finite")
)

// Model is the contract a prior distribution must satisfy.
//
// LogProb reports the log-density at x (−Inf outside the support),
// Mean reports the distribution mean, and Rand draws one variate.
// Every gonum distuv distribution already satisfies Model.
type Model interface {
	LogProb(x float64) float64
	Mean() float64
	Rand() float64
}

// NewBeta returns a Beta(a, b) prior on a quantity in (0, 1),
// most commonly a mixture component's mean.
// Both pseudo-counts must be positive and finite.
func NewBeta(a, b float64) (Model, error) {
	if !finite(a) || !finite(b) {
		return nil, ErrNotFinite
	}
	if a <= 0 || b <= 0 {
		return nil, ErrNonPositiveParam
	}

	return distuv.Beta{Alpha: a, Beta: b}, nil
}

// NewUniform returns a Uniform(lo, hi) prior, the usual weakly-informative
// choice for a Beta-Binomial sample size a+b.
// Bounds must be finite with lo < hi.
func NewUniform(lo, hi float64) (Model, error) {
	if !finite(lo) || !finite(hi) {
		return nil, ErrNotFinite
	}
	if lo >= hi {
		return nil, ErrBadInterval
	}

	return distuv.Uniform{Min: lo, Max: hi}, nil
}

// NewGamma returns a Gamma(shape, rate) prior, an alternative sample-size
// prior that puts decaying mass on large values.
// Both parameters must be positive and finite.
func NewGamma(shape, rate float64) (Model, error) {
	if !finite(shape) || !finite(rate) {
		return nil, ErrNotFinite
	}
	if shape <= 0 || rate <= 0 {
		return nil, ErrNonPositiveParam
	}

	return distuv.Gamma{Alpha: shape, Beta: rate}, nil
}

// finite reports whether x is neither NaN nor ±Inf.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
