package prior_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/betamix/prior"
)

// TestNewBeta_Valid verifies that a Beta(2,6) prior reports the analytic
// mean 2/(2+6) and a finite interior log-density.
func TestNewBeta_Valid(t *testing.T) {
	p, err := prior.NewBeta(2, 6)
	assert.NoError(t, err, "positive pseudo-counts must construct")
	assert.InDelta(t, 0.25, p.Mean(), 1e-12, "Beta(2,6) mean must be 2/8")
	assert.False(t, math.IsInf(p.LogProb(0.3), 0), "interior point must have finite log-density")
}

// TestNewBeta_RejectsNonPositive ensures zero or negative pseudo-counts
// yield ErrNonPositiveParam.
func TestNewBeta_RejectsNonPositive(t *testing.T) {
	_, err := prior.NewBeta(0, 1)
	assert.ErrorIs(t, err, prior.ErrNonPositiveParam, "a=0 must be rejected")

	_, err = prior.NewBeta(1, -2)
	assert.ErrorIs(t, err, prior.ErrNonPositiveParam, "b<0 must be rejected")
}

// TestNewBeta_RejectsNaN ensures NaN parameters yield ErrNotFinite.
func TestNewBeta_RejectsNaN(t *testing.T) {
	_, err := prior.NewBeta(math.NaN(), 1)
	assert.ErrorIs(t, err, prior.ErrNotFinite, "NaN must be rejected before sign checks")
}

// TestNewUniform_Valid verifies the mean of a Uniform(0.1, 1000) prior
// and that its density vanishes outside the support.
func TestNewUniform_Valid(t *testing.T) {
	p, err := prior.NewUniform(0.1, 1000)
	assert.NoError(t, err, "ordered bounds must construct")
	assert.InDelta(t, (0.1+1000)/2, p.Mean(), 1e-9, "Uniform mean must be the midpoint")
	assert.True(t, math.IsInf(p.LogProb(-1), -1), "log-density below support must be -Inf")
}

// TestNewUniform_RejectsBadInterval ensures lo ≥ hi yields ErrBadInterval.
func TestNewUniform_RejectsBadInterval(t *testing.T) {
	_, err := prior.NewUniform(5, 5)
	assert.ErrorIs(t, err, prior.ErrBadInterval, "lo == hi must be rejected")

	_, err = prior.NewUniform(7, 2)
	assert.ErrorIs(t, err, prior.ErrBadInterval, "lo > hi must be rejected")
}

// TestNewUniform_RejectsInf ensures infinite bounds yield ErrNotFinite.
func TestNewUniform_RejectsInf(t *testing.T) {
	_, err := prior.NewUniform(0, math.Inf(1))
	assert.ErrorIs(t, err, prior.ErrNotFinite, "infinite upper bound must be rejected")
}

// TestNewGamma_Valid verifies the Gamma(shape, rate) mean shape/rate.
func TestNewGamma_Valid(t *testing.T) {
	p, err := prior.NewGamma(3, 0.5)
	assert.NoError(t, err, "positive shape and rate must construct")
	assert.InDelta(t, 6.0, p.Mean(), 1e-12, "Gamma(3, 0.5) mean must be shape/rate = 6")
}

// TestNewGamma_RejectsNonPositive ensures non-positive shape or rate
// yields ErrNonPositiveParam.
func TestNewGamma_RejectsNonPositive(t *testing.T) {
	_, err := prior.NewGamma(-1, 1)
	assert.ErrorIs(t, err, prior.ErrNonPositiveParam, "negative shape must be rejected")

	_, err = prior.NewGamma(1, 0)
	assert.ErrorIs(t, err, prior.ErrNonPositiveParam, "zero rate must be rejected")
}

// TestRand_WithinSupport draws a handful of variates from each prior and
// checks they stay inside the support.
func TestRand_WithinSupport(t *testing.T) {
	beta, _ := prior.NewBeta(1, 1)
	unif, _ := prior.NewUniform(0.1, 1000)
	gamma, _ := prior.NewGamma(2, 1)

	for i := 0; i < 32; i++ {
		x := beta.Rand()
		assert.True(t, x > 0 && x < 1, "Beta draw must lie in (0,1)")

		u := unif.Rand()
		assert.True(t, u >= 0.1 && u <= 1000, "Uniform draw must lie in [0.1,1000]")

		g := gamma.Rand()
		assert.True(t, g > 0, "Gamma draw must be positive")
	}
}
