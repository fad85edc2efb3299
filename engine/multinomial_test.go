package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/betamix/engine"
)

// TestNewMultinomialModel_Uniform verifies that a fresh mixing
// distribution over k categories starts at the uniform vector.
func TestNewMultinomialModel_Uniform(t *testing.T) {
	m, err := engine.NewMultinomialModel(4)
	require.NoError(t, err, "k=4 must construct")
	assert.Equal(t, 4, m.Dim(), "dimension must equal k")
	for i, p := range m.Probs() {
		assert.InDelta(t, 0.25, p, 1e-12, "entry %d must start uniform", i)
	}
}

// TestNewMultinomialModel_RejectsZero ensures k<1 yields ErrNoComponents.
func TestNewMultinomialModel_RejectsZero(t *testing.T) {
	_, err := engine.NewMultinomialModel(0)
	assert.ErrorIs(t, err, engine.ErrNoComponents, "k=0 must be rejected")
}

// TestMultinomialModel_SetProbs covers the simplex validation paths.
func TestMultinomialModel_SetProbs(t *testing.T) {
	m, err := engine.NewMultinomialModel(2)
	require.NoError(t, err)

	assert.NoError(t, m.SetProbs([]float64{0.3, 0.7}), "valid simplex point must be accepted")
	assert.Equal(t, []float64{0.3, 0.7}, m.Probs(), "probs must round-trip")

	assert.ErrorIs(t, m.SetProbs([]float64{1}), engine.ErrLengthMismatch, "wrong length must be rejected")
	assert.ErrorIs(t, m.SetProbs([]float64{-0.1, 1.1}), engine.ErrBadProbs, "negative entry must be rejected")
	assert.ErrorIs(t, m.SetProbs([]float64{0.5, 0.6}), engine.ErrBadProbs, "sum far from one must be rejected")
}

// TestMultinomialModel_ProbsIsCopy ensures mutations of the returned
// slice cannot corrupt model state.
func TestMultinomialModel_ProbsIsCopy(t *testing.T) {
	m, err := engine.NewMultinomialModel(2)
	require.NoError(t, err)

	p := m.Probs()
	p[0] = 42
	assert.InDelta(t, 0.5, m.Probs()[0], 1e-12, "external mutation must not leak into the model")
}

// TestNewDirichletModel_Validation covers pseudo-count validation.
func TestNewDirichletModel_Validation(t *testing.T) {
	d, err := engine.NewDirichletModel([]float64{1, 2, 3})
	require.NoError(t, err, "positive pseudo-counts must construct")
	assert.Equal(t, 3, d.Dim(), "dimension must match input length")
	assert.Equal(t, []float64{1, 2, 3}, d.Alpha(), "alpha must round-trip")

	_, err = engine.NewDirichletModel(nil)
	assert.ErrorIs(t, err, engine.ErrNoComponents, "empty alpha must be rejected")

	_, err = engine.NewDirichletModel([]float64{1, 0})
	assert.ErrorIs(t, err, engine.ErrBadPseudoCounts, "zero pseudo-count must be rejected")
}

// TestMultinomialDirichletSampler_Wiring covers constructor failure modes.
func TestMultinomialDirichletSampler_Wiring(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m, _ := engine.NewMultinomialModel(2)
	d2, _ := engine.NewDirichletModel([]float64{1, 1})
	d3, _ := engine.NewDirichletModel([]float64{1, 1, 1})

	_, err := engine.NewMultinomialDirichletSampler(nil, d2, rng)
	assert.ErrorIs(t, err, engine.ErrNilModel, "nil model must be rejected")

	_, err = engine.NewMultinomialDirichletSampler(m, d2, nil)
	assert.ErrorIs(t, err, engine.ErrNilSource, "nil rng must be rejected")

	_, err = engine.NewMultinomialDirichletSampler(m, d3, rng)
	assert.ErrorIs(t, err, engine.ErrLengthMismatch, "dimension mismatch must be rejected")

	_, err = engine.NewMultinomialDirichletSampler(m, d2, rng)
	assert.NoError(t, err, "matched dimensions must construct")
}

// TestMultinomialDirichletSampler_Draw verifies that a conjugate draw
// lands on the simplex and that lopsided counts pull the weights over.
func TestMultinomialDirichletSampler_Draw(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m, _ := engine.NewMultinomialModel(3)
	d, _ := engine.NewDirichletModel([]float64{1, 1, 1})
	s, err := engine.NewMultinomialDirichletSampler(m, d, rng)
	require.NoError(t, err)

	assert.ErrorIs(t, s.Draw([]float64{1, 2}), engine.ErrLengthMismatch, "short counts must be rejected")
	assert.ErrorIs(t, s.Draw([]float64{1, -2, 0}), engine.ErrBadObservation, "negative count must be rejected")

	require.NoError(t, s.Draw([]float64{10000, 1, 1}), "valid counts must draw")
	p := m.Probs()
	sum := 0.0
	for _, v := range p {
		assert.True(t, v >= 0, "weights must be non-negative")
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9, "weights must sum to one")
	assert.Greater(t, p[0], 0.95, "dominant counts must dominate the posterior draw")
}

// TestMultinomialModel_SamplePosterior_NoSampler ensures the unbound
// model fails fast.
func TestMultinomialModel_SamplePosterior_NoSampler(t *testing.T) {
	m, _ := engine.NewMultinomialModel(2)
	assert.ErrorIs(t, m.SamplePosterior([]float64{1, 1}), engine.ErrNoSampler, "unbound model must error")
}
