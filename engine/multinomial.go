package engine

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distmv"
)

// simplexTol is the tolerance used when checking that probabilities sum to one.
const simplexTol = 1e-9

// MultinomialModel is the mixing distribution of the mixture: a
// probability vector over K components. It starts uniform and is
// updated by a bound MultinomialDirichletSampler.
type MultinomialModel struct {
	probs   []float64
	sampler *MultinomialDirichletSampler
}

// NewMultinomialModel returns a mixing distribution over k categories
// initialized to the uniform vector. k must be at least 1.
func NewMultinomialModel(k int) (*MultinomialModel, error) {
	if k < 1 {
		return nil, ErrNoComponents
	}
	probs := make([]float64, k)
	for i := range probs {
		probs[i] = 1.0 / float64(k)
	}

	return &MultinomialModel{probs: probs}, nil
}

// Dim reports the number of categories.
func (m *MultinomialModel) Dim() int { return len(m.probs) }

// Probs returns a copy of the current probability vector.
func (m *MultinomialModel) Probs() []float64 {
	out := make([]float64, len(m.probs))
	copy(out, m.probs)

	return out
}

// SetProbs replaces the probability vector. The argument must have the
// model's dimension, contain only finite non-negative entries, and sum
// to one within simplexTol.
func (m *MultinomialModel) SetProbs(p []float64) error {
	if len(p) != len(m.probs) {
		return ErrLengthMismatch
	}
	sum := 0.0
	for _, v := range p {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrBadProbs
		}
		sum += v
	}
	if math.Abs(sum-1) > simplexTol {
		return ErrBadProbs
	}
	copy(m.probs, p)

	return nil
}

// SetSampler binds the posterior sampler invoked by SamplePosterior.
func (m *MultinomialModel) SetSampler(s *MultinomialDirichletSampler) { m.sampler = s }

// SamplePosterior replaces the probability vector with one draw from the
// conjugate posterior given per-category allocation counts.
// Returns ErrNoSampler if no sampler is bound.
func (m *MultinomialModel) SamplePosterior(counts []float64) error {
	if m.sampler == nil {
		return ErrNoSampler
	}

	return m.sampler.Draw(counts)
}

// DirichletModel is the Dirichlet prior over the mixing weights,
// parameterized by a vector of positive pseudo-counts.
type DirichletModel struct {
	alpha []float64
}

// NewDirichletModel returns a Dirichlet prior with the given
// pseudo-count vector. Every entry must be positive and finite.
func NewDirichletModel(alpha []float64) (*DirichletModel, error) {
	if len(alpha) < 1 {
		return nil, ErrNoComponents
	}
	for _, a := range alpha {
		if a <= 0 || math.IsNaN(a) || math.IsInf(a, 0) {
			return nil, ErrBadPseudoCounts
		}
	}
	own := make([]float64, len(alpha))
	copy(own, alpha)

	return &DirichletModel{alpha: own}, nil
}

// Dim reports the prior's dimension.
func (d *DirichletModel) Dim() int { return len(d.alpha) }

// Alpha returns a copy of the pseudo-count vector.
func (d *DirichletModel) Alpha() []float64 {
	out := make([]float64, len(d.alpha))
	copy(out, d.alpha)

	return out
}

// MultinomialDirichletSampler performs the conjugate update of a
// MultinomialModel under a DirichletModel prior: given allocation
// counts, it sets the model's probabilities to a single draw from
// Dirichlet(alpha + counts). The draw itself is gonum's
// distmv.Dirichlet; this type only assembles the posterior vector.
type MultinomialDirichletSampler struct {
	model *MultinomialModel
	prior *DirichletModel
	rng   *rand.Rand
}

// NewMultinomialDirichletSampler binds a model to its Dirichlet prior
// and a draw stream. The prior's dimension must match the model's.
func NewMultinomialDirichletSampler(model *MultinomialModel, prior *DirichletModel, rng *rand.Rand) (*MultinomialDirichletSampler, error) {
	if model == nil || prior == nil {
		return nil, ErrNilModel
	}
	if rng == nil {
		return nil, ErrNilSource
	}
	if model.Dim() != prior.Dim() {
		return nil, ErrLengthMismatch
	}

	return &MultinomialDirichletSampler{model: model, prior: prior, rng: rng}, nil
}

// Draw sets the bound model's probabilities to one draw from
// Dirichlet(alpha + counts). counts must match the prior dimension and
// hold finite non-negative values.
func (s *MultinomialDirichletSampler) Draw(counts []float64) error {
	if len(counts) != s.prior.Dim() {
		return ErrLengthMismatch
	}
	post := make([]float64, len(counts))
	for i, a := range s.prior.alpha {
		c := counts[i]
		if c < 0 || math.IsNaN(c) || math.IsInf(c, 0) {
			return ErrBadObservation
		}
		post[i] = a + c
	}
	s.model.probs = distmv.NewDirichlet(post, s.rng).Rand(nil)

	return nil
}
