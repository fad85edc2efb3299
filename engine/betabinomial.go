package engine

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/betamix/prior"
)

// DefaultWalkWidth is the standard deviation of the random-walk
// Metropolis proposal on the (logit mean, log size) scale.
const DefaultWalkWidth = 0.5

// obs is one aggregated observation currently allocated to a component:
// 'weight' cases that each saw 'successes' successes in 'trials' trials.
type obs struct {
	trials    int
	successes int
	weight    float64
}

// BetaBinomialModel is one mixture component: a Beta-Binomial
// distribution with shape parameters (a, b) plus the aggregated
// observations currently allocated to it by the Gibbs sweep.
type BetaBinomialModel struct {
	a, b    float64
	data    []obs
	sampler *BetaBinomialPosteriorSampler
}

// NewBetaBinomialModel returns a component with the given shape
// parameters (the mixture driver seeds components with the placeholder
// shapes 1, 1). Shapes must be positive and finite.
func NewBetaBinomialModel(a, b float64) (*BetaBinomialModel, error) {
	m := &BetaBinomialModel{}
	if err := m.SetShape(a, b); err != nil {
		return nil, err
	}

	return m, nil
}

// A reports the current 'success pseudo-count' shape parameter.
func (m *BetaBinomialModel) A() float64 { return m.a }

// B reports the current 'failure pseudo-count' shape parameter.
func (m *BetaBinomialModel) B() float64 { return m.b }

// SetShape replaces the shape parameters. Both must be positive and finite.
func (m *BetaBinomialModel) SetShape(a, b float64) error {
	if a <= 0 || b <= 0 ||
		math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		return ErrBadShape
	}
	m.a, m.b = a, b

	return nil
}

// clearData drops the component's current allocation; the mixture
// sampler reallocates cases at the start of every sweep.
func (m *BetaBinomialModel) clearData() { m.data = m.data[:0] }

// addObs allocates 'weight' cases of an aggregated row to the component.
func (m *BetaBinomialModel) addObs(trials, successes int, weight float64) {
	m.data = append(m.data, obs{trials: trials, successes: successes, weight: weight})
}

// LogLikelihood evaluates the weighted Beta-Binomial log-likelihood of
// the currently allocated observations at shape parameters (a, b).
func (m *BetaBinomialModel) LogLikelihood(a, b float64) float64 {
	ll := 0.0
	for _, o := range m.data {
		ll += o.weight * LogPMF(o.successes, o.trials, a, b)
	}

	return ll
}

// SetSampler binds the posterior sampler invoked by SamplePosterior.
func (m *BetaBinomialModel) SetSampler(s *BetaBinomialPosteriorSampler) { m.sampler = s }

// SamplePosterior advances (a, b) by one step of the bound sampler.
// Returns ErrNoSampler if no sampler is bound.
func (m *BetaBinomialModel) SamplePosterior() error {
	if m.sampler == nil {
		return ErrNoSampler
	}

	return m.sampler.Draw()
}

// LogPMF returns the Beta-Binomial log probability of observing
// 'successes' in 'trials' under shape parameters (a, b):
//
//	log C(n, y) + logB(y+a, n−y+b) − logB(a, b)
//
// Out-of-range observations have probability zero (−Inf).
func LogPMF(successes, trials int, a, b float64) float64 {
	if trials < 0 || successes < 0 || successes > trials {
		return math.Inf(-1)
	}
	n, y := float64(trials), float64(successes)

	return combin.LogGeneralizedBinomial(n, y) + lbeta(y+a, n-y+b) - lbeta(a, b)
}

// lbeta is log B(x, y) via log-gamma.
func lbeta(x, y float64) float64 {
	lx, _ := math.Lgamma(x)
	ly, _ := math.Lgamma(y)
	lxy, _ := math.Lgamma(x + y)

	return lx + ly - lxy
}

// BetaBinomialPosteriorSampler draws a component's (a, b) from their
// posterior given the component's allocated data and the priors on its
// mean a/(a+b) and sample size a+b.
//
// One Draw is one random-walk Metropolis step on the unconstrained
// parameterization (logit mean, log size), with the log-target
//
//	loglik(a, b) + log meanPrior(mean) + log sizePrior(size) + log|J|
//
// where |J| is the Jacobian of the transformation. The proposal is a
// spherical Gaussian step of standard deviation WalkWidth.
type BetaBinomialPosteriorSampler struct {
	model     *BetaBinomialModel
	meanPrior prior.Model
	sizePrior prior.Model
	walk      float64
	rng       *rand.Rand
}

// NewBetaBinomialPosteriorSampler binds a component model to its priors
// and a draw stream, with the default walk width.
func NewBetaBinomialPosteriorSampler(model *BetaBinomialModel, meanPrior, sizePrior prior.Model, rng *rand.Rand) (*BetaBinomialPosteriorSampler, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if meanPrior == nil || sizePrior == nil {
		return nil, ErrNilPrior
	}
	if rng == nil {
		return nil, ErrNilSource
	}

	return &BetaBinomialPosteriorSampler{
		model:     model,
		meanPrior: meanPrior,
		sizePrior: sizePrior,
		walk:      DefaultWalkWidth,
		rng:       rng,
	}, nil
}

// SetWalkWidth replaces the proposal standard deviation.
func (s *BetaBinomialPosteriorSampler) SetWalkWidth(w float64) error {
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrBadWalkWidth
	}
	s.walk = w

	return nil
}

// Draw performs one Metropolis step, mutating the bound model's (a, b)
// when the proposal is accepted.
func (s *BetaBinomialPosteriorSampler) Draw() error {
	a, b := s.model.a, s.model.b
	curMean, curSize := logit(a/(a+b)), math.Log(a+b)
	curLP := s.logTarget(curMean, curSize)

	propMean := curMean + s.walk*s.rng.NormFloat64()
	propSize := curSize + s.walk*s.rng.NormFloat64()
	propLP := s.logTarget(propMean, propSize)

	// NaN comparisons are false, so a NaN ratio keeps the current state.
	if math.Log(s.rng.Float64()) < propLP-curLP {
		mean := sigmoid(propMean)
		size := math.Exp(propSize)
		s.model.a, s.model.b = mean*size, (1-mean)*size
	}

	return nil
}

// logTarget evaluates the Jacobian-corrected posterior log-density at a
// point on the (logit mean, log size) scale.
func (s *BetaBinomialPosteriorSampler) logTarget(logitMean, logSize float64) float64 {
	mean := sigmoid(logitMean)
	size := math.Exp(logSize)
	lp := s.meanPrior.LogProb(mean) + s.sizePrior.LogProb(size)
	if math.IsInf(lp, -1) {
		return lp
	}
	// Jacobian: d(mean)/d(logitMean) = mean(1-mean), d(size)/d(logSize) = size.
	lp += math.Log(mean) + math.Log1p(-mean) + logSize

	return lp + s.model.LogLikelihood(mean*size, (1-mean)*size)
}

// logit maps (0,1) to the real line.
func logit(p float64) float64 { return math.Log(p) - math.Log1p(-p) }

// sigmoid is the inverse of logit.
func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }
