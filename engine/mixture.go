package engine

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// dataRow is one aggregated input record: 'count' cases each showing
// 'successes' successes in 'trials' trials.
type dataRow struct {
	trials    int
	successes int
	count     int
}

// BetaBinomialMixtureModel composes an ordered list of Beta-Binomial
// components with a multinomial mixing distribution and retains the
// aggregated data rows the Gibbs sweep conditions on.
type BetaBinomialMixtureModel struct {
	components []*BetaBinomialModel
	mixing     *MultinomialModel
	rows       []dataRow
	sampler    *BetaBinomialMixturePosteriorSampler
}

// NewBetaBinomialMixtureModel composes components and a mixing
// distribution into a mixture. There must be at least one component and
// the mixing dimension must equal the component count.
func NewBetaBinomialMixtureModel(components []*BetaBinomialModel, mixing *MultinomialModel) (*BetaBinomialMixtureModel, error) {
	if len(components) == 0 {
		return nil, ErrNoComponents
	}
	for _, c := range components {
		if c == nil {
			return nil, ErrNilModel
		}
	}
	if mixing == nil {
		return nil, ErrNilModel
	}
	if mixing.Dim() != len(components) {
		return nil, ErrLengthMismatch
	}

	return &BetaBinomialMixtureModel{components: components, mixing: mixing}, nil
}

// NumComponents reports the number of mixture components.
func (m *BetaBinomialMixtureModel) NumComponents() int { return len(m.components) }

// Component returns the i-th component model (nil if out of range).
func (m *BetaBinomialMixtureModel) Component(i int) *BetaBinomialModel {
	if i < 0 || i >= len(m.components) {
		return nil
	}

	return m.components[i]
}

// MixingDistribution returns the mixture's mixing distribution.
func (m *BetaBinomialMixtureModel) MixingDistribution() *MultinomialModel { return m.mixing }

// NumRows reports the number of aggregated data rows held by the model.
func (m *BetaBinomialMixtureModel) NumRows() int { return len(m.rows) }

// AddData appends aggregated observations: counts[i] cases each showing
// successes[i] successes in trials[i] trials. The three slices must have
// equal length; each row must satisfy trials ≥ 0, 0 ≤ successes ≤ trials,
// count ≥ 1. On a validation failure nothing is appended.
func (m *BetaBinomialMixtureModel) AddData(trials, successes, counts []int) error {
	if len(trials) != len(successes) || len(trials) != len(counts) {
		return ErrLengthMismatch
	}
	rows := make([]dataRow, len(trials))
	for i := range trials {
		n, y, c := trials[i], successes[i], counts[i]
		if n < 0 || y < 0 || y > n || c < 1 {
			return fmt.Errorf("engine: data row %d (trials=%d, successes=%d, count=%d): %w", i, n, y, c, ErrBadObservation)
		}
		rows[i] = dataRow{trials: n, successes: y, count: c}
	}
	m.rows = append(m.rows, rows...)

	return nil
}

// SetSampler binds the posterior sampler invoked by SamplePosterior.
func (m *BetaBinomialMixtureModel) SetSampler(s *BetaBinomialMixturePosteriorSampler) { m.sampler = s }

// SamplePosterior runs one Gibbs sweep over the whole mixture.
// Returns ErrNoSampler if no sampler is bound.
func (m *BetaBinomialMixtureModel) SamplePosterior() error {
	if m.sampler == nil {
		return ErrNoSampler
	}

	return m.sampler.Draw()
}

// SetSource rewires every sampler bound to this mixture (its own, each
// component's, and the mixing distribution's) onto a single fresh draw
// stream built from src. Supplying the same source again yields an
// identical chain, which is the supported way to make runs reproducible.
func (m *BetaBinomialMixtureModel) SetSource(src rand.Source) error {
	if src == nil {
		return ErrNilSource
	}
	rng := rand.New(src)
	if m.sampler != nil {
		m.sampler.rng = rng
	}
	for _, c := range m.components {
		if c.sampler != nil {
			c.sampler.rng = rng
		}
	}
	if m.mixing != nil && m.mixing.sampler != nil {
		m.mixing.sampler.rng = rng
	}

	return nil
}

// BetaBinomialMixturePosteriorSampler drives one full Gibbs sweep:
// case allocation, per-component shape draws, mixing-weight draw.
type BetaBinomialMixturePosteriorSampler struct {
	model *BetaBinomialMixtureModel
	rng   *rand.Rand
}

// NewBetaBinomialMixturePosteriorSampler binds the sweep to a mixture
// and a draw stream.
func NewBetaBinomialMixturePosteriorSampler(model *BetaBinomialMixtureModel, rng *rand.Rand) (*BetaBinomialMixturePosteriorSampler, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if rng == nil {
		return nil, ErrNilSource
	}

	return &BetaBinomialMixturePosteriorSampler{model: model, rng: rng}, nil
}

// Draw performs one sweep. With no data rows the allocation loop is
// empty and the draw reduces to prior sampling, which is what an empty
// model is expected to do.
func (s *BetaBinomialMixturePosteriorSampler) Draw() error {
	m := s.model
	k := len(m.components)
	for _, comp := range m.components {
		comp.clearData()
	}

	totals := make([]float64, k)
	logw := make([]float64, k)
	w := make([]float64, k)
	alloc := make([]float64, k)
	for _, row := range m.rows {
		// Allocation weights ∝ current mixing weight × likelihood.
		for j, comp := range m.components {
			logw[j] = math.Log(m.mixing.probs[j]) + LogPMF(row.successes, row.trials, comp.a, comp.b)
		}
		mx := math.Inf(-1)
		for _, lw := range logw {
			if lw > mx {
				mx = lw
			}
		}
		sum := 0.0
		for j := range w {
			w[j] = math.Exp(logw[j] - mx)
			sum += w[j]
		}
		for j := range w {
			w[j] /= sum
		}

		cat := distuv.NewCategorical(w, s.rng)
		for j := range alloc {
			alloc[j] = 0
		}
		for c := 0; c < row.count; c++ {
			alloc[int(cat.Rand())]++
		}
		for j, comp := range m.components {
			if alloc[j] > 0 {
				comp.addObs(row.trials, row.successes, alloc[j])
				totals[j] += alloc[j]
			}
		}
	}

	for _, comp := range m.components {
		if err := comp.SamplePosterior(); err != nil {
			return err
		}
	}

	return m.mixing.SamplePosterior(totals)
}
