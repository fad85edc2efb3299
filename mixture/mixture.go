package mixture

import (
	"fmt"
	"log"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/betamix/engine"
)

// component is one declared mixture component together with its draw
// storage. Keeping spec, engine model and draws in a single ordered
// record removes any parallel-array alignment invariant: the record's
// position is the component's identity everywhere.
type component struct {
	spec  ComponentSpec
	model *engine.BetaBinomialModel // nil until the engine is built
	draws *mat.Dense                // niter×2 (a, b); nil until a run
}

// BetaBinomialMixture builds and drives a finite Beta-Binomial mixture
// model. The zero value is not usable; construct with New.
//
// The driver owns exactly one engine model, constructed lazily on the
// first AddData/AddObservations/MCMC call, and retains the raw data rows
// so the engine can be rebuilt if the component list changes before the
// next run.
type BetaBinomialMixture struct {
	components  []component
	rows        []Observation
	model       *engine.BetaBinomialMixtureModel
	mixingDraws *mat.Dense // niter×k; nil until a run
}

// New returns an empty mixture with no components and no data.
func New() *BetaBinomialMixture {
	return &BetaBinomialMixture{}
}

// AddComponent appends a component spec. A zero PriorCount defaults to 1.
//
// Adding a component discards any previously built engine and any
// recorded draws (their column layout no longer matches); retained data
// rows survive and are re-fed when the engine is next built.
func (m *BetaBinomialMixture) AddComponent(spec ComponentSpec) error {
	if spec.MeanPrior == nil || spec.SampleSizePrior == nil {
		return ErrNilPrior
	}
	if spec.PriorCount == 0 {
		spec.PriorCount = 1
	}
	if spec.PriorCount < 0 || math.IsNaN(spec.PriorCount) || math.IsInf(spec.PriorCount, 0) {
		return ErrBadPriorCount
	}

	m.components = append(m.components, component{spec: spec})
	m.model = nil
	m.mixingDraws = nil
	for i := range m.components {
		m.components[i].model = nil
		m.components[i].draws = nil
	}

	return nil
}

// AddData accepts a three-column numeric table (trials, successes,
// count), truncates each entry to an integer, validates it, and forwards
// the rows to the engine, building the engine first if needed.
func (m *BetaBinomialMixture) AddData(table mat.Matrix) error {
	if table == nil {
		return ErrBadShape
	}
	r, c := table.Dims()
	if c != 3 {
		return fmt.Errorf("mixture: table is %d×%d: %w", r, c, ErrBadShape)
	}

	rows := make([]Observation, r)
	for i := 0; i < r; i++ {
		n, y, cnt := table.At(i, 0), table.At(i, 1), table.At(i, 2)
		if !finite(n) || !finite(y) || !finite(cnt) {
			return fmt.Errorf("mixture: row %d holds NaN/Inf: %w", i, ErrBadData)
		}
		rows[i] = Observation{Trials: int(n), Successes: int(y), Count: int(cnt)}
	}

	return m.AddObservations(rows)
}

// AddObservations is the record-based equivalent of AddData.
func (m *BetaBinomialMixture) AddObservations(rows []Observation) error {
	for i, o := range rows {
		if o.Trials < 0 || o.Successes < 0 || o.Successes > o.Trials || o.Count < 1 {
			return fmt.Errorf("mixture: row %d (trials=%d, successes=%d, count=%d): %w",
				i, o.Trials, o.Successes, o.Count, ErrBadData)
		}
	}
	if m.model == nil {
		if err := m.buildModel(); err != nil {
			return err
		}
	}

	trials := make([]int, len(rows))
	successes := make([]int, len(rows))
	counts := make([]int, len(rows))
	for i, o := range rows {
		trials[i], successes[i], counts[i] = o.Trials, o.Successes, o.Count
	}
	if err := m.model.AddData(trials, successes, counts); err != nil {
		return err
	}
	m.rows = append(m.rows, rows...)

	return nil
}

// MCMC runs niter sequential posterior-sampling sweeps, recording each
// component's (a, b) and the mixing-weight vector after every sweep.
//
// Draw storage is reallocated to exactly niter rows on every call:
// successive runs overwrite, they never append. If no data has been
// added the run proceeds on an empty model (prior-only sampling) after
// logging a warning.
func (m *BetaBinomialMixture) MCMC(niter int, opts *Options) error {
	if niter <= 0 {
		return ErrBadIterations
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	if m.model == nil {
		if err := m.buildModel(); err != nil {
			return err
		}
	}
	if m.model.NumRows() == 0 {
		log.Printf("mixture: running MCMC on a model with no data assigned")
	}
	if o.Src != nil {
		if err := m.model.SetSource(o.Src); err != nil {
			return err
		}
	}

	k := len(m.components)
	for i := range m.components {
		m.components[i].draws = mat.NewDense(niter, 2, nil)
	}
	m.mixingDraws = mat.NewDense(niter, k, nil)

	for i := 0; i < niter; i++ {
		if err := m.model.SamplePosterior(); err != nil {
			return err
		}
		m.recordDraw(i)
		if o.Ping > 0 && (i+1)%o.Ping == 0 {
			if o.Progress != nil {
				o.Progress(i+1, niter)
			} else {
				log.Printf("mixture: iteration %d of %d", i+1, niter)
			}
		}
	}

	return nil
}

// NumComponents reports how many components have been declared.
func (m *BetaBinomialMixture) NumComponents() int { return len(m.components) }

// Niter reports the number of iterations recorded by the last MCMC run,
// 0 if none has occurred.
func (m *BetaBinomialMixture) Niter() int {
	if m.mixingDraws == nil {
		return 0
	}
	r, _ := m.mixingDraws.Dims()

	return r
}

// A returns the niter×k matrix of 'success pseudo-count' draws, one
// column per component. Empty before any MCMC run.
func (m *BetaBinomialMixture) A() *mat.Dense { return m.shapeDraws(0) }

// B returns the niter×k matrix of 'failure pseudo-count' draws, one
// column per component. Empty before any MCMC run.
func (m *BetaBinomialMixture) B() *mat.Dense { return m.shapeDraws(1) }

// Means returns the niter×k matrix of component-mean draws a/(a+b),
// computed elementwise from the recorded shapes.
func (m *BetaBinomialMixture) Means() *mat.Dense {
	n := m.Niter()
	if n == 0 {
		return &mat.Dense{}
	}
	out := mat.NewDense(n, len(m.components), nil)
	for j := range m.components {
		draws := m.components[j].draws
		for i := 0; i < n; i++ {
			a, b := draws.At(i, 0), draws.At(i, 1)
			out.Set(i, j, a/(a+b))
		}
	}

	return out
}

// SampleSizes returns the niter×k matrix of sample-size draws a+b,
// computed elementwise from the recorded shapes.
func (m *BetaBinomialMixture) SampleSizes() *mat.Dense {
	n := m.Niter()
	if n == 0 {
		return &mat.Dense{}
	}
	out := mat.NewDense(n, len(m.components), nil)
	for j := range m.components {
		draws := m.components[j].draws
		for i := 0; i < n; i++ {
			out.Set(i, j, draws.At(i, 0)+draws.At(i, 1))
		}
	}

	return out
}

// MixingWeights returns a copy of the niter×k matrix of mixing-weight
// draws. Empty before any MCMC run.
func (m *BetaBinomialMixture) MixingWeights() *mat.Dense {
	if m.mixingDraws == nil {
		return &mat.Dense{}
	}

	return mat.DenseCopyOf(m.mixingDraws)
}

// buildModel composes the engine: a multinomial mixing distribution with
// a Dirichlet prior and its conjugate sampler, one Beta-Binomial model
// per component seeded with placeholder shapes (1,1) and bound to a
// Metropolis posterior sampler, and the mixture with its Gibbs sampler.
// Retained data rows are re-fed into the fresh engine.
func (m *BetaBinomialMixture) buildModel() error {
	if len(m.components) == 0 {
		return ErrNoComponents
	}
	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))

	alpha := make([]float64, len(m.components))
	for i := range m.components {
		alpha[i] = m.components[i].spec.PriorCount
	}
	mixing, err := engine.NewMultinomialModel(len(m.components))
	if err != nil {
		return err
	}
	dir, err := engine.NewDirichletModel(alpha)
	if err != nil {
		return err
	}
	ms, err := engine.NewMultinomialDirichletSampler(mixing, dir, rng)
	if err != nil {
		return err
	}
	mixing.SetSampler(ms)

	models := make([]*engine.BetaBinomialModel, len(m.components))
	for i := range m.components {
		comp, err := engine.NewBetaBinomialModel(1, 1)
		if err != nil {
			return err
		}
		cs, err := engine.NewBetaBinomialPosteriorSampler(
			comp, m.components[i].spec.MeanPrior, m.components[i].spec.SampleSizePrior, rng)
		if err != nil {
			return err
		}
		comp.SetSampler(cs)
		m.components[i].model = comp
		models[i] = comp
	}

	model, err := engine.NewBetaBinomialMixtureModel(models, mixing)
	if err != nil {
		return err
	}
	s, err := engine.NewBetaBinomialMixturePosteriorSampler(model, rng)
	if err != nil {
		return err
	}
	model.SetSampler(s)

	if len(m.rows) > 0 {
		trials := make([]int, len(m.rows))
		successes := make([]int, len(m.rows))
		counts := make([]int, len(m.rows))
		for i, o := range m.rows {
			trials[i], successes[i], counts[i] = o.Trials, o.Successes, o.Count
		}
		if err := model.AddData(trials, successes, counts); err != nil {
			return err
		}
	}
	m.model = model

	return nil
}

// recordDraw copies the engine's current state into row i of the draw
// tables.
func (m *BetaBinomialMixture) recordDraw(i int) {
	for j := range m.components {
		m.components[j].draws.Set(i, 0, m.components[j].model.A())
		m.components[j].draws.Set(i, 1, m.components[j].model.B())
	}
	m.mixingDraws.SetRow(i, m.model.MixingDistribution().Probs())
}

// shapeDraws assembles the niter×k matrix of column 'col' (0 = a, 1 = b)
// from every component's draw table.
func (m *BetaBinomialMixture) shapeDraws(col int) *mat.Dense {
	n := m.Niter()
	if n == 0 {
		return &mat.Dense{}
	}
	out := mat.NewDense(n, len(m.components), nil)
	for j := range m.components {
		draws := m.components[j].draws
		for i := 0; i < n; i++ {
			out.Set(i, j, draws.At(i, col))
		}
	}

	return out
}

// finite reports whether x is neither NaN nor ±Inf.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
