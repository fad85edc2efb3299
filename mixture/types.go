// Package mixture types: component specifications, aggregated
// observations, and per-run options.
package mixture

import (
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/betamix/prior"
)

// ComponentSpec declares one Beta-Binomial mixture component.
//
// MeanPrior       – prior on the component mean a/(a+b), support (0,1).
// SampleSizePrior – prior on the component sample size a+b, support (0,∞).
// PriorCount      – Dirichlet prior pseudo-count for this component's
//
//	mixing weight. The zero value means 1 (one prior case
//	of this component); negative or non-finite values are
//	rejected with ErrBadPriorCount.
//
// A spec is immutable once added; its position in the add order is its
// identity, matching the draw matrices' column order.
type ComponentSpec struct {
	MeanPrior       prior.Model
	SampleSizePrior prior.Model
	PriorCount      float64
}

// Observation is one aggregated data record: Count cases that each
// showed Successes successes in Trials trials.
//
// Example: {Trials: 10, Successes: 4, Count: 28} — there were 28 cases
// of 10 trials showing 4 successes.
type Observation struct {
	Trials    int
	Successes int
	Count     int
}

// ProgressFunc receives periodic progress reports during an MCMC run:
// 'done' iterations finished out of 'total'. Reporting is a best-effort
// side effect and has no influence on control flow.
type ProgressFunc func(done, total int)

// Options configures a single MCMC run.
//
// Src      – explicit random source for the run; the same source value
//
//	reproduces the chain exactly. nil keeps the stream the
//	engine was built with. The process-global generator is
//	never read or reseeded.
//
// Ping     – report progress every Ping iterations; 0 (the default)
//
//	disables reporting.
//
// Progress – where reports go. nil routes them to the standard log
//
//	package.
type Options struct {
	Src      rand.Source
	Ping     int
	Progress ProgressFunc
}

// DefaultOptions returns the production-safe defaults: silent, and
// continuing on the engine's existing draw stream.
func DefaultOptions() Options {
	return Options{}
}
