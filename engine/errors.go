package engine

import "errors"

// Sentinel errors returned across the engine package. All validation
// failures return one of these (possibly wrapped with context); tests
// match them via errors.Is. User-triggered conditions never panic.
var (
	// ErrNilModel indicates a constructor received a nil model pointer.
	ErrNilModel = errors.New("engine: model is nil")

	// ErrNilSource indicates a nil random source or stream was supplied.
	ErrNilSource = errors.New("engine: random source is nil")

	// ErrNilPrior indicates a posterior sampler was built without a prior.
	ErrNilPrior = errors.New("engine: prior is nil")

	// ErrNoSampler indicates SamplePosterior was called on a model with
	// no posterior sampler bound via SetSampler.
	ErrNoSampler = errors.New("engine: no posterior sampler bound")

	// ErrNoComponents indicates a mixture was composed with zero components.
	ErrNoComponents = errors.New("engine: mixture requires at least one component")

	// ErrLengthMismatch indicates parallel vectors of different lengths,
	// e.g. a counts vector that does not match the Dirichlet dimension.
	ErrLengthMismatch = errors.New("engine: vector lengths do not match")

	// ErrBadShape indicates a non-positive or non-finite Beta-Binomial
	// shape parameter.
	ErrBadShape = errors.New("engine: shape parameters must be positive and finite")

	// ErrBadPseudoCounts indicates a Dirichlet pseudo-count vector with a
	// non-positive or non-finite entry.
	ErrBadPseudoCounts = errors.New("engine: pseudo-counts must be positive and finite")

	// ErrBadProbs indicates a probability vector that is not a simplex
	// point (wrong length, negative entries, or sum far from one).
	ErrBadProbs = errors.New("engine: probabilities must be non-negative and sum to one")

	// ErrBadObservation indicates an aggregated data row violating
	// trials ≥ 0, 0 ≤ successes ≤ trials, count ≥ 1.
	ErrBadObservation = errors.New("engine: observation out of range")

	// ErrBadWalkWidth indicates a Metropolis walk width ≤ 0 or non-finite.
	ErrBadWalkWidth = errors.New("engine: walk width must be positive and finite")
)
