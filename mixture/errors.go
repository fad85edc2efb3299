package mixture

import "errors"

// Sentinel errors returned by the mixture driver. Validation failures at
// the public boundary return one of these (possibly wrapped with row
// context); engine-level failures propagate unmodified.
var (
	// ErrNoComponents indicates data was added or sampling was requested
	// before any component was declared.
	ErrNoComponents = errors.New("mixture: add at least one component first")

	// ErrNilPrior indicates a ComponentSpec with a nil mean or
	// sample-size prior.
	ErrNilPrior = errors.New("mixture: component priors must be non-nil")

	// ErrBadPriorCount indicates a negative or non-finite Dirichlet prior
	// pseudo-count (zero means "use the default of 1").
	ErrBadPriorCount = errors.New("mixture: prior count must be positive and finite")

	// ErrBadShape indicates an input table without exactly three columns.
	ErrBadShape = errors.New("mixture: data table must have exactly three columns")

	// ErrBadData indicates a data row violating trials ≥ 0,
	// 0 ≤ successes ≤ trials, count ≥ 1, or holding a NaN/Inf value.
	ErrBadData = errors.New("mixture: data row out of range")

	// ErrBadIterations indicates MCMC was asked for a non-positive
	// number of iterations.
	ErrBadIterations = errors.New("mixture: iteration count must be positive")
)
