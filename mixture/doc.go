// Package mixture provides the builder/driver for fitting a finite
// mixture of Beta-Binomial distributions by MCMC.
//
// The type of interest is BetaBinomialMixture. Usage follows three steps:
//
//  1. Declare components. Each ComponentSpec carries a prior on the
//     component mean a/(a+b), a prior on the sample size a+b, and a
//     Dirichlet prior pseudo-count for the component's mixing weight.
//  2. Add aggregated count data: rows of (trials, successes, count),
//     where count is the number of cases sharing those two values.
//     Either a three-column gonum matrix or a slice of Observation
//     records is accepted.
//  3. Run MCMC for a fixed number of iterations and read the recorded
//     draws back as matrices.
//
// Example:
//
//	m := mixture.New()
//	mean, _ := prior.NewBeta(1, 1)
//	size, _ := prior.NewUniform(0.1, 1000)
//	for i := 0; i < 3; i++ {
//	    _ = m.AddComponent(mixture.ComponentSpec{MeanPrior: mean, SampleSizePrior: size})
//	}
//	_ = m.AddData(table) // r×3 matrix: trials, successes, count
//	_ = m.MCMC(1000, nil)
//	means := m.Means() // 1000×3 matrix of posterior mean draws
//
// # Laziness and storage
//
// The underlying engine model is constructed on the first AddData (or
// MCMC) call; until then components may be added and removed draws do
// not exist. Draw storage is sized to the requested iteration count and
// fully overwritten by every MCMC call; runs never append to each other.
// Before the first run Niter() is 0 and every draw accessor returns an
// empty matrix.
//
// Adding a component after the engine exists discards the engine and the
// recorded draws; retained data rows are re-fed when the engine is next
// built, so the layout invariant (components == prior counts == draw
// columns) can never drift.
//
// # Randomness
//
// Options.Src threads an explicit random source into the run; the global
// generator is never touched. Passing the same source value twice
// reproduces a chain exactly. A nil Src keeps the stream the engine was
// built with (seeded from the clock).
//
// # Progress and warnings
//
// Options.Ping requests a progress report every Ping iterations, either
// through Options.Progress or, when that is nil, the standard log
// package. Running MCMC with no data added logs a warning and proceeds
// with prior-only sampling.
//
// # Errors
//
//	ErrNoComponents  — data added or sampling requested with no components.
//	ErrNilPrior      — a ComponentSpec with a missing prior.
//	ErrBadPriorCount — a negative or non-finite prior pseudo-count.
//	ErrBadShape      — an input table without exactly three columns.
//	ErrBadData       — a row violating trials ≥ 0, 0 ≤ successes ≤ trials,
//	                   count ≥ 1, or holding NaN/Inf.
//	ErrBadIterations — MCMC with a non-positive iteration count.
//
// The driver is single-threaded and synchronous; concurrent use of one
// BetaBinomialMixture is not supported.
package mixture
