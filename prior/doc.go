// Package prior defines validated prior-distribution objects for the
// betamix model builder.
//
// A prior is anything satisfying the Model interface: it can report its
// log-density at a point, its mean, and draw a single variate. The
// concrete implementations are thin, validated wrappers around
// gonum.org/v1/gonum/stat/distuv values, so all density and sampling
// mathematics is gonum's.
//
// The three constructors cover the standard Beta-Binomial setup:
//
//   - NewBeta(a, b)       — prior on a component mean in (0,1).
//   - NewUniform(lo, hi)  — flat prior, typically on the sample size a+b.
//   - NewGamma(shape, rate) — decaying prior, an alternative for the
//     sample size when large values should be discouraged.
//
// Validation is strict and happens at construction, never at evaluation:
//
//	ErrNonPositiveParam — a shape/rate parameter was ≤ 0.
//	ErrBadInterval      — Uniform bounds with lo ≥ hi.
//	ErrNotFinite        — any parameter was NaN or ±Inf.
//
// Returned Models carry no random Source of their own: the posterior
// samplers in betamix/engine only evaluate priors (LogProb, Mean); the
// chain's draw stream is threaded explicitly through the engine.
//
// Example:
//
//	mean, err := prior.NewBeta(1, 1)
//	if err != nil { ... }
//	size, err := prior.NewUniform(0.1, 1000)
//	if err != nil { ... }
package prior
