// Package engine composes the statistical objects behind a finite
// Beta-Binomial mixture: the models, their posterior samplers, and the
// Gibbs sweep that ties them together.
//
// The package deliberately contributes no original sampling mathematics.
// Every random draw is delegated to gonum:
//
//   - mixing weights     — one draw from distmv.Dirichlet(prior + counts)
//   - case allocation    — distuv.Categorical draws per aggregated row
//   - component shapes   — a random-walk Metropolis step whose proposal
//     and acceptance use the engine's single *rand.Rand stream
//   - log pmf terms      — stat/combin.LogGeneralizedBinomial + math.Lgamma
//
// # Object graph
//
// The wiring mirrors the standard conjugate-mixture setup. A driver
// (see betamix/mixture) composes:
//
//	mixing  := NewMultinomialModel(k)
//	dir     := NewDirichletModel(priorCounts)
//	ms, _   := NewMultinomialDirichletSampler(mixing, dir, rng)
//	mixing.SetSampler(ms)
//
//	comp    := NewBetaBinomialModel(1, 1)         // placeholder shapes
//	cs, _   := NewBetaBinomialPosteriorSampler(comp, meanPrior, sizePrior, rng)
//	comp.SetSampler(cs)
//
//	model, _ := NewBetaBinomialMixtureModel(components, mixing)
//	s, _     := NewBetaBinomialMixturePosteriorSampler(model, rng)
//	model.SetSampler(s)
//
// After model.AddData(trials, successes, counts), each call to
// model.SamplePosterior() performs one sweep:
//
//  1. allocate the cases of every aggregated row to components with
//     probability ∝ current weight × Beta-Binomial likelihood;
//  2. draw each component's (a, b) by one Metropolis step on
//     (logit mean, log size) against its mean and sample-size priors;
//  3. draw the mixing-weight vector from the conjugate Dirichlet.
//
// Sweeps are strictly sequential: step i conditions on the state left by
// step i−1. Nothing here is safe for concurrent use.
//
// # Randomness
//
// The draw stream is an explicit *rand.Rand (golang.org/x/exp/rand)
// supplied at sampler construction; no global generator is read or
// reseeded. BetaBinomialMixtureModel.SetSource rewires every bound
// sampler to a fresh stream, which is how a caller obtains reproducible
// chains.
//
// # Errors
//
//	ErrNilModel        — a constructor received a nil model.
//	ErrNilSource       — a nil random source/stream was supplied.
//	ErrNilPrior        — a sampler was built without a prior.
//	ErrNoSampler       — SamplePosterior on a model with no sampler bound.
//	ErrNoComponents    — a mixture with zero components.
//	ErrLengthMismatch  — parallel vectors of different lengths.
//	ErrBadShape        — non-positive or non-finite shape parameters.
//	ErrBadPseudoCounts — Dirichlet pseudo-counts not positive and finite.
//	ErrBadProbs        — a probability vector off the simplex.
//	ErrBadObservation  — a data row violating 0 ≤ successes ≤ trials, count ≥ 1.
package engine
