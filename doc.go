// Package betamix is your in-memory toolkit for fitting finite mixtures
// of Beta-Binomial distributions by posterior (MCMC) sampling.
//
// 🚀 What is betamix?
//
//	A small, focused library that brings together:
//		• Prior objects: validated Beta, Uniform and Gamma priors (gonum-backed)
//		• Engine primitives: multinomial mixing distribution with a Dirichlet
//		  prior, Beta-Binomial components with Metropolis posterior samplers
//		• A builder/driver: declare components, pour in aggregated count data,
//		  run MCMC, read draw matrices back out
//
// ✨ Why choose betamix?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic when you want it – every draw stream hangs off an
//     explicit rand.Source you control; no global generator is touched
//   - Gonum under the hood – distributions, matrices and samplers come
//     from gonum.org/v1/gonum, not hand-rolled numerics
//
// Everything is organized under three subpackages:
//
//	prior/   — prior-distribution objects and the Model interface
//	engine/  — the statistical engine: models, samplers, Gibbs sweep
//	mixture/ — the BetaBinomialMixture builder/driver and draw storage
//
// Quick sketch:
//
//	m := mixture.New()
//	mean, _ := prior.NewBeta(1, 1)
//	size, _ := prior.NewUniform(0.1, 1000)
//	_ = m.AddComponent(mixture.ComponentSpec{MeanPrior: mean, SampleSizePrior: size})
//	_ = m.AddObservations([]mixture.Observation{{Trials: 10, Successes: 4, Count: 28}})
//	_ = m.MCMC(1000, nil)
//	draws := m.Means() // 1000×1 matrix of posterior mean draws
//
// Dive into each package's doc.go for the full contract, error sets,
// and worked examples.
//
//	go get github.com/katalvlaran/betamix
package betamix
