package prior_test

import (
	"fmt"

	"github.com/katalvlaran/betamix/prior"
)

// ExampleNewBeta demonstrates constructing an informative Beta prior on
// a component mean and querying it.
func ExampleNewBeta() {
	p, err := prior.NewBeta(2, 6)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("mean=%.2f logp(0.25)=%.2f\n", p.Mean(), p.LogProb(0.25))
	// Output:
	// mean=0.25 logp(0.25)=0.91
}

// ExampleNewUniform demonstrates the usual weakly-informative prior on a
// Beta-Binomial sample size, and the validation of a bad interval.
func ExampleNewUniform() {
	p, err := prior.NewUniform(0.1, 1000)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("mean=%.2f\n", p.Mean())

	_, err = prior.NewUniform(10, 1)
	fmt.Println(err)
	// Output:
	// mean=500.05
	// prior: interval lower bound must be below upper bound
}
