package fibonacci

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestRecurrenceRelation_PropertyBased verifies the fundamental recurrence:
//
//	F(n) = F(n-1) + F(n-2)  for n >= 2
//
// The identity holds modulo 2^64, so wrapped values satisfy it as well.
func TestRecurrenceRelation_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, calculator := range allCalculators() {
		calculator := calculator
		properties.Property(calculator.Name()+" satisfies recurrence F(n) = F(n-1) + F(n-2)", prop.ForAll(
			func(n uint64) bool {
				return calculator.Calculate(n) == calculator.Calculate(n-1)+calculator.Calculate(n-2)
			},
			gen.UInt64Range(2, 20000),
		))
	}

	properties.TestingRun(t)
}

// TestIterativeMatchesDoubling_PropertyBased cross-checks the linear and the
// logarithmic algorithm, including indices far past the uint64 range.
func TestIterativeMatchesDoubling_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Iterative(n) == FastDoubling(n)", prop.ForAll(
		func(n uint64) bool {
			return Iterative(n) == FastDoubling(n)
		},
		gen.UInt64Range(0, 100000),
	))

	properties.TestingRun(t)
}

// TestWraparound_PropertyBased checks both algorithms against the exact
// value reduced modulo 2^64.
func TestWraparound_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("F(n) mod 2^64 matches big.Int", prop.ForAll(
		func(n uint64) bool {
			want := new(big.Int).Mod(fibBig(n), twoTo64).Uint64()
			return Iterative(n) == want && FastDoubling(n) == want
		},
		gen.UInt64Range(0, 2000),
	))

	properties.TestingRun(t)
}
