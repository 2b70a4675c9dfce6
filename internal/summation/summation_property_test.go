package summation

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestAlgorithmsAgree_PropertyBased verifies that the nested loop and the
// linear pass produce the same total for any non-empty input.
func TestAlgorithmsAgree_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("nested loop and linear pass agree", prop.ForAll(
		func(values []int) bool {
			return NestedLoop{}.Sum(values).Value == LinearPass{}.Sum(values).Value
		},
		gen.SliceOf(gen.IntRange(-1_000_000, 1_000_000)).SuchThat(func(v []int) bool {
			return len(v) > 0
		}),
	))

	properties.Property("nested loop performs n(n+1)/2 steps", prop.ForAll(
		func(n int) bool {
			return NestedLoop{}.Sum(make([]int, n)).Steps == n*(n+1)/2
		},
		gen.IntRange(0, 300),
	))

	properties.Property("sum is invariant under reversal", prop.ForAll(
		func(values []int) bool {
			reversed := make([]int, len(values))
			for i, v := range values {
				reversed[len(values)-1-i] = v
			}
			return LinearPass{}.Sum(values).Value == NestedLoop{}.Sum(reversed).Value
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
	))

	properties.TestingRun(t)
}
