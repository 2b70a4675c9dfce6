package summation

// Result is the outcome of one summation.
type Result struct {
	// Value is the sum of all elements.
	Value int
	// Steps is the number of innermost loop evaluations performed.
	Steps int
}

// Summer is the interface implemented by every summation algorithm.
type Summer interface {
	// Name returns the display name of the algorithm.
	Name() string
	// Sum adds every element of values. It never fails.
	Sum(values []int) Result
}

// NestedLoop sums with an outer loop over i and an inner loop over j in
// [0, i]; values[i] is added only when j == i. Each element is added exactly
// once, after Θ(n²) inner evaluations.
type NestedLoop struct{}

// Name returns the display name of the algorithm.
func (NestedLoop) Name() string { return "Nested Loop (O(n²))" }

// Sum implements Summer.
func (NestedLoop) Sum(values []int) Result {
	var res Result
	for i := 0; i < len(values); i++ {
		for j := 0; j <= i; j++ {
			res.Steps++
			if j == i {
				res.Value += values[i]
			}
		}
	}
	return res
}

// LinearPass sums in a single pass over the input.
type LinearPass struct{}

// Name returns the display name of the algorithm.
func (LinearPass) Name() string { return "Linear Pass (O(n))" }

// Sum implements Summer.
func (LinearPass) Sum(values []int) Result {
	var res Result
	n := len(values)
	for i := 0; i < n; i++ {
		res.Value += values[i]
		res.Steps++
	}
	return res
}
