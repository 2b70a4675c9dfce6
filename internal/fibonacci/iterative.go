package fibonacci

// Calculator is the interface implemented by every Fibonacci algorithm.
type Calculator interface {
	// Name returns the display name of the algorithm.
	Name() string
	// Calculate returns F(n) modulo 2^64.
	Calculate(n uint64) uint64
}

// IterativeCalculator keeps only the two most recent terms.
type IterativeCalculator struct{}

// Name returns the display name of the algorithm.
func (IterativeCalculator) Name() string { return "Iterative (O(n), O(1) space)" }

// Calculate implements Calculator.
func (IterativeCalculator) Calculate(n uint64) uint64 { return Iterative(n) }

// Iterative computes F(n) by constant-space accumulation. Indices 0 and 1 are
// returned directly. Overflow past MaxExactN is a silent wraparound.
func Iterative(n uint64) uint64 {
	if n <= 1 {
		return n
	}

	var previous, current uint64 = 0, 1
	for i := uint64(2); i <= n; i++ {
		next := previous + current
		previous = current
		current = next
	}
	return current
}
