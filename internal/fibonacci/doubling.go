package fibonacci

import "math/bits"

// DoublingCalculator computes F(n) with the fast doubling identities.
type DoublingCalculator struct{}

// Name returns the display name of the algorithm.
func (DoublingCalculator) Name() string { return "Fast Doubling (O(log n))" }

// Calculate implements Calculator.
func (DoublingCalculator) Calculate(n uint64) uint64 { return FastDoubling(n) }

// FastDoubling computes F(n) modulo 2^64 using the fast doubling algorithm.
// The identities only use ring operations, so the wrapped result matches
// Iterative for every n, including past MaxExactN.
//
// Uses the identities:
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))
//	F(2k+1) = F(k+1)² + F(k)²
func FastDoubling(n uint64) uint64 {
	var fk, fk1 uint64 = 0, 1 // F(k), F(k+1)

	for i := bits.Len64(n) - 1; i >= 0; i-- {
		f2k := fk * (2*fk1 - fk)
		f2k1 := fk1*fk1 + fk*fk
		fk, fk1 = f2k, f2k1

		// If bit is set: shift to F(2k+1), F(2k+2)
		if (n>>uint(i))&1 == 1 {
			fk, fk1 = fk1, fk+fk1
		}
	}
	return fk
}
