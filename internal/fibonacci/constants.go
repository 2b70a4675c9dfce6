package fibonacci

const (
	// MaxExactN is the largest index whose Fibonacci number fits in a uint64.
	// F(94) and above wrap around.
	MaxExactN = 93
)
