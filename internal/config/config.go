// Package config holds the compile-time configuration of each program.
//
// The programs accept no flags and read no environment variables; every value
// here is a constant baked into the binary.
package config

import "github.com/rs/zerolog"

// Program names, used as binary names, metric labels and log components.
const (
	ArraySumNaiveProgram     = "arraysum-naive"
	ArraySumOptimizedProgram = "arraysum"
	FibCalcProgram           = "fibcalc"
)

const (
	// InputLen is the length of the fixed summation input.
	InputLen = 5

	// FibonacciN is the Fibonacci index computed by fibcalc.
	FibonacciN uint64 = 10

	// DefaultLogLevel keeps stderr silent on a normal run.
	DefaultLogLevel = zerolog.WarnLevel
)

// Kind distinguishes the two computations a program can perform.
type Kind int

const (
	// KindSum sums AppConfig.Values.
	KindSum Kind = iota
	// KindFibonacci computes F(AppConfig.N).
	KindFibonacci
)

// AppConfig describes one program: what it computes and with which algorithm.
type AppConfig struct {
	// Program is the program name (see the *Program constants).
	Program string
	// Kind selects between summation and Fibonacci.
	Kind Kind
	// Algo is the registry name of the algorithm to run.
	Algo string
	// Values is the summation input. Unused for KindFibonacci.
	Values []int
	// N is the Fibonacci index. Unused for KindSum.
	N uint64
	// LogLevel is the minimum level written to stderr.
	LogLevel zerolog.Level
}

// SumInput returns the fixed summation input {1,2,3,4,5}. The array is
// returned by value so callers never share a mutable copy.
func SumInput() [InputLen]int {
	return [InputLen]int{1, 2, 3, 4, 5}
}

// ArraySumNaive returns the configuration of the nested-loop summation program.
func ArraySumNaive() AppConfig {
	return sumConfig(ArraySumNaiveProgram, "naive")
}

// ArraySumOptimized returns the configuration of the single-pass summation program.
func ArraySumOptimized() AppConfig {
	return sumConfig(ArraySumOptimizedProgram, "optimized")
}

// FibCalc returns the configuration of the Fibonacci program.
func FibCalc() AppConfig {
	return AppConfig{
		Program:  FibCalcProgram,
		Kind:     KindFibonacci,
		Algo:     "iterative",
		N:        FibonacciN,
		LogLevel: DefaultLogLevel,
	}
}

func sumConfig(program, algo string) AppConfig {
	input := SumInput()
	return AppConfig{
		Program:  program,
		Kind:     KindSum,
		Algo:     algo,
		Values:   input[:],
		LogLevel: DefaultLogLevel,
	}
}
