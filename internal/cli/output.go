// Package cli formats and writes program output.
//
// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatSum], [FormatFibonacci].
//
//   - Display* functions write to an [io.Writer].
//     Examples: [DisplayLine].
package cli

import (
	"fmt"
	"io"
	"strconv"
)

// FormatSum returns the summation output line, without its newline.
func FormatSum(value int) string {
	return "Sum: " + strconv.Itoa(value)
}

// FormatFibonacci returns the Fibonacci output line, without its newline.
func FormatFibonacci(n, value uint64) string {
	return fmt.Sprintf("Fibonacci of %d is %d", n, value)
}

// DisplayLine writes line followed by a single newline to out.
func DisplayLine(out io.Writer, line string) error {
	if _, err := io.WriteString(out, line+"\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
