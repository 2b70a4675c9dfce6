// Package apperrors defines the application exit codes and the structured
// error types used by the loopkata programs.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Wrapped errors remain inspectable with errors.Is() and errors.As().
package apperrors
