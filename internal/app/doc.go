// Package app assembles and runs the loopkata programs. Each cmd/ entry point
// passes its compile-time configuration to Execute.
package app
