// Package summation implements the two array-summation algorithms: a
// deliberately quadratic nested loop and a single linear pass. Both return the
// same total for any input; they differ only in how many loop evaluations they
// perform, which Result.Steps reports.
package summation
