// Command fibcalc computes the 10th Fibonacci number and prints
// "Fibonacci of 10 is 55".
package main

import (
	"context"
	"os"

	"github.com/agbru/loopkata/internal/app"
	"github.com/agbru/loopkata/internal/config"
)

func main() {
	os.Exit(app.Execute(context.Background(), config.FibCalc(), os.Stdout, os.Stderr))
}
