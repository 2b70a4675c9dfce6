// Command arraysum-naive sums {1,2,3,4,5} with a quadratic nested loop and
// prints "Sum: 15".
package main

import (
	"context"
	"os"

	"github.com/agbru/loopkata/internal/app"
	"github.com/agbru/loopkata/internal/config"
)

func main() {
	os.Exit(app.Execute(context.Background(), config.ArraySumNaive(), os.Stdout, os.Stderr))
}
