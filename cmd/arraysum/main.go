// Command arraysum sums {1,2,3,4,5} in a single pass and prints "Sum: 15".
package main

import (
	"context"
	"os"

	"github.com/agbru/loopkata/internal/app"
	"github.com/agbru/loopkata/internal/config"
)

func main() {
	os.Exit(app.Execute(context.Background(), config.ArraySumOptimized(), os.Stdout, os.Stderr))
}
