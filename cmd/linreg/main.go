// Command linreg fits straight lines to series and paired samples from the command line.
//
// Usage:
//
//	linreg analyze [file] [--values 1,2,3] [--periods 5] [--at 10,15,20] [--expect-trend increasing]
//	linreg describe [file] [--values 1,2,3]
//	linreg fit --pairs data.csv | --x 1,2,3 --y 2,4,6
//	linreg project --slope 2 --intercept 1 --start 5 --count 3
//	linreg convert input.txt output.lrsd [--compression zstd] [--encoding gorilla]
//	linreg convert input.lrsd output.txt --text
//
// Input files are either text (numbers separated by commas or whitespace, # comments)
// or binary datasets written by convert.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", describeError(err))
		os.Exit(1)
	}
}
