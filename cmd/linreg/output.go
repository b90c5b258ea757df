package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// printer writes numbers with a fixed number of decimals.
type printer struct {
	w         io.Writer
	precision int
}

func (a *app) printer(w io.Writer) printer {
	return printer{w: w, precision: a.cfg.Output.Precision}
}

func (p printer) num(v float64) string {
	return strconv.FormatFloat(v, 'f', p.precision, 64)
}

func (p printer) list(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = p.num(v)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func (p printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

func (p printer) section(title string) {
	fmt.Fprintf(p.w, "\n=== %s ===\n", title)
}

// equation formats y = a·x + b with the configured precision.
func (p printer) equation(slope, intercept float64) string {
	sign := "+"
	if intercept < 0 {
		sign = "-"
		intercept = -intercept
	}

	return fmt.Sprintf("y = %sx %s %s", p.num(slope), sign, p.num(intercept))
}
