package main

import (
	"github.com/arloliu/linreg/dataset"
)

// demoSeries is used when neither a file nor --values is given.
var demoSeries = []float64{10, 12, 14, 16, 18, 20, 22, 25}

// loadSeries resolves the series from --values, a file argument or the demo data.
func (a *app) loadSeries(args []string, values string) ([]float64, error) {
	switch {
	case values != "":
		y, err := dataset.ParseValues(values)
		if err != nil {
			return nil, err
		}
		a.log.Debug("series parsed", "source", "--values", "count", len(y))

		return y, nil
	case len(args) > 0:
		y, err := dataset.Load(args[0])
		if err != nil {
			a.log.Error("failed to load dataset", "source", args[0], "error", err)
			return nil, err
		}
		a.log.Debug("dataset loaded", "source", args[0], "count", len(y), "fingerprint", dataset.Fingerprint(y))

		return y, nil
	default:
		a.log.Debug("using demo series", "count", len(demoSeries))
		return demoSeries, nil
	}
}
