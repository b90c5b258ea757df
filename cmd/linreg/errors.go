package main

import (
	"errors"

	"github.com/arloliu/linreg/dataset"
	"github.com/arloliu/linreg/errs"
)

// describeError turns an error into a message for the terminal.
func describeError(err error) string {
	switch errs.KindOf(err) {
	case errs.KindEmptyData:
		return "no data: the input contains no values"
	case errs.KindInsufficientData:
		return "not enough data: at least 2 values are needed to fit a line"
	case errs.KindZeroVariance:
		return "no variation in the data: slope or R² is undefined"
	case errs.KindLengthMismatch:
		return "x and y must contain the same number of values"
	case errs.KindUnknown:
	}

	switch {
	case errors.Is(err, dataset.ErrChecksumMismatch), errors.Is(err, dataset.ErrCorruptPayload):
		return "dataset is corrupted: " + err.Error()
	case errors.Is(err, dataset.ErrInvalidMagic):
		return "not a linreg dataset file"
	default:
		return err.Error()
	}
}
