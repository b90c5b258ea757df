// Package errs defines the error kinds shared by every linreg operation.
//
// The taxonomy is closed: every failure returned by the regression, metric and
// statistics functions is one of four kinds. Each kind is also a sentinel error,
// so callers can match with errors.Is:
//
//	if errors.Is(err, errs.ErrZeroVariance) {
//	    // constant input
//	}
//
// or switch exhaustively on the kind:
//
//	switch errs.KindOf(err) {
//	case errs.KindEmptyData:
//	case errs.KindInsufficientData:
//	case errs.KindZeroVariance:
//	case errs.KindLengthMismatch:
//	default:
//	    // not a linreg error
//	}
//
// Functions may wrap a sentinel with extra context using fmt.Errorf("%w: ...");
// both errors.Is and KindOf see through the wrapping.
package errs

import "errors"

// Kind identifies the category of a linreg error.
//
// Kind implements the error interface, so a Kind value can be returned, wrapped
// and compared directly.
type Kind uint8

const (
	// KindUnknown is reported by KindOf for nil and non-linreg errors.
	KindUnknown Kind = iota
	// KindEmptyData means an input sequence required to be non-empty was empty.
	KindEmptyData
	// KindInsufficientData means a sequence had fewer than the 2 samples required to fit a line.
	KindInsufficientData
	// KindZeroVariance means a computation found effectively zero spread in its input.
	KindZeroVariance
	// KindLengthMismatch means two positionally aligned sequences had different lengths.
	KindLengthMismatch
)

var kindMessages = map[Kind]string{
	KindUnknown:          "unknown error",
	KindEmptyData:        "empty data set",
	KindInsufficientData: "insufficient data for regression",
	KindZeroVariance:     "zero variance in data",
	KindLengthMismatch:   "sequences have different lengths",
}

var kindNames = map[Kind]string{
	KindUnknown:          "Unknown",
	KindEmptyData:        "EmptyData",
	KindInsufficientData: "InsufficientData",
	KindZeroVariance:     "ZeroVariance",
	KindLengthMismatch:   "LengthMismatch",
}

// Error returns the human-readable message of the kind.
func (k Kind) Error() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}

	return kindMessages[KindUnknown]
}

// String returns the name of the kind, e.g. "ZeroVariance".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return kindNames[KindUnknown]
}

// Sentinel errors, one per kind.
var (
	ErrEmptyData        error = KindEmptyData
	ErrInsufficientData error = KindInsufficientData
	ErrZeroVariance     error = KindZeroVariance
	ErrLengthMismatch   error = KindLengthMismatch
)

// KindOf returns the kind carried by err or by any error it wraps.
//
// It returns KindUnknown when err is nil or does not originate from linreg.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return KindUnknown
}
