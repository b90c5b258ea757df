package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// ErrSyntax is returned for text input that is not a valid list of numbers.
var ErrSyntax = errors.New("dataset: syntax error")

// ReadText reads numbers separated by commas or whitespace.
//
// Everything after '#' on a line is a comment. Blank lines are skipped. An input with
// no numbers yields an empty, non-nil slice.
func ReadText(r io.Reader) ([]float64, error) {
	values := []float64{}

	err := scanLines(r, func(lineNo int, fields []string) error {
		for _, f := range fields {
			v, err := parseNumber(lineNo, f)
			if err != nil {
				return err
			}
			values = append(values, v)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return values, nil
}

// ReadPairs reads one (x, y) pair per non-blank line.
//
// The two numbers may be separated by a comma or whitespace. Lines holding any other
// number of values are rejected with ErrSyntax.
func ReadPairs(r io.Reader) (x, y []float64, err error) {
	x, y = []float64{}, []float64{}

	err = scanLines(r, func(lineNo int, fields []string) error {
		if len(fields) != 2 {
			return fmt.Errorf("%w: line %d: want 2 values, got %d", ErrSyntax, lineNo, len(fields))
		}

		xv, err := parseNumber(lineNo, fields[0])
		if err != nil {
			return err
		}
		yv, err := parseNumber(lineNo, fields[1])
		if err != nil {
			return err
		}

		x = append(x, xv)
		y = append(y, yv)

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return x, y, nil
}

// ParseValues parses a single comma or whitespace separated list, as given on a
// command line.
func ParseValues(s string) ([]float64, error) {
	return ReadText(strings.NewReader(s))
}

// WriteText writes one value per line using the shortest exact representation.
func WriteText(w io.Writer, values []float64) error {
	bw := bufio.NewWriter(w)
	var scratch [32]byte
	for _, v := range values {
		line := strconv.AppendFloat(scratch[:0], v, 'g', -1, 64)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// scanLines calls fn with the fields of every non-empty, comment-stripped line.
func scanLines(r io.Reader, fn func(lineNo int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		fields := strings.FieldsFunc(line, isSeparator)
		if len(fields) == 0 {
			continue
		}

		if err := fn(lineNo, fields); err != nil {
			return err
		}
	}

	return sc.Err()
}

func isSeparator(r rune) bool {
	return r == ',' || r == ';' || unicode.IsSpace(r)
}

func parseNumber(lineNo int, field string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: invalid number %q", ErrSyntax, lineNo, field)
	}

	return v, nil
}
