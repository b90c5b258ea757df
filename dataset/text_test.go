package dataset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []float64
	}{
		{name: "comma separated", input: "1,2,3", want: []float64{1, 2, 3}},
		{name: "whitespace and newlines", input: "1 2\n3\t4\n", want: []float64{1, 2, 3, 4}},
		{name: "mixed separators", input: "1, 2 ;3,,4", want: []float64{1, 2, 3, 4}},
		{name: "comments and blanks", input: "# sales\n100 # jan\n\n120\n#140\n", want: []float64{100, 120}},
		{name: "scientific notation", input: "1e-10 2.5E3 -7", want: []float64{1e-10, 2500, -7}},
		{name: "empty", input: "", want: []float64{}},
		{name: "only comments", input: "# nothing\n", want: []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadText(strings.NewReader(tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestReadTextErrors(t *testing.T) {
	_, err := ReadText(strings.NewReader("1\n2\nabc\n"))
	require.ErrorIs(t, err, ErrSyntax)
	require.Contains(t, err.Error(), "line 3")
	require.Contains(t, err.Error(), `"abc"`)
}

func TestReadPairs(t *testing.T) {
	input := "# hours,grade\n1,5.2\n2 6.1\n\n3, 6.8 # good week\n"

	x, y, err := ReadPairs(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, x)
	require.Equal(t, []float64{5.2, 6.1, 6.8}, y)
}

func TestReadPairsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "one value", input: "1,2\n3\n"},
		{name: "three values", input: "1,2,3\n"},
		{name: "bad x", input: "x,2\n"},
		{name: "bad y", input: "1,y\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ReadPairs(strings.NewReader(tt.input))
			require.ErrorIs(t, err, ErrSyntax)
		})
	}
}

func TestParseValues(t *testing.T) {
	got, err := ParseValues("10,12,14,16")
	require.NoError(t, err)
	require.Equal(t, []float64{10, 12, 14, 16}, got)

	_, err = ParseValues("10,twelve")
	require.ErrorIs(t, err, ErrSyntax)
}

func TestWriteTextRoundTrip(t *testing.T) {
	values := []float64{0.1, 1e-10, 123456789.125, -3}

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, values))
	require.Equal(t, "0.1\n1e-10\n1.23456789125e+08\n-3\n", buf.String())

	back, err := ReadText(&buf)
	require.NoError(t, err)
	require.Equal(t, values, back)
}
