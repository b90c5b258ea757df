package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/linreg/dataset"
	"github.com/arloliu/linreg/errs"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestAnalyzeCommand(t *testing.T) {
	t.Run("values with forecast and predictions", func(t *testing.T) {
		out, err := run(t, "analyze", "--values", "100,120,140,160,180,200", "--periods", "3", "--at", "10", "--precision", "2")
		require.NoError(t, err)

		require.Contains(t, out, "Data: [100.00, 120.00, 140.00, 160.00, 180.00, 200.00]")
		require.Contains(t, out, "Mean: 150.00")
		require.Contains(t, out, "Equation: y = 20.00x + 100.00")
		require.Contains(t, out, "R²: 1.00 (excellent fit)")
		require.Contains(t, out, "Trend: increasing")
		require.Contains(t, out, "Period 0: actual = 100.00, predicted = 100.00, error = 0.00")
		require.Contains(t, out, "=== Forecast ===")
		require.Contains(t, out, "Period 6: 220.00")
		require.Contains(t, out, "Period 8: 260.00")
		require.Contains(t, out, "x = 10.00: y = 300.00")
	})

	t.Run("demo series with default periods", func(t *testing.T) {
		out, err := run(t, "analyze")
		require.NoError(t, err)
		require.Contains(t, out, "Data: [10.000000, 12.000000")
		require.Contains(t, out, "Period 12:")
		require.NotContains(t, out, "Period 13:")
	})

	t.Run("text file", func(t *testing.T) {
		path := writeFile(t, "temps.txt", "# daily temperature\n15 18.2 22.5 26.8\n30.1 32.5 29.8 25.2\n")

		out, err := run(t, "analyze", path, "--periods", "0")
		require.NoError(t, err)
		require.Contains(t, out, "Period 7: actual = 25.200000")
		require.NotContains(t, out, "=== Forecast ===")
	})

	t.Run("single value", func(t *testing.T) {
		_, err := run(t, "analyze", "--values", "5")
		require.ErrorIs(t, err, errs.ErrInsufficientData)
		require.Contains(t, describeError(err), "at least 2 values")
	})

	t.Run("constant series", func(t *testing.T) {
		_, err := run(t, "analyze", "--values", "3,3,3")
		require.ErrorIs(t, err, errs.ErrZeroVariance)
		require.Equal(t, "no variation in the data: slope or R² is undefined", describeError(err))
	})

	t.Run("expected trend", func(t *testing.T) {
		out, err := run(t, "analyze", "--values", "30,27,24,21", "--expect-trend", "Decreasing")
		require.NoError(t, err)
		require.Contains(t, out, "Trend: decreasing")

		_, err = run(t, "analyze", "--values", "30,27,24,21", "--expect-trend", "increasing")
		require.EqualError(t, err, "trend is decreasing, expected increasing")

		_, err = run(t, "analyze", "--values", "30,27,24,21", "--expect-trend", "sideways")
		require.ErrorContains(t, err, `unknown trend "sideways"`)
	})

	t.Run("bad number", func(t *testing.T) {
		_, err := run(t, "analyze", "--values", "1,two,3")
		require.ErrorIs(t, err, dataset.ErrSyntax)
	})
}

func TestDescribeCommand(t *testing.T) {
	out, err := run(t, "describe", "--values", "1,2,3,4,5")
	require.NoError(t, err)
	require.Contains(t, out, "Count: 5")
	require.Contains(t, out, "Mean: 3.000000")
	require.Contains(t, out, "Median: 3.000000")
	require.Contains(t, out, "Variance: 2.000000")
	require.Contains(t, out, "Range: 4.000000")

	_, err = run(t, "describe", writeFile(t, "empty.txt", "# nothing here\n"))
	require.ErrorIs(t, err, errs.ErrEmptyData)
}

func TestFitCommand(t *testing.T) {
	t.Run("inline values", func(t *testing.T) {
		out, err := run(t, "fit", "--x", "1,2,3,4", "--y", "2,4,6,8")
		require.NoError(t, err)
		require.Contains(t, out, "Equation: y = 2.000000x + 0.000000")
		require.Contains(t, out, "R²: 1.000000 (excellent fit)")
		require.Contains(t, out, "Correlation: strong positive correlation")
	})

	t.Run("pairs file", func(t *testing.T) {
		path := writeFile(t, "grades.csv", "1,5.2\n2,6.1\n3,6.8\n4,7.5\n5,8.1\n6,8.7\n7,9.2\n8,9.5\n")

		out, err := run(t, "fit", "--pairs", path, "--precision", "3")
		require.NoError(t, err)
		require.Contains(t, out, "Equation: y = 0.618x + 4.857")
		require.Contains(t, out, "strong positive correlation")
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := run(t, "fit", "--x", "1,2", "--y", "1,2,3")
		require.ErrorIs(t, err, errs.ErrLengthMismatch)
		require.Equal(t, "x and y must contain the same number of values", describeError(err))
	})

	t.Run("missing input", func(t *testing.T) {
		_, err := run(t, "fit")
		require.Error(t, err)
	})
}

func TestProjectCommand(t *testing.T) {
	out, err := run(t, "project", "--slope", "2", "--intercept", "1", "--start", "5", "--count", "3", "--precision", "1")
	require.NoError(t, err)
	require.Equal(t, "x = 5: y = 11.0\nx = 6: y = 13.0\nx = 7: y = 15.0\n", out)

	out, err = run(t, "project", "--slope", "1", "--intercept", "0")
	require.NoError(t, err)
	require.Contains(t, out, "x = 4: y = 4.000000")
	require.NotContains(t, out, "x = 5:")

	out, err = run(t, "project", "--slope", "1", "--intercept", "0", "--count", "-2")
	require.NoError(t, err)
	require.Empty(t, out)

	_, err = run(t, "project", "--intercept", "0")
	require.Error(t, err)
}

func TestConvertCommand(t *testing.T) {
	src := writeFile(t, "sales.txt", "100,120,140,160,180,200\n")
	dst := filepath.Join(t.TempDir(), "sales.lrsd")

	out, err := run(t, "convert", src, dst, "--compression", "lz4")
	require.NoError(t, err)
	require.Contains(t, out, "Wrote 6 values to "+dst+" (LZ4")

	values, err := dataset.Load(dst)
	require.NoError(t, err)
	require.Equal(t, []float64{100, 120, 140, 160, 180, 200}, values)

	out, err = run(t, "analyze", dst, "--precision", "1")
	require.NoError(t, err)
	require.Contains(t, out, "Equation: y = 20.0x + 100.0")

	_, err = run(t, "convert", src, dst, "--compression", "gzip")
	require.Error(t, err)

	out, err = run(t, "convert", src, dst, "--encoding", "gorilla", "--compression", "none")
	require.NoError(t, err)
	require.Contains(t, out, "(None, Gorilla encoding")

	values, err = dataset.Load(dst)
	require.NoError(t, err)
	require.Equal(t, []float64{100, 120, 140, 160, 180, 200}, values)

	_, err = run(t, "convert", src, dst, "--encoding", "delta")
	require.Error(t, err)

	txt := filepath.Join(t.TempDir(), "sales.txt")
	out, err = run(t, "convert", dst, txt, "--text")
	require.NoError(t, err)
	require.Contains(t, out, "Wrote 6 values to "+txt+" (text)")

	content, err := os.ReadFile(txt)
	require.NoError(t, err)
	require.Equal(t, "100\n120\n140\n160\n180\n200\n", string(content))
}

func TestConfigFile(t *testing.T) {
	cfgPath := writeFile(t, "linreg.yaml", "output:\n  precision: 2\nforecast:\n  periods: 1\nlog:\n  format: json\n")

	out, err := run(t, "--config", cfgPath, "analyze", "--values", "10,12,14")
	require.NoError(t, err)
	require.Contains(t, out, "Equation: y = 2.00x + 10.00")
	require.Contains(t, out, "Period 3: 16.00")
	require.NotContains(t, out, "Period 4:")

	badCfg := writeFile(t, "bad.yaml", "output:\n  precision: 99\n")
	_, err = run(t, "--config", badCfg, "describe")
	require.Error(t, err)

	_, err = run(t, "--log-level", "loud", "describe")
	require.Error(t, err)
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{errs.ErrEmptyData, "no data: the input contains no values"},
		{fmt.Errorf("%w: got 1", errs.ErrInsufficientData), "not enough data: at least 2 values are needed to fit a line"},
		{errs.ErrZeroVariance, "no variation in the data: slope or R² is undefined"},
		{errs.ErrLengthMismatch, "x and y must contain the same number of values"},
		{dataset.ErrInvalidMagic, "not a linreg dataset file"},
		{errors.New("something else"), "something else"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, describeError(tt.err))
	}

	require.Contains(t, describeError(fmt.Errorf("%w: got 1, want 2", dataset.ErrChecksumMismatch)), "dataset is corrupted")
}
