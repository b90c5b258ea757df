package dataset

import (
	"bytes"
	"fmt"
	"os"
)

// Load reads a dataset file, detecting the binary format by its magic and falling
// back to text otherwise.
func Load(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	if IsBinary(data) {
		return Decode(data)
	}

	return ReadText(bytes.NewReader(data))
}

// LoadPairs reads a text file of (x, y) pairs.
func LoadPairs(path string) (x, y []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadPairs(f)
}

// Save writes values to path as a binary dataset.
func Save(path string, values []float64, opts ...EncodeOption) error {
	data, err := Encode(values, opts...)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("dataset: write %s: %w", path, err)
	}

	return nil
}

// SaveText writes values to path as text, one value per line.
func SaveText(path string, values []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: create %s: %w", path, err)
	}

	if err := WriteText(f, values); err != nil {
		f.Close()
		return fmt.Errorf("dataset: write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("dataset: close %s: %w", path, err)
	}

	return nil
}
