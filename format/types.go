// Package format defines the compression and value encoding identifiers stored in
// dataset file headers.
package format

import "strings"

type CompressionType uint8

const (
	CompressionNone   CompressionType = 0x1 // CompressionNone stores the payload as-is.
	CompressionZstd   CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2     CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4    CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionSnappy CompressionType = 0x5 // CompressionSnappy represents Snappy block compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionSnappy:
		return "Snappy"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is a known compression type.
func (c CompressionType) Valid() bool {
	return c >= CompressionNone && c <= CompressionSnappy
}

// ParseCompression returns the compression type for a case-insensitive name
// ("none", "zstd", "s2", "lz4", "snappy"). The second result is false for unknown names.
func ParseCompression(name string) (CompressionType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	case "snappy":
		return CompressionSnappy, true
	default:
		return 0, false
	}
}

// EncodingType selects how float64 values are laid out before compression.
type EncodingType uint8

const (
	EncodingRaw     EncodingType = 0x1 // EncodingRaw stores each value as 8 bytes in the payload byte order.
	EncodingGorilla EncodingType = 0x2 // EncodingGorilla stores XOR deltas of consecutive values.
)

func (e EncodingType) String() string {
	switch e {
	case EncodingRaw:
		return "Raw"
	case EncodingGorilla:
		return "Gorilla"
	default:
		return "Unknown"
	}
}

// Valid reports whether e is a known encoding type.
func (e EncodingType) Valid() bool {
	return e == EncodingRaw || e == EncodingGorilla
}

// ParseEncoding returns the encoding type for a case-insensitive name ("raw", "gorilla").
// An empty name selects EncodingRaw.
func ParseEncoding(name string) (EncodingType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "raw", "":
		return EncodingRaw, true
	case "gorilla":
		return EncodingGorilla, true
	default:
		return 0, false
	}
}
