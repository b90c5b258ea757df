// Package dataset reads and writes the sample files consumed by the linreg CLI.
//
// Two formats are supported:
//
//   - Text: numbers separated by commas or whitespace, with # comments (ReadText,
//     ReadPairs)
//   - Binary: a 24-byte header followed by a raw or Gorilla encoded, optionally
//     compressed float64 payload (Encode, Decode)
//
// # Binary Layout
//
//	offset size field
//	0      4    magic "LRSD"
//	4      1    version (1)
//	5      1    compression (format.CompressionType)
//	6      1    payload byte order (0 little, 1 big)
//	7      1    value encoding (format.EncodingType)
//	8      8    value count, little-endian uint64
//	16     8    xxHash64 of the uncompressed payload, little-endian uint64
//	24     ...  payload
//
// Header fields are always little-endian; the byte order flag applies to raw payloads
// only, since a Gorilla stream is a bit stream with its own fixed order. The checksum
// covers the encoded payload before compression, so a file can be recompressed
// without changing it.
package dataset

import (
	"errors"
	"fmt"
	"math"

	"github.com/arloliu/linreg/compress"
	"github.com/arloliu/linreg/endian"
	"github.com/arloliu/linreg/format"
	"github.com/arloliu/linreg/internal/encoding"
	"github.com/arloliu/linreg/internal/hash"
	"github.com/arloliu/linreg/internal/options"
	"github.com/arloliu/linreg/internal/pool"
)

const (
	// Magic identifies a binary dataset.
	Magic = "LRSD"
	// Version is the only binary layout version.
	Version uint8 = 1
	// HeaderSize is the fixed size of the binary header in bytes.
	HeaderSize = 24

	valueSize = 8
)

var (
	ErrInvalidMagic       = errors.New("dataset: invalid magic")
	ErrUnsupportedVersion = errors.New("dataset: unsupported version")
	ErrInvalidHeader      = errors.New("dataset: invalid header")
	ErrChecksumMismatch   = errors.New("dataset: checksum mismatch")
	ErrTruncated          = errors.New("dataset: truncated data")
	ErrTrailingData       = errors.New("dataset: payload longer than value count")
	ErrCorruptPayload     = errors.New("dataset: corrupt encoded payload")
)

// headerEngine encodes the fixed header fields.
var headerEngine = endian.GetLittleEndianEngine()

// Header is the decoded binary header.
type Header struct {
	Version     uint8
	Compression format.CompressionType
	Encoding    format.EncodingType
	Engine      endian.EndianEngine
	Count       uint64
	Checksum    uint64
	// PayloadSize is the size of the stored, possibly compressed, payload.
	PayloadSize int
}

// Stats reports how much encoding and compression saved against raw float64 values.
func (h Header) Stats() compress.Stats {
	return compress.Stats{
		Algorithm:      h.Compression,
		OriginalSize:   int(h.Count) * valueSize,
		CompressedSize: h.PayloadSize,
	}
}

// Encode serializes values into a binary dataset.
//
// Parameters:
//   - values: Samples to store, in order
//   - opts: WithCompression, WithEncoding, WithBigEndian, WithLittleEndian, WithNativeEndian
//
// Returns:
//   - []byte: Header followed by the payload
//   - error: Invalid option or compression failure
//
// Example:
//
//	data, err := dataset.Encode(values, dataset.WithCompression(format.CompressionZstd))
func Encode(values []float64, opts ...EncodeOption) ([]byte, error) {
	cfg := defaultEncodeConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(cfg.Compression, "dataset")
	if err != nil {
		return nil, err
	}

	buf := pool.GetDatasetBuffer()
	defer pool.PutDatasetBuffer(buf)

	buf.Grow(len(values) * valueSize)
	if cfg.Encoding == format.EncodingGorilla {
		enc := encoding.NewGorillaEncoder(buf)
		enc.WriteSlice(values)
		enc.Finish()
	} else {
		buf.B = endian.AppendFloat64s(cfg.Engine, buf.B, values)
	}
	raw := buf.Bytes()

	payload := raw
	if len(raw) > 0 {
		payload, err = codec.Compress(raw)
		if err != nil {
			return nil, fmt.Errorf("dataset: compress payload: %w", err)
		}
	}

	out := make([]byte, HeaderSize, HeaderSize+len(payload))
	copy(out, Magic)
	out[4] = Version
	out[5] = byte(cfg.Compression)
	out[6] = endian.Flag(cfg.Engine)
	out[7] = byte(cfg.Encoding)
	headerEngine.PutUint64(out[8:], uint64(len(values)))
	headerEngine.PutUint64(out[16:], hash.Checksum(raw))

	return append(out, payload...), nil
}

// ReadHeader decodes and validates the header of a binary dataset.
func ReadHeader(data []byte) (Header, error) {
	if len(data) < len(Magic) || string(data[:len(Magic)]) != Magic {
		return Header{}, ErrInvalidMagic
	}

	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header needs %d bytes, got %d", ErrTruncated, HeaderSize, len(data))
	}

	if data[4] != Version {
		return Header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, data[4])
	}

	compression := format.CompressionType(data[5])
	if !compression.Valid() {
		return Header{}, fmt.Errorf("%w: unknown compression 0x%02x", ErrInvalidHeader, data[5])
	}

	engine, err := endian.FromFlag(data[6])
	if err != nil {
		return Header{}, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}

	enc := format.EncodingType(data[7])
	if !enc.Valid() {
		return Header{}, fmt.Errorf("%w: unknown encoding 0x%02x", ErrInvalidHeader, data[7])
	}

	count := headerEngine.Uint64(data[8:])
	if count > math.MaxInt/valueSize {
		return Header{}, fmt.Errorf("%w: value count %d too large", ErrInvalidHeader, count)
	}

	return Header{
		Version:     data[4],
		Compression: compression,
		Encoding:    enc,
		Engine:      engine,
		Count:       count,
		Checksum:    headerEngine.Uint64(data[16:]),
		PayloadSize: len(data) - HeaderSize,
	}, nil
}

// Decode parses a binary dataset produced by Encode.
//
// Returns:
//   - []float64: The stored values (empty, non-nil for a zero-count dataset)
//   - error: ErrInvalidMagic, ErrUnsupportedVersion, ErrInvalidHeader, ErrTruncated,
//     ErrTrailingData, ErrCorruptPayload, ErrChecksumMismatch or a wrapped
//     decompression error
func Decode(data []byte) ([]float64, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(h.Compression, "dataset")
	if err != nil {
		return nil, err
	}

	raw := data[HeaderSize:]
	if len(raw) > 0 {
		raw, err = codec.Decompress(raw)
		if err != nil {
			return nil, fmt.Errorf("dataset: decompress payload: %w", err)
		}
	}

	if !payloadCanHold(h, len(raw)) {
		return nil, fmt.Errorf("%w: %d payload bytes cannot hold %d values", ErrTruncated, len(raw), h.Count)
	}

	values := make([]float64, h.Count)
	if h.Encoding == format.EncodingGorilla {
		err = decodeGorilla(raw, values)
	} else {
		err = decodeRaw(h.Engine, raw, values)
	}
	if err != nil {
		return nil, err
	}

	if sum := hash.Checksum(raw); sum != h.Checksum {
		return nil, fmt.Errorf("%w: got %016x, want %016x", ErrChecksumMismatch, sum, h.Checksum)
	}

	return values, nil
}

// payloadCanHold reports whether size bytes could encode h.Count values, so a forged
// count is rejected before the output slice is allocated.
func payloadCanHold(h Header, size int) bool {
	if h.Count == 0 {
		return true
	}

	if h.Encoding == format.EncodingGorilla {
		// 64 bits for the first value, at least one bit for each later one.
		return uint64(size)*8 >= 63+h.Count //nolint:gosec // size is a slice length
	}

	return uint64(size) >= h.Count*valueSize //nolint:gosec // size is a slice length
}

func decodeRaw(engine endian.EndianEngine, raw []byte, values []float64) error {
	want := len(values) * valueSize
	switch {
	case len(raw) < want:
		return fmt.Errorf("%w: payload has %d bytes, want %d", ErrTruncated, len(raw), want)
	case len(raw) > want:
		return fmt.Errorf("%w: payload has %d bytes, want %d", ErrTrailingData, len(raw), want)
	}

	endian.ReadFloat64s(engine, raw, values)

	return nil
}

func decodeGorilla(raw []byte, values []float64) error {
	n, err := encoding.DecodeGorilla(raw, values)
	switch {
	case errors.Is(err, encoding.ErrShortStream):
		return fmt.Errorf("%w: gorilla stream ends before %d values", ErrTruncated, len(values))
	case err != nil:
		return fmt.Errorf("%w: %w", ErrCorruptPayload, err)
	case n < len(raw):
		return fmt.Errorf("%w: %d unused payload bytes", ErrTrailingData, len(raw)-n)
	}

	return nil
}

// IsBinary reports whether data starts with the binary dataset magic.
func IsBinary(data []byte) bool {
	return len(data) >= len(Magic) && string(data[:len(Magic)]) == Magic
}

// Fingerprint returns the xxHash64 of values in little-endian float64 layout.
//
// Two slices have the same fingerprint when they hold bit-identical values, which is
// also the checksum Encode stores for a raw little-endian dataset.
func Fingerprint(values []float64) uint64 {
	buf := pool.GetDatasetBuffer()
	defer pool.PutDatasetBuffer(buf)

	buf.Grow(len(values) * valueSize)
	buf.B = endian.AppendFloat64s(endian.GetLittleEndianEngine(), buf.B, values)

	return hash.Checksum(buf.Bytes())
}
