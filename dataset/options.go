package dataset

import (
	"fmt"

	"github.com/arloliu/linreg/endian"
	"github.com/arloliu/linreg/format"
	"github.com/arloliu/linreg/internal/options"
)

// EncodeConfig holds configuration for Encode.
type EncodeConfig struct {
	Compression format.CompressionType
	Encoding    format.EncodingType
	Engine      endian.EndianEngine
}

// defaultEncodeConfig returns default config (raw little-endian values, no compression).
func defaultEncodeConfig() EncodeConfig {
	return EncodeConfig{
		Compression: format.CompressionNone,
		Encoding:    format.EncodingRaw,
		Engine:      endian.GetLittleEndianEngine(),
	}
}

// EncodeOption is a functional option for EncodeConfig.
type EncodeOption = options.Option[*EncodeConfig]

// WithCompression sets the payload compression. Unknown types are rejected.
func WithCompression(compression format.CompressionType) EncodeOption {
	return options.New(func(cfg *EncodeConfig) error {
		if !compression.Valid() {
			return fmt.Errorf("dataset: invalid compression: %s", compression)
		}
		cfg.Compression = compression

		return nil
	})
}

// WithEncoding sets the value encoding. Unknown types are rejected.
//
// EncodingGorilla usually shrinks smooth or repetitive series before compression runs;
// the byte order options have no effect on it.
func WithEncoding(enc format.EncodingType) EncodeOption {
	return options.New(func(cfg *EncodeConfig) error {
		if !enc.Valid() {
			return fmt.Errorf("dataset: invalid encoding: %s", enc)
		}
		cfg.Encoding = enc

		return nil
	})
}

// WithLittleEndian stores the payload in little-endian order.
func WithLittleEndian() EncodeOption {
	return options.NoError(func(cfg *EncodeConfig) {
		cfg.Engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian stores the payload in big-endian order.
func WithBigEndian() EncodeOption {
	return options.NoError(func(cfg *EncodeConfig) {
		cfg.Engine = endian.GetBigEndianEngine()
	})
}

// WithNativeEndian stores the payload in the host byte order.
func WithNativeEndian() EncodeOption {
	return options.NoError(func(cfg *EncodeConfig) {
		cfg.Engine = endian.Native()
	})
}
