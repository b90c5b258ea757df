package compress

// ZstdCompressor compresses dataset payloads with Zstandard.
//
// The implementation is selected at build time: pure Go (klauspost/compress) by
// default, or cgo libzstd (valyala/gozstd) when built with cgo and the gozstd tag.
// Both produce standard zstd frames, so files written by one decode with the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(payload)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
