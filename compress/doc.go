// Package compress provides the payload codecs used by linreg dataset files.
//
// A dataset payload is a packed array of float64 values. Regularly spaced or slowly
// changing series compress well with general-purpose block compressors, so the dataset
// header records which codec was applied and Decode picks the matching one.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): payload stored as-is
//   - Zstd (format.CompressionZstd): best ratio; pure Go by default, cgo libzstd with
//     the gozstd build tag
//   - S2 (format.CompressionS2): Snappy-compatible, faster than Zstd
//   - LZ4 (format.CompressionLZ4): fastest decompression
//   - Snappy (format.CompressionSnappy): classic Snappy block format
//
// # Usage
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "dataset")
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(packed)
//
// # Thread Safety
//
// All codecs are stateless values backed by pooled encoders and are safe for
// concurrent use.
package compress
