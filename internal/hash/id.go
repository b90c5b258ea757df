// Package hash wraps the xxHash64 function used for dataset checksums.
package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of the given bytes.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
