package pool

import "sync"

var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice returns a scratch float64 slice of exactly size elements.
//
// The contents are unspecified; callers overwrite them (typically with copy).
// The slice is private to the caller until the returned release function is
// called, after which it must not be touched again.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []float64: A slice with length equal to size
//   - func(): Release function returning the slice to the pool
//
// Example:
//
//	sorted, release := pool.GetFloat64Slice(len(data))
//	defer release()
//	copy(sorted, data)
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}

// CloneFloat64s returns a pooled copy of src together with its release function.
func CloneFloat64s(src []float64) ([]float64, func()) {
	dst, release := GetFloat64Slice(len(src))
	copy(dst, src)

	return dst, release
}
