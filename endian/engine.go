// Package endian selects the byte order of dataset payloads.
//
// EndianEngine combines the ByteOrder and AppendByteOrder interfaces of
// encoding/binary so a single value can both append and read fixed-width numbers.
// binary.LittleEndian and binary.BigEndian satisfy it directly.
//
// # Basic Usage
//
//	engine := endian.GetLittleEndianEngine()
//	buf = endian.AppendFloat64s(engine, buf, values)
//
//	decoded := make([]float64, len(values))
//	endian.ReadFloat64s(engine, buf, decoded)
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

// Byte order flags stored in dataset headers.
const (
	FlagLittle byte = 0x0
	FlagBig    byte = 0x1
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Native returns the engine matching the host byte order.
func Native() EndianEngine {
	// 0x0100: the first byte in memory is 0x01 only on big-endian hosts.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// Flag returns the header flag for engine.
func Flag(engine EndianEngine) byte {
	if engine == GetBigEndianEngine() {
		return FlagBig
	}

	return FlagLittle
}

// FromFlag returns the engine for a header flag.
func FromFlag(flag byte) (EndianEngine, error) {
	switch flag {
	case FlagLittle:
		return GetLittleEndianEngine(), nil
	case FlagBig:
		return GetBigEndianEngine(), nil
	default:
		return nil, fmt.Errorf("unknown byte order flag: 0x%02x", flag)
	}
}

// AppendFloat64s appends the IEEE-754 bits of every value to dst.
func AppendFloat64s(engine EndianEngine, dst []byte, values []float64) []byte {
	for _, v := range values {
		dst = engine.AppendUint64(dst, math.Float64bits(v))
	}

	return dst
}

// ReadFloat64s decodes len(dst) values from src.
//
// src must hold at least 8*len(dst) bytes.
func ReadFloat64s(engine EndianEngine, src []byte, dst []float64) {
	for i := range dst {
		dst[i] = math.Float64frombits(engine.Uint64(src[i*8:]))
	}
}
