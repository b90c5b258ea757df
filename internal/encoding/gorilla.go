// Package encoding implements the Gorilla XOR encoding used for float64 dataset
// payloads.
//
// The first value is stored as its 64 raw bits. Every later value is XORed with its
// predecessor and written as:
//
//	0                                   value unchanged
//	1 0 <meaningful bits>               same leading/trailing window as before
//	1 1 <5b leading> <6b size-1> <bits> new window
//
// Bits are packed most significant first and the final byte is zero padded. The
// stream does not record its own length; callers store the value count separately.
//
// See https://www.vldb.org/pvldb/vol8/p1816-teller.pdf for the original description.
package encoding

import (
	"encoding/binary"
	"errors"
	"math"
	"math/bits"

	"github.com/arloliu/linreg/internal/pool"
)

var (
	// ErrShortStream is returned when the stream ends before count values are read.
	ErrShortStream = errors.New("encoding: gorilla stream too short")
	// ErrInvalidBlock is returned for a window header that cannot describe a 64-bit XOR.
	ErrInvalidBlock = errors.New("encoding: invalid gorilla block")
)

// GorillaEncoder appends Gorilla encoded values to a byte buffer.
type GorillaEncoder struct {
	bitBuf        uint64 // pending bits, right aligned
	prevValue     uint64
	bitCount      int
	count         int
	prevLeading   int
	prevTrailing  int
	prevBlockSize int

	buf *pool.ByteBuffer
}

// NewGorillaEncoder creates an encoder that appends to buf.
//
// The caller owns buf. Call Finish before reading buf so that pending bits are
// written out.
func NewGorillaEncoder(buf *pool.ByteBuffer) *GorillaEncoder {
	return &GorillaEncoder{buf: buf}
}

// Write encodes a single value.
func (e *GorillaEncoder) Write(val float64) {
	e.count++
	valBits := math.Float64bits(val)

	if e.count == 1 {
		e.prevValue = valBits
		e.writeBits(valBits, 64)

		return
	}

	e.writeValue(valBits)
}

// WriteSlice encodes values in order. Runs of repeated values are written as
// batches of zero bits.
func (e *GorillaEncoder) WriteSlice(values []float64) {
	if len(values) == 0 {
		return
	}

	if e.count == 0 {
		e.Write(values[0])
		values = values[1:]
	}

	i := 0
	for i < len(values) {
		valBits := math.Float64bits(values[i])

		j := i + 1
		for j < len(values) && math.Float64bits(values[j]) == valBits {
			j++
		}

		if run := j - i; run > 1 && valBits == e.prevValue {
			for n := run; n > 0; n -= 64 {
				e.writeBits(0, min(n, 64))
			}
			e.count += run
			i = j

			continue
		}

		e.count++
		e.writeValue(valBits)
		i++
	}
}

// Len returns the number of values written.
func (e *GorillaEncoder) Len() int {
	return e.count
}

// Finish writes any pending bits to the buffer, zero padding the last byte.
// The encoder must not be used afterwards.
func (e *GorillaEncoder) Finish() {
	e.flushBits()
}

func (e *GorillaEncoder) writeValue(valBits uint64) {
	xor := valBits ^ e.prevValue
	e.prevValue = valBits

	if xor == 0 {
		e.writeBits(0, 1)
		return
	}

	leading := bits.LeadingZeros64(xor)
	trailing := bits.TrailingZeros64(xor)

	// leading is stored in 5 bits; widen the window instead of overflowing it.
	if leading > 31 {
		leading = 31
	}

	if e.prevBlockSize > 0 && leading >= e.prevLeading && trailing >= e.prevTrailing {
		e.writeBits(0b10, 2)
		e.writeBits(xor>>e.prevTrailing, e.prevBlockSize)

		return
	}

	blockSize := 64 - leading - trailing
	e.writeBits(0b11, 2)
	e.writeBits(uint64(leading), 5)     //nolint:gosec // G115: 0-31
	e.writeBits(uint64(blockSize-1), 6) //nolint:gosec // G115: 0-63
	e.writeBits(xor>>trailing, blockSize)

	e.prevLeading = leading
	e.prevTrailing = trailing
	e.prevBlockSize = blockSize
}

// writeBits writes the low numBits (0-64) bits of value.
func (e *GorillaEncoder) writeBits(value uint64, numBits int) {
	if numBits == 0 {
		return
	}

	if numBits < 64 {
		value &= (1 << numBits) - 1
	}

	available := 64 - e.bitCount
	if numBits <= available {
		if numBits == 64 {
			e.bitBuf = value
		} else {
			e.bitBuf = (e.bitBuf << numBits) | value
		}
		e.bitCount += numBits
		if e.bitCount == 64 {
			e.flushBits()
		}

		return
	}

	// Split across the buffer boundary.
	rest := numBits - available
	e.bitBuf = (e.bitBuf << available) | (value >> rest)
	e.bitCount = 64
	e.flushBits()

	e.bitBuf = value & ((1 << rest) - 1)
	e.bitCount = rest
}

func (e *GorillaEncoder) flushBits() {
	if e.bitCount == 0 {
		return
	}

	numBytes := (e.bitCount + 7) / 8
	aligned := e.bitBuf << (64 - e.bitCount)

	if numBytes == 8 {
		e.buf.B = binary.BigEndian.AppendUint64(e.buf.B, aligned)
	} else {
		for i := range numBytes {
			e.buf.B = append(e.buf.B, byte(aligned>>(56-8*i)))
		}
	}

	e.bitBuf = 0
	e.bitCount = 0
}

// DecodeGorilla decodes len(dst) values from data into dst.
//
// Parameters:
//   - data: Gorilla stream produced by GorillaEncoder
//   - dst: Destination; its length is the number of values to read
//
// Returns:
//   - int: Number of bytes of data the values occupied, including the padded last byte
//   - error: ErrShortStream or ErrInvalidBlock
func DecodeGorilla(data []byte, dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	br := bitReader{data: data}

	prev, ok := br.readBits(64)
	if !ok {
		return 0, ErrShortStream
	}
	dst[0] = math.Float64frombits(prev)

	trailing, blockSize := 0, 0
	for i := 1; i < len(dst); i++ {
		control, ok := br.readBit()
		if !ok {
			return 0, ErrShortStream
		}

		if control == 0 {
			dst[i] = dst[i-1]
			continue
		}

		reuse, ok := br.readBit()
		if !ok {
			return 0, ErrShortStream
		}

		if reuse == 1 {
			leading, ok := br.readBits(5)
			if !ok {
				return 0, ErrShortStream
			}
			size, ok := br.readBits(6)
			if !ok {
				return 0, ErrShortStream
			}

			blockSize = int(size) + 1
			trailing = 64 - int(leading) - blockSize
			if trailing < 0 {
				return 0, ErrInvalidBlock
			}
		} else if blockSize == 0 {
			return 0, ErrInvalidBlock
		}

		meaningful, ok := br.readBits(blockSize)
		if !ok {
			return 0, ErrShortStream
		}

		prev ^= meaningful << trailing
		dst[i] = math.Float64frombits(prev)
	}

	return br.consumed(), nil
}

// bitReader reads bits most significant first.
type bitReader struct {
	data     []byte
	bytePos  int
	bitBuf   uint64 // left aligned
	bitCount int
}

func (br *bitReader) readBit() (uint64, bool) {
	if br.bitCount == 0 && !br.fillBuffer() {
		return 0, false
	}

	bit := br.bitBuf >> 63
	br.bitBuf <<= 1
	br.bitCount--

	return bit, true
}

// readBits reads numBits (1-64) bits, right aligned.
func (br *bitReader) readBits(numBits int) (uint64, bool) {
	var result uint64
	for numBits > 0 {
		if br.bitCount == 0 && !br.fillBuffer() {
			return 0, false
		}

		n := min(numBits, br.bitCount)
		chunk := br.bitBuf >> (64 - n)
		if n == 64 {
			result = chunk
			br.bitBuf = 0
		} else {
			result = (result << n) | chunk
			br.bitBuf <<= n
		}
		br.bitCount -= n
		numBits -= n
	}

	return result, true
}

func (br *bitReader) fillBuffer() bool {
	remaining := len(br.data) - br.bytePos
	if remaining <= 0 {
		return false
	}

	if remaining >= 8 {
		br.bitBuf = binary.BigEndian.Uint64(br.data[br.bytePos:])
		br.bytePos += 8
		br.bitCount = 64

		return true
	}

	br.bitBuf = 0
	for i := range remaining {
		br.bitBuf |= uint64(br.data[br.bytePos+i]) << (56 - 8*i)
	}
	br.bytePos += remaining
	br.bitCount = remaining * 8

	return true
}

// consumed returns the number of bytes touched so far.
func (br *bitReader) consumed() int {
	return (br.bytePos*8 - br.bitCount + 7) / 8
}
