// Package bitstring provides densely-packed bit vectors for raw qubit
// records and sifted keys.
package bitstring

import (
	"fmt"
	"math/bits"
	"strings"
)

const byteSize = 8

// A Dense is a bit vector where every bit is explicitly represented. Bit i
// occupies position i%8 of byte i/8, least significant bit first.
type Dense struct {
	data []byte
	len  int
}

// NewDense returns a Dense whose contents are a view of data and whose
// length is bitLen. If bitLen exceeds data, trailing zeros are added. If
// bitLen is negative, it is inferred from data.
func NewDense(data []byte, bitLen int) Dense {
	if bitLen < 0 {
		bitLen = len(data) * byteSize
	}
	for len(data) < BytesFor(bitLen) {
		data = append(data, 0)
	}
	d := Dense{data: data, len: bitLen}
	d.clearTail()
	return d
}

// Empty returns an empty bit vector.
func Empty() Dense {
	return Dense{}
}

// FromString converts a string of '1's and '0's to a Dense, ignoring
// spaces. The first character becomes bit 0.
func FromString(s string) (Dense, error) {
	d := Dense{}
	for _, c := range s {
		switch c {
		case '1':
			d.AppendBit(true)
		case '0':
			d.AppendBit(false)
		case ' ':
			continue
		default:
			return Dense{}, fmt.Errorf("invalid bit string rep: %s", s)
		}
	}
	return d, nil
}

// Get returns the i-th bit. Out-of-range reads return false.
func (d Dense) Get(i int) bool {
	if i < 0 || i >= d.len {
		return false
	}
	return 0 < d.data[i/byteSize]&(1<<(i%byteSize))
}

// Size returns the number of bits in d.
func (d Dense) Size() int {
	return d.len
}

// SizeBytes returns the number of bytes needed to represent d.
func (d Dense) SizeBytes() int {
	return BytesFor(d.len)
}

// Data returns a view of the bytes underlying d. Modifying the returned
// slice modifies d.
func (d Dense) Data() []byte {
	return d.data
}

// String renders d as a string of '0's and '1's, bit 0 first.
func (d Dense) String() string {
	var sb strings.Builder
	for i := 0; i < d.len; i++ {
		if d.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// AppendBit adds a single bit to the end of d.
func (d *Dense) AppendBit(bit bool) {
	i, pos := d.len/byteSize, d.len%byteSize
	d.len++
	if pos == 0 {
		d.data = append(d.data, 0)
	}
	if bit {
		d.data[i] |= 1 << pos
	}
}

// Flip inverts the i-th bit.
func (d *Dense) Flip(i int) {
	d.data[i/byteSize] ^= 1 << (i % byteSize)
}

// And returns the bitwise AND of a and b. The result has the length of the
// shorter operand.
func And(a, b Dense) Dense {
	short := a
	if b.len < a.len {
		short = b
	}
	r := Dense{
		data: make([]byte, 0, short.SizeBytes()),
		len:  short.len,
	}
	for i := 0; i < short.SizeBytes(); i++ {
		r.data = append(r.data, a.data[i]&b.data[i])
	}
	r.clearTail()
	return r
}

// XOr returns the bitwise XOR of a and b. The shorter operand is padded
// with trailing zeros.
func XOr(a, b Dense) Dense {
	short, long := a, b
	if b.len < a.len {
		short, long = b, a
	}
	r := Dense{
		data: make([]byte, 0, long.SizeBytes()),
		len:  long.len,
	}
	for i := 0; i < short.SizeBytes(); i++ {
		r.data = append(r.data, a.data[i]^b.data[i])
	}
	for i := short.SizeBytes(); i < long.SizeBytes(); i++ {
		r.data = append(r.data, long.data[i])
	}
	r.clearTail()
	return r
}

// XNor returns the bitwise equality of a and b. The shorter operand is
// padded with trailing zeros.
func XNor(a, b Dense) Dense {
	r := Not(XOr(a, b))
	return r
}

// Not returns a copy of d with every bit inverted.
func Not(d Dense) Dense {
	r := Dense{
		data: make([]byte, 0, d.SizeBytes()),
		len:  d.len,
	}
	for _, b := range d.data {
		r.data = append(r.data, ^b)
	}
	r.clearTail()
	return r
}

// Select compacts data down to the bits whose positions are set in mask.
func Select(data, mask Dense) Dense {
	var r Dense
	for i := 0; i < data.len; i++ {
		if !mask.Get(i) {
			continue
		}
		r.AppendBit(data.Get(i))
	}
	return r
}

// Slice copies bits [start, end) of d into a fresh Dense.
func Slice(d Dense, start, end int) (Dense, error) {
	if start < 0 {
		return Dense{}, fmt.Errorf("slicing bit string with negative start: %d", start)
	}
	if end < start {
		return Dense{}, fmt.Errorf("slicing bit string to negative length: %d", end-start)
	}
	if end > d.len {
		return Dense{}, fmt.Errorf("slicing bit string of len %d up to %d", d.len, end)
	}
	r := Dense{}
	for i := start; i < end; i++ {
		r.AppendBit(d.Get(i))
	}
	return r, nil
}

// Parity returns the overall parity of d, with true corresponding to 1.
func Parity(d Dense) bool {
	var sum byte
	for _, b := range d.data {
		sum ^= b
	}
	return bits.OnesCount8(sum)%2 == 1
}

// CountOnes returns the total number of set bits in d.
func CountOnes(d Dense) int {
	var sum int
	for _, b := range d.data {
		sum += bits.OnesCount8(b)
	}
	return sum
}

// Equal returns true iff a and b have the same length and bits.
func Equal(a, b Dense) bool {
	return a.len == b.len && CountOnes(XOr(a, b)) == 0
}

// BytesFor returns the number of bytes needed to hold the given number of
// bits.
func BytesFor(bits int) int {
	return (bits + byteSize - 1) / byteSize
}

// clearTail zeroes bits beyond len in the final byte, so that operations
// which fill whole bytes (Not) don't leak set bits past the end.
func (d *Dense) clearTail() {
	off := d.len % byteSize
	if off == 0 || len(d.data) == 0 {
		return
	}
	d.data[len(d.data)-1] &= 0xFF >> (byteSize - off)
}
