package thrift

import (
	"encoding/binary"
	"math"
)

// Builder accumulates bytes by concatenation with amortized O(1) append,
// growing its backing slice in place the same way the teacher's
// Message.grow doubles its Raw buffer rather than relying on repeated
// single-byte append calls. A Builder is write-only; call Bytes once to
// finalize it.
type Builder struct {
	buf []byte
}

// NewBuilder returns an empty Builder with capacity hinted by size (use
// 0 if unknown).
func NewBuilder(sizeHint int) *Builder {
	return &Builder{buf: make([]byte, 0, sizeHint)}
}

// grow ensures cap(b.buf) can hold n more bytes without reallocating on
// every subsequent write.
func (b *Builder) grow(n int) {
	need := len(b.buf) + n
	if cap(b.buf) >= need {
		return
	}
	newCap := 2 * cap(b.buf)
	if newCap < need {
		newCap = need
	}
	grown := make([]byte, len(b.buf), newCap)
	copy(grown, b.buf)
	b.buf = grown
}

// Bytes finalizes the Builder, returning the accumulated bytes. The
// Builder must not be used afterward.
func (b *Builder) Bytes() []byte { return b.buf }

// Len returns the number of bytes written so far.
func (b *Builder) Len() int { return len(b.buf) }

// PutByte appends a single signed byte.
func (b *Builder) PutByte(v int8) {
	b.grow(1)
	b.buf = append(b.buf, byte(v))
}

// PutBool appends a Bool's 1-byte wire form.
func (b *Builder) PutBool(v bool) {
	if v {
		b.PutByte(1)
	} else {
		b.PutByte(0)
	}
}

// PutInt16 appends a big-endian signed 16-bit integer.
func (b *Builder) PutInt16(v int16) {
	b.grow(2)
	n := len(b.buf)
	b.buf = b.buf[:n+2]
	binary.BigEndian.PutUint16(b.buf[n:], uint16(v))
}

// PutInt32 appends a big-endian signed 32-bit integer.
func (b *Builder) PutInt32(v int32) {
	b.grow(4)
	n := len(b.buf)
	b.buf = b.buf[:n+4]
	binary.BigEndian.PutUint32(b.buf[n:], uint32(v))
}

// PutInt64 appends a big-endian signed 64-bit integer.
func (b *Builder) PutInt64(v int64) {
	b.grow(8)
	n := len(b.buf)
	b.buf = b.buf[:n+8]
	binary.BigEndian.PutUint64(b.buf[n:], uint64(v))
}

// PutDouble appends a big-endian IEEE-754 double.
func (b *Builder) PutDouble(v float64) {
	b.PutInt64(int64(math.Float64bits(v)))
}

// PutBytes appends raw bytes verbatim (no length prefix).
func (b *Builder) PutBytes(v []byte) {
	b.grow(len(v))
	b.buf = append(b.buf, v...)
}

// PutBinary appends a length-prefixed byte sequence: i32-BE length then
// the bytes themselves, per SPEC_FULL.md §4.3.1.
func (b *Builder) PutBinary(v []byte) {
	b.PutInt32(int32(len(v)))
	b.PutBytes(v)
}
