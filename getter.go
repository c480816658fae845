package thrift

import (
	"encoding/binary"
	"math"
)

// Getter consumes bytes positionally, mirroring the bounds-checked
// reads in the teacher's Message.Decode (each read validates remaining
// length before touching the buffer, rather than relying on a panic
// recovery). A Getter never mutates the slice it was built from, and
// Bytes returns copies rather than aliases of it.
type Getter struct {
	buf []byte
	pos int
}

// NewGetter returns a Getter positioned at the start of buf.
func NewGetter(buf []byte) *Getter {
	return &Getter{buf: buf}
}

// Remaining returns the number of unread bytes.
func (g *Getter) Remaining() int { return len(g.buf) - g.pos }

// Pos returns the current read offset.
func (g *Getter) Pos() int { return g.pos }

func (g *Getter) need(n int, field string) error {
	if g.Remaining() < n {
		return newWireFormatError("%s: need %d bytes, have %d", field, n, g.Remaining())
	}
	return nil
}

// Byte reads a single signed byte.
func (g *Getter) Byte(field string) (int8, error) {
	if err := g.need(1, field); err != nil {
		return 0, err
	}
	v := int8(g.buf[g.pos])
	g.pos++
	return v, nil
}

// Bool reads a Bool's 1-byte wire form: nonzero is true.
func (g *Getter) Bool(field string) (bool, error) {
	v, err := g.Byte(field)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// Int16 reads a big-endian signed 16-bit integer.
func (g *Getter) Int16(field string) (int16, error) {
	if err := g.need(2, field); err != nil {
		return 0, err
	}
	v := int16(binary.BigEndian.Uint16(g.buf[g.pos:]))
	g.pos += 2
	return v, nil
}

// Int32 reads a big-endian signed 32-bit integer.
func (g *Getter) Int32(field string) (int32, error) {
	if err := g.need(4, field); err != nil {
		return 0, err
	}
	v := int32(binary.BigEndian.Uint32(g.buf[g.pos:]))
	g.pos += 4
	return v, nil
}

// Int64 reads a big-endian signed 64-bit integer.
func (g *Getter) Int64(field string) (int64, error) {
	if err := g.need(8, field); err != nil {
		return 0, err
	}
	v := int64(binary.BigEndian.Uint64(g.buf[g.pos:]))
	g.pos += 8
	return v, nil
}

// Double reads a big-endian IEEE-754 double.
func (g *Getter) Double(field string) (float64, error) {
	v, err := g.Int64(field)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(v)), nil
}

// Bytes reads exactly n bytes and returns a copy (never an alias of the
// Getter's backing buffer, so callers may retain it freely).
func (g *Getter) Bytes(n int, field string) ([]byte, error) {
	if n < 0 {
		return nil, NegativeSize{Field: field, Value: int64(n)}
	}
	if err := g.need(n, field); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, g.buf[g.pos:g.pos+n])
	g.pos += n
	return out, nil
}
