package thrift

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderPutIntegers(t *testing.T) {
	b := NewBuilder(0)
	b.PutByte(-1)
	b.PutBool(true)
	b.PutInt16(-2)
	b.PutInt32(300)
	b.PutInt64(1 << 40)
	got := b.Bytes()
	assert.Equal(t, []byte{
		0xff,
		0x01,
		0xff, 0xfe,
		0x00, 0x00, 0x01, 0x2c,
		0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00,
	}, got)
}

func TestBuilderPutBoolFalse(t *testing.T) {
	b := NewBuilder(0)
	b.PutBool(false)
	assert.Equal(t, []byte{0x00}, b.Bytes())
}

func TestBuilderPutDoubleRoundTrips(t *testing.T) {
	b := NewBuilder(0)
	b.PutDouble(3.14159)
	g := NewGetter(b.Bytes())
	got, err := g.Double("d")
	assert.NoError(t, err)
	assert.Equal(t, 3.14159, got)
}

func TestBuilderPutBinary(t *testing.T) {
	b := NewBuilder(0)
	b.PutBinary([]byte("hi"))
	assert.Equal(t, []byte{0, 0, 0, 2, 'h', 'i'}, b.Bytes())
}

func TestBuilderGrowsWithoutLosingData(t *testing.T) {
	b := NewBuilder(1)
	for i := 0; i < 100; i++ {
		b.PutByte(int8(i))
	}
	assert.Equal(t, 100, b.Len())
	for i, v := range b.Bytes() {
		assert.Equal(t, int8(i), int8(v))
	}
}

func TestBuilderDoubleNegativeRoundTrip(t *testing.T) {
	b := NewBuilder(0)
	b.PutDouble(math.Inf(-1))
	g := NewGetter(b.Bytes())
	got, err := g.Double("d")
	assert.NoError(t, err)
	assert.True(t, math.IsInf(got, -1))
}
