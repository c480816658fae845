package thrift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldParserRequiredPresent(t *testing.T) {
	p := Field(1, TTypeInt32, "t", func(v Value) (int32, error) {
		i, _ := v.AsInt32()
		return i, nil
	})
	got, err := p.Run(map[int16]Value{1: NewInt32(7)})
	require.NoError(t, err)
	assert.Equal(t, int32(7), got)
}

func TestFieldParserMissingIsError(t *testing.T) {
	p := Field(1, TTypeInt32, "t", func(v Value) (int32, error) {
		i, _ := v.AsInt32()
		return i, nil
	})
	_, err := p.Run(map[int16]Value{})
	var mf MissingField
	assert.ErrorAs(t, err, &mf)
}

func TestFieldParserWrongTypeIsError(t *testing.T) {
	p := Field(1, TTypeInt32, "t", func(v Value) (int32, error) {
		i, _ := v.AsInt32()
		return i, nil
	})
	_, err := p.Run(map[int16]Value{1: NewBool(true)})
	assert.Error(t, err)
}

func TestOptionalFieldParser(t *testing.T) {
	p := OptionalField(2, TTypeInt32, "t", func(v Value) (int32, error) {
		i, _ := v.AsInt32()
		return i, nil
	})
	absent, err := p.Run(map[int16]Value{})
	require.NoError(t, err)
	assert.False(t, absent.Present)

	present, err := p.Run(map[int16]Value{2: NewInt32(9)})
	require.NoError(t, err)
	assert.True(t, present.Present)
	assert.Equal(t, int32(9), present.Value)
}

func TestMapTransformsSuccess(t *testing.T) {
	p := Map(Field(1, TTypeInt32, "t", func(v Value) (int32, error) {
		i, _ := v.AsInt32()
		return i, nil
	}), func(i int32) (string, error) { return "x", nil })
	got, err := p.Run(map[int16]Value{1: NewInt32(1)})
	require.NoError(t, err)
	assert.Equal(t, "x", got)
}

func TestAndThenChains(t *testing.T) {
	pa := Field(1, TTypeInt32, "t", func(v Value) (int32, error) {
		i, _ := v.AsInt32()
		return i, nil
	})
	p := AndThen(pa, func(a int32) Parser[int32] {
		return Field(2, TTypeInt32, "t", func(v Value) (int32, error) {
			i, _ := v.AsInt32()
			return a + i, nil
		})
	})
	got, err := p.Run(map[int16]Value{1: NewInt32(2), 2: NewInt32(3)})
	require.NoError(t, err)
	assert.Equal(t, int32(5), got)
}

func TestAltFallsBackOnError(t *testing.T) {
	a := Field(1, TTypeInt32, "t", func(v Value) (int32, error) { i, _ := v.AsInt32(); return i, nil })
	b := NewParser(func(map[int16]Value) (int32, error) { return 42, nil })
	got, err := Alt(a, b).Run(map[int16]Value{})
	require.NoError(t, err)
	assert.Equal(t, int32(42), got)
}

func TestCatchDispatches(t *testing.T) {
	p := Field(1, TTypeInt32, "t", func(v Value) (int32, error) { i, _ := v.AsInt32(); return i, nil })
	c := Catch(p,
		func(err error) (string, error) { return "missing", nil },
		func(i int32) (string, error) { return "present", nil },
	)
	got, err := c.Run(map[int16]Value{})
	require.NoError(t, err)
	assert.Equal(t, "missing", got)
}
