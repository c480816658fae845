package thrift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProtocolOptions(t *testing.T) {
	opts := DefaultProtocolOptions()
	assert.Equal(t, DefaultMaxMethodNameLength, opts.MaxMethodNameLength)
	assert.Equal(t, DefaultMaxBinaryLength, opts.MaxBinaryLength)
	assert.Equal(t, DefaultMaxListLength, opts.MaxListLength)
	assert.Equal(t, DefaultMaxSetSize, opts.MaxSetSize)
	assert.Equal(t, DefaultMaxMapSize, opts.MaxMapSize)
	require.NotNil(t, opts.MethodNameParser)
	name, err := opts.MethodNameParser([]byte("compute"))
	require.NoError(t, err)
	assert.Equal(t, "compute", name)
}

func TestProtocolOptionOverrides(t *testing.T) {
	opts := DefaultProtocolOptions(
		WithMaxMethodNameLength(8),
		WithMaxBinaryLength(16),
		WithMaxListLength(2),
		WithMaxSetSize(3),
		WithMaxMapSize(4),
	)
	assert.Equal(t, 8, opts.MaxMethodNameLength)
	assert.Equal(t, 16, opts.MaxBinaryLength)
	assert.Equal(t, 2, opts.MaxListLength)
	assert.Equal(t, 3, opts.MaxSetSize)
	assert.Equal(t, 4, opts.MaxMapSize)
}

func TestDefaultMethodNameParserRejectsInvalidUTF8(t *testing.T) {
	opts := DefaultProtocolOptions()
	_, err := opts.MethodNameParser([]byte{0xff, 0xfe})
	assert.Error(t, err)
}

func TestWithMethodNameParser(t *testing.T) {
	called := false
	opts := DefaultProtocolOptions(WithMethodNameParser(func(b []byte) (string, error) {
		called = true
		return "fixed", nil
	}))
	name, err := opts.MethodNameParser(nil)
	require.NoError(t, err)
	assert.Equal(t, "fixed", name)
	assert.True(t, called)
}
