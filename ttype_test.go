package thrift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTTypeString(t *testing.T) {
	cases := []struct {
		t    TType
		want string
	}{
		{TTypeBool, "bool"},
		{TTypeByte, "byte"},
		{TTypeDouble, "double"},
		{TTypeInt16, "i16"},
		{TTypeInt32, "i32"},
		{TTypeInt64, "i64"},
		{TTypeBinary, "binary"},
		{TTypeStruct, "struct"},
		{TTypeMap, "map"},
		{TTypeSet, "set"},
		{TTypeList, "list"},
		{TType(0x7f), "TType(0x7f)"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.t.String())
	}
}

func TestTTypeFromCode(t *testing.T) {
	tt, ok := ttypeFromCode(byte(TTypeStruct))
	assert.True(t, ok)
	assert.Equal(t, TTypeStruct, tt)

	_, ok = ttypeFromCode(structStop)
	assert.False(t, ok, "struct stop code 0 is not a TType")

	_, ok = ttypeFromCode(0xee)
	assert.False(t, ok)
}

func TestMessageTypeString(t *testing.T) {
	assert.Equal(t, "call", MessageCall.String())
	assert.Equal(t, "reply", MessageReply.String())
	assert.Equal(t, "exception", MessageException.String())
	assert.Equal(t, "oneway", MessageOneway.String())
	assert.Equal(t, "MessageType(9)", MessageType(9).String())
}

func TestMessageTypeFromCode(t *testing.T) {
	mt, ok := messageTypeFromCode(1)
	assert.True(t, ok)
	assert.Equal(t, MessageCall, mt)

	_, ok = messageTypeFromCode(0)
	assert.False(t, ok)
}
