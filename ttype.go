package thrift

import "fmt"

// TType is the wire-level type tag carried by every Thrift value. The
// numeric values below are fixed by the Binary Protocol and must not be
// renumbered.
type TType byte

// Wire type codes for the Binary Protocol. Code 0 is reserved for the
// struct end-of-fields marker and is not a valid standalone TType.
const (
	TTypeBool   TType = 2
	TTypeByte   TType = 3
	TTypeDouble TType = 4
	TTypeInt16  TType = 6
	TTypeInt32  TType = 8
	TTypeInt64  TType = 10
	TTypeBinary TType = 11
	TTypeStruct TType = 12
	TTypeMap    TType = 13
	TTypeSet    TType = 14
	TTypeList   TType = 15
)

// structStop is the wire code that terminates a struct's field list. It
// is not a member of TType because no Value ever carries it.
const structStop byte = 0

func (t TType) String() string {
	switch t {
	case TTypeBool:
		return "bool"
	case TTypeByte:
		return "byte"
	case TTypeDouble:
		return "double"
	case TTypeInt16:
		return "i16"
	case TTypeInt32:
		return "i32"
	case TTypeInt64:
		return "i64"
	case TTypeBinary:
		return "binary"
	case TTypeStruct:
		return "struct"
	case TTypeMap:
		return "map"
	case TTypeSet:
		return "set"
	case TTypeList:
		return "list"
	default:
		return fmt.Sprintf("TType(0x%02x)", byte(t))
	}
}

// ttypeFromCode maps a wire code to its TType, reporting false when
// code is not one of the defined TType wire codes.
func ttypeFromCode(code byte) (TType, bool) {
	switch TType(code) {
	case TTypeBool, TTypeByte, TTypeDouble, TTypeInt16, TTypeInt32, TTypeInt64,
		TTypeBinary, TTypeStruct, TTypeMap, TTypeSet, TTypeList:
		return TType(code), true
	default:
		return 0, false
	}
}

// MessageType is the RPC role of a Message: a call, its reply, a
// server-side exception, or a fire-and-forget oneway call.
type MessageType byte

// Message type wire codes.
const (
	MessageCall      MessageType = 1
	MessageReply     MessageType = 2
	MessageException MessageType = 3
	MessageOneway    MessageType = 4
)

func (t MessageType) String() string {
	switch t {
	case MessageCall:
		return "call"
	case MessageReply:
		return "reply"
	case MessageException:
		return "exception"
	case MessageOneway:
		return "oneway"
	default:
		return fmt.Sprintf("MessageType(%d)", byte(t))
	}
}

func messageTypeFromCode(code byte) (MessageType, bool) {
	switch MessageType(code) {
	case MessageCall, MessageReply, MessageException, MessageOneway:
		return MessageType(code), true
	default:
		return 0, false
	}
}
