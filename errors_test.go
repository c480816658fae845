package thrift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorSentinelsAreConstantErrors(t *testing.T) {
	assert.Equal(t, "thrift: transport closed", ErrTransportClosed.Error())
	assert.Equal(t, "thrift: truncated frame", ErrTruncatedFrame.Error())
}

func TestWireFormatErrorMessage(t *testing.T) {
	err := newWireFormatError("bad %s", "thing")
	assert.EqualError(t, err, "thrift: wire format: bad thing")
}

func TestNegativeSizeMessage(t *testing.T) {
	err := NegativeSize{Field: "Binary length", Value: -4}
	assert.Equal(t, "thrift: Binary length is negative: -4", err.Error())
}

func TestLimitExceededMessage(t *testing.T) {
	err := LimitExceeded{Field: "List count", Observed: 20, Cap: 10}
	assert.Equal(t, "thrift: List count 20 exceeds limit 10", err.Error())
}

func TestMissingFieldMessage(t *testing.T) {
	err := MissingField{Struct: "CalcRequest", ID: 3}
	assert.Equal(t, "thrift: CalcRequest: missing required field 3", err.Error())
}

func TestUnknownEnumMessage(t *testing.T) {
	err := UnknownEnum{Type: "Operation", Value: 9}
	assert.Equal(t, "thrift: Operation: unknown enum value 9", err.Error())
}

func TestBadUnionMessage(t *testing.T) {
	err := BadUnion{Struct: "CalcResult", Reasons: []string{"no field present"}}
	assert.Contains(t, err.Error(), "CalcResult")
	assert.Contains(t, err.Error(), "no field present")
}

func TestSeqIDMismatchMessage(t *testing.T) {
	err := SeqIDMismatch{Expected: 1, Got: 2}
	assert.Equal(t, "thrift: seqid mismatch: expected 1, got 2", err.Error())
}

func TestRemoteExceptionDecodesConventionalPayload(t *testing.T) {
	payload := newExceptionPayload("not found", 7)
	err := RemoteException{Payload: payload}
	assert.Equal(t, "thrift: remote exception: not found (code 7)", err.Error())
}

func TestRemoteExceptionFallsBackOnMalformedPayload(t *testing.T) {
	err := RemoteException{Payload: NewInt32(1)}
	assert.Equal(t, "thrift: remote exception: unknown error (code 0)", err.Error())
}

func TestHandlerErrorMessage(t *testing.T) {
	err := HandlerError{Reason: "divide by zero"}
	assert.Equal(t, "thrift: handler error: divide by zero", err.Error())
}
