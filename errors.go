package thrift

import "fmt"

// Error is the error type for constant, unparameterized failures in
// this package, following the teacher's "constant errors" idiom
// (see http://dave.cheney.net/2016/04/07/constant-errors).
type Error string

func (e Error) Error() string { return string(e) }

// Sentinel errors for conditions that carry no extra data.
const (
	// ErrTransportClosed names a closed byte source/sink. No transport,
	// Client or Server in this package returns it: a closed Channel
	// surfaces as the Channel's own error (io.EOF, io.ErrClosedPipe,
	// net.ErrClosed, ...), and a closed Client as ErrClientClosed.
	ErrTransportClosed Error = "thrift: transport closed"
	// ErrTruncatedFrame is returned when a framed read sees fewer bytes
	// than the frame's declared length before EOF.
	ErrTruncatedFrame Error = "thrift: truncated frame"
)

// WireFormatError reports malformed bytes: a truncated read, a bad
// version sentinel, an unknown TType code, or an unknown message type.
type WireFormatError struct {
	Reason string
}

func (e WireFormatError) Error() string { return "thrift: wire format: " + e.Reason }

func newWireFormatError(format string, args ...interface{}) error {
	return WireFormatError{Reason: fmt.Sprintf(format, args...)}
}

// NegativeSize reports that a length or count field decoded to a
// negative number. Field names which header field was responsible
// (e.g. "Binary length", "List count").
type NegativeSize struct {
	Field string
	Value int64
}

func (e NegativeSize) Error() string {
	return fmt.Sprintf("thrift: %s is negative: %d", e.Field, e.Value)
}

// LimitExceeded reports that a declared length or count exceeded the
// cap configured in ProtocolOptions. Observed and Cap are always
// non-negative; the check runs before any allocation sized by Observed.
type LimitExceeded struct {
	Field    string
	Observed int64
	Cap      int64
}

func (e LimitExceeded) Error() string {
	return fmt.Sprintf("thrift: %s %d exceeds limit %d", e.Field, e.Observed, e.Cap)
}

// MissingField reports that a required Pinchable field was absent from
// a decoded struct.
type MissingField struct {
	Struct string
	ID     int16
}

func (e MissingField) Error() string {
	return fmt.Sprintf("thrift: %s: missing required field %d", e.Struct, e.ID)
}

// UnknownEnum reports that an enum field decoded to an i32 with no
// matching variant.
type UnknownEnum struct {
	Type  string
	Value int32
}

func (e UnknownEnum) Error() string {
	return fmt.Sprintf("thrift: %s: unknown enum value %d", e.Type, e.Value)
}

// BadUnion reports that a union struct had more than one (or zero)
// field present, with Reasons describing each violation found.
type BadUnion struct {
	Struct  string
	Reasons []string
}

func (e BadUnion) Error() string {
	return fmt.Sprintf("thrift: %s: invalid union: %v", e.Struct, e.Reasons)
}

// SeqIDMismatch reports that a reply's sequence id did not match the
// call that was sent.
type SeqIDMismatch struct {
	Expected int32
	Got      int32
}

func (e SeqIDMismatch) Error() string {
	return fmt.Sprintf("thrift: seqid mismatch: expected %d, got %d", e.Expected, e.Got)
}

// RemoteException reports that the peer replied with a Message of type
// Exception. Payload is the decoded exception struct, conventionally
// {1: text message, 2: i32 code}.
type RemoteException struct {
	Payload Value
}

func (e RemoteException) Error() string {
	msg, code := "unknown error", int32(0)
	if fields, ok := e.Payload.AsStruct(); ok {
		if v, ok := fields[1]; ok {
			if b, ok := v.AsBinary(); ok {
				msg = string(b)
			}
		}
		if v, ok := fields[2]; ok {
			if i, ok := v.AsInt32(); ok {
				code = i
			}
		}
	}
	return fmt.Sprintf("thrift: remote exception: %s (code %d)", msg, code)
}

// HandlerError wraps a server-side handler failure before it is
// surfaced to the client as a RemoteException.
type HandlerError struct {
	Reason string
}

func (e HandlerError) Error() string { return "thrift: handler error: " + e.Reason }
