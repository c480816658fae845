package thrift

// Message is one Thrift RPC message: a method name, its role (Call,
// Reply, Exception or Oneway), a correlation sequence id, and a struct
// payload. See SPEC_FULL.md §3 and §4.3.2.
type Message struct {
	Name    string
	Type    MessageType
	SeqID   int32
	Payload Value
}

// strictSentinel / strictVersionMask mirror the sign-bit-plus-version
// check the teacher's Message.Decode performs against its own magic
// cookie, adapted from STUN's 0x2112A442 cookie to Thrift's strict
// framing version word (0x80010000 with the low byte reserved for the
// message type).
const (
	strictSentinel    = int32(-2147418112) // 0x80010000
	strictVersionMask = int32(0x7fff0000)
	strictTypeMask    = int32(0xff)
)

// EncodeMessage renders m using the strict framing (SPEC_FULL.md
// §4.3.2): a sign-bit-set i32 version/type header, followed by the
// name, seqid and payload.
func EncodeMessage(m Message) []byte {
	b := NewBuilder(32 + len(m.Name))
	header := strictSentinel | int32(m.Type)&strictTypeMask
	b.PutInt32(header)
	nameBytes := []byte(m.Name)
	b.PutInt32(int32(len(nameBytes)))
	b.PutBytes(nameBytes)
	b.PutInt32(m.SeqID)
	encodeValue(b, ensureStruct(m.Payload))
	return b.Bytes()
}

func ensureStruct(v Value) Value {
	if v.Type() == TTypeStruct {
		return v
	}
	return NewStruct(nil)
}

// DecodeMessage parses a Message from b, accepting either the strict or
// the legacy non-strict framing (SPEC_FULL.md §4.3.2, invariant 6): the
// sign bit of the leading i32 selects which framing follows.
func DecodeMessage(b []byte, opts ProtocolOptions) (Message, error) {
	g := NewGetter(b)
	lead, err := g.Int32("message header")
	if err != nil {
		return Message{}, err
	}
	if lead < 0 {
		return decodeStrictMessage(g, lead, opts)
	}
	return decodeNonStrictMessage(g, lead, opts)
}

func decodeStrictMessage(g *Getter, lead int32, opts ProtocolOptions) (Message, error) {
	version := (lead & strictVersionMask) >> 16
	if version != 1 {
		return Message{}, newWireFormatError("unsupported strict framing version %d", version)
	}
	mt, ok := messageTypeFromCode(byte(lead & strictTypeMask))
	if !ok {
		return Message{}, newWireFormatError("unknown message type code 0x%02x", byte(lead&strictTypeMask))
	}
	name, err := readMethodName(g, opts)
	if err != nil {
		return Message{}, err
	}
	seqID, err := g.Int32("seqid")
	if err != nil {
		return Message{}, err
	}
	payload, err := decodeValue(g, TTypeStruct, opts)
	if err != nil {
		return Message{}, err
	}
	return Message{Name: name, Type: mt, SeqID: seqID, Payload: payload}, nil
}

// decodeNonStrictMessage handles the legacy framing where the leading
// i32 is itself the method-name length, the message type follows as a
// single byte, then seqid and payload (SPEC_FULL.md §4.3.2).
func decodeNonStrictMessage(g *Getter, nameLen int32, opts ProtocolOptions) (Message, error) {
	if int(nameLen) > opts.MaxMethodNameLength {
		return Message{}, LimitExceeded{Field: "method name length", Observed: int64(nameLen), Cap: int64(opts.MaxMethodNameLength)}
	}
	nameBytes, err := g.Bytes(int(nameLen), "method name")
	if err != nil {
		return Message{}, err
	}
	name, err := opts.MethodNameParser(nameBytes)
	if err != nil {
		return Message{}, err
	}
	typeCode, err := g.Byte("message type")
	if err != nil {
		return Message{}, err
	}
	mt, ok := messageTypeFromCode(byte(typeCode))
	if !ok {
		return Message{}, newWireFormatError("unknown message type code 0x%02x", byte(typeCode))
	}
	seqID, err := g.Int32("seqid")
	if err != nil {
		return Message{}, err
	}
	payload, err := decodeValue(g, TTypeStruct, opts)
	if err != nil {
		return Message{}, err
	}
	return Message{Name: name, Type: mt, SeqID: seqID, Payload: payload}, nil
}

func readMethodName(g *Getter, opts ProtocolOptions) (string, error) {
	nameLen, err := g.Int32("method name length")
	if err != nil {
		return "", err
	}
	if nameLen < 0 {
		return "", NegativeSize{Field: "method name length", Value: int64(nameLen)}
	}
	if int(nameLen) > opts.MaxMethodNameLength {
		return "", LimitExceeded{Field: "method name length", Observed: int64(nameLen), Cap: int64(opts.MaxMethodNameLength)}
	}
	nameBytes, err := g.Bytes(int(nameLen), "method name")
	if err != nil {
		return "", err
	}
	return opts.MethodNameParser(nameBytes)
}

// newExceptionPayload builds the conventional {1: text message, 2: i32
// code} exception struct that RunConnection sends for an Exception
// reply and RemoteException.Error reads back.
func newExceptionPayload(message string, code int32) Value {
	return NewStruct(map[int16]Value{
		1: NewBinary([]byte(message)),
		2: NewInt32(code),
	})
}
