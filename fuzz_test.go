package thrift

import "testing"

// FuzzDecodeMessage is the modernized native testing.F counterpart of
// the teacher's old libFuzzer-style fuzz.go: DecodeMessage must never
// panic on arbitrary bytes, only return an error.
func FuzzDecodeMessage(f *testing.F) {
	seed := EncodeMessage(Message{
		Name:    "compute",
		Type:    MessageCall,
		SeqID:   1,
		Payload: NewStruct(map[int16]Value{1: NewInt32(1)}),
	})
	f.Add(seed)
	f.Add([]byte{})
	f.Add([]byte{0x00, 0x00, 0x00})
	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("DecodeMessage panicked on %x: %v", data, r)
			}
		}()
		_, _ = DecodeMessage(data, DefaultProtocolOptions())
	})
}

// FuzzDecodeValue does the same for a single struct-typed Value, the
// shape every Message payload actually is.
func FuzzDecodeValue(f *testing.F) {
	f.Add(EncodeValue(NewStruct(map[int16]Value{1: NewInt32(1), 2: NewBinary([]byte("x"))})))
	f.Add([]byte{byte(structStop)})
	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("DecodeValue panicked on %x: %v", data, r)
			}
		}()
		_, _ = DecodeValue(TTypeStruct, data, DefaultProtocolOptions())
	})
}
