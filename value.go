package thrift

import "fmt"

// MapEntry is one (key, value) pair inside a Map value. Order is
// preserved on encode and decode; uniqueness of keys is a higher-level
// contract the codec does not enforce.
type MapEntry struct {
	Key   Value
	Value Value
}

// Value is a dynamic, Thrift-typed value: the runtime counterpart of the
// source's GADT-indexed value (see design note in SPEC_FULL.md §9). Its
// Type() always agrees with the payload actually stored, so a checked
// accessor (AsBool, AsStruct, ...) never panics: asking for the wrong
// kind returns ok=false.
//
// Value is immutable once constructed; the New* constructors are the
// only way to build one, and they validate container homogeneity.
type Value struct {
	t TType

	boolean bool
	b8      int8
	f64     float64
	i16     int16
	i32     int32
	i64     int64
	binary  []byte

	elem  TType      // List/Set: element type
	keyT  TType       // Map: key type
	valT  TType       // Map: value type
	items []Value     // List/Set
	pairs []MapEntry  // Map
	strct map[int16]Value
}

// Type returns the TType tag of v.
func (v Value) Type() TType { return v.t }

// NewBool constructs a Bool value.
func NewBool(b bool) Value { return Value{t: TTypeBool, boolean: b} }

// NewByte constructs a Byte (signed 8-bit) value.
func NewByte(b int8) Value { return Value{t: TTypeByte, b8: b} }

// NewDouble constructs a Double value.
func NewDouble(f float64) Value { return Value{t: TTypeDouble, f64: f} }

// NewInt16 constructs an Int16 value.
func NewInt16(i int16) Value { return Value{t: TTypeInt16, i16: i} }

// NewInt32 constructs an Int32 value.
func NewInt32(i int32) Value { return Value{t: TTypeInt32, i32: i} }

// NewInt64 constructs an Int64 value.
func NewInt64(i int64) Value { return Value{t: TTypeInt64, i64: i} }

// NewBinary constructs a Binary value. b is copied so the Value stays
// immutable even if the caller mutates their slice afterward.
func NewBinary(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{t: TTypeBinary, binary: cp}
}

// NewStruct constructs a Struct value from a field-id-keyed map. The map
// is copied; field-id order is not meaningful (see SPEC_FULL.md §3).
func NewStruct(fields map[int16]Value) Value {
	cp := make(map[int16]Value, len(fields))
	for id, f := range fields {
		cp[id] = f
	}
	return Value{t: TTypeStruct, strct: cp}
}

// NewList constructs a List value. Every element of items must have
// Type() == elem; NewList panics otherwise, since a caller building a
// Value by hand has already chosen elem and a mismatch is a programming
// error, not a runtime/wire condition.
func NewList(elem TType, items []Value) Value {
	return Value{t: TTypeList, elem: elem, items: checkedItems(elem, items)}
}

// NewSet constructs a Set value. Encoded identically to List; element
// uniqueness is a contract for the caller, not enforced here (see
// SPEC_FULL.md §3).
func NewSet(elem TType, items []Value) Value {
	return Value{t: TTypeSet, elem: elem, items: checkedItems(elem, items)}
}

func checkedItems(elem TType, items []Value) []Value {
	cp := make([]Value, len(items))
	for i, it := range items {
		if it.Type() != elem {
			panic(fmt.Sprintf("thrift: element %d has type %s, want %s", i, it.Type(), elem))
		}
		cp[i] = it
	}
	return cp
}

// NewMap constructs a Map value with declared key/value types. keyType
// and valType are always required, even for zero pairs, so there is no
// way to construct the "null map" the reference implementation treats
// as a special error case (see SPEC_FULL.md §9).
func NewMap(keyType, valType TType, pairs []MapEntry) Value {
	cp := make([]MapEntry, len(pairs))
	for i, p := range pairs {
		if p.Key.Type() != keyType {
			panic(fmt.Sprintf("thrift: map key %d has type %s, want %s", i, p.Key.Type(), keyType))
		}
		if p.Value.Type() != valType {
			panic(fmt.Sprintf("thrift: map value %d has type %s, want %s", i, p.Value.Type(), valType))
		}
		cp[i] = p
	}
	return Value{t: TTypeMap, keyT: keyType, valT: valType, pairs: cp}
}

// AsBool returns the Bool payload and true, or false, ok=false if v is
// not a Bool.
func (v Value) AsBool() (bool, bool) { return v.boolean, v.t == TTypeBool }

// AsByte returns the Byte payload, or ok=false if v is not a Byte.
func (v Value) AsByte() (int8, bool) { return v.b8, v.t == TTypeByte }

// AsDouble returns the Double payload, or ok=false if v is not a Double.
func (v Value) AsDouble() (float64, bool) { return v.f64, v.t == TTypeDouble }

// AsInt16 returns the Int16 payload, or ok=false if v is not an Int16.
func (v Value) AsInt16() (int16, bool) { return v.i16, v.t == TTypeInt16 }

// AsInt32 returns the Int32 payload, or ok=false if v is not an Int32.
func (v Value) AsInt32() (int32, bool) { return v.i32, v.t == TTypeInt32 }

// AsInt64 returns the Int64 payload, or ok=false if v is not an Int64.
func (v Value) AsInt64() (int64, bool) { return v.i64, v.t == TTypeInt64 }

// AsBinary returns the Binary payload, or ok=false if v is not Binary.
// The returned slice aliases v's internal buffer and must not be
// mutated.
func (v Value) AsBinary() ([]byte, bool) { return v.binary, v.t == TTypeBinary }

// AsStruct returns the field map, or ok=false if v is not a Struct. The
// returned map aliases v's internal map and must not be mutated.
func (v Value) AsStruct() (map[int16]Value, bool) { return v.strct, v.t == TTypeStruct }

// AsList returns the element type and items, or ok=false if v is not a
// List.
func (v Value) AsList() (TType, []Value, bool) { return v.elem, v.items, v.t == TTypeList }

// AsSet returns the element type and items, or ok=false if v is not a
// Set.
func (v Value) AsSet() (TType, []Value, bool) { return v.elem, v.items, v.t == TTypeSet }

// AsMap returns the key type, value type and pairs, or ok=false if v is
// not a Map.
func (v Value) AsMap() (TType, TType, []MapEntry, bool) {
	return v.keyT, v.valT, v.pairs, v.t == TTypeMap
}

// Equal reports whether v and other represent the same Thrift value.
// Struct field order never matters (maps have none); list, set and map
// element order does matter, matching SPEC_FULL.md §8 invariant 1.
func (v Value) Equal(other Value) bool {
	if v.t != other.t {
		return false
	}
	switch v.t {
	case TTypeBool:
		return v.boolean == other.boolean
	case TTypeByte:
		return v.b8 == other.b8
	case TTypeDouble:
		return v.f64 == other.f64
	case TTypeInt16:
		return v.i16 == other.i16
	case TTypeInt32:
		return v.i32 == other.i32
	case TTypeInt64:
		return v.i64 == other.i64
	case TTypeBinary:
		return string(v.binary) == string(other.binary)
	case TTypeStruct:
		return structEqual(v.strct, other.strct)
	case TTypeList, TTypeSet:
		if v.elem != other.elem || len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case TTypeMap:
		if v.keyT != other.keyT || v.valT != other.valT || len(v.pairs) != len(other.pairs) {
			return false
		}
		for i := range v.pairs {
			if !v.pairs[i].Key.Equal(other.pairs[i].Key) || !v.pairs[i].Value.Equal(other.pairs[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func structEqual(a, b map[int16]Value) bool {
	if len(a) != len(b) {
		return false
	}
	for id, av := range a {
		bv, ok := b[id]
		if !ok || !av.Equal(bv) {
			return false
		}
	}
	return true
}

func (v Value) String() string {
	return fmt.Sprintf("Value(%s)", v.t)
}
