package thrift

// EncodeValue renders v as Binary Protocol bytes per SPEC_FULL.md
// §4.3.1. EncodeValue never fails: Value is constructed only through
// validated constructors, so there is nothing left to reject at encode
// time.
func EncodeValue(v Value) []byte {
	b := NewBuilder(32)
	encodeValue(b, v)
	return b.Bytes()
}

func encodeValue(b *Builder, v Value) {
	switch v.t {
	case TTypeBool:
		boolean, _ := v.AsBool()
		b.PutBool(boolean)
	case TTypeByte:
		by, _ := v.AsByte()
		b.PutByte(by)
	case TTypeDouble:
		d, _ := v.AsDouble()
		b.PutDouble(d)
	case TTypeInt16:
		i, _ := v.AsInt16()
		b.PutInt16(i)
	case TTypeInt32:
		i, _ := v.AsInt32()
		b.PutInt32(i)
	case TTypeInt64:
		i, _ := v.AsInt64()
		b.PutInt64(i)
	case TTypeBinary:
		bin, _ := v.AsBinary()
		b.PutBinary(bin)
	case TTypeList, TTypeSet:
		elem, items, _ := v.AsList()
		if v.t == TTypeSet {
			elem, items, _ = v.AsSet()
		}
		b.PutByte(int8(elem))
		b.PutInt32(int32(len(items)))
		for _, it := range items {
			encodeValue(b, it)
		}
	case TTypeMap:
		keyT, valT, pairs, _ := v.AsMap()
		b.PutByte(int8(keyT))
		b.PutByte(int8(valT))
		b.PutInt32(int32(len(pairs)))
		for _, p := range pairs {
			encodeValue(b, p.Key)
			encodeValue(b, p.Value)
		}
	case TTypeStruct:
		encodeStructFields(b, v)
	}
}

// encodeStructFields writes a struct's fields in ascending field-id
// order (deterministic output; see the resolved open question in
// SPEC_FULL.md §9) followed by the end-of-struct marker.
func encodeStructFields(b *Builder, v Value) {
	fields, _ := v.AsStruct()
	ids := make([]int16, 0, len(fields))
	for id := range fields {
		ids = append(ids, id)
	}
	sortInt16s(ids)
	for _, id := range ids {
		f := fields[id]
		b.PutByte(int8(f.Type()))
		b.PutInt16(id)
		encodeValue(b, f)
	}
	b.PutByte(int8(structStop))
}

func sortInt16s(ids []int16) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}

// DecodeValue parses a value of the given TType from b, enforcing opts'
// bounds before allocating anything sized by an untrusted length or
// count (SPEC_FULL.md §8 invariant 4).
func DecodeValue(t TType, b []byte, opts ProtocolOptions) (Value, error) {
	g := NewGetter(b)
	v, err := decodeValue(g, t, opts)
	if err != nil {
		return Value{}, err
	}
	return v, nil
}

func decodeValue(g *Getter, t TType, opts ProtocolOptions) (Value, error) {
	switch t {
	case TTypeBool:
		v, err := g.Bool("Bool")
		if err != nil {
			return Value{}, err
		}
		return NewBool(v), nil
	case TTypeByte:
		v, err := g.Byte("Byte")
		if err != nil {
			return Value{}, err
		}
		return NewByte(v), nil
	case TTypeDouble:
		v, err := g.Double("Double")
		if err != nil {
			return Value{}, err
		}
		return NewDouble(v), nil
	case TTypeInt16:
		v, err := g.Int16("Int16")
		if err != nil {
			return Value{}, err
		}
		return NewInt16(v), nil
	case TTypeInt32:
		v, err := g.Int32("Int32")
		if err != nil {
			return Value{}, err
		}
		return NewInt32(v), nil
	case TTypeInt64:
		v, err := g.Int64("Int64")
		if err != nil {
			return Value{}, err
		}
		return NewInt64(v), nil
	case TTypeBinary:
		return decodeBinary(g, opts)
	case TTypeList:
		return decodeListOrSet(g, opts, false)
	case TTypeSet:
		return decodeListOrSet(g, opts, true)
	case TTypeMap:
		return decodeMap(g, opts)
	case TTypeStruct:
		return decodeStruct(g, opts)
	default:
		return Value{}, newWireFormatError("unknown TType 0x%02x", byte(t))
	}
}

func decodeBinary(g *Getter, opts ProtocolOptions) (Value, error) {
	n, err := g.Int32("Binary length")
	if err != nil {
		return Value{}, err
	}
	if n < 0 {
		return Value{}, NegativeSize{Field: "Binary length", Value: int64(n)}
	}
	if int(n) > opts.MaxBinaryLength {
		return Value{}, LimitExceeded{Field: "Binary length", Observed: int64(n), Cap: int64(opts.MaxBinaryLength)}
	}
	b, err := g.Bytes(int(n), "Binary value")
	if err != nil {
		return Value{}, err
	}
	return NewBinary(b), nil
}

func decodeListOrSet(g *Getter, opts ProtocolOptions, isSet bool) (Value, error) {
	field := "List"
	maxN := opts.MaxListLength
	if isSet {
		field = "Set"
		maxN = opts.MaxSetSize
	}
	code, err := g.Byte(field + " element type")
	if err != nil {
		return Value{}, err
	}
	elem, ok := ttypeFromCode(byte(code))
	if !ok {
		return Value{}, newWireFormatError("%s: unknown element TType 0x%02x", field, byte(code))
	}
	n, err := g.Int32(field + " count")
	if err != nil {
		return Value{}, err
	}
	if n < 0 {
		return Value{}, NegativeSize{Field: field + " count", Value: int64(n)}
	}
	if int(n) > maxN {
		return Value{}, LimitExceeded{Field: field + " count", Observed: int64(n), Cap: int64(maxN)}
	}
	items, err := Replicate(int(n), func(int) (Value, error) {
		return decodeValue(g, elem, opts)
	})
	if err != nil {
		return Value{}, err
	}
	if isSet {
		return NewSet(elem, items), nil
	}
	return NewList(elem, items), nil
}

func decodeMap(g *Getter, opts ProtocolOptions) (Value, error) {
	keyCode, err := g.Byte("Map key type")
	if err != nil {
		return Value{}, err
	}
	keyT, ok := ttypeFromCode(byte(keyCode))
	if !ok {
		return Value{}, newWireFormatError("Map: unknown key TType 0x%02x", byte(keyCode))
	}
	valCode, err := g.Byte("Map value type")
	if err != nil {
		return Value{}, err
	}
	valT, ok := ttypeFromCode(byte(valCode))
	if !ok {
		return Value{}, newWireFormatError("Map: unknown value TType 0x%02x", byte(valCode))
	}
	n, err := g.Int32("Map count")
	if err != nil {
		return Value{}, err
	}
	if n < 0 {
		return Value{}, NegativeSize{Field: "Map count", Value: int64(n)}
	}
	if int(n) > opts.MaxMapSize {
		return Value{}, LimitExceeded{Field: "Map count", Observed: int64(n), Cap: int64(opts.MaxMapSize)}
	}
	pairs, err := Replicate(int(n), func(int) (MapEntry, error) {
		k, err := decodeValue(g, keyT, opts)
		if err != nil {
			return MapEntry{}, err
		}
		val, err := decodeValue(g, valT, opts)
		if err != nil {
			return MapEntry{}, err
		}
		return MapEntry{Key: k, Value: val}, nil
	})
	if err != nil {
		return Value{}, err
	}
	return NewMap(keyT, valT, pairs), nil
}

// decodeStruct reads a struct's field list per SPEC_FULL.md §4.3.4:
// repeated (type, id, value) triples terminated by a 0 type code, with
// the last occurrence of a repeated field id winning.
func decodeStruct(g *Getter, opts ProtocolOptions) (Value, error) {
	fields := make(map[int16]Value)
	for {
		code, err := g.Byte("struct field type")
		if err != nil {
			return Value{}, err
		}
		if byte(code) == structStop {
			break
		}
		ft, ok := ttypeFromCode(byte(code))
		if !ok {
			return Value{}, newWireFormatError("struct: unknown field TType 0x%02x", byte(code))
		}
		id, err := g.Int16("struct field id")
		if err != nil {
			return Value{}, err
		}
		v, err := decodeValue(g, ft, opts)
		if err != nil {
			return Value{}, err
		}
		fields[id] = v
	}
	return NewStruct(fields), nil
}
