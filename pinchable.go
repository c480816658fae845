package thrift

import (
	"fmt"
	"sort"
)

// Pinchable is the bidirectional mapping between a user record type and
// the dynamic Value model (SPEC_FULL.md §4.4), generalizing the
// teacher's per-attribute Setter/Getter pair (AddTo/GetFrom in
// helpers.go) to a whole-struct mapping.
type Pinchable interface {
	// PinchFields returns this record's field values, keyed by field
	// id. An optional field that is logically absent must be omitted
	// from the map entirely.
	PinchFields() map[int16]Value
	// UnpinchFields populates the record from a decoded field map.
	// Implementations return MissingField for an absent required
	// field. On error the record may already hold the fields that were
	// decoded before the failing one (UnpinchWith behaves this way).
	UnpinchFields(fields map[int16]Value) error
	// TypeName identifies the record for error messages.
	TypeName() string
}

// Pinch converts a Pinchable record into a Value of kind Struct.
func Pinch(r Pinchable) Value {
	return NewStruct(r.PinchFields())
}

// Unpinch decodes v (which must be a Struct) into out.
func Unpinch(v Value, out Pinchable) error {
	fields, ok := v.AsStruct()
	if !ok {
		return newWireFormatError("%s: expected struct, got %s", out.TypeName(), v.Type())
	}
	return out.UnpinchFields(fields)
}

// FieldDescriptor is one field of a Descriptor-described record. Get and
// Set close over the field's concrete Go type so PinchWith/UnpinchWith
// can interpret the table generically without reflection, which Go has
// no cheap equivalent of for the source's compile-time field access.
//
// Get reports ok=false for a logically absent optional field, which
// PinchWith then omits from the encoded struct entirely. Set is only
// called when the field is present in the decoded map.
type FieldDescriptor struct {
	ID       int16
	Name     string
	Type     TType
	Optional bool
	Get      func(record any) (Value, bool)
	Set      func(record any, v Value) error
}

// Descriptor is an ordered list of a record's FieldDescriptors, built
// once per type as a package-level var and interpreted generically by
// PinchWith/UnpinchWith (SPEC_FULL.md §4.4, §9).
type Descriptor []FieldDescriptor

// PinchWith builds the field map for record by walking d and calling
// each FieldDescriptor's Get. Callers typically wrap this in a
// PinchFields method taking record's address.
func PinchWith(d Descriptor, record any) map[int16]Value {
	fields := make(map[int16]Value, len(d))
	for _, fd := range d {
		if v, ok := fd.Get(record); ok {
			fields[fd.ID] = v
		}
	}
	return fields
}

// UnpinchWith populates record from fields by walking d: a missing
// required field returns MissingField, a present field of the wrong
// TType returns a wire format error, otherwise fd.Set is invoked.
func UnpinchWith(d Descriptor, fields map[int16]Value, record any, typeName string) error {
	for _, fd := range d {
		v, ok := fields[fd.ID]
		if !ok {
			if fd.Optional {
				continue
			}
			return MissingField{Struct: typeName, ID: fd.ID}
		}
		if v.Type() != fd.Type {
			return newWireFormatError("%s: field %d (%s): expected %s, got %s", typeName, fd.ID, fd.Name, fd.Type, v.Type())
		}
		if err := fd.Set(record, v); err != nil {
			return err
		}
	}
	return nil
}

// requiredField returns MissingField if id is absent from fields. Field
// parsers and hand-written UnpinchFields methods use it for their
// presence check; UnpinchWith performs the same check inline.
func requiredField(fields map[int16]Value, id int16, typeName string) (Value, error) {
	v, ok := fields[id]
	if !ok {
		return Value{}, MissingField{Struct: typeName, ID: id}
	}
	return v, nil
}

// optionalField returns the field and true if present, or ok=false if
// it was omitted.
func optionalField(fields map[int16]Value, id int16) (Value, bool) {
	v, ok := fields[id]
	return v, ok
}

// presentFieldIDs returns the sorted field ids actually set in fields,
// used by union types to check the "exactly one present" invariant
// (SPEC_FULL.md §4.4).
func presentFieldIDs(fields map[int16]Value) []int16 {
	ids := make([]int16, 0, len(fields))
	for id := range fields {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// checkUnion validates the "exactly one of these ids is present"
// invariant for a union-shaped struct.
func checkUnion(fields map[int16]Value, typeName string, ids ...int16) error {
	present := 0
	for _, id := range ids {
		if _, ok := fields[id]; ok {
			present++
		}
	}
	switch {
	case present == 1:
		return nil
	case present == 0:
		return BadUnion{Struct: typeName, Reasons: []string{"no field present"}}
	default:
		reason := fmt.Sprintf("more than one field present: %v", presentFieldIDs(fields))
		return BadUnion{Struct: typeName, Reasons: []string{reason}}
	}
}
