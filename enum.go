package thrift

import "fmt"

// EnumTable is a variant-tag-to-name table for an i32-backed Thrift
// enumeration, replacing the reflective enum derivation the source
// would use with the declarative table design note in SPEC_FULL.md §9
// — the same shape as the teacher's ErrorCode.Reason() switch, but data
// rather than a switch statement so new variants are one map entry.
type EnumTable[T ~int32] map[T]string

// String returns the declared name for v, or a "Type(n)" fallback with
// n in decimal if v is not a member of the table (mirroring
// MessageType.String()'s unknown-code fallback rather than panicking).
func (t EnumTable[T]) String(v T) string {
	if name, ok := t[v]; ok {
		return name
	}
	return fmt.Sprintf("%T(%d)", v, int32(v))
}

// Valid reports whether v is a declared member of the table.
func (t EnumTable[T]) Valid(v T) bool {
	_, ok := t[v]
	return ok
}
