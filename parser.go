package thrift

// Parser is a small continuation-style combinator over a struct's
// decoded field map, generalizing the teacher's Checker/Message.Check
// chain-with-short-circuit idiom (helpers.go) from "run checkers,
// stop at the first error" to "pull typed fields, stop at the first
// error". Position tracking within the struct is not required (field
// ids are the only addressing the wire format has).
type Parser[T any] struct {
	run func(fields map[int16]Value) (T, error)
}

// NewParser wraps a plain decode function as a Parser.
func NewParser[T any](run func(fields map[int16]Value) (T, error)) Parser[T] {
	return Parser[T]{run: run}
}

// Run executes p against fields.
func (p Parser[T]) Run(fields map[int16]Value) (T, error) {
	return p.run(fields)
}

// Field builds a Parser that pulls field id with expected TType t from
// the struct, converting with convert.
func Field[T any](id int16, t TType, typeName string, convert func(Value) (T, error)) Parser[T] {
	return NewParser(func(fields map[int16]Value) (T, error) {
		var zero T
		v, err := requiredField(fields, id, typeName)
		if err != nil {
			return zero, err
		}
		if v.Type() != t {
			return zero, newWireFormatError("%s: field %d: expected %s, got %s", typeName, id, t, v.Type())
		}
		return convert(v)
	})
}

// OptionalField builds a Parser that pulls an optional field, returning
// (zero, false, nil) when absent instead of MissingField.
func OptionalField[T any](id int16, t TType, typeName string, convert func(Value) (T, error)) Parser[OptionalResult[T]] {
	return NewParser(func(fields map[int16]Value) (OptionalResult[T], error) {
		v, ok := optionalField(fields, id)
		if !ok {
			return OptionalResult[T]{}, nil
		}
		if v.Type() != t {
			return OptionalResult[T]{}, newWireFormatError("%s: field %d: expected %s, got %s", typeName, id, t, v.Type())
		}
		converted, err := convert(v)
		if err != nil {
			return OptionalResult[T]{}, err
		}
		return OptionalResult[T]{Value: converted, Present: true}, nil
	})
}

// OptionalResult is the outcome of an OptionalField parse.
type OptionalResult[T any] struct {
	Value   T
	Present bool
}

// Map transforms a successful Parser result with f.
func Map[A, B any](p Parser[A], f func(A) (B, error)) Parser[B] {
	return NewParser(func(fields map[int16]Value) (B, error) {
		var zero B
		a, err := p.Run(fields)
		if err != nil {
			return zero, err
		}
		return f(a)
	})
}

// AndThen chains two Parsers, feeding the first result into a function
// that produces the next Parser (monadic bind, short-circuiting on the
// first error).
func AndThen[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return NewParser(func(fields map[int16]Value) (B, error) {
		var zero B
		a, err := p.Run(fields)
		if err != nil {
			return zero, err
		}
		return f(a).Run(fields)
	})
}

// Alt tries a against fields; on failure it discards a's error and runs
// b against the same fields.
func Alt[T any](a, b Parser[T]) Parser[T] {
	return NewParser(func(fields map[int16]Value) (T, error) {
		v, err := a.Run(fields)
		if err == nil {
			return v, nil
		}
		return b.Run(fields)
	})
}

// Catch runs p and dispatches to onErr or onOk depending on the
// outcome, exposing both instead of only ever propagating or only ever
// recovering.
func Catch[T, R any](p Parser[T], onErr func(error) (R, error), onOk func(T) (R, error)) Parser[R] {
	return NewParser(func(fields map[int16]Value) (R, error) {
		v, err := p.Run(fields)
		if err != nil {
			return onErr(err)
		}
		return onOk(v)
	})
}
