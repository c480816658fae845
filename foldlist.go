package thrift

// Replicate runs action count times, collecting results into a slice
// preallocated to count, and stops at the first error. It generalizes
// the attribute-decode loop in the teacher's Message.Decode ("for
// offset < size { ...; append(...) }") into a reusable helper, and
// stands in for the source's lazy FoldList.replicateM: count is always
// known (and already bound-checked) before the slice is allocated, so
// there is never an intermediate unsized collection to materialize.
func Replicate[T any](count int, action func(i int) (T, error)) ([]T, error) {
	out := make([]T, 0, count)
	for i := 0; i < count; i++ {
		v, err := action(i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Fold performs a strict left fold over a known-size sequence of
// elements produced by next, calling step once per element and
// stopping at the first error. It is FoldList.foldl' from the source,
// expressed as a generic helper instead of a lazy structure.
func Fold[T, Acc any](count int, seed Acc, next func(i int) (T, error), step func(Acc, T) (Acc, error)) (Acc, error) {
	acc := seed
	for i := 0; i < count; i++ {
		v, err := next(i)
		if err != nil {
			return acc, err
		}
		acc, err = step(acc, v)
		if err != nil {
			return acc, err
		}
	}
	return acc, nil
}
