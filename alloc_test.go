package thrift

import (
	"testing"

	"github.com/pinchthrift/thrift/internal/testutil"
)

// TestEncodeValueDoesNotAllocateForScalars mirrors the teacher's own
// helpers_test.go use of testutil.ShouldNotAllocate around its Setter
// AddTo calls: a scalar Value's encode path should never allocate
// beyond the Builder's own backing slice.
func TestEncodeValueDoesNotAllocateForScalars(t *testing.T) {
	v := NewInt64(123456789)
	b := NewBuilder(8)
	testutil.ShouldNotAllocate(t, func() {
		b.buf = b.buf[:0]
		encodeValue(b, v)
	})
}
