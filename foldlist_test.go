package thrift

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplicateCollectsResults(t *testing.T) {
	out, err := Replicate(5, func(i int) (int, error) { return i * i, nil })
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 9, 16}, out)
}

func TestReplicateStopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	_, err := Replicate(10, func(i int) (int, error) {
		calls++
		if i == 3 {
			return 0, boom
		}
		return i, nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 4, calls, "must not call action after the first error")
}

func TestFoldAccumulates(t *testing.T) {
	sum, err := Fold(4, 0, func(i int) (int, error) { return i + 1, nil }, func(acc, v int) (int, error) {
		return acc + v, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 10, sum)
}
