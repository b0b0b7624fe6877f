package tuples_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iterkit/tuples"
)

func TestError_ErrorMethod_StringContentReturned(t *testing.T) {
	t.Parallel()

	const err tuples.Error = "boom"
	require.Equal(t, "boom", err.Error())
}

func TestSequenceFunc_FuncGiven_IterateProxiesToIt(t *testing.T) {
	t.Parallel()

	var called int
	seq := tuples.SequenceFunc[int](func() tuples.Iterator[int] {
		called++
		return stubIterator{}
	})

	_ = seq.Iterate()
	_ = seq.Iterate()
	require.Equal(t, 2, called)
}

type stubIterator struct{}

func (stubIterator) Close() error { return nil }
func (stubIterator) Err() error   { return nil }
func (stubIterator) Next() bool   { return false }
func (stubIterator) Value() int   { return 0 }
