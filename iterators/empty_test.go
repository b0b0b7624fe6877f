package iterators_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iterkit/tuples"
	"github.com/iterkit/tuples/iterators"
)

var (
	_ tuples.Sequence[int] = iterators.Empty[int]()
	_ tuples.Iterator[int] = iterators.Empty[int]()
)

func TestEmpty_AsCursor_NeverHasNext(t *testing.T) {
	t.Parallel()

	i := iterators.Empty[string]()

	require.False(t, i.Next())
	require.Nil(t, i.Err())
	require.Zero(t, i.Value())
	require.Nil(t, i.Close())
}

func TestEmpty_AsSequence_ProductOverItIsEmpty(t *testing.T) {
	t.Parallel()

	p := iterators.NewProduct[string](
		iterators.Slice([]string{"a"}),
		iterators.Empty[string](),
	)

	total, err := iterators.Count(p.Iterate())
	require.Nil(t, err)
	require.Equal(t, 0, total)
}
