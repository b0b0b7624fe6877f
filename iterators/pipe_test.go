package iterators_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iterkit/tuples/iterators"
)

func TestPipe_SenderSendsValues_ReceiverIteratesThem(t *testing.T) {
	t.Parallel()

	in, out := iterators.Pipe[int]()

	go func() {
		defer in.Close()
		for _, v := range []int{1, 2, 3} {
			if !in.Value(v) {
				return
			}
		}
	}()

	vs, err := iterators.Collect[int](out)
	require.Nil(t, err)
	require.Equal(t, []int{1, 2, 3}, vs)
}

func TestPipe_SenderReportsError_ReceiverErrReturnsIt(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("boom")
	in, out := iterators.Pipe[int]()

	go func() {
		defer in.Close()
		in.Error(expectedErr)
	}()

	require.False(t, out.Next())
	require.Equal(t, expectedErr, out.Err())
}

func TestPipe_ReceiverCloses_SenderObservesHangup(t *testing.T) {
	t.Parallel()

	in, out := iterators.Pipe[int]()
	hungup := make(chan bool)

	go func() {
		ok := true
		for ok {
			ok = in.Value(42)
		}
		hungup <- true
	}()

	require.True(t, out.Next())
	require.Nil(t, out.Close())
	require.True(t, <-hungup)
}
