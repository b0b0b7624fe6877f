package iterators

import (
	"github.com/iterkit/tuples"
)

// Slice adapts an in-memory slice into a tuples.Sequence.
// Each Iterate call gives a fresh cursor over the same backing slice,
// so the sequence can be traversed any number of times.
func Slice[T any](slice []T) *SliceSeq[T] {
	return &SliceSeq[T]{Slice: slice}
}

type SliceSeq[T any] struct {
	Slice []T
}

func (s *SliceSeq[T]) Iterate() tuples.Iterator[T] {
	return &SliceIter[T]{Slice: s.Slice}
}

type SliceIter[T any] struct {
	Slice []T

	closed bool
	index  int
	value  T
}

func (i *SliceIter[T]) Close() error {
	i.closed = true
	return nil
}

func (i *SliceIter[T]) Err() error {
	return nil
}

func (i *SliceIter[T]) Next() bool {
	if i.closed {
		return false
	}

	if len(i.Slice) <= i.index {
		return false
	}

	i.value = i.Slice[i.index]
	i.index++
	return true
}

func (i *SliceIter[T]) Value() T {
	return i.value
}
