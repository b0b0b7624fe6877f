package iterators

import (
	"github.com/iterkit/tuples"
)

// Empty is used to represent a nil result with the Null object pattern.
// It is both an empty tuples.Sequence and an already exhausted cursor.
func Empty[T any]() *EmptyIter[T] {
	return &EmptyIter[T]{}
}

type EmptyIter[T any] struct{}

func (i *EmptyIter[T]) Iterate() tuples.Iterator[T] {
	return &EmptyIter[T]{}
}

func (i *EmptyIter[T]) Close() error {
	return nil
}

func (i *EmptyIter[T]) Next() bool {
	return false
}

func (i *EmptyIter[T]) Err() error {
	return nil
}

func (i *EmptyIter[T]) Value() T {
	var v T
	return v
}
