// Package tuples provides capabilities for lazy traversal of value sequences,
// most notably for enumerating the cartesian product of several sequences
// without materializing the product in memory.
//
// The root package only declares the capability interfaces;
// implementations live in the iterators and boltseq subpackages.
package tuples

import (
	"io"
)

// Iterator define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
// https://en.wikipedia.org/wiki/Iterator_pattern
type Iterator[V any] interface {
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene
	// for all other cases where the underling io is handled on a higher level, it should simply return nil
	io.Closer
	// Err return the error cause.
	Err() error
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
}

// Sequence represents an ordered, finite set of values
// that can be traversed from the beginning any number of times.
// Each Iterate call must return a brand-new, independent Iterator
// positioned before the first element.
//
// Restartability is part of the contract: consumers such as iterators.Product
// re-open cursors on a sequence during a single enumeration pass,
// so a single-pass stream must not be registered as a Sequence
// unless it can be replayed from its origin.
// Mutating the underlying data while cursors are open is undefined behaviour;
// cursor validity follows the iteration contract of whatever backs the sequence.
type Sequence[V any] interface {
	// Iterate returns a new Iterator that traverses the sequence from its first element.
	Iterate() Iterator[V]
}

// SequenceFunc enables to use anonymous functions as a valid Sequence.
type SequenceFunc[V any] func() Iterator[V]

// Iterate proxies the call to the wrapped function.
func (fn SequenceFunc[V]) Iterate() Iterator[V] {
	return fn()
}
