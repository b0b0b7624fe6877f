package iterators

import (
	"github.com/iterkit/tuples"
)

// NewProduct returns a Product enumerating the cartesian product of the given sequences.
// When populated with sequences
//
//	seq_1, seq_2, seq_3, ...
//
// its iterator yields n-tuples of the form
//
//	x_{1,i}, x_{2,j}, x_{3,k}, ...
//
// where x_{m,n} denotes the n'th element of sequence m.
// Tuples come in lexicographic order over the sequence indices,
// the last registered sequence varying fastest, like the digits of an odometer.
func NewProduct[T any](seqs ...tuples.Sequence[T]) *Product[T] {
	p := &Product[T]{}
	for _, seq := range seqs {
		_ = p.Add(seq)
	}
	return p
}

// Product holds the ordered list of sequences whose cartesian product can be enumerated.
// The zero value is an empty product that can be populated with Add.
//
// Registration must finish before the first Iterate call;
// the sequences of a live enumeration are fixed.
// Every registered sequence must support repeated traversal from the beginning,
// because the enumeration re-opens cursors whenever a position wraps around.
type Product[T any] struct {
	seqs    []tuples.Sequence[T]
	started bool
}

// Add registers one more sequence at the end of the index vector.
// It returns tuples.ErrIterationStarted once Iterate has been called.
func (p *Product[T]) Add(seq tuples.Sequence[T]) error {
	if p.started {
		return tuples.ErrIterationStarted
	}
	p.seqs = append(p.seqs, seq)
	return nil
}

// Iterate returns an iterator over the n-tuples of the cartesian product.
// Each call starts an independent enumeration pass; a pass itself cannot be rewound.
// The i'th element of a yielded tuple is an element from the i'th registered sequence.
//
// The yielded tuples are fresh snapshots, the caller may retain or modify them freely.
//
// A product over zero sequences yields a single empty tuple,
// while a product where any sequence is empty yields no tuple at all.
func (p *Product[T]) Iterate() tuples.Iterator[[]T] {
	p.started = true
	seqs := make([]tuples.Sequence[T], len(p.seqs))
	copy(seqs, p.seqs)
	return &productIter[T]{
		seqs:    seqs,
		cursors: make([]tuples.Iterator[T], len(seqs)),
		buffer:  make([]T, len(seqs)),
	}
}

type productState int8

const (
	productPristine productState = iota
	productActive
	productDone
)

// productIter is the enumeration state machine over one pass of the product.
// It keeps one live cursor per sequence and a tuple buffer with one slot per sequence.
type productIter[T any] struct {
	seqs    []tuples.Sequence[T]
	cursors []tuples.Iterator[T]
	buffer  []T

	state  productState
	err    error
	closed bool
}

func (i *productIter[T]) Next() bool {
	if i.closed || i.err != nil || i.state == productDone {
		return false
	}
	if !i.seekNext() {
		i.state = productDone
		return false
	}
	return true
}

func (i *productIter[T]) seekNext() bool {
	if i.state == productPristine {
		i.state = productActive

		for n, seq := range i.seqs {
			cursor := seq.Iterate()
			i.cursors[n] = cursor
			if !cursor.Next() {
				// one of the sequences is empty, so is the whole product
				i.fail(cursor.Err())
				return false
			}
			i.buffer[n] = cursor.Value()
		}
		return true
	}

	// odometer advance: the rightmost cursor moves on every step,
	// a wraparound carries into the neighbour on its left
	for n := len(i.cursors) - 1; n >= 0; n-- {
		cursor := i.cursors[n]

		if cursor.Next() {
			i.buffer[n] = cursor.Value()
			return true
		}
		if i.fail(cursor.Err()) {
			return false
		}
		if i.fail(cursor.Close()) {
			return false
		}

		// this position wrapped around,
		// restart it from the first element and carry leftwards
		cursor = i.seqs[n].Iterate()
		i.cursors[n] = cursor
		if !cursor.Next() {
			// the sequence had elements when the pass began,
			// an empty restart means it was mutated meanwhile
			i.fail(cursor.Err())
			return false
		}
		i.buffer[n] = cursor.Value()
	}

	return false
}

func (i *productIter[T]) fail(err error) bool {
	if err != nil && i.err == nil {
		i.err = err
	}
	return err != nil
}

// Value returns a snapshot of the current tuple.
// The returned slice is not reused between calls.
func (i *productIter[T]) Value() []T {
	tuple := make([]T, len(i.buffer))
	copy(tuple, i.buffer)
	return tuple
}

func (i *productIter[T]) Err() error {
	return i.err
}

// Close releases every open cursor of the enumeration.
func (i *productIter[T]) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true

	var err error
	for _, cursor := range i.cursors {
		if cursor == nil {
			continue
		}
		if cErr := cursor.Close(); cErr != nil && err == nil {
			err = cErr
		}
	}
	return err
}
