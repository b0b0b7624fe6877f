package iterators

import (
	"github.com/iterkit/tuples"
)

// First returns the first value of the iterator and closes it.
// When the iteration holds no element at all, tuples.ErrNoNextElement is returned.
func First[T any](i tuples.Iterator[T]) (_ T, err error) {
	defer func() {
		cErr := i.Close()
		if err == nil {
			err = cErr
		}
	}()

	var v T
	if !i.Next() {
		if iErr := i.Err(); iErr != nil {
			return v, iErr
		}
		return v, tuples.ErrNoNextElement
	}

	return i.Value(), i.Err()
}
