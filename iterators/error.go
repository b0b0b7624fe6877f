package iterators

// NewError returns an Iterator whose only ability is returning an Err, it never has a next element.
// This can be used when an external resource encounters an unexpected,
// non recoverable error while a cursor is being opened.
func NewError[T any](err error) *Error[T] {
	return &Error[T]{err: err}
}

type Error[T any] struct {
	err error
}

func (i *Error[T]) Close() error {
	return nil
}

func (i *Error[T]) Next() bool {
	return false
}

func (i *Error[T]) Err() error {
	return i.err
}

func (i *Error[T]) Value() T {
	var v T
	return v
}
