package iterators

// Pipe returns a connected sender and receiver pair.
// The receiver side implements the iterator contract while values are still being produced,
// which makes it suitable for streaming cursor implementations
// where the producer runs in its own goroutine (see the boltseq package).
func Pipe[T any]() (*PipeIn[T], *PipeOut[T]) {
	valueChan := make(chan T)
	doneChan := make(chan struct{}, 1)
	errChan := make(chan error, 1)
	return &PipeIn[T]{ValueChan: valueChan, DoneChan: doneChan, ErrChan: errChan},
		&PipeOut[T]{ValueChan: valueChan, DoneChan: doneChan, ErrChan: errChan}
}

// PipeOut is the receiver half of a pipe, an iterator fed by the sender half.
type PipeOut[T any] struct {
	ValueChan <-chan T
	DoneChan  chan<- struct{}
	ErrChan   <-chan error

	value   T
	lastErr error
}

// Close signals back to the sender that the receiver stopped listening.
func (i *PipeOut[T]) Close() error {
	defer func() { recover() }()
	i.DoneChan <- struct{}{}
	close(i.DoneChan)
	return nil
}

// Next blocks until the sender provides the next value or closes the feed.
func (i *PipeOut[T]) Next() bool {
	v, ok := <-i.ValueChan
	if !ok {
		return false
	}

	i.value = v
	return true
}

// Err returns the error the sender wanted to present to the receiver.
func (i *PipeOut[T]) Err() error {
	select {
	case err, ok := <-i.ErrChan:
		if ok {
			i.lastErr = err
		}
	default:
	}

	return i.lastErr
}

func (i *PipeOut[T]) Value() T {
	return i.value
}

// PipeIn provides access to feed the receiver side with values.
type PipeIn[T any] struct {
	ValueChan chan<- T
	DoneChan  <-chan struct{}
	ErrChan   chan<- error
}

// Value sends a value to the receiver side.
// It reports false if the receiver already hung up and no more values are expected.
func (f *PipeIn[T]) Value(v T) (ok bool) {
	select {
	case f.ValueChan <- v:
		return true
	case <-f.DoneChan:
		return false
	}
}

// Error sends an error object to the receiver side, making it accessible through Err().
func (f *PipeIn[T]) Error(err error) {
	if err == nil {
		return
	}

	defer func() { recover() }()
	f.ErrChan <- err
}

// Close closes the feed, which eventually notifies the receiver that no more value is expected.
func (f *PipeIn[T]) Close() error {
	defer func() { recover() }()
	close(f.ValueChan)
	close(f.ErrChan)
	return nil
}
