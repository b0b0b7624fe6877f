package tuples

// Error is a string based type that allows you to declare ErrConstantValues for your packages
type Error string

// Error implement the error interface, so the Error string type can be used as an error object
func (errStr Error) Error() string { return string(errStr) }

const (
	// ErrClosed is the value that will be returned if an iterator is being used after it was closed
	ErrClosed Error = "Closed"
	// ErrNoNextElement signals that the iteration had no next element,
	// used by helpers that must yield a value from an iterator (iterators.First).
	ErrNoNextElement Error = "NoNextElement"
	// ErrIterationStarted is returned when a sequence is registered
	// into an enumeration that already handed out an iterator.
	ErrIterationStarted Error = "IterationStarted"
)
