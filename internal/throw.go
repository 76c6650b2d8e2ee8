package internal

import "github.com/pkg/errors"

// Threading errors through every geometric helper would add a lot of noise for
// conditions that only arise from programming mistakes (bad indices, unknown
// method selectors). Instead, we panic with a TriangulateError, and the public
// API recovers to convert it to an error.

var (
	ErrTooFewVertices = errors.New("polygon needs at least two vertices")
	ErrUnknownMethod  = errors.New("unknown triangulation method")
	ErrInvalidConfig  = errors.New("invalid editor config")
)

type TriangulateError struct {
	cause error
}

func (e TriangulateError) Error() string {
	return e.cause.Error()
}

// Cause makes the error compatible with errors.Cause.
func (e TriangulateError) Cause() error {
	return e.cause
}

func (e TriangulateError) Unwrap() error {
	return e.cause
}

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

// Panic with a TriangulateError wrapping a sentinel.
func fatalWrapf(err error, format string, args ...interface{}) {
	panic(TriangulateError{errors.Wrapf(err, format, args...)})
}

// Pass recover() in. Returns nil if there was no panic, the error if the panic
// came from fatalf, and re-panics otherwise.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
