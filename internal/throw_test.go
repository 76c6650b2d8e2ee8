package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandleTriangulatePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandleTriangulatePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom!")
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom!")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("with runtime error", func(t *testing.T) {
		// Runtime errors are errors too, but they are bugs and must not be
		// swallowed.
		assert.Panics(t, func() {
			func() (err error) {
				defer func() {
					err = HandleTriangulatePanicRecover(recover())
				}()
				var points []Point
				_ = points[3]
				return nil
			}()
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}

func TestFatalWrapf(t *testing.T) {
	err := func() (err error) {
		defer func() {
			err = HandleTriangulatePanicRecover(recover())
		}()
		fatalWrapf(ErrUnknownMethod, "selector %d", 9)
		return nil
	}()
	assert.EqualError(t, err, "selector 9: unknown triangulation method")
	assert.Equal(t, ErrUnknownMethod, errors.Cause(err))
}
