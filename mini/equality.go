package mini

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// EqualFunc decides whether a write is a no-op.
type EqualFunc[T any] func(a, b T) bool

func Comparable[T comparable](a, b T) bool {
	return a == b
}

// DeepEqual compares values structurally with cmp.Equal. Structs with
// unexported fields need an option such as cmp.AllowUnexported, otherwise
// writes fail with an *EqualityError.
func DeepEqual[T any](opts ...cmp.Option) EqualFunc[T] {
	return func(a, b T) bool {
		return cmp.Equal(a, b, opts...)
	}
}

// NeverEqual makes every write notify subscribers.
func NeverEqual[T any](a, b T) bool {
	return false
}

// EqualityError is returned by writes whose equality check panicked.
type EqualityError struct {
	Recovered any
}

func (e *EqualityError) Error() string {
	return fmt.Sprintf("mini: equality check failed: %v", e.Recovered)
}

func (e *EqualityError) Unwrap() error {
	err, _ := e.Recovered.(error)
	return err
}

func (eq EqualFunc[T]) compare(a, b T) (same bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			same, err = false, &EqualityError{Recovered: r}
		}
	}()
	return eq(a, b), nil
}
