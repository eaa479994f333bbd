package mini

// dependency is anything an effect can subscribe to while it runs.
type dependency interface {
	// subscribe reports whether sub was newly added.
	subscribe(sub *effectRunner) bool
	unsubscribe(sub *effectRunner)
}

// ErrFn is an effect body. A returned error goes to whoever caused the run.
type ErrFn func() error

// ComputeFn derives a computed value. On error the previous value is kept.
type ComputeFn[T any] func() (T, error)
