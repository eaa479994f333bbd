package mini

import "fmt"

// ReadonlySignal is a derived value kept in sync by an internal effect.
type ReadonlySignal[T any] struct {
	signal *WriteableSignal[T]
}

func (c *ReadonlySignal[T]) Value() T {
	return c.signal.Value()
}

func (c *ReadonlySignal[T]) Peek() T {
	return c.signal.Peek()
}

// Computed memoizes fn. It is evaluated once here and then every time one of
// the signals it read on its latest evaluation changes; dependents are only
// notified when the result differs under ==. Creation calls fn exactly once:
// the first evaluation both seeds the value and records the dependencies.
func Computed[T comparable](rs *ReactiveSystem, fn ComputeFn[T]) (*ReadonlySignal[T], error) {
	return ComputedWithEqual(rs, fn, Comparable[T])
}

// ComputedWithEqual is Computed with an explicit equality policy.
//
// When two computeds share an upstream signal, an effect reading both runs
// once per computed that changed and may see one updated before the other.
func ComputedWithEqual[T any](rs *ReactiveSystem, fn ComputeFn[T], equal EqualFunc[T]) (*ReadonlySignal[T], error) {
	c := &ReadonlySignal[T]{}

	e := newEffectRunner(rs, func() error {
		v, err := fn()
		if err != nil {
			return err
		}
		if c.signal == nil {
			c.signal = SignalWithEqual(rs, v, equal)
			return nil
		}
		return c.signal.SetValue(v)
	})
	if err := rs.runEffect(e); err != nil {
		e.clearDeps()
		return nil, fmt.Errorf("error while computing initial value: %w", err)
	}

	return c, nil
}
