package mini

import (
	"errors"

	mapset "github.com/deckarep/golang-set/v2"
)

type WriteableSignal[T any] struct {
	rs    *ReactiveSystem
	value T
	equal EqualFunc[T]
	subs  mapset.Set[*effectRunner]
}

// Signal creates a cell compared with ==.
func Signal[T comparable](rs *ReactiveSystem, initialValue T) *WriteableSignal[T] {
	return SignalWithEqual(rs, initialValue, Comparable[T])
}

// SignalWithEqual creates a cell whose writes are skipped when equal reports
// the new value matches the stored one.
func SignalWithEqual[T any](rs *ReactiveSystem, initialValue T, equal EqualFunc[T]) *WriteableSignal[T] {
	return &WriteableSignal[T]{
		rs:    rs,
		value: initialValue,
		equal: equal,
		subs:  mapset.NewThreadUnsafeSet[*effectRunner](),
	}
}

func (s *WriteableSignal[T]) Value() T {
	s.rs.track(s)
	return s.value
}

// Peek returns the current value without subscribing the running effect.
func (s *WriteableSignal[T]) Peek() T {
	return s.value
}

func (s *WriteableSignal[T]) SetValue(v T) error {
	same, err := s.equal.compare(s.value, v)
	if err != nil {
		return err
	}
	if same {
		return nil
	}
	s.value = v
	return s.notify()
}

// Update replaces the value with fn applied to the current one. The read of
// the current value is not tracked.
func (s *WriteableSignal[T]) Update(fn func(oldValue T) T) error {
	return s.SetValue(fn(s.value))
}

func (s *WriteableSignal[T]) notify() error {
	if s.subs.Cardinality() == 0 {
		return nil
	}

	var errs []error
	for _, sub := range s.subs.ToSlice() {
		// An earlier subscriber in this pass may have rerun sub, which then
		// stopped reading s.
		if !s.subs.Contains(sub) {
			continue
		}
		if err := s.rs.runEffect(sub); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *WriteableSignal[T]) subscribe(sub *effectRunner) bool {
	return s.subs.Add(sub)
}

func (s *WriteableSignal[T]) unsubscribe(sub *effectRunner) {
	s.subs.Remove(sub)
}
