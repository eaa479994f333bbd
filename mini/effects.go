package mini

import mapset "github.com/deckarep/golang-set/v2"

type effectRunner struct {
	rs   *ReactiveSystem
	fn   ErrFn
	deps mapset.Set[dependency]

	// running counts the runs of this effect currently on the stack.
	running int
}

func newEffectRunner(rs *ReactiveSystem, fn ErrFn) *effectRunner {
	return &effectRunner{
		rs:   rs,
		fn:   fn,
		deps: mapset.NewThreadUnsafeSet[dependency](),
	}
}

// Effect runs fn immediately and again whenever a signal it read during its
// latest run changes. The error of the first run is returned; errors of later
// runs are returned by the SetValue that triggered them.
func Effect(rs *ReactiveSystem, fn ErrFn) error {
	return rs.runEffect(newEffectRunner(rs, fn))
}

func (rs *ReactiveSystem) runEffect(e *effectRunner) error {
	if e.running > rs.maxReentry {
		return ErrCycleDetected
	}

	// Subscriptions always mirror the reads of the latest run.
	e.clearDeps()

	prevSub := rs.activeSub
	rs.activeSub = e
	e.running++
	defer func() {
		e.running--
		rs.activeSub = prevSub
	}()

	return e.fn()
}

func (e *effectRunner) clearDeps() {
	if e.deps.Cardinality() == 0 {
		return
	}
	e.deps.Each(func(dep dependency) bool {
		dep.unsubscribe(e)
		return false
	})
	e.deps.Clear()
}
