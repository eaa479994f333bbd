package mini

import "errors"

// DefaultMaxReentry bounds how many times one effect may be nested inside its
// own run before the system assumes a dependency cycle.
const DefaultMaxReentry = 100

// ErrCycleDetected is returned, possibly joined with other errors, by the
// write or Effect call whose propagation re-entered one effect more than the
// allowed number of times. Match it with errors.Is.
var ErrCycleDetected = errors.New("mini: effect re-entered itself too often, probable dependency cycle")

// ReactiveSystem owns the tracking context shared by every signal, computed
// and effect created from it. It is not safe for concurrent use; independent
// systems do not interact.
type ReactiveSystem struct {
	activeSub  *effectRunner
	pauseStack []*effectRunner

	maxReentry int
}

// Option configures a ReactiveSystem.
type Option func(*ReactiveSystem)

// WithMaxReentry sets how many times an effect may run nested inside its own
// run. Acyclic graphs of any depth never re-enter an effect; an effect that
// writes a signal it reads re-enters once per write. Values <= 0 keep
// DefaultMaxReentry.
func WithMaxReentry(n int) Option {
	return func(rs *ReactiveSystem) {
		if n > 0 {
			rs.maxReentry = n
		}
	}
}

func CreateReactiveSystem(opts ...Option) *ReactiveSystem {
	rs := &ReactiveSystem{maxReentry: DefaultMaxReentry}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

// PauseTracking stops reads from subscribing the running effect until the
// matching ResumeTracking. Calls must be paired.
func (rs *ReactiveSystem) PauseTracking() {
	rs.pauseStack = append(rs.pauseStack, rs.activeSub)
	rs.activeSub = nil
}

// ResumeTracking undoes the latest PauseTracking. It panics when there is no
// PauseTracking to undo.
func (rs *ReactiveSystem) ResumeTracking() {
	lastIdx := len(rs.pauseStack) - 1
	if lastIdx < 0 {
		panic("mini: ResumeTracking called without a matching PauseTracking")
	}
	rs.activeSub = rs.pauseStack[lastIdx]
	rs.pauseStack = rs.pauseStack[:lastIdx]
}

// Untracked runs fn with dependency tracking paused.
func (rs *ReactiveSystem) Untracked(fn func()) {
	rs.PauseTracking()
	defer rs.ResumeTracking()
	fn()
}

// track records the active effect, if any, as a subscriber of dep.
func (rs *ReactiveSystem) track(dep dependency) {
	sub := rs.activeSub
	if sub == nil {
		return
	}
	if dep.subscribe(sub) {
		sub.deps.Add(dep)
	}
}
