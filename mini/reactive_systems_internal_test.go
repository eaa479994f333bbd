package mini

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackingSlotRestored(t *testing.T) {
	rs := CreateReactiveSystem()
	s := Signal(rs, 0)

	var runner *effectRunner
	require.NoError(t, Effect(rs, func() error {
		runner = rs.activeSub
		if s.Value() == 1 {
			return errors.New("fail")
		}
		if s.Value() == 2 {
			panic("fail")
		}
		return nil
	}))
	assert.Nil(t, rs.activeSub)
	assert.Zero(t, runner.running)

	assert.Error(t, s.SetValue(1))
	assert.Nil(t, rs.activeSub)
	assert.Zero(t, runner.running)

	assert.Panics(t, func() { _ = s.SetValue(2) })
	assert.Nil(t, rs.activeSub)
	assert.Zero(t, runner.running)
}

func TestSubscriptionsArePruned(t *testing.T) {
	rs := CreateReactiveSystem()
	useA := Signal(rs, true)
	a := Signal(rs, 0)
	b := Signal(rs, 0)

	require.NoError(t, Effect(rs, func() error {
		if useA.Value() {
			a.Value()
		} else {
			b.Value()
		}
		return nil
	}))
	assert.Equal(t, 1, a.subs.Cardinality())
	assert.Equal(t, 0, b.subs.Cardinality())

	for i := 0; i < 10; i++ {
		require.NoError(t, useA.SetValue(i%2 == 0))
	}
	assert.Equal(t, 0, a.subs.Cardinality())
	assert.Equal(t, 1, b.subs.Cardinality())
	assert.Equal(t, 1, useA.subs.Cardinality())
}

func TestWithMaxReentry(t *testing.T) {
	assert.Equal(t, DefaultMaxReentry, CreateReactiveSystem().maxReentry)
	assert.Equal(t, DefaultMaxReentry, CreateReactiveSystem(WithMaxReentry(0)).maxReentry)
	assert.Equal(t, 8, CreateReactiveSystem(WithMaxReentry(8)).maxReentry)
}
