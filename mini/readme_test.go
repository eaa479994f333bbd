package mini_test

import (
	"log"
	"testing"

	"github.com/delaneyj/minisignals/mini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// from README
func TestBasicUsage(t *testing.T) {
	rs := mini.CreateReactiveSystem()
	count := mini.Signal(rs, 1)
	doubleCount, err := mini.Computed(rs, func() (int, error) {
		return count.Value() * 2, nil
	})
	require.NoError(t, err)

	require.NoError(t, mini.Effect(rs, func() error {
		log.Printf("Count is: %d", count.Value())
		return nil
	}))

	assert.Equal(t, 2, doubleCount.Value())
	require.NoError(t, count.SetValue(2))
	assert.Equal(t, 4, doubleCount.Value())
}

// from README
func TestTwoWayBinding(t *testing.T) {
	rs := mini.CreateReactiveSystem()
	name := mini.Signal(rs, "")

	displayed := ""
	require.NoError(t, mini.Effect(rs, func() error {
		displayed = name.Value()
		return nil
	}))

	for _, typed := range []string{"J", "Jo", "Joe"} {
		require.NoError(t, name.SetValue(typed))
		assert.Equal(t, typed, displayed)
	}
}
