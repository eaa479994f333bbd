package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/delaneyj/minisignals/mini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()
	a, err := newApp(mini.CreateReactiveSystem(), 10, 2)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	require.NoError(t, a.render(out))
	return a, out
}

func lines(out *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
}

func TestInitialRender(t *testing.T) {
	_, out := newTestApp(t)
	assert.Equal(t, []string{
		`<output id="counterValue">0</output>`,
		`<output id="totalValue" data-price="10" data-quantity="2">20</output>`,
		`<output id="displayName"></output>`,
	}, lines(out))
}

func TestInputUpdatesOnlyAffectedViews(t *testing.T) {
	a, out := newTestApp(t)
	out.Reset()

	require.NoError(t, a.handle("inc"))
	require.NoError(t, a.handle("inc"))
	require.NoError(t, a.handle("qty 5"))
	require.NoError(t, a.handle("qty 5"))
	require.NoError(t, a.handle("price 3"))
	require.NoError(t, a.handle("name <Ada>"))

	assert.Equal(t, []string{
		`<output id="counterValue">1</output>`,
		`<output id="counterValue">2</output>`,
		`<output id="totalValue" data-price="10" data-quantity="5">50</output>`,
		`<output id="totalValue" data-price="3" data-quantity="5">15</output>`,
		`<output id="displayName">&lt;Ada&gt;</output>`,
	}, lines(out))
}

func TestQuantityParsesLikeTheBrowser(t *testing.T) {
	a, out := newTestApp(t)
	out.Reset()

	require.NoError(t, a.handle("qty nope"))
	assert.Equal(t, 0, a.total.Value())
	assert.Equal(t, []string{
		`<output id="totalValue" data-price="10" data-quantity="0">0</output>`,
	}, lines(out))
}

func TestRunStopsAtQuit(t *testing.T) {
	a, out := newTestApp(t)
	out.Reset()

	err := a.run(strings.NewReader("inc\nbogus\n\ninc\nquit\ninc\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, a.counter.Peek())
}

func TestUnknownCommand(t *testing.T) {
	a, _ := newTestApp(t)
	assert.Error(t, a.handle("dance"))
	assert.ErrorIs(t, a.handle("quit"), errQuit)
}
