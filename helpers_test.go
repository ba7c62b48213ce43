package mui_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/mui"
)

// mockRenderer records what it is asked to draw.
type mockRenderer struct {
	renderCalls int
	commands    []mui.Command
	err         error
	width       int
	height      int
}

func (m *mockRenderer) Render(cmds iter.Seq[mui.Command]) error {
	m.renderCalls++
	m.commands = slices.Collect(cmds)
	return m.err
}

func (m *mockRenderer) Resize(width, height int) {
	m.width, m.height = width, height
}

// runFrame wraps body in BeginFrame/EndFrame.
func runFrame(t *testing.T, ctx *mui.Context, body func(ctx *mui.Context)) {
	t.Helper()
	require.NoError(t, ctx.BeginFrame())
	body(ctx)
	require.NoError(t, ctx.EndFrame())
}

// click queues a press and release of the primary button at (x, y), both
// landing in the next frame.
func click(in *mui.InputState, x, y float32) {
	in.SetMousePos(x, y)
	in.SetMouseButton(mui.MouseButtonLeft, true)
	in.SetMouseButton(mui.MouseButtonLeft, false)
}

// texts returns the strings of every text command in paint order.
func texts(ctx *mui.Context) []string {
	var out []string
	for cmd := range ctx.Commands() {
		if cmd.Kind == mui.CommandText {
			out = append(out, cmd.Text)
		}
	}
	return out
}

// window declares a window whose body runs fn.
func window(title string, r mui.Rect, fn func(ctx *mui.Context), opts ...mui.Option) func(ctx *mui.Context) {
	return func(ctx *mui.Context) {
		if ctx.BeginWindow(title, r, opts...) {
			if fn != nil {
				fn(ctx)
			}
			ctx.EndWindow()
		}
	}
}

func countOf(items []string, s string) int {
	n := 0
	for _, item := range items {
		if item == s {
			n++
		}
	}
	return n
}
