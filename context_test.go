package mui_test

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/mui"
)

func TestGUIBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	ui := mui.New(renderer, mui.WithStyle(mui.GTAStyle()))

	ctx := ui.Begin()
	require.NotNil(t, ctx)
	if ctx.BeginWindow("Basic Window", mui.NewRect(50, 50, 300, 200)) {
		ctx.LayoutRow([]float32{80, mui.Fill}, 0)
		ctx.Label("Label:")
		ctx.Button("Click Me")
		ctx.EndWindow()
	}
	require.NoError(t, ui.End())

	assert.Equal(t, 1, renderer.renderCalls)
	assert.Len(t, renderer.commands, ctx.CommandCount())
	assert.Contains(t, texts(ctx), "Click Me")
}

func TestGUIRenderError(t *testing.T) {
	failure := errors.New("device lost")
	ui := mui.New(&mockRenderer{err: failure})

	ui.Begin()
	err := ui.End()
	require.Error(t, err)
	assert.ErrorIs(t, err, failure)
	assert.Contains(t, err.Error(), "rendering frame 1")
}

func TestGUIResize(t *testing.T) {
	renderer := &mockRenderer{}
	ui := mui.New(renderer)
	ui.Resize(640, 480)
	assert.Equal(t, 640, renderer.width)
	assert.Equal(t, 480, renderer.height)

	mui.New(nil).Resize(1, 1)
}

func TestEndFrameTwice(t *testing.T) {
	ctx := mui.NewContext()
	require.NoError(t, ctx.BeginFrame())
	require.NoError(t, ctx.EndFrame())

	frame := ctx.Frame()
	assert.ErrorIs(t, ctx.EndFrame(), mui.ErrNotInFrame)
	assert.Equal(t, frame, ctx.Frame())
	assert.False(t, ctx.InFrame())
}

func TestBeginFrameTwice(t *testing.T) {
	ctx := mui.NewContext()
	require.NoError(t, ctx.BeginFrame())
	ctx.BeginWindow("Left Open", mui.NewRect(0, 0, 100, 100))

	assert.ErrorIs(t, ctx.BeginFrame(), mui.ErrAlreadyInFrame)
	assert.True(t, ctx.Diagnostics().Has(mui.DiagFrameState))
	assert.Nil(t, ctx.CurrentContainer(), "stacks are reset")

	require.NoError(t, ctx.EndFrame())
	assert.True(t, ctx.Diagnostics().Has(mui.DiagFrameState))

	runFrame(t, ctx, func(*mui.Context) {})
	assert.Zero(t, ctx.Diagnostics())
}

func TestCommandsOnlyAfterEndFrame(t *testing.T) {
	ctx := mui.NewContext()
	var cur mui.CommandCursor

	_, ok := ctx.NextCommand(&cur)
	assert.False(t, ok, "no frame completed yet")

	require.NoError(t, ctx.BeginFrame())
	window("W", mui.NewRect(0, 0, 100, 100), nil)(ctx)
	_, ok = ctx.NextCommand(&cur)
	assert.False(t, ok, "frame in progress")
	assert.Empty(t, slices.Collect(ctx.Commands()))
	require.NoError(t, ctx.EndFrame())

	var manual []mui.Command
	for cmd, ok := ctx.NextCommand(&cur); ok; cmd, ok = ctx.NextCommand(&cur) {
		manual = append(manual, cmd)
	}
	assert.Len(t, manual, ctx.CommandCount())
	assert.NotEmpty(t, manual)

	// Iteration is restartable and finite.
	assert.Equal(t, manual, slices.Collect(ctx.Commands()))
	assert.Equal(t, manual, slices.Collect(ctx.Commands()))
	_, ok = ctx.NextCommand(&cur)
	assert.False(t, ok, "exhausted cursor stays exhausted")

	// A stale cursor restarts on the next frame.
	runFrame(t, ctx, window("W", mui.NewRect(0, 0, 100, 100), nil))
	first, ok := ctx.NextCommand(&cur)
	require.True(t, ok)
	assert.Equal(t, manual[0], first)
}

func TestCommandOverflow(t *testing.T) {
	ctx := mui.NewContext(mui.WithCommandCapacity(4))

	runFrame(t, ctx, window("W", mui.NewRect(0, 0, 200, 200), func(ctx *mui.Context) {
		ctx.Label("one")
		ctx.Label("two")
	}))
	assert.True(t, ctx.Overflowed())
	assert.True(t, ctx.Diagnostics().Has(mui.DiagCommandOverflow))
	assert.Equal(t, 4, ctx.CommandCount())
	assert.Len(t, slices.Collect(ctx.Commands()), 4)

	runFrame(t, ctx, func(*mui.Context) {})
	assert.False(t, ctx.Overflowed(), "cleared at BeginFrame")
	assert.Zero(t, ctx.CommandCount())
}

func TestLooseCommandsPaintFirst(t *testing.T) {
	ctx := mui.NewContext()
	marker := mui.RGBA(255, 0, 0, 255)

	runFrame(t, ctx, func(ctx *mui.Context) {
		window("W", mui.NewRect(0, 0, 100, 100), nil)(ctx)
		ctx.DrawRect(mui.NewRect(500, 500, 5, 5), marker)
	})

	first, ok := ctx.NextCommand(&mui.CommandCursor{})
	require.True(t, ok)
	assert.Equal(t, mui.CommandRect, first.Kind)
	assert.Equal(t, marker, first.Color)
}

func TestDrawOutsideFrame(t *testing.T) {
	ctx := mui.NewContext()
	ctx.DrawRect(mui.NewRect(0, 0, 10, 10), mui.ColorWhite)
	assert.Zero(t, ctx.CommandCount())
	assert.True(t, ctx.Diagnostics().Has(mui.DiagFrameState))
}

func TestSetStyleDeferredToNextFrame(t *testing.T) {
	ctx := mui.NewContext()
	wide := mui.DefaultStyle()
	wide.Padding = 20

	require.NoError(t, ctx.BeginFrame())
	ctx.SetStyle(wide)
	assert.Equal(t, mui.DefaultStyle().Padding, ctx.Style().Padding)
	require.NoError(t, ctx.EndFrame())

	require.NoError(t, ctx.BeginFrame())
	assert.Equal(t, float32(20), ctx.Style().Padding)
	require.NoError(t, ctx.EndFrame())
}

func TestUnbalancedContainers(t *testing.T) {
	ctx := mui.NewContext()

	runFrame(t, ctx, func(ctx *mui.Context) {
		ctx.EndWindow()
	})
	assert.True(t, ctx.Diagnostics().Has(mui.DiagUnbalancedContainer))

	runFrame(t, ctx, func(ctx *mui.Context) {
		ctx.BeginWindow("Never Ended", mui.NewRect(0, 0, 100, 100))
	})
	assert.True(t, ctx.Diagnostics().Has(mui.DiagUnbalancedContainer))

	runFrame(t, ctx, window("Never Ended", mui.NewRect(0, 0, 100, 100), nil))
	assert.Zero(t, ctx.Diagnostics(), "recovers on the next frame")
}

func TestIDStackOverflow(t *testing.T) {
	ctx := mui.NewContext()

	runFrame(t, ctx, func(ctx *mui.Context) {
		for i := range mui.IDStackSize {
			ctx.PushIDInt(i)
		}
		top := ctx.CurrentID()
		before := ctx.GetID("x")

		ctx.PushIDInt(99)
		assert.True(t, ctx.Diagnostics().Has(mui.DiagStackOverflow))
		ctx.PopID()
		assert.Equal(t, top, ctx.CurrentID(), "popping the dropped push keeps the scope")
		assert.Equal(t, before, ctx.GetID("x"))

		for range mui.IDStackSize {
			ctx.PopID()
		}
		assert.False(t, ctx.Diagnostics().Has(mui.DiagStackUnderflow))
		assert.Zero(t, ctx.CurrentID())
		ctx.PopID()
		assert.True(t, ctx.Diagnostics().Has(mui.DiagStackUnderflow))
	})
}

func TestDiagnosticString(t *testing.T) {
	assert.Equal(t, "none", mui.Diagnostic(0).String())
	d := mui.DiagCommandOverflow | mui.DiagFrameState
	assert.Equal(t, "command-overflow|frame-state", d.String())
	assert.True(t, d.Has(mui.DiagFrameState))
	assert.False(t, d.Has(mui.DiagStackOverflow))
}

func TestIndependentContexts(t *testing.T) {
	a := mui.NewContext()
	b := mui.NewContext()

	runFrame(t, a, window("Shared", mui.NewRect(10, 10, 100, 100), nil))
	runFrame(t, b, window("Shared", mui.NewRect(50, 50, 100, 100), nil))

	assert.Equal(t, mui.NewRect(10, 10, 100, 100), a.Container("Shared").Rect)
	assert.Equal(t, mui.NewRect(50, 50, 100, 100), b.Container("Shared").Rect)
}
