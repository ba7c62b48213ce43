package mui_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/mui"
)

func TestClosedWindowSkipsBody(t *testing.T) {
	ctx := mui.NewContext()
	ran := false
	body := func(*mui.Context) { ran = true }

	runFrame(t, ctx, window("Hidden", mui.NewRect(0, 0, 100, 100), body, mui.StartClosed()))
	assert.False(t, ran)
	assert.Zero(t, ctx.CommandCount())

	ctx.OpenContainer("Hidden")
	runFrame(t, ctx, window("Hidden", mui.NewRect(0, 0, 100, 100), body, mui.StartClosed()))
	assert.True(t, ran)
	assert.NotZero(t, ctx.CommandCount())
}

func TestCloseButton(t *testing.T) {
	ctx := mui.NewContext()
	rect := mui.NewRect(0, 0, 200, 200)

	runFrame(t, ctx, window("Closable", rect, nil))

	// The close button is the square at the right end of the title bar.
	click(ctx.Input(), 188, 12)
	runFrame(t, ctx, window("Closable", rect, nil))
	assert.False(t, ctx.Container("Closable").Open())

	var opened bool
	runFrame(t, ctx, func(ctx *mui.Context) {
		opened = ctx.BeginWindow("Closable", rect)
	})
	assert.False(t, opened)
	assert.Zero(t, ctx.CommandCount())
}

func TestWindowRectPersists(t *testing.T) {
	ctx := mui.NewContext()
	first := mui.NewRect(50, 50, 300, 200)

	runFrame(t, ctx, window("Basic Window", first, nil))
	runFrame(t, ctx, window("Basic Window", mui.NewRect(0, 0, 10, 10), func(ctx *mui.Context) {
		assert.Equal(t, first, ctx.CurrentContainer().Rect)
	}))
	assert.Equal(t, first, ctx.Container("Basic Window").Rect)
}

func TestWindowDragByTitle(t *testing.T) {
	ctx := mui.NewContext()
	in := ctx.Input()
	rect := mui.NewRect(50, 50, 300, 200)
	declare := window("Drag Me", rect, nil)

	runFrame(t, ctx, declare)

	in.SetMousePos(100, 60)
	runFrame(t, ctx, declare)

	in.SetMouseButton(mui.MouseButtonLeft, true)
	runFrame(t, ctx, declare)
	assert.Equal(t, rect, ctx.Container("Drag Me").Rect, "pressing alone does not move")

	in.SetMousePos(130, 80)
	runFrame(t, ctx, declare)
	assert.Equal(t, mui.NewRect(80, 70, 300, 200), ctx.Container("Drag Me").Rect)

	in.SetMouseButton(mui.MouseButtonLeft, false)
	in.SetMousePos(160, 100)
	runFrame(t, ctx, declare)
	assert.Equal(t, mui.NewRect(80, 70, 300, 200), ctx.Container("Drag Me").Rect)
}

func TestHitPrecedence(t *testing.T) {
	ctx := mui.NewContext()
	ctx.Input().SetMousePos(150, 150)

	var idA, idB mui.ID
	declare := func(ctx *mui.Context) {
		window("A", mui.NewRect(0, 0, 200, 200), func(ctx *mui.Context) {
			ctx.LayoutRow([]float32{mui.Fill}, mui.Fill)
			idA = ctx.GetID("a")
			ctx.Button("a")
		})(ctx)
		window("B", mui.NewRect(100, 100, 200, 200), func(ctx *mui.Context) {
			ctx.LayoutRow([]float32{mui.Fill}, mui.Fill)
			idB = ctx.GetID("b")
			ctx.Button("b")
		})(ctx)
	}

	runFrame(t, ctx, declare)
	assert.Nil(t, ctx.HoverRoot(), "no previous frame to hit test against")

	runFrame(t, ctx, func(ctx *mui.Context) {
		declare(ctx)
		require.NotNil(t, ctx.HoverRoot())
		assert.Equal(t, "B", ctx.HoverRoot().Name)
		assert.Equal(t, mui.InteractionIdle, ctx.Interaction(idA))
		assert.Equal(t, mui.InteractionHovered, ctx.Interaction(idB))
	})
	assert.True(t, ctx.WantCaptureMouse())

	// Pressing in A where B does not reach leaves B on top: the overlap
	// still belongs to B while B is begun last.
	click(ctx.Input(), 50, 50)
	runFrame(t, ctx, declare)
	ctx.Input().SetMousePos(150, 150)
	runFrame(t, ctx, func(ctx *mui.Context) {
		declare(ctx)
		require.NotNil(t, ctx.HoverRoot())
		assert.Equal(t, "B", ctx.HoverRoot().Name)
		assert.Equal(t, mui.InteractionHovered, ctx.Interaction(idB))
	})
}

func TestPaintOrderFollowsZOrder(t *testing.T) {
	ctx := mui.NewContext()
	a := window("A", mui.NewRect(0, 0, 200, 200), nil)
	b := window("B", mui.NewRect(100, 100, 200, 200), nil)
	titles := func() []string {
		return slices.DeleteFunc(texts(ctx), func(s string) bool { return s != "A" && s != "B" })
	}

	runFrame(t, ctx, func(ctx *mui.Context) { a(ctx); b(ctx) })
	assert.Equal(t, []string{"A", "B"}, titles())
	assert.Greater(t, ctx.Container("B").ZIndex, ctx.Container("A").ZIndex)

	// A press inside A alone does not raise it over B.
	click(ctx.Input(), 50, 50)
	runFrame(t, ctx, func(ctx *mui.Context) { a(ctx); b(ctx) })
	assert.Equal(t, []string{"A", "B"}, titles())

	// Beginning A last puts it on top, and every command is still delivered
	// even though A's commands were recorded first.
	runFrame(t, ctx, func(ctx *mui.Context) { b(ctx); a(ctx) })
	assert.Equal(t, []string{"B", "A"}, titles())
	assert.Greater(t, ctx.Container("A").ZIndex, ctx.Container("B").ZIndex)
	assert.Len(t, slices.Collect(ctx.Commands()), ctx.CommandCount())

	runFrame(t, ctx, func(ctx *mui.Context) { a(ctx); b(ctx) })
	assert.Equal(t, []string{"A", "B"}, titles())
	assert.Len(t, slices.Collect(ctx.Commands()), ctx.CommandCount())
}

func TestPopupInsideWindowPaintsAbove(t *testing.T) {
	ctx := mui.NewContext()
	ctx.Input().SetMousePos(100, 100)

	var popup *mui.Container
	declare := func(open bool) func(ctx *mui.Context) {
		return window("Popup Dialog", mui.NewRect(0, 0, 300, 200), func(ctx *mui.Context) {
			ctx.Label("before")
			if open {
				ctx.OpenPopup("My Popup")
			}
			popup = ctx.Container("My Popup")
			if ctx.BeginPopup("My Popup") {
				ctx.Label("inside")
				ctx.EndPopup()
			}
			ctx.Label("after")
		})
	}
	labels := func() []string {
		return slices.DeleteFunc(texts(ctx), func(s string) bool {
			return s != "before" && s != "inside" && s != "after"
		})
	}

	// The popup takes two frames to grow to its content.
	runFrame(t, ctx, declare(true))
	runFrame(t, ctx, declare(false))
	runFrame(t, ctx, declare(false))

	assert.Equal(t, []string{"before", "after", "inside"}, labels())
	assert.Len(t, slices.Collect(ctx.Commands()), ctx.CommandCount())
	require.NotNil(t, popup)
	assert.Greater(t, popup.ZIndex, ctx.Container("Popup Dialog").ZIndex)
}

func TestWindowBegunTwice(t *testing.T) {
	ctx := mui.NewContext()
	r := mui.NewRect(0, 0, 200, 200)

	runFrame(t, ctx, func(ctx *mui.Context) {
		window("W", r, func(ctx *mui.Context) { ctx.Label("first") })(ctx)
		window("W", r, func(ctx *mui.Context) { ctx.Label("second") })(ctx)
	})
	assert.True(t, ctx.Diagnostics().Has(mui.DiagUnbalancedContainer))

	got := texts(ctx)
	assert.Equal(t, 1, countOf(got, "first"))
	assert.Equal(t, 1, countOf(got, "second"))
	assert.Len(t, slices.Collect(ctx.Commands()), ctx.CommandCount())
}

// scrollWindow declares a 200x100 window holding one 300px tall row. Its
// body is (0, 24, 200, 76), so the content overflows once it is measured.
func scrollWindow(last *mui.Rect) func(ctx *mui.Context) {
	return window("Scroll", mui.NewRect(0, 0, 200, 100), func(ctx *mui.Context) {
		ctx.LayoutRow([]float32{mui.Fill}, 300)
		ctx.Label("tall")
		*last = ctx.LastRect()
	})
}

func TestWheelScrollsHoveredContainer(t *testing.T) {
	ctx := mui.NewContext()
	in := ctx.Input()
	var last mui.Rect
	declare := scrollWindow(&last)

	runFrame(t, ctx, declare)
	assert.Equal(t, float32(29), last.Y)

	// Outside the window the wheel does nothing.
	in.SetMousePos(300, 300)
	in.SetMouseWheel(0, 30)
	runFrame(t, ctx, declare)
	assert.Zero(t, ctx.Container("Scroll").Scroll.Y)

	in.SetMousePos(50, 60)
	runFrame(t, ctx, declare)
	in.SetMouseWheel(0, 30)
	runFrame(t, ctx, declare)
	assert.Equal(t, float32(30), ctx.Container("Scroll").Scroll.Y)

	runFrame(t, ctx, declare)
	assert.Equal(t, float32(-1), last.Y, "content moves up by the scroll")

	// Scrolling is clamped to the content: 310 - 76.
	in.SetMouseWheel(0, 1000)
	runFrame(t, ctx, declare)
	runFrame(t, ctx, declare)
	assert.Equal(t, float32(234), ctx.Container("Scroll").Scroll.Y)
}

func TestScrollbarThumbDrag(t *testing.T) {
	ctx := mui.NewContext()
	in := ctx.Input()
	var last mui.Rect
	declare := scrollWindow(&last)

	runFrame(t, ctx, declare)

	// The vertical bar occupies (188, 24, 12, 76).
	in.SetMousePos(194, 30)
	runFrame(t, ctx, declare)
	in.SetMouseButton(mui.MouseButtonLeft, true)
	runFrame(t, ctx, declare)
	assert.Zero(t, ctx.Container("Scroll").Scroll.Y)

	// Bar pixels map to content pixels by 310/76.
	in.SetMousePos(194, 49)
	runFrame(t, ctx, declare)
	assert.InDelta(t, 19*310.0/76.0, ctx.Container("Scroll").Scroll.Y, 1e-3)

	in.SetMouseButton(mui.MouseButtonLeft, false)
	in.SetMousePos(194, 90)
	runFrame(t, ctx, declare)
	assert.InDelta(t, 19*310.0/76.0, ctx.Container("Scroll").Scroll.Y, 1e-3)
}

func TestWindowResizeGrip(t *testing.T) {
	ctx := mui.NewContext()
	in := ctx.Input()
	declare := window("Sized", mui.NewRect(0, 0, 200, 200), nil)

	runFrame(t, ctx, declare)

	// The grip is the footer-sized square in the bottom right corner.
	in.SetMousePos(190, 190)
	runFrame(t, ctx, declare)
	in.SetMouseButton(mui.MouseButtonLeft, true)
	runFrame(t, ctx, declare)
	assert.Equal(t, mui.NewRect(0, 0, 200, 200), ctx.Container("Sized").Rect)

	in.SetMousePos(230, 215)
	runFrame(t, ctx, declare)
	assert.Equal(t, mui.NewRect(0, 0, 240, 225), ctx.Container("Sized").Rect)

	// Shrinking stops at the minimum size.
	in.SetMousePos(0, 0)
	runFrame(t, ctx, declare)
	assert.Equal(t, mui.NewRect(0, 0, 96, 64), ctx.Container("Sized").Rect)

	in.SetMouseButton(mui.MouseButtonLeft, false)
	in.SetMousePos(50, 50)
	runFrame(t, ctx, declare)
	assert.Equal(t, mui.NewRect(0, 0, 96, 64), ctx.Container("Sized").Rect)
}

func TestPopupClosesOnOutsidePress(t *testing.T) {
	ctx := mui.NewContext()
	in := ctx.Input()
	in.SetMousePos(100, 100)

	var visible bool
	declare := func(open bool) func(ctx *mui.Context) {
		return func(ctx *mui.Context) {
			window("Main", mui.NewRect(0, 0, 400, 300), nil)(ctx)
			if open {
				ctx.OpenPopup("My Popup")
			}
			visible = ctx.BeginPopup("My Popup")
			if visible {
				ctx.Label("This is a popup dialog!")
				ctx.EndPopup()
			}
		}
	}

	runFrame(t, ctx, declare(true))
	assert.True(t, visible)
	assert.True(t, ctx.PopupOpen("My Popup"))

	// A press inside the popup keeps it open.
	click(in, 102, 102)
	runFrame(t, ctx, declare(false))
	assert.True(t, visible)
	assert.Equal(t, "My Popup", ctx.HoverRoot().Name)

	// A press anywhere else closes it in that same frame.
	click(in, 350, 250)
	runFrame(t, ctx, declare(false))
	assert.False(t, visible)
	assert.False(t, ctx.PopupOpen("My Popup"))

	runFrame(t, ctx, declare(false))
	assert.False(t, visible)
}

func TestClosePopup(t *testing.T) {
	ctx := mui.NewContext()
	runFrame(t, ctx, func(ctx *mui.Context) {
		ctx.OpenPopup("Menu")
		if ctx.BeginPopup("Menu") {
			ctx.EndPopup()
		}
	})
	require.True(t, ctx.PopupOpen("Menu"))

	ctx.ClosePopup("Menu")
	assert.False(t, ctx.PopupOpen("Menu"))
}

func TestPanelClipsToParent(t *testing.T) {
	ctx := mui.NewContext()
	runFrame(t, ctx, window("W", mui.NewRect(0, 0, 200, 200), func(ctx *mui.Context) {
		parent := ctx.ClipRect()
		ctx.LayoutRow([]float32{mui.Fill}, 500)
		require.True(t, ctx.BeginPanel("inner"))
		clip := ctx.ClipRect()
		assert.LessOrEqual(t, clip.Y+clip.H, parent.Y+parent.H)
		assert.Equal(t, "inner", ctx.CurrentContainer().Name)
		ctx.EndPanel()
		assert.Equal(t, "W", ctx.CurrentContainer().Name)
	}))
	assert.Zero(t, ctx.Diagnostics())
}
