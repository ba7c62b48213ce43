package mui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/mui"
)

// layoutIn runs fn inside a fresh window of the given width and returns
// the cells it produced.
func layoutIn(t *testing.T, width float32, fn func(ctx *mui.Context) []mui.Rect) []mui.Rect {
	t.Helper()
	ctx := mui.NewContext()
	var cells []mui.Rect
	runFrame(t, ctx, window("Layout", mui.NewRect(0, 0, width, 200), func(ctx *mui.Context) {
		cells = fn(ctx)
	}))
	return cells
}

func TestLayoutRowFixedAndFill(t *testing.T) {
	// Window 310 wide leaves a 300px body after padding.
	cells := layoutIn(t, 310, func(ctx *mui.Context) []mui.Rect {
		ctx.LayoutRow([]float32{80, mui.Fill}, 0)
		return []mui.Rect{ctx.LayoutNext(), ctx.LayoutNext()}
	})

	assert.Equal(t, float32(80), cells[0].W)
	assert.Equal(t, float32(212), cells[1].W)
	assert.Equal(t, cells[0].X+80+8, cells[1].X)
	assert.Equal(t, cells[0].Y, cells[1].Y)
}

func TestLayoutRowWraps(t *testing.T) {
	cells := layoutIn(t, 310, func(ctx *mui.Context) []mui.Rect {
		ctx.LayoutRow([]float32{80, mui.Fill}, 0)
		return []mui.Rect{ctx.LayoutNext(), ctx.LayoutNext(), ctx.LayoutNext()}
	})

	assert.Equal(t, cells[0].X, cells[2].X)
	assert.Equal(t, cells[0].Y+20+8, cells[2].Y)
	assert.Equal(t, float32(80), cells[2].W)
}

func TestLayoutFillSharedEqually(t *testing.T) {
	cells := layoutIn(t, 310, func(ctx *mui.Context) []mui.Rect {
		ctx.LayoutRow([]float32{mui.Fill, 100, mui.Fill}, 0)
		return []mui.Rect{ctx.LayoutNext(), ctx.LayoutNext(), ctx.LayoutNext()}
	})

	// (300 - 100 - 2*8) / 2
	assert.Equal(t, float32(92), cells[0].W)
	assert.Equal(t, float32(100), cells[1].W)
	assert.Equal(t, float32(92), cells[2].W)
}

func TestLayoutDefaults(t *testing.T) {
	cells := layoutIn(t, 310, func(ctx *mui.Context) []mui.Rect {
		ctx.LayoutRow([]float32{0}, 0)
		first := ctx.LayoutNext()
		ctx.LayoutRow([]float32{mui.Fill}, mui.Fill)
		return []mui.Rect{first, ctx.LayoutNext()}
	})

	style := mui.DefaultStyle()
	assert.Equal(t, style.Size.X+2*style.Padding, cells[0].W)
	assert.Equal(t, style.Size.Y+2*style.Padding, cells[0].H)

	// Body: 200 - title 24 - 2*padding, minus the first row and spacing.
	assert.Equal(t, float32(166-28), cells[1].H)
}

func TestLayoutSetNext(t *testing.T) {
	cells := layoutIn(t, 310, func(ctx *mui.Context) []mui.Rect {
		ctx.LayoutSetNext(mui.NewRect(7, 9, 11, 13), false)
		abs := ctx.LayoutNext()
		ctx.LayoutSetNext(mui.NewRect(10, 0, 40, 20), true)
		rel := ctx.LayoutNext()
		return []mui.Rect{abs, rel}
	})

	assert.Equal(t, mui.NewRect(7, 9, 11, 13), cells[0])
	assert.Equal(t, mui.NewRect(15, 29, 40, 20), cells[1])
}

func TestLayoutColumn(t *testing.T) {
	cells := layoutIn(t, 310, func(ctx *mui.Context) []mui.Rect {
		ctx.LayoutRow([]float32{100, mui.Fill}, 0)
		ctx.LayoutBeginColumn()
		ctx.LayoutRow([]float32{mui.Fill}, 0)
		a := ctx.LayoutNext()
		b := ctx.LayoutNext()
		ctx.LayoutEndColumn()
		c := ctx.LayoutNext()
		ctx.LayoutRow([]float32{mui.Fill}, 0)
		d := ctx.LayoutNext()
		return []mui.Rect{a, b, c, d}
	})

	assert.Equal(t, float32(100), cells[0].W)
	assert.Equal(t, cells[0].Y+28, cells[1].Y)
	assert.Equal(t, cells[0].X+100+8, cells[2].X, "next cell sits beside the column")
	assert.Equal(t, cells[1].Y+28, cells[3].Y, "next row starts below the column")
}

func TestLayoutIndent(t *testing.T) {
	cells := layoutIn(t, 310, func(ctx *mui.Context) []mui.Rect {
		ctx.Indent()
		ctx.LayoutRow([]float32{mui.Fill}, 0)
		a := ctx.LayoutNext()
		ctx.Unindent()
		ctx.LayoutRow([]float32{mui.Fill}, 0)
		return []mui.Rect{a, ctx.LayoutNext()}
	})

	assert.Equal(t, cells[1].X+24, cells[0].X)
	assert.Equal(t, cells[1].W-24, cells[0].W)
}
