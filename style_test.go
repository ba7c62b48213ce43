package mui_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/mui"
)

func TestColorPacking(t *testing.T) {
	c := mui.RGBA(0x11, 0x22, 0x33, 0x44)
	assert.Equal(t, mui.Color(0x44332211), c)

	r, g, b, a := c.Components()
	assert.Equal(t, []uint8{0x11, 0x22, 0x33, 0x44}, []uint8{r, g, b, a})
	assert.Equal(t, uint8(0x44), c.Alpha())

	nrgba := color.NRGBAModel.Convert(mui.RGBA(255, 128, 0, 255)).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 255, G: 128, B: 0, A: 255}, nrgba)
}

func TestColorRoleNames(t *testing.T) {
	for role := mui.ColorRole(0); role < mui.ColorCount; role++ {
		got, ok := mui.ColorRoleByName(role.String())
		assert.True(t, ok, role.String())
		assert.Equal(t, role, got)
	}
	_, ok := mui.ColorRoleByName("nope")
	assert.False(t, ok)
	assert.Equal(t, "unknown", mui.ColorCount.String())
}

func TestStyleWithColor(t *testing.T) {
	base := mui.DefaultStyle()
	red := mui.RGBA(255, 0, 0, 255)
	s := base.WithColor(mui.ColorButton, red)

	assert.Equal(t, red, s.Color(mui.ColorButton))
	assert.NotEqual(t, red, base.Color(mui.ColorButton), "copy, not alias")
}

func TestPushStyleVarScopedToContainer(t *testing.T) {
	ctx := mui.NewContext()
	runFrame(t, ctx, func(ctx *mui.Context) {
		window("W", testWindow, func(ctx *mui.Context) {
			ctx.PushStyleVar(mui.StyleVarSpacing, 0)
			assert.Zero(t, ctx.Style().Spacing)
		})(ctx)
		assert.Equal(t, mui.DefaultStyle().Spacing, ctx.Style().Spacing)
	})
}

func TestRectHelpers(t *testing.T) {
	r := mui.NewRect(10, 10, 20, 20)
	assert.True(t, r.Contains(mui.Vec2{X: 10, Y: 10}))
	assert.False(t, r.Contains(mui.Vec2{X: 30, Y: 30}), "max edge is exclusive")
	assert.Equal(t, mui.NewRect(20, 20, 10, 10), r.Intersect(mui.NewRect(20, 20, 50, 50)))
	assert.True(t, r.Intersect(mui.NewRect(100, 100, 5, 5)).Empty())
	assert.Equal(t, mui.NewRect(8, 8, 24, 24), r.Expand(2))
}
