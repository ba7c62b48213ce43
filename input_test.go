package mui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/mui"
)

func TestInputEdgesWithinOneFrame(t *testing.T) {
	in := mui.NewInputState()
	in.SetMouseButton(mui.MouseButtonLeft, true)
	in.SetMouseButton(mui.MouseButtonLeft, false)

	assert.True(t, in.MousePressed(mui.MouseButtonLeft))
	assert.True(t, in.MouseReleased(mui.MouseButtonLeft))
	assert.False(t, in.MouseDown(mui.MouseButtonLeft))
	assert.False(t, in.MousePressed(mui.MouseButtonRight))
	assert.False(t, in.MouseDown(mui.MouseButtonCount), "out of range")
}

func TestInputFrozenDuringFrame(t *testing.T) {
	ctx := mui.NewContext()
	in := ctx.Input()

	require.NoError(t, ctx.BeginFrame())
	assert.True(t, in.Frozen())
	in.SetMousePos(10, 10)
	in.SetMouseButton(mui.MouseButtonLeft, true)
	in.AddInputText("ignored")
	assert.Equal(t, mui.Vec2{}, in.MousePos())
	assert.False(t, in.MouseDown(mui.MouseButtonLeft))
	assert.Empty(t, in.Text())
	require.NoError(t, ctx.EndFrame())

	assert.False(t, in.Frozen())
	in.SetMousePos(10, 10)
	assert.Equal(t, mui.Vec2{X: 10, Y: 10}, in.MousePos())
}

func TestInputClearedAtEndFrame(t *testing.T) {
	ctx := mui.NewContext()
	in := ctx.Input()

	in.SetMousePos(4, 6)
	in.SetMouseButton(mui.MouseButtonLeft, true)
	in.SetMouseWheel(0, 10)
	in.SetMouseWheel(0, 5)
	in.SetKey(mui.KeyShift, true)
	in.AddInputChar('x')

	runFrame(t, ctx, func(ctx *mui.Context) {
		assert.Equal(t, mui.Vec2{X: 4, Y: 6}, in.MouseDelta())
		assert.Equal(t, mui.Vec2{Y: 15}, in.MouseWheel())
		assert.True(t, in.KeyPressed(mui.KeyShift))
		assert.Equal(t, []rune{'x'}, in.Text())
	})

	assert.Zero(t, in.MouseWheel())
	assert.Empty(t, in.Text())
	assert.False(t, in.MousePressed(mui.MouseButtonLeft))
	assert.True(t, in.MouseDown(mui.MouseButtonLeft), "held buttons survive")
	assert.True(t, in.KeyDown(mui.KeyShift), "held keys survive")

	in.SetMousePos(10, 6)
	runFrame(t, ctx, func(ctx *mui.Context) {
		assert.Equal(t, mui.Vec2{X: 6}, in.MouseDelta())
	})
}

func TestInputModifiers(t *testing.T) {
	in := mui.NewInputState()
	in.SetModifiers(true, false, true)
	assert.True(t, in.KeyDown(mui.KeyShift))
	assert.False(t, in.KeyDown(mui.KeyCtrl))
	assert.True(t, in.KeyDown(mui.KeyAlt))

	in.SetModifiers(false, false, false)
	assert.True(t, in.KeyReleased(mui.KeyShift))
}

func TestInputRepeatKey(t *testing.T) {
	ctx := mui.NewContext()
	in := ctx.Input()
	in.SetKey(mui.KeyLeft, true)
	runFrame(t, ctx, func(*mui.Context) {})

	assert.False(t, in.KeyPressed(mui.KeyLeft))
	in.RepeatKey(mui.KeyLeft)
	assert.True(t, in.KeyPressed(mui.KeyLeft))
	assert.True(t, in.KeyDown(mui.KeyLeft))
}

func TestSharedInputBuffer(t *testing.T) {
	in := mui.NewInputState()
	ctx := mui.NewContext(mui.WithInput(in))
	assert.Same(t, in, ctx.Input())
}

func TestKeyName(t *testing.T) {
	assert.Equal(t, "Enter", mui.KeyName(mui.KeyEnter))
	assert.NotEmpty(t, mui.KeyName(mui.KeyV))
}
