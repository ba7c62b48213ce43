package mui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/mui"
)

func TestIDDeterministic(t *testing.T) {
	record := func(ctx *mui.Context) []mui.ID {
		var ids []mui.ID
		runFrame(t, ctx, window("Basic Window", mui.NewRect(0, 0, 300, 200), func(ctx *mui.Context) {
			ids = append(ids, ctx.GetID("Click Me"), ctx.GetIDInt("item", 3))
			ctx.PushID("scope")
			ids = append(ids, ctx.GetID("Click Me"))
			ctx.PopID()
		}))
		return ids
	}

	a := mui.NewContext()
	first := record(a)
	assert.Equal(t, first, record(a), "same context, next frame")
	assert.Equal(t, first, record(mui.NewContext()), "fresh context")
}

func TestIDScopes(t *testing.T) {
	ctx := mui.NewContext()
	root := ctx.GetID("label")
	assert.NotZero(t, root)
	assert.Equal(t, root, ctx.LastID())

	ctx.PushID("window")
	scoped := ctx.GetID("label")
	ctx.PopID()

	ctx.PushIDInt(1)
	first := ctx.GetID("label")
	ctx.PopID()
	ctx.PushIDInt(2)
	second := ctx.GetID("label")
	ctx.PopID()

	assert.NotEqual(t, root, scoped)
	assert.NotEqual(t, first, second)
	assert.Equal(t, root, ctx.GetID("label"), "scope fully unwound")
	assert.Zero(t, ctx.CurrentID())
}

func TestIDDuplicateLabelsCollide(t *testing.T) {
	ctx := mui.NewContext()
	assert.Equal(t, ctx.GetID("OK"), ctx.GetID("OK"))
	assert.NotEqual(t, ctx.GetIDInt("OK", 0), ctx.GetIDInt("OK", 1))
}

func TestWithIDOverridesLabel(t *testing.T) {
	ctx := mui.NewContext()
	var a, b bool
	declare := window("W", testWindow, func(ctx *mui.Context) {
		ctx.LayoutRow([]float32{mui.Fill}, 0)
		a = ctx.Button("OK", mui.WithID("ok-first"))
		b = ctx.Button("OK", mui.WithID("ok-second"))
	})

	runFrame(t, ctx, declare)
	click(ctx.Input(), 100, 67)
	runFrame(t, ctx, declare)
	assert.False(t, a)
	assert.True(t, b)
}
