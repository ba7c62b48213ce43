package mui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/mui"
)

func TestFrameStoreDropsUnusedEntries(t *testing.T) {
	ctx := mui.NewContext()
	store := mui.NewFrameStore[int](ctx)
	id := ctx.GetID("counter")

	runFrame(t, ctx, func(*mui.Context) {
		*store.Get(id, 1)++
	})
	require.Equal(t, 2, *store.GetIfExists(id))

	// Survives one frame without access, gone after the next BeginFrame.
	runFrame(t, ctx, func(*mui.Context) {})
	assert.Equal(t, 1, store.Len())
	runFrame(t, ctx, func(*mui.Context) {})
	assert.Zero(t, store.Len())
	assert.Nil(t, store.GetIfExists(id))
}

func TestFrameStoreKeepsUsedEntries(t *testing.T) {
	ctx := mui.NewContext()
	store := mui.NewFrameStore[string](ctx)
	id := ctx.GetID("name")

	for range 5 {
		runFrame(t, ctx, func(*mui.Context) {
			store.Get(id, "")
		})
	}
	assert.Equal(t, 1, store.Len())

	store.Set(id, "kept")
	assert.Equal(t, "kept", *store.Get(id, ""))
	store.Delete(id)
	assert.Zero(t, store.Len())

	store.Set(id, "again")
	store.Clear()
	assert.Zero(t, store.Len())
}
