package mui

// cleanable is implemented by stores that need frame-based cleanup.
// Each frame, stale entries (not accessed in the previous frame) are removed.
type cleanable interface {
	cleanup(frame uint64)
}

// stateEntry wraps a state value with frame tracking for staleness detection.
type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore is a type-safe store for per-ID widget state owned by one
// Context. Entries that go a whole frame without being accessed are
// dropped at the next BeginFrame, so state lives exactly as long as its
// widget keeps being declared.
//
// For user-defined widgets, create your own store next to the context:
//
//	store := mui.NewFrameStore[MyWidgetState](ctx)
//	state := store.Get(ctx.GetID("thing"), MyWidgetState{})
type FrameStore[T any] struct {
	ctx    *Context
	states map[ID]*stateEntry[T]
}

// NewFrameStore creates a store and registers it with ctx for cleanup.
func NewFrameStore[T any](ctx *Context) *FrameStore[T] {
	s := &FrameStore[T]{
		ctx:    ctx,
		states: make(map[ID]*stateEntry[T]),
	}
	ctx.stores = append(ctx.stores, s)
	return s
}

// Get retrieves state for the given ID, or creates it with defaultVal if not found.
// Returns a pointer to the state, allowing direct modification.
// The state is automatically marked as "used this frame" to prevent cleanup.
func (s *FrameStore[T]) Get(id ID, defaultVal T) *T {
	if entry, ok := s.states[id]; ok {
		entry.lastFrame = s.ctx.frame
		return &entry.value
	}
	entry := &stateEntry[T]{value: defaultVal, lastFrame: s.ctx.frame}
	s.states[id] = entry
	return &entry.value
}

// GetIfExists retrieves state only if it already exists.
// Returns nil if no state exists for this ID.
// Does NOT create default state or mark as used.
func (s *FrameStore[T]) GetIfExists(id ID) *T {
	if entry, ok := s.states[id]; ok {
		return &entry.value
	}
	return nil
}

// Set explicitly sets state for an ID.
// Creates or updates the entry and marks it as used this frame.
func (s *FrameStore[T]) Set(id ID, value T) {
	if entry, ok := s.states[id]; ok {
		entry.value = value
		entry.lastFrame = s.ctx.frame
		return
	}
	s.states[id] = &stateEntry[T]{value: value, lastFrame: s.ctx.frame}
}

// Delete explicitly removes state for an ID.
func (s *FrameStore[T]) Delete(id ID) {
	delete(s.states, id)
}

// cleanup removes entries not used in the previous frame. frame is the
// number of the frame just begun.
func (s *FrameStore[T]) cleanup(frame uint64) {
	if frame < 2 {
		return
	}
	threshold := frame - 1
	for id, entry := range s.states {
		if entry.lastFrame < threshold {
			delete(s.states, id)
		}
	}
}

// Len returns the number of stored entries.
// Useful for debugging and monitoring.
func (s *FrameStore[T]) Len() int {
	return len(s.states)
}

// Clear removes all entries immediately.
// Useful for resetting state (e.g., when switching scenes).
func (s *FrameStore[T]) Clear() {
	clear(s.states)
}
