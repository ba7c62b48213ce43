package mui

import "strconv"

// ID identifies a widget or container for state persistence.
// IDs are stable across frames for the same call sequence and labels.
//
// Two widgets with the same label in the same scope get the same ID and will
// share interaction state. Use GetIDInt, PushIDInt or WithID to tell them apart
// (typically the loop index).
type ID uint32

const (
	fnvOffset32 = 2166136261
	fnvPrime32  = 16777619
)

// hashBytes folds data into h using 32-bit FNV-1a.
func hashBytes(h ID, data string) ID {
	for i := 0; i < len(data); i++ {
		h = (h ^ ID(data[i])) * fnvPrime32
	}
	return h
}

// seed returns the hash of the enclosing scope.
func (ctx *Context) seed() ID {
	if top := ctx.idStack.peek(); top != nil {
		return *top
	}
	return fnvOffset32
}

// GetID derives a stable ID from a label within the current ID scope.
func (ctx *Context) GetID(label string) ID {
	id := hashBytes(ctx.seed(), label)
	ctx.lastID = id
	return id
}

// GetIDInt derives an ID from a label plus a caller-supplied disambiguator.
// Useful for items in arrays/slices that share a label.
func (ctx *Context) GetIDInt(label string, n int) ID {
	h := hashBytes(ctx.seed(), label)
	h = hashBytes(h, "#")
	h = hashBytes(h, strconv.Itoa(n))
	ctx.lastID = h
	return h
}

// PushID pushes a new scope derived from label.
// All GetID calls will be relative to this scope until PopID.
func (ctx *Context) PushID(label string) {
	ctx.pushIDValue(ctx.GetID(label))
}

// PushIDInt pushes an integer-based scope.
func (ctx *Context) PushIDInt(n int) {
	ctx.pushIDValue(hashBytes(ctx.seed(), strconv.Itoa(n)))
}

func (ctx *Context) pushIDValue(id ID) {
	if !ctx.idStack.push(id) {
		ctx.droppedIDs++
		ctx.report(DiagStackOverflow, "id stack overflow", "id", id)
	}
}

// PopID removes the innermost ID scope. A pop paired with a push that
// overflowed leaves the stack alone.
func (ctx *Context) PopID() {
	if ctx.droppedIDs > 0 {
		ctx.droppedIDs--
		return
	}
	if _, ok := ctx.idStack.pop(); !ok {
		ctx.report(DiagStackUnderflow, "id stack underflow")
	}
}

// CurrentID returns the innermost scope ID, or 0 at the root.
func (ctx *Context) CurrentID() ID {
	if top := ctx.idStack.peek(); top != nil {
		return *top
	}
	return 0
}

// LastID returns the most recently generated ID.
func (ctx *Context) LastID() ID {
	return ctx.lastID
}
