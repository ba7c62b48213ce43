package mui

// PushClipRect restricts drawing and hit-testing to r intersected with the
// current clip rectangle.
func (ctx *Context) PushClipRect(r Rect) {
	next := r.Intersect(ctx.clipRect())
	if !ctx.clipStack.push(next) {
		ctx.droppedClips++
		ctx.report(DiagStackOverflow, "clip stack overflow", "depth", ctx.clipStack.len())
	}
}

// PopClipRect restores the previous clip rectangle.
func (ctx *Context) PopClipRect() {
	if ctx.droppedClips > 0 {
		ctx.droppedClips--
		return
	}
	if _, ok := ctx.clipStack.pop(); !ok {
		ctx.report(DiagStackUnderflow, "clip stack underflow")
	}
}

// ClipRect returns the current clip rectangle.
func (ctx *Context) ClipRect() Rect {
	return ctx.clipRect()
}

func (ctx *Context) clipRect() Rect {
	if top := ctx.clipStack.peek(); top != nil {
		return *top
	}
	return unclipped
}

// pushUnclipped starts a root container's clip scope.
func (ctx *Context) pushUnclipped() {
	if !ctx.clipStack.push(unclipped) {
		ctx.droppedClips++
		ctx.report(DiagStackOverflow, "clip stack overflow", "depth", ctx.clipStack.len())
	}
}
