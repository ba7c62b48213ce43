package mui

// InteractionState classifies one ID for the current frame.
type InteractionState uint8

const (
	InteractionIdle InteractionState = iota
	InteractionHovered
	InteractionPressed
	InteractionFocused
)

func (s InteractionState) String() string {
	switch s {
	case InteractionIdle:
		return "idle"
	case InteractionHovered:
		return "hovered"
	case InteractionPressed:
		return "pressed"
	case InteractionFocused:
		return "focused"
	}
	return "unknown"
}

// Result is the bit set returned by value widgets.
type Result uint8

const (
	ResultActive Result = 1 << iota
	ResultSubmit
	ResultChange
)

// Has reports whether all bits of flag are set.
func (r Result) Has(flag Result) bool {
	return r&flag == flag
}

// mouseOver reports whether the pointer is inside r, inside the current clip
// and inside the root container that owns the pointer.
func (ctx *Context) mouseOver(r Rect) bool {
	p := ctx.input.MousePos()
	return r.Contains(p) && ctx.clipRect().Contains(p) && ctx.inHoverRoot()
}

// MouseOver is the hit test widgets use.
func (ctx *Context) MouseOver(r Rect) bool {
	return ctx.mouseOver(r)
}

// UpdateControl runs the interaction state machine for id occupying r.
//
// The widget becomes hovered when the pointer is over it (see MouseOver)
// and no button is held. A primary press while hovered gives it focus.
// Focus stays until a press lands elsewhere, ClearFocus is called, or a
// frame ends without the widget being declared.
func (ctx *Context) UpdateControl(id ID, r Rect, opts ...Option) {
	ctx.updateControl(id, r, applyOptions(opts))
}

func (ctx *Context) updateControl(id ID, r Rect, o options) {
	if id == 0 {
		return
	}
	over := ctx.mouseOver(r)

	if ctx.focus == id {
		ctx.focusSeen = true
	}
	if GetOpt(o, OptNoInteract) {
		return
	}
	if over && !ctx.input.AnyMouseDown() {
		ctx.hover = id
	}

	pressed := ctx.input.MousePressed(MouseButtonLeft)
	if ctx.focus == id && pressed && !over {
		ctx.SetFocus(0)
	}

	if ctx.hover == id {
		ctx.hoverSeen = true
		if pressed && over {
			ctx.SetFocus(id)
		} else if !over {
			ctx.hover = 0
		}
	}
}

// SetFocus gives id focus. Zero clears it.
func (ctx *Context) SetFocus(id ID) {
	if ctx.focus != id {
		logger.Debug("focus", "from", ctx.focus, "to", id)
	}
	ctx.focus = id
	ctx.focusSeen = true
}

// ClearFocus drops focus.
func (ctx *Context) ClearFocus() {
	ctx.SetFocus(0)
}

// Focus returns the focused ID, or 0.
func (ctx *Context) Focus() ID {
	return ctx.focus
}

// Hover returns the hovered ID, or 0.
func (ctx *Context) Hover() ID {
	return ctx.hover
}

// Interaction reports the state of id as of the most recent UpdateControl.
func (ctx *Context) Interaction(id ID) InteractionState {
	if id == 0 {
		return InteractionIdle
	}
	if ctx.focus == id {
		if ctx.input.MouseDown(MouseButtonLeft) || ctx.input.MousePressed(MouseButtonLeft) {
			return InteractionPressed
		}
		return InteractionFocused
	}
	if ctx.hover == id {
		return InteractionHovered
	}
	return InteractionIdle
}

// HoverRoot returns the root container that owns the pointer this frame.
func (ctx *Context) HoverRoot() *Container {
	return ctx.hoverRoot
}

// WantCaptureMouse reports whether the pointer is over any open window,
// so the host can keep clicks away from its own scene.
func (ctx *Context) WantCaptureMouse() bool {
	return ctx.hoverRoot != nil
}

// WantCaptureKeyboard reports whether a widget holds keyboard focus.
func (ctx *Context) WantCaptureKeyboard() bool {
	return ctx.focus != 0
}
