package mui

// OpenPopup opens the popup name at the pointer and raises it above every
// other container. It takes the pointer from this frame on.
func (ctx *Context) OpenPopup(name string) {
	if !ctx.requireFrame("OpenPopup") {
		return
	}
	c := ctx.container(ctx.GetID(name), name, true, false)
	p := ctx.input.MousePos()
	c.Rect = Rect{X: p.X, Y: p.Y, W: 1, H: 1}
	c.State = ContainerOpen
	ctx.bringToFront(c)
	ctx.hoverRoot = c
	logger.Debug("popup opened", "name", name, "x", p.X, "y", p.Y)
}

// BeginPopup begins the popup name. It returns true while the popup is
// open; a primary press anywhere outside the popup closes it. Popups size
// themselves to their content and have no title bar.
func (ctx *Context) BeginPopup(name string, opts ...Option) bool {
	if !ctx.requireFrame("BeginPopup") {
		return false
	}
	base := []Option{
		WithOpt(OptPopup, true),
		AutoSize(),
		NoResize(),
		NoScroll(),
		NoTitle(),
		StartClosed(),
	}
	return ctx.beginWindow(name, Rect{}, applyOptions(append(base, opts...)))
}

// EndPopup ends a popup begun by a BeginPopup call that returned true.
func (ctx *Context) EndPopup() {
	ctx.EndWindow()
}

// ClosePopup closes the popup name.
func (ctx *Context) ClosePopup(name string) {
	ctx.CloseContainer(name)
}

// PopupOpen reports whether the popup name is open.
func (ctx *Context) PopupOpen(name string) bool {
	c := ctx.container(ctx.GetID(name), name, false, false)
	return c != nil && c.State == ContainerOpen
}
