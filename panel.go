package mui

// BeginPanel begins a nested container occupying the next layout cell. The
// panel has its own layout scope and scroll position, and its clip is the
// cell intersected with the parent's clip. It returns false when there is
// no enclosing container or the container stack is full; EndPanel must be
// called only after it returned true.
func (ctx *Context) BeginPanel(name string, opts ...Option) bool {
	if !ctx.requireFrame("BeginPanel") {
		return false
	}
	if ctx.activeLayout("BeginPanel") == nil {
		return false
	}
	o := applyOptions(opts)

	ctx.PushID(idLabel(o, name))
	c := ctx.container(ctx.CurrentID(), name, true, false)
	c.Rect = ctx.LayoutNext()
	if !GetOpt(o, OptNoFrame) {
		ctx.drawFrame(c.Rect, ColorPanelBg)
	}

	if !ctx.pushContainer(c) {
		ctx.PopID()
		return false
	}
	ctx.pushContainerBody(c, c.Rect, o)
	c.styleDepth = ctx.styleVars.len()
	ctx.PushClipRect(c.Body)
	return true
}

// EndPanel ends the current panel.
func (ctx *Context) EndPanel() {
	if !ctx.requireFrame("EndPanel") {
		return
	}
	c := ctx.CurrentContainer()
	if c == nil || c.root {
		ctx.report(DiagUnbalancedContainer, "EndPanel without matching BeginPanel")
		return
	}
	ctx.popStyleVarsTo(c.styleDepth)
	ctx.PopClipRect()
	ctx.popContainer()
}
