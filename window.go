package mui

// Minimum window size reachable with the resize handle.
const (
	minWindowWidth  = 96
	minWindowHeight = 64
)

// BeginWindow begins a window. rect is only used the first time the window
// is seen; afterwards the window keeps its own (dragged/resized) rectangle.
// It returns false when the window is closed; the caller must then skip the
// body and must not call EndWindow.
//
//	if ctx.BeginWindow("Basic Window", mui.NewRect(50, 50, 300, 200)) {
//		ctx.LayoutRow([]float32{80, mui.Fill}, 0)
//		ctx.Label("Label:")
//		ctx.Button("Click Me")
//		ctx.EndWindow()
//	}
func (ctx *Context) BeginWindow(title string, rect Rect, opts ...Option) bool {
	if !ctx.requireFrame("BeginWindow") {
		return false
	}
	return ctx.beginWindow(title, rect, applyOptions(opts))
}

func (ctx *Context) beginWindow(title string, rect Rect, o options) bool {
	id := ctx.GetID(idLabel(o, title))
	c := ctx.container(id, title, !GetOpt(o, OptClosed), GetOpt(o, OptClosed))
	if c == nil || c.State != ContainerOpen {
		return false
	}

	// A popup closes on any press that lands outside it.
	if GetOpt(o, OptPopup) && ctx.input.MousePressed(MouseButtonLeft) && ctx.hoverRoot != c {
		c.State = ContainerClosed
		logger.Debug("popup dismissed", "name", title)
		return false
	}

	ctx.pushIDValue(id)
	if c.Rect.W == 0 {
		c.Rect = rect
	}
	if !ctx.beginRoot(c) {
		ctx.PopID()
		return false
	}

	rect = c.Rect
	body := rect

	if !GetOpt(o, OptNoFrame) {
		ctx.drawFrame(rect, ColorWindowBg)
	}

	if !GetOpt(o, OptNoTitle) {
		tr := rect
		tr.H = ctx.style.TitleHeight
		ctx.drawFrame(tr, ColorTitleBg)

		tid := ctx.GetID("!title")
		ctx.updateControl(tid, tr, o)
		ctx.drawControlText(title, tr, ColorTitleText, o)
		if tid == ctx.focus && ctx.input.MouseDown(MouseButtonLeft) {
			d := ctx.input.MouseDelta()
			c.Rect.X += d.X
			c.Rect.Y += d.Y
		}
		body.Y += tr.H
		body.H -= tr.H

		if !GetOpt(o, OptNoClose) {
			cid := ctx.GetID("!close")
			r := Rect{X: tr.X + tr.W - tr.H, Y: tr.Y, W: tr.H, H: tr.H}
			ctx.DrawIcon(IconClose, r, ctx.style.Color(ColorTitleText))
			ctx.updateControl(cid, r, o)
			if ctx.input.MousePressed(MouseButtonLeft) && cid == ctx.focus {
				c.State = ContainerClosed
				logger.Debug("window closed", "name", title)
			}
		}
	}

	ctx.pushContainerBody(c, body, o)

	if !GetOpt(o, OptNoResize) {
		sz := ctx.style.FooterHeight
		rid := ctx.GetID("!resize")
		r := Rect{X: rect.X + rect.W - sz, Y: rect.Y + rect.H - sz, W: sz, H: sz}
		ctx.updateControl(rid, r, o)
		if rid == ctx.focus && ctx.input.MouseDown(MouseButtonLeft) {
			d := ctx.input.MouseDelta()
			c.Rect.W = maxf(minWindowWidth, c.Rect.W+d.X)
			c.Rect.H = maxf(minWindowHeight, c.Rect.H+d.Y)
		}
	}

	if GetOpt(o, OptAutoSize) {
		if l := ctx.layoutStack.peek(); l != nil {
			c.Rect.W = c.ContentSize.X + (c.Rect.W - l.Body.W)
			c.Rect.H = c.ContentSize.Y + (c.Rect.H - l.Body.H)
		}
	}

	c.styleDepth = ctx.styleVars.len()
	ctx.PushClipRect(c.Body)
	return true
}

// EndWindow ends the window begun by a BeginWindow call that returned true.
func (ctx *Context) EndWindow() {
	if !ctx.requireFrame("EndWindow") {
		return
	}
	c := ctx.CurrentContainer()
	if c == nil || !c.root {
		ctx.report(DiagUnbalancedContainer, "EndWindow without matching BeginWindow")
		return
	}
	ctx.popStyleVarsTo(c.styleDepth)
	ctx.PopClipRect()
	ctx.endRoot()
}
