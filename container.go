package mui

import "slices"

// ContainerState is the lifecycle state of a container.
type ContainerState uint8

const (
	ContainerUnopened ContainerState = iota
	ContainerOpen
	ContainerClosed
)

func (s ContainerState) String() string {
	switch s {
	case ContainerUnopened:
		return "unopened"
	case ContainerOpen:
		return "open"
	case ContainerClosed:
		return "closed"
	}
	return "unknown"
}

// Container is the persistent record behind a window, popup or panel.
// It is created on first reference and lives as long as the Context.
type Container struct {
	ID          ID
	Name        string
	Rect        Rect
	Body        Rect
	ContentSize Vec2
	Scroll      Vec2
	ZIndex      int
	State       ContainerState

	root       bool
	styleDepth int
	segments   []cmdRange
}

// Open reports whether the container is open.
func (c *Container) Open() bool {
	return c.State == ContainerOpen
}

// container looks up or creates the record for id. With create unset a
// missing record yields nil.
func (ctx *Context) container(id ID, name string, create, startClosed bool) *Container {
	if c, ok := ctx.containers[id]; ok {
		return c
	}
	if !create {
		return nil
	}
	c := &Container{ID: id, Name: name, State: ContainerOpen}
	if startClosed {
		c.State = ContainerClosed
	}
	ctx.bringToFront(c)
	ctx.containers[id] = c
	logger.Debug("container created", "name", name, "id", id, "z", c.ZIndex)
	return c
}

// Container returns the record for a window or popup name in the current
// ID scope, creating it if needed.
func (ctx *Context) Container(name string) *Container {
	return ctx.container(ctx.GetID(name), name, true, false)
}

// CurrentContainer returns the innermost active container, or nil.
func (ctx *Context) CurrentContainer() *Container {
	if top := ctx.containerStack.peek(); top != nil {
		return *top
	}
	return nil
}

// CloseContainer closes a window or popup. Its Begin call returns false
// from then on.
func (ctx *Context) CloseContainer(name string) {
	if c := ctx.container(ctx.GetID(name), name, false, false); c != nil {
		c.State = ContainerClosed
	}
}

// OpenContainer reopens a closed window.
func (ctx *Context) OpenContainer(name string) {
	c := ctx.container(ctx.GetID(name), name, true, false)
	if c.State != ContainerOpen {
		c.State = ContainerOpen
		ctx.bringToFront(c)
	}
}

// BringToFront raises c above all containers activated so far this frame.
// Roots begun after the call still go above it.
func (ctx *Context) BringToFront(c *Container) {
	if c != nil {
		ctx.bringToFront(c)
	}
}

func (ctx *Context) pushContainer(c *Container) bool {
	if !ctx.containerStack.push(c) {
		ctx.report(DiagStackOverflow, "container stack overflow", "name", c.Name)
		return false
	}
	return true
}

// beginRoot activates c as a root container: a window or popup whose
// commands form their own z-ordered group. Each activation raises c above
// every root activated before it, so the last one begun is on top.
func (ctx *Context) beginRoot(c *Container) bool {
	again := slices.Contains(ctx.roots, c)
	if again {
		ctx.report(DiagUnbalancedContainer, "container begun twice in one frame", "name", c.Name)
	} else if len(ctx.roots) == cap(ctx.roots) {
		ctx.report(DiagStackOverflow, "root list full", "name", c.Name, "max", RootListSize)
		return false
	}
	if !ctx.pushContainer(c) {
		return false
	}
	c.root = true
	if !again {
		c.segments = c.segments[:0]
		ctx.roots = append(ctx.roots, c)
	}
	ctx.bringToFront(c)
	ctx.switchSegment(c)
	ctx.pushUnclipped()
	return true
}

func (ctx *Context) endRoot() {
	ctx.PopClipRect()
	ctx.popContainer()
	ctx.switchSegment(ctx.currentRoot())
}

// currentRoot returns the nearest root on the container stack.
func (ctx *Context) currentRoot() *Container {
	items := ctx.containerStack.items
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].root {
			return items[i]
		}
	}
	return nil
}

// popContainer records the content size from the layout and leaves the
// container's layout and ID scopes.
func (ctx *Context) popContainer() {
	c, ok := ctx.containerStack.pop()
	if !ok {
		ctx.report(DiagUnbalancedContainer, "container ended with none active")
		return
	}
	if l := ctx.layoutStack.peek(); l != nil {
		c.ContentSize.X = l.Max.X - l.Body.X
		c.ContentSize.Y = l.Max.Y - l.Body.Y
	}
	ctx.popLayout()
	ctx.PopID()
}

// inHoverRoot reports whether the innermost root container is the one under
// the pointer.
func (ctx *Context) inHoverRoot() bool {
	if ctx.hoverRoot == nil {
		return false
	}
	items := ctx.containerStack.items
	for i := len(items) - 1; i >= 0; i-- {
		if items[i] == ctx.hoverRoot {
			return true
		}
		if items[i].root {
			break
		}
	}
	return false
}

// pushContainerBody sets up scrollbars and the layout scope for a body.
func (ctx *Context) pushContainerBody(c *Container, body Rect, o options) {
	if !GetOpt(o, OptNoScroll) {
		body = ctx.scrollbars(c, body)
	}
	ctx.pushLayout(body.Expand(-ctx.style.Padding), c.Scroll)
	c.Body = body
}

func (ctx *Context) scrollbars(c *Container, body Rect) Rect {
	sz := ctx.style.ScrollbarSize
	cs := c.ContentSize
	cs.X += ctx.style.Padding * 2
	cs.Y += ctx.style.Padding * 2

	ctx.PushClipRect(body)

	// Compare against last frame's body so the bars don't flicker as they
	// take space; a fresh container has none yet.
	prev := c.Body
	if prev.Empty() {
		prev = body
	}
	if cs.Y > prev.H {
		body.W -= sz
	}
	if cs.X > prev.W {
		body.H -= sz
	}

	// Vertical
	maxScroll := cs.Y - body.H
	if maxScroll > 0 && body.H > 0 {
		id := ctx.GetID("!scrollbary")
		base := Rect{X: body.X + body.W, Y: body.Y, W: sz, H: body.H}
		ctx.UpdateControl(id, base)
		if ctx.focus == id && ctx.input.MouseDown(MouseButtonLeft) {
			c.Scroll.Y += ctx.input.MouseDelta().Y * cs.Y / base.H
		}
		c.Scroll.Y = clampf(c.Scroll.Y, 0, maxScroll)

		ctx.drawFrame(base, ColorScrollBase)
		thumb := base
		thumb.H = maxf(ctx.style.ThumbSize, base.H*body.H/cs.Y)
		thumb.Y += c.Scroll.Y * (base.H - thumb.H) / maxScroll
		ctx.drawFrame(thumb, ColorScrollThumb)

		if ctx.mouseOver(body) {
			ctx.scrollTarget = c
		}
	} else {
		c.Scroll.Y = 0
	}

	// Horizontal
	maxScroll = cs.X - body.W
	if maxScroll > 0 && body.W > 0 {
		id := ctx.GetID("!scrollbarx")
		base := Rect{X: body.X, Y: body.Y + body.H, W: body.W, H: sz}
		ctx.UpdateControl(id, base)
		if ctx.focus == id && ctx.input.MouseDown(MouseButtonLeft) {
			c.Scroll.X += ctx.input.MouseDelta().X * cs.X / base.W
		}
		c.Scroll.X = clampf(c.Scroll.X, 0, maxScroll)

		ctx.drawFrame(base, ColorScrollBase)
		thumb := base
		thumb.W = maxf(ctx.style.ThumbSize, base.W*body.W/cs.X)
		thumb.X += c.Scroll.X * (base.W - thumb.W) / maxScroll
		ctx.drawFrame(thumb, ColorScrollThumb)

		if ctx.mouseOver(body) {
			ctx.scrollTarget = c
		}
	} else {
		c.Scroll.X = 0
	}

	ctx.PopClipRect()
	return body
}

// drawFrame draws a filled rectangle with a border for roles that have one.
func (ctx *Context) drawFrame(r Rect, role ColorRole) {
	ctx.DrawRect(r, ctx.style.Color(role))
	if role == ColorScrollBase || role == ColorScrollThumb || role == ColorTitleBg {
		return
	}
	if border := ctx.style.Color(ColorBorder); border.Alpha() > 0 {
		ctx.DrawBox(r.Expand(ctx.style.BorderSize), border)
	}
}
