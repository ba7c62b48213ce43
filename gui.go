package mui

import (
	"iter"

	"github.com/pkg/errors"
)

// Renderer consumes the commands of a completed frame.
type Renderer interface {
	Render(cmds iter.Seq[Command]) error
	Resize(width, height int)
}

// GUI pairs a Context with a Renderer.
type GUI struct {
	renderer Renderer
	ctx      *Context
}

// New creates a new GUI instance. Options configure the underlying Context.
func New(renderer Renderer, opts ...ContextOption) *GUI {
	return &GUI{
		renderer: renderer,
		ctx:      NewContext(opts...),
	}
}

// Begin starts a new frame and returns the context to declare widgets on.
// Fill Input() before calling it.
func (g *GUI) Begin() *Context {
	if err := g.ctx.BeginFrame(); err != nil {
		logger.Warn("previous frame was never ended", "frame", g.ctx.frame)
	}
	return g.ctx
}

// End finishes the frame and renders it.
func (g *GUI) End() error {
	if err := g.ctx.EndFrame(); err != nil {
		return err
	}
	if g.renderer == nil {
		return nil
	}
	if err := g.renderer.Render(g.ctx.Commands()); err != nil {
		return errors.Wrapf(err, "rendering frame %d", g.ctx.frame)
	}
	return nil
}

// Context returns the underlying context.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Input returns the input buffer to fill between frames.
func (g *GUI) Input() *InputState {
	return g.ctx.input
}

// Style returns the current style.
func (g *GUI) Style() Style {
	return g.ctx.style
}

// SetStyle sets the style. It takes effect at the next Begin.
func (g *GUI) SetStyle(style Style) {
	g.ctx.SetStyle(style)
}

// Resize notifies the renderer of a display size change.
func (g *GUI) Resize(width, height int) {
	if g.renderer != nil {
		g.renderer.Resize(width, height)
	}
}
