package mui

import "math"

// unclipped is the clip rectangle used when nothing restricts drawing.
var unclipped = Rect{X: -0x1000000, Y: -0x1000000, W: 0x2000000, H: 0x2000000}

// Context holds all engine state: persistent containers, interaction
// records, stacks and the command buffer.
//
// A Context is used from a single goroutine. Independent contexts share
// nothing and may live on different goroutines.
type Context struct {
	style        Style
	pendingStyle *Style // Applied at the next BeginFrame
	measurer     TextMeasurer
	textCache    map[string]float32 // Cleared when the frame (and so the font) changes

	input     *InputState
	clipboard Clipboard

	inFrame   bool
	completed bool // A frame ended and its commands may be iterated
	frame     uint64
	diag      Diagnostic

	// IDs
	idStack stack[ID]
	lastID  ID

	// Interaction
	hover        ID
	hoverSeen    bool
	focus        ID
	focusSeen    bool
	lastRect     Rect
	hoverRoot    *Container
	scrollTarget *Container
	lastZIndex   int
	numberEdit   ID
	numberBuf    string

	// Containers
	containers     map[ID]*Container
	containerStack stack[*Container]
	roots          []*Container
	prevRoots      []*Container
	clipStack      stack[Rect]
	layoutStack    stack[Layout]
	styleVars      stack[styleVarEntry]
	droppedIDs     int
	droppedClips   int
	droppedLayouts int

	// Commands
	commands  commandBuffer
	loose     []cmdRange
	segOwner  *Container
	segStart  int
	drawOrder []cmdRange

	// Per-ID widget state
	stores    []cleanable
	textEdits *FrameStore[TextEditState]
	treeNodes *FrameStore[bool]
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithStyle sets the initial style.
func WithStyle(style Style) ContextOption {
	return func(ctx *Context) { ctx.style = style }
}

// WithTextMeasurer sets the text metrics callback.
func WithTextMeasurer(m TextMeasurer) ContextOption {
	return func(ctx *Context) {
		if m != nil {
			ctx.measurer = m
		}
	}
}

// WithCommandCapacity sets the fixed command buffer capacity.
func WithCommandCapacity(n int) ContextOption {
	return func(ctx *Context) {
		if n > 0 {
			ctx.commands = newCommandBuffer(n)
		}
	}
}

// WithInput makes the context read from an input buffer owned by the host.
func WithInput(in *InputState) ContextOption {
	return func(ctx *Context) {
		if in != nil {
			ctx.input = in
		}
	}
}

// NewContext creates a new engine context with default settings.
func NewContext(opts ...ContextOption) *Context {
	ctx := &Context{
		style:          DefaultStyle(),
		measurer:       MonospaceMeasurer{},
		textCache:      make(map[string]float32, 64),
		input:          NewInputState(),
		idStack:        newStack[ID](IDStackSize),
		containers:     make(map[ID]*Container),
		containerStack: newStack[*Container](ContainerStackSize),
		roots:          make([]*Container, 0, RootListSize),
		prevRoots:      make([]*Container, 0, RootListSize),
		clipStack:      newStack[Rect](ClipStackSize),
		layoutStack:    newStack[Layout](LayoutStackSize),
		styleVars:      newStack[styleVarEntry](StyleVarStackSize),
		commands:       newCommandBuffer(CommandBufferSize),
	}
	ctx.textEdits = NewFrameStore[TextEditState](ctx)
	ctx.treeNodes = NewFrameStore[bool](ctx)

	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// Input returns the input buffer the host fills between frames.
func (ctx *Context) Input() *InputState {
	return ctx.input
}

// Style returns the style in effect.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle replaces the style. Inside a frame the change is deferred to the
// next BeginFrame.
func (ctx *Context) SetStyle(style Style) {
	if ctx.inFrame {
		ctx.pendingStyle = &style
		return
	}
	ctx.style = style
}

// Frame returns the number of frames begun so far.
func (ctx *Context) Frame() uint64 {
	return ctx.frame
}

// InFrame reports whether a frame is in progress.
func (ctx *Context) InFrame() bool {
	return ctx.inFrame
}

// Diagnostics returns the soft-failure flags raised during the current or
// last completed frame.
func (ctx *Context) Diagnostics() Diagnostic {
	return ctx.diag
}

// BeginFrame starts a new frame and freezes the input buffer.
//
// Calling BeginFrame while a frame is already in progress abandons that
// frame: the condition is logged and flagged, all stacks are reset and the
// new frame starts cleanly. ErrAlreadyInFrame is returned in that case so
// callers that check can notice.
func (ctx *Context) BeginFrame() error {
	var err error
	if ctx.inFrame {
		ctx.abandonFrame()
		err = ErrAlreadyInFrame
	}

	ctx.frame++
	ctx.diag = 0
	if err != nil {
		ctx.report(DiagFrameState, "BeginFrame called while a frame was in progress")
	}

	if ctx.pendingStyle != nil {
		ctx.style = *ctx.pendingStyle
		ctx.pendingStyle = nil
	}

	ctx.inFrame = true
	ctx.completed = false
	ctx.input.freeze()

	ctx.commands.reset()
	ctx.loose = ctx.loose[:0]
	ctx.segOwner = nil
	ctx.segStart = 0
	ctx.drawOrder = ctx.drawOrder[:0]
	clear(ctx.textCache)

	ctx.prevRoots, ctx.roots = ctx.roots, ctx.prevRoots[:0]
	ctx.scrollTarget = nil
	ctx.hoverSeen = false
	ctx.focusSeen = false
	ctx.lastRect = Rect{}

	ctx.hoverRoot = ctx.findHoverRoot(ctx.input.MousePos())

	for _, s := range ctx.stores {
		s.cleanup(ctx.frame)
	}

	logger.Debug("frame begin", "frame", ctx.frame, "hoverRoot", ctx.hoverRootName())
	return err
}

// EndFrame finishes the frame. Commands become iterable until the next
// BeginFrame. Calling EndFrame without a frame in progress returns
// ErrNotInFrame and changes nothing.
func (ctx *Context) EndFrame() error {
	if !ctx.inFrame {
		logger.Debug("EndFrame without a frame in progress", "frame", ctx.frame)
		return ErrNotInFrame
	}

	if n := ctx.containerStack.len(); n > 0 {
		ctx.report(DiagUnbalancedContainer, "containers left open at end of frame", "open", n)
	}
	if ctx.idStack.len() > 0 {
		ctx.report(DiagStackUnderflow, "id scopes left open at end of frame", "open", ctx.idStack.len())
	}
	ctx.resetStacks()

	if ctx.scrollTarget != nil {
		wheel := ctx.input.MouseWheel()
		ctx.scrollTarget.Scroll.X += wheel.X
		ctx.scrollTarget.Scroll.Y += wheel.Y
	}

	if !ctx.focusSeen {
		ctx.focus = 0
	}
	if !ctx.hoverSeen {
		ctx.hover = 0
	}

	ctx.switchSegment(nil)
	ctx.buildDrawOrder()

	ctx.input.endFrame()
	ctx.inFrame = false
	ctx.completed = true

	if ctx.diag != 0 {
		logger.Debug("frame end", "frame", ctx.frame, "commands", ctx.commands.len(), "diag", ctx.diag)
	}
	return nil
}

// abandonFrame drops a frame that never reached EndFrame.
func (ctx *Context) abandonFrame() {
	ctx.resetStacks()
	ctx.input.endFrame()
	ctx.inFrame = false
}

func (ctx *Context) resetStacks() {
	ctx.popStyleVarsTo(0)
	ctx.idStack.reset()
	ctx.containerStack.reset()
	ctx.clipStack.reset()
	ctx.layoutStack.reset()
	ctx.styleVars.reset()
	ctx.droppedIDs = 0
	ctx.droppedClips = 0
	ctx.droppedLayouts = 0
}

// findHoverRoot returns the topmost root container of the previous frame
// that contains p.
func (ctx *Context) findHoverRoot(p Vec2) *Container {
	var best *Container
	for _, c := range ctx.prevRoots {
		if c.State != ContainerOpen || !c.Rect.Contains(p) {
			continue
		}
		if best == nil || c.ZIndex > best.ZIndex {
			best = c
		}
	}
	return best
}

func (ctx *Context) hoverRootName() string {
	if ctx.hoverRoot == nil {
		return ""
	}
	return ctx.hoverRoot.Name
}

// bringToFront raises c above every other container.
func (ctx *Context) bringToFront(c *Container) {
	ctx.lastZIndex++
	c.ZIndex = ctx.lastZIndex
}

// requireFrame reports a call made outside BeginFrame/EndFrame.
func (ctx *Context) requireFrame(op string) bool {
	if !ctx.inFrame {
		ctx.report(DiagFrameState, "call outside of a frame", "op", op)
		return false
	}
	return true
}

// Text measurement

func (ctx *Context) textWidth(s string) float32 {
	if s == "" {
		return 0
	}
	if w, ok := ctx.textCache[s]; ok {
		return w
	}
	w := ctx.measurer.TextWidth(ctx.style.Font, s)
	if math.IsNaN(float64(w)) || w < 0 {
		w = 0
	}
	ctx.textCache[s] = w
	return w
}

func (ctx *Context) textHeight() float32 {
	return ctx.measurer.TextHeight(ctx.style.Font)
}

// TextWidth measures s with the current font.
func (ctx *Context) TextWidth(s string) float32 {
	return ctx.textWidth(s)
}

// TextHeight returns the line height of the current font.
func (ctx *Context) TextHeight() float32 {
	return ctx.textHeight()
}
