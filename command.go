package mui

import (
	"cmp"
	"iter"
	"slices"
)

// CommandBufferSize is the default command buffer capacity.
const CommandBufferSize = 4096

// CommandKind tags the variant held by a Command.
type CommandKind uint8

const (
	CommandRect CommandKind = iota + 1
	CommandText
	CommandIcon
	CommandClip
)

func (k CommandKind) String() string {
	switch k {
	case CommandRect:
		return "rect"
	case CommandText:
		return "text"
	case CommandIcon:
		return "icon"
	case CommandClip:
		return "clip"
	}
	return "unknown"
}

// Icon identifies a built-in glyph the renderer draws for window chrome
// and widgets.
type Icon uint8

const (
	IconNone Icon = iota
	IconClose
	IconCheck
	IconCollapsed
	IconExpanded
	IconResize
)

// Command is one drawing instruction.
//
// Fields used per kind:
//
//	CommandRect: Rect, Color
//	CommandText: Rect (X,Y is the pen position, W,H the measured size), Color, Text, Font
//	CommandIcon: Rect (area to center the icon in), Color, Icon
//	CommandClip: Rect (scissor rectangle for the commands that follow)
type Command struct {
	Kind  CommandKind
	Rect  Rect
	Color Color
	Text  string
	Font  Font
	Icon  Icon
}

type commandBuffer struct {
	cmds     []Command
	overflow bool
}

func newCommandBuffer(capacity int) commandBuffer {
	return commandBuffer{cmds: make([]Command, 0, capacity)}
}

func (b *commandBuffer) push(c Command) bool {
	if len(b.cmds) == cap(b.cmds) {
		b.overflow = true
		return false
	}
	b.cmds = append(b.cmds, c)
	return true
}

func (b *commandBuffer) reset() {
	clear(b.cmds)
	b.cmds = b.cmds[:0]
	b.overflow = false
}

func (b *commandBuffer) len() int {
	return len(b.cmds)
}

// cmdRange is a half-open span of the command buffer.
type cmdRange struct {
	start, end int
}

func (ctx *Context) pushCommand(c Command) {
	if !ctx.requireFrame("draw") {
		return
	}
	if !ctx.commands.push(c) {
		ctx.report(DiagCommandOverflow, "command buffer full, dropping commands",
			"capacity", cap(ctx.commands.cmds))
	}
}

// switchSegment closes the span of commands owned by the current root and
// starts a new one for c (nil for commands outside any window).
func (ctx *Context) switchSegment(c *Container) {
	end := ctx.commands.len()
	if end > ctx.segStart {
		r := cmdRange{start: ctx.segStart, end: end}
		if ctx.segOwner != nil {
			ctx.segOwner.segments = append(ctx.segOwner.segments, r)
		} else {
			ctx.loose = append(ctx.loose, r)
		}
	}
	ctx.segOwner = c
	ctx.segStart = end
}

// buildDrawOrder lays out the iteration order: loose commands first, then
// each root container's commands in ascending z order.
func (ctx *Context) buildDrawOrder() {
	ctx.drawOrder = append(ctx.drawOrder[:0], ctx.loose...)

	sorted := slices.Clone(ctx.roots)
	slices.SortStableFunc(sorted, func(a, b *Container) int {
		return cmp.Compare(a.ZIndex, b.ZIndex)
	})
	for _, c := range sorted {
		ctx.drawOrder = append(ctx.drawOrder, c.segments...)
	}
}

// Overflowed reports whether commands were dropped this frame.
func (ctx *Context) Overflowed() bool {
	return ctx.commands.overflow
}

// CommandCount returns the number of commands recorded this frame.
func (ctx *Context) CommandCount() int {
	return ctx.commands.len()
}

// CommandCursor is the iteration state for NextCommand. The zero value
// starts at the first command; a cursor left over from an earlier frame
// restarts automatically.
type CommandCursor struct {
	frame uint64
	seg   int
	off   int // within drawOrder[seg]
}

// NextCommand returns the next command in paint order. It reports false
// when the sequence is exhausted or when no completed frame is available
// (before the first EndFrame, or between BeginFrame and EndFrame).
//
//	var cur mui.CommandCursor
//	for cmd, ok := ctx.NextCommand(&cur); ok; cmd, ok = ctx.NextCommand(&cur) {
//		...
//	}
func (ctx *Context) NextCommand(cur *CommandCursor) (Command, bool) {
	if !ctx.completed || cur == nil {
		return Command{}, false
	}
	if cur.frame != ctx.frame {
		*cur = CommandCursor{frame: ctx.frame}
	}

	for cur.seg < len(ctx.drawOrder) {
		r := ctx.drawOrder[cur.seg]
		if i := r.start + cur.off; i < r.end {
			cur.off++
			return ctx.commands.cmds[i], true
		}
		cur.seg++
		cur.off = 0
	}
	return Command{}, false
}

// Commands returns the completed frame's commands in paint order. Each
// call starts from the beginning.
func (ctx *Context) Commands() iter.Seq[Command] {
	return func(yield func(Command) bool) {
		var cur CommandCursor
		for {
			c, ok := ctx.NextCommand(&cur)
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// Drawing primitives. These respect the current clip rectangle.

type clipResult int

const (
	clipNone clipResult = iota
	clipPart
	clipAll
)

func (ctx *Context) checkClip(r Rect) clipResult {
	cr := ctx.clipRect()
	if r.X > cr.X+cr.W || r.X+r.W < cr.X || r.Y > cr.Y+cr.H || r.Y+r.H < cr.Y {
		return clipAll
	}
	if r.X >= cr.X && r.X+r.W <= cr.X+cr.W && r.Y >= cr.Y && r.Y+r.H <= cr.Y+cr.H {
		return clipNone
	}
	return clipPart
}

func (ctx *Context) setClip(r Rect) {
	ctx.pushCommand(Command{Kind: CommandClip, Rect: r})
}

// DrawRect fills r with color, clipped to the current clip rectangle.
func (ctx *Context) DrawRect(r Rect, color Color) {
	r = r.Intersect(ctx.clipRect())
	if r.W > 0 && r.H > 0 {
		ctx.pushCommand(Command{Kind: CommandRect, Rect: r, Color: color})
	}
}

// DrawBox draws a one pixel outline just inside r.
func (ctx *Context) DrawBox(r Rect, color Color) {
	ctx.DrawRect(Rect{X: r.X + 1, Y: r.Y, W: r.W - 2, H: 1}, color)
	ctx.DrawRect(Rect{X: r.X + 1, Y: r.Y + r.H - 1, W: r.W - 2, H: 1}, color)
	ctx.DrawRect(Rect{X: r.X, Y: r.Y, W: 1, H: r.H}, color)
	ctx.DrawRect(Rect{X: r.X + r.W - 1, Y: r.Y, W: 1, H: r.H}, color)
}

// DrawText draws s with its top-left corner at pos.
func (ctx *Context) DrawText(s string, pos Vec2, color Color) {
	r := Rect{X: pos.X, Y: pos.Y, W: ctx.textWidth(s), H: ctx.textHeight()}
	ctx.drawClipped(r, Command{Kind: CommandText, Rect: r, Color: color, Text: s, Font: ctx.style.Font})
}

// DrawIcon draws a built-in icon centered in r.
func (ctx *Context) DrawIcon(icon Icon, r Rect, color Color) {
	ctx.drawClipped(r, Command{Kind: CommandIcon, Rect: r, Color: color, Icon: icon})
}

// drawClipped emits c, bracketed by clip commands when r straddles the
// clip edge. Every partially clipped command restores the unclipped state
// afterwards, so roots can be reordered without carrying clip state.
func (ctx *Context) drawClipped(r Rect, c Command) {
	switch ctx.checkClip(r) {
	case clipAll:
		return
	case clipPart:
		ctx.setClip(ctx.clipRect())
		ctx.pushCommand(c)
		ctx.setClip(unclipped)
	default:
		ctx.pushCommand(c)
	}
}
