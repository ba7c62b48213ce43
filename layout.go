package mui

// Fill as a row width shares the width left over by fixed columns equally
// among every Fill column of the row. As a row height it takes the rest of
// the container body. Any negative value means Fill.
const Fill float32 = -1

// MaxRowWidths is the maximum number of columns in one row.
const MaxRowWidths = 16

type nextKind uint8

const (
	nextNone nextKind = iota
	nextRelative
	nextAbsolute
)

// Layout is the row layout state of one container body or column.
// Positions are relative to Body; Body itself is already offset by scroll.
type Layout struct {
	Body     Rect
	Position Vec2 // Cursor within Body
	Size     Vec2 // Width when a row has no columns; row height
	Max      Vec2 // Furthest extent reached, absolute
	Indent   float32

	widths    [MaxRowWidths]float32
	items     int
	itemIndex int
	nextRow   float32
	next      Rect
	nextKind  nextKind
}

// pushLayout starts a new layout scope over body.
func (ctx *Context) pushLayout(body Rect, scroll Vec2) {
	l := Layout{
		Body: Rect{X: body.X - scroll.X, Y: body.Y - scroll.Y, W: body.W, H: body.H},
		Max:  Vec2{X: -0x1000000, Y: -0x1000000},
	}
	if !ctx.layoutStack.push(l) {
		ctx.droppedLayouts++
		ctx.report(DiagStackOverflow, "layout stack overflow", "depth", ctx.layoutStack.len())
		return
	}
	ctx.LayoutRow([]float32{0}, 0)
}

func (ctx *Context) popLayout() {
	if ctx.droppedLayouts > 0 {
		ctx.droppedLayouts--
		return
	}
	if _, ok := ctx.layoutStack.pop(); !ok {
		ctx.report(DiagStackUnderflow, "layout stack underflow")
	}
}

// layout returns the active layout, or nil outside of any container.
func (ctx *Context) layout() *Layout {
	if ctx.containerStack.len() == 0 {
		return nil
	}
	return ctx.layoutStack.peek()
}

func (ctx *Context) activeLayout(op string) *Layout {
	l := ctx.layout()
	if l == nil {
		ctx.report(DiagLayoutOutsideContainer, "layout call with no active container", "op", op)
	}
	return l
}

// LayoutRow declares a row. Each width is a pixel size (> 0), the default
// item width (0), or Fill (< 0). Height 0 uses the default item height; a
// negative height fills the rest of the body. Rows wrap: once every column
// is used, the next cell starts another row with the same widths.
//
// A nil or empty widths slice lays out one item per row using the width set
// by LayoutWidth.
func (ctx *Context) LayoutRow(widths []float32, height float32) {
	l := ctx.activeLayout("LayoutRow")
	if l == nil {
		return
	}
	if widths != nil {
		n := copy(l.widths[:], widths)
		if n < len(widths) {
			ctx.report(DiagStackOverflow, "too many columns in row", "columns", len(widths), "max", MaxRowWidths)
		}
		l.items = n
	}
	l.Position = Vec2{X: l.Indent, Y: l.nextRow}
	l.Size.Y = height
	l.itemIndex = 0
}

// LayoutWidth sets the width used by rows declared without columns.
func (ctx *Context) LayoutWidth(width float32) {
	if l := ctx.activeLayout("LayoutWidth"); l != nil {
		l.Size.X = width
	}
}

// LayoutHeight sets the height of the current row.
func (ctx *Context) LayoutHeight(height float32) {
	if l := ctx.activeLayout("LayoutHeight"); l != nil {
		l.Size.Y = height
	}
}

// LayoutSetNext overrides the rectangle of the next cell. With relative set
// r is taken relative to the body and still advances the cursor; otherwise r
// is absolute and the cursor is left alone.
func (ctx *Context) LayoutSetNext(r Rect, relative bool) {
	if l := ctx.activeLayout("LayoutSetNext"); l != nil {
		l.next = r
		if relative {
			l.nextKind = nextRelative
		} else {
			l.nextKind = nextAbsolute
		}
	}
}

// LayoutBeginColumn turns the next cell into a nested layout scope.
func (ctx *Context) LayoutBeginColumn() {
	if ctx.activeLayout("LayoutBeginColumn") == nil {
		return
	}
	ctx.pushLayout(ctx.LayoutNext(), Vec2{})
}

// LayoutEndColumn closes the scope opened by LayoutBeginColumn and grows
// the enclosing row to cover it.
func (ctx *Context) LayoutEndColumn() {
	if ctx.activeLayout("LayoutEndColumn") == nil {
		return
	}
	if ctx.droppedLayouts > 0 {
		ctx.droppedLayouts--
		return
	}
	b, ok := ctx.layoutStack.pop()
	if !ok {
		ctx.report(DiagStackUnderflow, "layout stack underflow")
		return
	}
	a := ctx.layoutStack.peek()
	if a == nil {
		ctx.report(DiagStackUnderflow, "column closed without an enclosing layout")
		return
	}
	a.Position.X = maxf(a.Position.X, b.Position.X+b.Body.X-a.Body.X)
	a.nextRow = maxf(a.nextRow, b.nextRow+b.Body.Y-a.Body.Y)
	a.Max.X = maxf(a.Max.X, b.Max.X)
	a.Max.Y = maxf(a.Max.Y, b.Max.Y)
}

// Indent shifts subsequent rows right by the style indent.
func (ctx *Context) Indent() {
	if l := ctx.activeLayout("Indent"); l != nil {
		l.Indent += ctx.style.Indent
	}
}

// Unindent reverses Indent.
func (ctx *Context) Unindent() {
	if l := ctx.activeLayout("Unindent"); l != nil {
		l.Indent -= ctx.style.Indent
	}
}

// columnWidth resolves the width of column i of the current row.
func (ctx *Context) columnWidth(l *Layout, i int) float32 {
	w := l.widths[i]
	if w > 0 {
		return w
	}
	if w == 0 {
		return ctx.style.Size.X + ctx.style.Padding*2
	}

	var fixed float32
	fills := 0
	for _, cw := range l.widths[:l.items] {
		switch {
		case cw > 0:
			fixed += cw
		case cw == 0:
			fixed += ctx.style.Size.X + ctx.style.Padding*2
		default:
			fills++
		}
	}
	remaining := l.Body.W - l.Indent - fixed - ctx.style.Spacing*float32(l.items-1)
	return maxf(0, remaining/float32(fills))
}

// LayoutNext returns the rectangle of the next cell and advances the
// cursor. Outside of any container it returns a zero Rect.
func (ctx *Context) LayoutNext() Rect {
	l := ctx.activeLayout("LayoutNext")
	if l == nil {
		ctx.lastRect = Rect{}
		return Rect{}
	}

	var res Rect
	switch l.nextKind {
	case nextAbsolute:
		l.nextKind = nextNone
		ctx.lastRect = l.next
		return l.next
	case nextRelative:
		l.nextKind = nextNone
		res = l.next
	default:
		if l.itemIndex == l.items {
			ctx.LayoutRow(nil, l.Size.Y)
		}

		res.X = l.Position.X
		res.Y = l.Position.Y
		if l.items > 0 {
			res.W = ctx.columnWidth(l, l.itemIndex)
		} else {
			res.W = l.Size.X
		}
		res.H = l.Size.Y

		if res.W == 0 {
			res.W = ctx.style.Size.X + ctx.style.Padding*2
		}
		if res.H == 0 {
			res.H = ctx.style.Size.Y + ctx.style.Padding*2
		}
		if res.W < 0 {
			res.W = maxf(0, l.Body.W-res.X)
		}
		if res.H < 0 {
			res.H = maxf(0, l.Body.H-res.Y)
		}
		l.itemIndex++
	}

	l.Position.X += res.W + ctx.style.Spacing
	l.nextRow = maxf(l.nextRow, res.Y+res.H+ctx.style.Spacing)

	res.X += l.Body.X
	res.Y += l.Body.Y

	l.Max.X = maxf(l.Max.X, res.X+res.W)
	l.Max.Y = maxf(l.Max.Y, res.Y+res.H)

	ctx.lastRect = res
	return res
}

// LastRect returns the rectangle most recently produced by LayoutNext.
func (ctx *Context) LastRect() Rect {
	return ctx.lastRect
}
