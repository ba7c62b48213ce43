package mui

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// TextEditState is the editing state of one text field. It is kept per ID
// for as long as the field keeps being declared, focused or not, so the
// cursor is where the user left it when focus returns.
//
// Offsets are byte offsets into the value and always sit on grapheme
// cluster boundaries.
type TextEditState struct {
	Cursor int
	Anchor int     // Selection anchor, -1 when nothing is selected
	Scroll float32 // Horizontal scroll keeping the cursor visible
}

// HasSelection returns true if there's an active text selection.
func (s *TextEditState) HasSelection() bool {
	return s.Anchor >= 0 && s.Anchor != s.Cursor
}

// Selection returns the selected byte range with start <= end.
func (s *TextEditState) Selection() (start, end int) {
	if !s.HasSelection() {
		return s.Cursor, s.Cursor
	}
	if s.Anchor < s.Cursor {
		return s.Anchor, s.Cursor
	}
	return s.Cursor, s.Anchor
}

// graphemeBounds returns every grapheme cluster boundary of s, including 0
// and len(s).
func graphemeBounds(s string) []int {
	bounds := []int{0}
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		_, to := g.Positions()
		bounds = append(bounds, to)
	}
	return bounds
}

// snapBoundary returns the largest boundary <= pos.
func snapBoundary(bounds []int, pos int) int {
	best := 0
	for _, b := range bounds {
		if b > pos {
			break
		}
		best = b
	}
	return best
}

func prevBoundary(bounds []int, pos int) int {
	for i := len(bounds) - 1; i >= 0; i-- {
		if bounds[i] < pos {
			return bounds[i]
		}
	}
	return 0
}

func nextBoundary(bounds []int, pos int) int {
	for _, b := range bounds {
		if b > pos {
			return b
		}
	}
	return bounds[len(bounds)-1]
}

// Textbox draws a single-line text field editing *value. label identifies
// the field. The result has ResultActive while focused, ResultChange when
// the text changed and ResultSubmit when Enter was pressed.
func (ctx *Context) Textbox(label string, value *string, opts ...Option) Result {
	o := applyOptions(opts)
	id := ctx.GetID(idLabel(o, label))
	r := ctx.LayoutNext()
	return ctx.textboxRaw(value, id, r, o)
}

func (ctx *Context) textboxRaw(value *string, id ID, r Rect, o options) Result {
	ctx.updateControl(id, r, o)

	st := ctx.textEdits.Get(id, TextEditState{Cursor: len(*value), Anchor: -1})
	bounds := graphemeBounds(*value)
	st.Cursor = snapBoundary(bounds, min(st.Cursor, len(*value)))
	if st.Anchor > len(*value) {
		st.Anchor = -1
	}

	var res Result
	if ctx.focus == id {
		res |= ResultActive
		in := ctx.input

		if in.MousePressed(MouseButtonLeft) && ctx.mouseOver(r) {
			st.Cursor = ctx.cursorAt(*value, bounds, in.MousePos().X-(r.X+ctx.style.Padding-st.Scroll))
			st.Anchor = -1
		}

		ctrl := in.KeyDown(KeyCtrl)
		if typed := printable(in.Text()); typed != "" && !ctrl {
			ctx.replaceSelection(value, st, typed)
			res |= ResultChange
		}
		if ctrl && ctx.clipboardShortcut(value, st) {
			res |= ResultChange
		}

		shift := in.KeyDown(KeyShift)
		move := func(to int) {
			if shift {
				if st.Anchor < 0 {
					st.Anchor = st.Cursor
				}
			} else {
				st.Anchor = -1
			}
			st.Cursor = to
		}

		bounds = graphemeBounds(*value)
		switch {
		case in.KeyPressed(KeyBackspace):
			if !st.HasSelection() && st.Cursor > 0 {
				st.Anchor = prevBoundary(bounds, st.Cursor)
			}
			if st.HasSelection() {
				ctx.replaceSelection(value, st, "")
				res |= ResultChange
			}
		case in.KeyPressed(KeyDelete):
			if !st.HasSelection() && st.Cursor < len(*value) {
				st.Anchor = nextBoundary(bounds, st.Cursor)
			}
			if st.HasSelection() {
				ctx.replaceSelection(value, st, "")
				res |= ResultChange
			}
		case in.KeyPressed(KeyLeft):
			move(prevBoundary(bounds, st.Cursor))
		case in.KeyPressed(KeyRight):
			move(nextBoundary(bounds, st.Cursor))
		case in.KeyPressed(KeyHome):
			move(0)
		case in.KeyPressed(KeyEnd):
			move(len(*value))
		}

		if in.KeyPressed(KeyEnter) {
			ctx.SetFocus(0)
			res |= ResultSubmit
		} else if in.KeyPressed(KeyEscape) {
			ctx.SetFocus(0)
		}
	}

	ctx.drawControlFrame(id, r, ColorBase, o)
	if ctx.focus == id {
		ctx.drawEditText(*value, r, st)
	} else {
		ctx.drawControlText(*value, r, ColorText, o)
	}
	return res
}

// clipboardShortcut handles Ctrl+A, Ctrl+C, Ctrl+X and Ctrl+V and reports
// whether the value changed.
func (ctx *Context) clipboardShortcut(value *string, st *TextEditState) bool {
	in := ctx.input
	start, end := st.Selection()
	switch {
	case in.KeyPressed(KeyA):
		st.Anchor = 0
		st.Cursor = len(*value)
	case in.KeyPressed(KeyC):
		ctx.clipboardSet((*value)[start:end])
	case in.KeyPressed(KeyX):
		if st.HasSelection() {
			ctx.clipboardSet((*value)[start:end])
			ctx.replaceSelection(value, st, "")
			return true
		}
	case in.KeyPressed(KeyV):
		if paste := printable([]rune(ctx.clipboardGet())); paste != "" {
			ctx.replaceSelection(value, st, paste)
			return true
		}
	}
	return false
}

// replaceSelection replaces the selected text (or inserts at the cursor).
func (ctx *Context) replaceSelection(value *string, st *TextEditState, s string) {
	start, end := st.Selection()
	*value = (*value)[:start] + s + (*value)[end:]
	st.Cursor = start + len(s)
	st.Anchor = -1
}

// cursorAt returns the boundary closest to x pixels into value.
func (ctx *Context) cursorAt(value string, bounds []int, x float32) int {
	best, bestDist := 0, absf(x)
	for _, b := range bounds[1:] {
		d := absf(ctx.textWidth(value[:b]) - x)
		if d < bestDist {
			best, bestDist = b, d
		}
	}
	return best
}

func (ctx *Context) drawEditText(value string, r Rect, st *TextEditState) {
	color := ctx.style.Color(ColorText)
	th := ctx.textHeight()
	visible := r.W - ctx.style.Padding*2

	cursorX := ctx.textWidth(value[:st.Cursor])
	if cursorX-st.Scroll > visible-1 {
		st.Scroll = cursorX - visible + 1
	}
	if cursorX < st.Scroll {
		st.Scroll = cursorX
	}
	st.Scroll = maxf(0, st.Scroll)

	x := r.X + ctx.style.Padding - st.Scroll
	y := r.Y + (r.H-th)/2

	ctx.PushClipRect(r)
	if st.HasSelection() {
		start, end := st.Selection()
		sx := ctx.textWidth(value[:start])
		ex := ctx.textWidth(value[:end])
		ctx.DrawRect(Rect{X: x + sx, Y: y, W: ex - sx, H: th}, ctx.style.Color(ColorButtonFocus))
	}
	ctx.DrawText(value, Vec2{X: x, Y: y}, color)
	ctx.DrawRect(Rect{X: x + cursorX, Y: y, W: 1, H: th}, color)
	ctx.PopClipRect()
}

// printable drops control characters from typed input.
func printable(rs []rune) string {
	out := make([]rune, 0, len(rs))
	for _, r := range rs {
		if unicode.IsPrint(r) {
			out = append(out, r)
		}
	}
	return string(out)
}
