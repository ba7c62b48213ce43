package mui

import "strings"

// drawControlFrame draws a widget background. role is the base color of a
// hover/focus triple (ColorButton or ColorBase).
func (ctx *Context) drawControlFrame(id ID, r Rect, role ColorRole, o options) {
	if GetOpt(o, OptNoFrame) {
		return
	}
	switch ctx.Interaction(id) {
	case InteractionPressed:
		role += 2
	case InteractionFocused:
		// A focused text field keeps its highlight; a button that was
		// clicked goes back to normal once released.
		if role == ColorBase {
			role += 2
		}
	case InteractionHovered:
		role++
	}
	ctx.drawFrame(r, role)
}

// drawControlText draws str inside r, vertically centered and aligned per
// the OptAlign option.
func (ctx *Context) drawControlText(str string, r Rect, role ColorRole, o options) {
	if GetOpt(o, OptTruncate) {
		str = ctx.TruncateText(str, r.W-2*ctx.style.Padding)
	}
	tw := ctx.textWidth(str)
	ctx.PushClipRect(r)
	pos := Vec2{Y: r.Y + (r.H-ctx.textHeight())/2}
	switch GetOpt(o, OptAlign) {
	case AlignCenter:
		pos.X = r.X + (r.W-tw)/2
	case AlignRight:
		pos.X = r.X + r.W - tw - ctx.style.Padding
	default:
		pos.X = r.X + ctx.style.Padding
	}
	ctx.DrawText(str, pos, ctx.style.Color(role))
	ctx.PopClipRect()
}

// Label draws text in the next layout cell.
func (ctx *Context) Label(text string, opts ...Option) {
	ctx.drawControlText(text, ctx.LayoutNext(), ColorText, applyOptions(opts))
}

// Text draws text wrapped to the width of the container, one layout row
// per line. Explicit newlines always break. Text containing CJK wraps
// between characters.
func (ctx *Context) Text(text string) {
	l := ctx.activeLayout("Text")
	if l == nil {
		return
	}
	color := ctx.style.Color(ColorText)
	maxW := l.Body.W - l.Indent

	ctx.LayoutBeginColumn()
	ctx.LayoutRow([]float32{Fill}, ctx.textHeight())
	for _, para := range strings.Split(text, "\n") {
		for _, line := range ctx.WrapText(para, maxW, WrapAuto) {
			r := ctx.LayoutNext()
			ctx.DrawText(line, Vec2{X: r.X, Y: r.Y}, color)
		}
	}
	ctx.LayoutEndColumn()
}

// Button draws a button and returns true if clicked this frame.
//
// The click fires on the press, so a press and release within one frame
// is still exactly one click.
func (ctx *Context) Button(label string, opts ...Option) bool {
	o := applyOptions(append([]Option{WithAlign(AlignCenter)}, opts...))
	return ctx.button(ctx.GetID(idLabel(o, label)), label, IconNone, o)
}

// IconButton draws a button showing an icon instead of text. id is hashed
// for identity since there is no label.
func (ctx *Context) IconButton(id string, icon Icon, opts ...Option) bool {
	o := applyOptions(opts)
	return ctx.button(ctx.GetID(idLabel(o, id)), "", icon, o)
}

func (ctx *Context) button(id ID, label string, icon Icon, o options) bool {
	r := ctx.LayoutNext()
	ctx.updateControl(id, r, o)
	clicked := ctx.input.MousePressed(MouseButtonLeft) && ctx.focus == id

	ctx.drawControlFrame(id, r, ColorButton, o)
	if label != "" {
		ctx.drawControlText(label, r, ColorText, o)
	}
	if icon != IconNone {
		ctx.DrawIcon(icon, r, ctx.style.Color(ColorText))
	}
	return clicked
}

// Checkbox draws a checkbox with label.
// Returns true if the value changed.
func (ctx *Context) Checkbox(label string, value *bool, opts ...Option) bool {
	o := applyOptions(opts)
	if !ctx.toggle(ctx.GetID(idLabel(o, label)), label, *value, o) {
		return false
	}
	*value = !*value
	return true
}

// toggle draws a square box followed by label, checked when on, and
// reports a click.
func (ctx *Context) toggle(id ID, label string, on bool, o options) bool {
	r := ctx.LayoutNext()
	box := Rect{X: r.X, Y: r.Y, W: r.H, H: r.H}
	ctx.updateControl(id, r, o)
	clicked := ctx.input.MousePressed(MouseButtonLeft) && ctx.focus == id

	ctx.drawControlFrame(id, box, ColorBase, o)
	if on {
		ctx.DrawIcon(IconCheck, box, ctx.style.Color(ColorText))
	}
	r = Rect{X: r.X + box.W, Y: r.Y, W: r.W - box.W, H: r.H}
	ctx.drawControlText(label, r, ColorText, o)
	return clicked
}
