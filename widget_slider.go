package mui

import (
	"fmt"
	"strconv"
	"strings"
)

// numberTextbox switches a slider or number field into text entry on a
// shift-click. It returns true while the field is being typed into.
func (ctx *Context) numberTextbox(value *float32, r Rect, id ID) bool {
	in := ctx.input
	if in.MousePressed(MouseButtonLeft) && in.KeyDown(KeyShift) && ctx.hover == id {
		ctx.numberEdit = id
		ctx.numberBuf = strconv.FormatFloat(float64(*value), 'g', 3, 32)
		ctx.textEdits.Set(id, TextEditState{Cursor: len(ctx.numberBuf), Anchor: 0})
	}
	if ctx.numberEdit != id {
		return false
	}

	res := ctx.textboxRaw(&ctx.numberBuf, id, r, options{})
	if res.Has(ResultSubmit) || ctx.focus != id {
		if v, err := strconv.ParseFloat(strings.TrimSpace(ctx.numberBuf), 32); err == nil {
			*value = float32(v)
		} else {
			logger.Debug("number entry rejected", "text", ctx.numberBuf, "err", err)
		}
		ctx.numberEdit = 0
		return false
	}
	return true
}

// Slider draws a horizontal slider for *value in [low, high]. label
// identifies the slider; the displayed text is the formatted value.
// Shift-click to type a value.
//
// Usage:
//
//	if ctx.Slider("volume", &volume, 0, 1).Has(mui.ResultChange) {
//	    updateVolume(volume)
//	}
func (ctx *Context) Slider(label string, value *float32, low, high float32, opts ...Option) Result {
	o := applyOptions(opts)
	id := ctx.GetID(idLabel(o, label))
	base := ctx.LayoutNext()

	last := *value
	if ctx.numberTextbox(value, base, id) {
		return ResultActive
	}
	ctx.updateControl(id, base, o)

	v := *value
	var res Result
	if ctx.focus == id && ctx.input.MouseDown(MouseButtonLeft) && base.W > 0 {
		res |= ResultActive
		v = low + (ctx.input.MousePos().X-base.X)*(high-low)/base.W
		if step := GetOpt(o, OptStep); step > 0 {
			v = float32(int64((v+step/2)/step)) * step
		}
	}
	v = clampf(v, minf(low, high), maxf(low, high))
	*value = v
	if last != v {
		res |= ResultChange
	}

	ctx.drawControlFrame(id, base, ColorBase, o)
	w := ctx.style.ThumbSize
	var x float32
	if high != low {
		x = (v - low) * (base.W - w) / (high - low)
	}
	thumb := Rect{X: base.X + x, Y: base.Y, W: w, H: base.H}
	ctx.drawControlFrame(id, thumb, ColorButton, o)

	ctx.drawControlText(fmt.Sprintf(GetOpt(o, OptFormat), v), base, ColorText,
		applyOptions([]Option{WithAlign(AlignCenter)}))
	return res
}

// Number draws a numeric field changed by dragging horizontally: every
// pixel of pointer movement adds step. Shift-click to type a value.
func (ctx *Context) Number(label string, value *float32, step float32, opts ...Option) Result {
	o := applyOptions(opts)
	id := ctx.GetID(idLabel(o, label))
	base := ctx.LayoutNext()

	last := *value
	if ctx.numberTextbox(value, base, id) {
		return ResultActive
	}
	ctx.updateControl(id, base, o)

	var res Result
	if ctx.focus == id && ctx.input.MouseDown(MouseButtonLeft) {
		res |= ResultActive
		*value += ctx.input.MouseDelta().X * step
	}
	if *value != last {
		res |= ResultChange
	}

	ctx.drawControlFrame(id, base, ColorBase, o)
	ctx.drawControlText(fmt.Sprintf(GetOpt(o, OptFormat), *value), base, ColorText,
		applyOptions([]Option{WithAlign(AlignCenter)}))
	return res
}
