package mui

// OptColumns lays a radio group out in that many columns.
var OptColumns = NewOptKey("columns", 1)

// WithColumns sets the number of columns of a radio group.
func WithColumns(n int) Option { return WithOpt(OptColumns, n) }

// RadioGroup draws one toggle per item, with the one at *selected checked.
// A non-empty label is drawn above the items. Items fill rows of
// WithColumns columns, one column by default.
// Returns true if the selection changed.
//
// Usage:
//
//	items := []string{"Low", "Medium", "High"}
//	if ctx.RadioGroup("Quality", &quality, items) {
//	    applyQuality(quality)
//	}
func (ctx *Context) RadioGroup(label string, selected *int, items []string, opts ...Option) bool {
	if ctx.activeLayout("RadioGroup") == nil {
		return false
	}
	o := applyOptions(opts)
	columns := max(GetOpt(o, OptColumns), 1)

	ctx.PushID(idLabel(o, label))
	defer ctx.PopID()

	if label != "" {
		ctx.LayoutRow([]float32{Fill}, 0)
		ctx.Label(label)
	}

	widths := make([]float32, columns)
	for i := range widths {
		widths[i] = Fill
	}
	ctx.LayoutRow(widths, 0)

	changed := false
	for i, item := range items {
		id := ctx.GetIDInt(item, i)
		if ctx.toggle(id, item, i == *selected, o) && i != *selected {
			*selected = i
			changed = true
		}
	}
	return changed
}
