package mui

// header draws a full-width collapsible row and returns whether it is
// expanded, along with its ID. Expansion state lives in the tree node store.
func (ctx *Context) header(label string, treeNode bool, o options) (bool, ID) {
	id := ctx.GetID(idLabel(o, label))
	expanded := ctx.treeNodes.Get(id, GetOpt(o, OptExpanded))

	ctx.LayoutRow([]float32{Fill}, 0)
	r := ctx.LayoutNext()
	ctx.updateControl(id, r, o)

	if ctx.input.MousePressed(MouseButtonLeft) && ctx.focus == id {
		*expanded = !*expanded
		logger.Debug("header toggled", "label", label, "expanded", *expanded)
	}

	if treeNode {
		if ctx.hover == id {
			ctx.drawFrame(r, ColorButtonHover)
		}
	} else {
		ctx.drawControlFrame(id, r, ColorButton, o)
	}

	icon := IconCollapsed
	if *expanded {
		icon = IconExpanded
	}
	ctx.DrawIcon(icon, Rect{X: r.X, Y: r.Y, W: r.H, H: r.H}, ctx.style.Color(ColorText))
	r.X += r.H - ctx.style.Padding
	r.W -= r.H - ctx.style.Padding
	ctx.drawControlText(label, r, ColorText, o)
	return *expanded, id
}

// Header draws a collapsible section header and returns true while it is
// expanded.
//
//	if ctx.Header("Options", mui.DefaultOpen()) {
//	    ctx.Checkbox("Fullscreen", &fullscreen)
//	}
func (ctx *Context) Header(label string, opts ...Option) bool {
	if ctx.activeLayout("Header") == nil {
		return false
	}
	expanded, _ := ctx.header(label, false, applyOptions(opts))
	return expanded
}

// BeginTreeNode draws a tree node. When it returns true the node is
// expanded, its children are indented and scoped under its ID, and
// EndTreeNode must be called.
func (ctx *Context) BeginTreeNode(label string, opts ...Option) bool {
	if ctx.activeLayout("BeginTreeNode") == nil {
		return false
	}
	expanded, id := ctx.header(label, true, applyOptions(opts))
	if !expanded {
		return false
	}
	ctx.Indent()
	ctx.pushIDValue(id)
	return true
}

// EndTreeNode closes an expanded tree node.
func (ctx *Context) EndTreeNode() {
	ctx.Unindent()
	ctx.PopID()
}

// SetTreeNodeOpen forces the expansion state of the header or tree node
// label in the current ID scope.
func (ctx *Context) SetTreeNodeOpen(label string, open bool) {
	ctx.treeNodes.Set(ctx.GetID(label), open)
}
