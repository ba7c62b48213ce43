package mui

// ListClipper helps virtualize large lists by calculating the visible item range.
// This is critical for performance with large datasets (1000+ items) where
// declaring every item every frame would fill the command buffer.
//
// Usage inside a window or panel:
//
//	clip := ctx.BeginListClipper(len(lines), ctx.TextHeight())
//	for i := clip.StartIdx; i < clip.EndIdx; i++ {
//	    ctx.Label(lines[i])
//	}
//	clip.End()
type ListClipper struct {
	StartIdx   int     // First visible item index (inclusive)
	EndIdx     int     // Last visible item index (exclusive)
	ItemHeight float32 // Height of each item
	TotalItems int     // Total number of items in the list

	ctx   *Context
	start float32 // Layout-relative y of item 0
	step  float32 // Item height plus row spacing
}

// NewListClipper calculates the visible item range for a scrollable list.
//
// Parameters:
//   - totalItems: Total number of items in the list
//   - itemHeight: Height of each item in pixels
//   - visibleHeight: Height of the visible area in pixels
//   - scrollY: Current vertical scroll offset in pixels
//
// Returns a ListClipper with StartIdx and EndIdx set to the visible range.
func NewListClipper(totalItems int, itemHeight, visibleHeight, scrollY float32) *ListClipper {
	c := &ListClipper{ItemHeight: itemHeight, TotalItems: totalItems}
	c.StartIdx, c.EndIdx = visibleRange(totalItems, itemHeight, visibleHeight, scrollY)
	return c
}

func visibleRange(totalItems int, step, visibleHeight, scrollY float32) (start, end int) {
	if totalItems <= 0 || step <= 0 {
		return 0, 0
	}

	start = max(int(scrollY/step), 0)
	// +2 for partial visibility at top/bottom
	end = start + int(visibleHeight/step) + 2

	start = min(start, totalItems)
	end = min(end, totalItems)
	return start, end
}

// BeginListClipper lays out a list of totalItems rows of itemHeight in the
// current container and returns the range of rows that can be seen. Only
// those rows need to be declared; End reserves the space of the rest.
// Each visible row is one full-width cell.
func (ctx *Context) BeginListClipper(totalItems int, itemHeight float32) *ListClipper {
	clip := &ListClipper{ItemHeight: itemHeight, TotalItems: totalItems, ctx: ctx}
	l := ctx.activeLayout("BeginListClipper")
	c := ctx.CurrentContainer()
	if l == nil || c == nil {
		return clip
	}

	clip.step = itemHeight + ctx.style.Spacing
	clip.start = l.nextRow

	top := c.Body.Y - l.Body.Y - clip.start
	clip.StartIdx, clip.EndIdx = visibleRange(totalItems, clip.step, c.Body.H, top)

	l.nextRow = clip.start + float32(clip.StartIdx)*clip.step
	ctx.LayoutRow([]float32{Fill}, itemHeight)
	return clip
}

// End moves the layout cursor past the whole list.
func (c *ListClipper) End() {
	if c.ctx == nil {
		return
	}
	l := c.ctx.activeLayout("ListClipper.End")
	if l == nil {
		return
	}
	end := c.start + float32(c.TotalItems)*c.step
	l.nextRow = maxf(l.nextRow, end)
	if c.TotalItems > 0 {
		l.Max.Y = maxf(l.Max.Y, l.Body.Y+end-c.ctx.style.Spacing)
	}
	c.ctx.LayoutRow(nil, 0)
}

// ShouldRender returns true if the item at the given index should be rendered.
func (c *ListClipper) ShouldRender(idx int) bool {
	return idx >= c.StartIdx && idx < c.EndIdx
}

// VisibleCount returns the number of items that should be rendered.
func (c *ListClipper) VisibleCount() int {
	return c.EndIdx - c.StartIdx
}

// ContentHeight returns the total content height (for scrollbar calculations).
func (c *ListClipper) ContentHeight() float32 {
	return float32(c.TotalItems) * c.ItemHeight
}

// ScrollToItem returns the scroll offset needed to make an item visible.
// If the item is already visible, returns the current scroll unchanged.
func (c *ListClipper) ScrollToItem(idx int, currentScroll, visibleHeight float32) float32 {
	if idx < 0 || idx >= c.TotalItems {
		return currentScroll
	}

	itemTop := float32(idx) * c.ItemHeight
	itemBottom := itemTop + c.ItemHeight

	if itemTop < currentScroll {
		return itemTop
	}
	if itemBottom > currentScroll+visibleHeight {
		return itemBottom - visibleHeight
	}
	return currentScroll
}
