package mui

// Clipboard abstracts system clipboard access for text fields.
// Implement it with platform-specific clipboard APIs.
//
// For GLFW, backend/opengl provides one:
//
//	ctx := mui.NewContext(mui.WithClipboard(opengl.NewGLFWClipboard(window)))
//
// Without a clipboard, Ctrl+C, Ctrl+X and Ctrl+V in a textbox do nothing.
type Clipboard interface {
	// GetText retrieves text from the clipboard.
	// Returns empty string if the clipboard is empty or holds non-text data.
	GetText() string

	// SetText copies text to the clipboard.
	SetText(text string)
}

// MemoryClipboard is an in-process Clipboard.
type MemoryClipboard struct {
	text string
}

// GetText implements Clipboard.
func (c *MemoryClipboard) GetText() string { return c.text }

// SetText implements Clipboard.
func (c *MemoryClipboard) SetText(text string) { c.text = text }

// WithClipboard sets the clipboard used by text fields.
func WithClipboard(cb Clipboard) ContextOption {
	return func(ctx *Context) { ctx.clipboard = cb }
}

// SetClipboard replaces the clipboard. nil disables clipboard shortcuts.
func (ctx *Context) SetClipboard(cb Clipboard) {
	ctx.clipboard = cb
}

// Clipboard returns the current clipboard, or nil if none is set.
func (ctx *Context) Clipboard() Clipboard {
	return ctx.clipboard
}

func (ctx *Context) clipboardGet() string {
	if ctx.clipboard == nil {
		return ""
	}
	return ctx.clipboard.GetText()
}

func (ctx *Context) clipboardSet(text string) {
	if ctx.clipboard != nil && text != "" {
		ctx.clipboard.SetText(text)
	}
}
