package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/mui"
)

// GLFWInputAdapter forwards GLFW window events into a mui.InputState.
// Events arrive through callbacks during glfw.PollEvents, which must run
// between frames while the buffer is open.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *mui.InputState
}

// NewGLFWInputAdapter installs input callbacks on window that feed input.
func NewGLFWInputAdapter(window *glfw.Window, input *mui.InputState) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  input,
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update samples the cursor position and modifier state. Call it after
// glfw.PollEvents and before the frame begins.
func (a *GLFWInputAdapter) Update() {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	a.input.SetModifiers(
		a.pressed(glfw.KeyLeftShift, glfw.KeyRightShift),
		a.pressed(glfw.KeyLeftControl, glfw.KeyRightControl),
		a.pressed(glfw.KeyLeftAlt, glfw.KeyRightAlt),
	)
}

func (a *GLFWInputAdapter) pressed(keys ...glfw.Key) bool {
	for _, k := range keys {
		if a.window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

// Input returns the buffer the adapter writes to.
func (a *GLFWInputAdapter) Input() *mui.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == mui.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Repeat:
		a.input.RepeatKey(k)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) charCallback(_ *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b, ok := glfwMouseButton(button)
	if !ok {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	// GLFW reports wheel-up as positive; mui scrolls content down for positive y.
	a.input.SetMouseWheel(float32(-xoff)*scrollStep, float32(-yoff)*scrollStep)
}

func (a *GLFWInputAdapter) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// scrollStep is the number of pixels scrolled per wheel notch.
const scrollStep = 30

func glfwKeyToKey(key glfw.Key) mui.Key {
	switch key {
	case glfw.KeyTab:
		return mui.KeyTab
	case glfw.KeyLeft:
		return mui.KeyLeft
	case glfw.KeyRight:
		return mui.KeyRight
	case glfw.KeyUp:
		return mui.KeyUp
	case glfw.KeyDown:
		return mui.KeyDown
	case glfw.KeyHome:
		return mui.KeyHome
	case glfw.KeyEnd:
		return mui.KeyEnd
	case glfw.KeyDelete:
		return mui.KeyDelete
	case glfw.KeyBackspace:
		return mui.KeyBackspace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return mui.KeyEnter
	case glfw.KeyEscape:
		return mui.KeyEscape
	case glfw.KeyA:
		return mui.KeyA
	case glfw.KeyC:
		return mui.KeyC
	case glfw.KeyV:
		return mui.KeyV
	case glfw.KeyX:
		return mui.KeyX
	default:
		return mui.KeyNone
	}
}

func glfwMouseButton(button glfw.MouseButton) (mui.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return mui.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return mui.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return mui.MouseButtonMiddle, true
	default:
		return 0, false
	}
}

// GLFWClipboard implements mui.Clipboard with the GLFW clipboard.
type GLFWClipboard struct {
	window *glfw.Window
}

// NewGLFWClipboard creates a clipboard bound to window.
func NewGLFWClipboard(window *glfw.Window) *GLFWClipboard {
	return &GLFWClipboard{window: window}
}

// GetText implements mui.Clipboard.
func (c *GLFWClipboard) GetText() string {
	return c.window.GetClipboardString()
}

// SetText implements mui.Clipboard.
func (c *GLFWClipboard) SetText(text string) {
	c.window.SetClipboardString(text)
}
