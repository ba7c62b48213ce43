package mui

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key the engine reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyShift
	KeyCtrl
	KeyAlt
	KeyA // Select all with Ctrl
	KeyC // Copy with Ctrl
	KeyV // Paste with Ctrl
	KeyX // Cut with Ctrl
	KeyCount
)

// InputState buffers one frame of input.
//
// The host fills it between frames: continuous state (pointer position)
// is overwritten, discrete state (button and key transitions, typed text,
// wheel) accumulates. Once BeginFrame runs the buffer is frozen and setters
// are ignored; EndFrame clears the accumulated events and unfreezes it.
type InputState struct {
	mousePos  Vec2
	lastMouse Vec2
	delta     Vec2

	mouseDown     [MouseButtonCount]bool
	mousePressed  [MouseButtonCount]bool // pressed at some point since the last frame
	mouseReleased [MouseButtonCount]bool

	wheel Vec2

	keyDown     [KeyCount]bool
	keyPressed  [KeyCount]bool
	keyReleased [KeyCount]bool

	text []rune

	frozen bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{
		text: make([]rune, 0, 32),
	}
}

func (s *InputState) rejected(what string) bool {
	if s.frozen {
		logger.Debug("input ignored during frame", "event", what)
		return true
	}
	return false
}

// SetMousePos sets the pointer position.
func (s *InputState) SetMousePos(x, y float32) {
	if s.rejected("mouse-move") {
		return
	}
	s.mousePos = Vec2{X: x, Y: y}
}

// SetMouseButton records a button transition. Both a press and a release
// may be recorded for the same frame.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount || s.rejected("mouse-button") {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mousePressed[button] = true
	}
	if !down && wasDown {
		s.mouseReleased[button] = true
	}
}

// SetMouseWheel adds a scroll delta. Multiple calls per frame accumulate.
func (s *InputState) SetMouseWheel(x, y float32) {
	if s.rejected("scroll") {
		return
	}
	s.wheel.X += x
	s.wheel.Y += y
}

// SetKey records a key transition.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount || s.rejected("key") {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
	}
	if !down && wasDown {
		s.keyReleased[key] = true
	}
}

// SetModifiers records the state of the modifier keys in one call.
// Backends that only see modifier flags on other events use it instead
// of SetKey(KeyShift, ...).
func (s *InputState) SetModifiers(shift, ctrl, alt bool) {
	s.SetKey(KeyShift, shift)
	s.SetKey(KeyCtrl, ctrl)
	s.SetKey(KeyAlt, alt)
}

// RepeatKey records an auto-repeat for a held key as another press.
func (s *InputState) RepeatKey(key Key) {
	if key <= KeyNone || key >= KeyCount || s.rejected("key-repeat") {
		return
	}
	s.keyDown[key] = true
	s.keyPressed[key] = true
}

// AddInputChar queues a typed character.
func (s *InputState) AddInputChar(ch rune) {
	if s.rejected("text") {
		return
	}
	s.text = append(s.text, ch)
}

// AddInputText queues every rune of str.
func (s *InputState) AddInputText(str string) {
	for _, r := range str {
		s.AddInputChar(r)
	}
}

// MousePos returns the pointer position.
func (s *InputState) MousePos() Vec2 {
	return s.mousePos
}

// MouseDelta returns how far the pointer moved since the previous frame.
func (s *InputState) MouseDelta() Vec2 {
	return s.delta
}

// MouseWheel returns the accumulated scroll delta for this frame.
func (s *InputState) MouseWheel() Vec2 {
	return s.wheel
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MousePressed returns true if a mouse button went down this frame.
func (s *InputState) MousePressed(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mousePressed[button]
}

// MouseReleased returns true if a mouse button went up this frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseReleased[button]
}

// AnyMousePressed returns true if any button went down this frame.
func (s *InputState) AnyMousePressed() bool {
	for _, p := range s.mousePressed {
		if p {
			return true
		}
	}
	return false
}

// AnyMouseDown returns true if any button is held.
func (s *InputState) AnyMouseDown() bool {
	for _, d := range s.mouseDown {
		if d {
			return true
		}
	}
	return false
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key went down (or repeated) this frame.
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyReleased returns true if a key went up this frame.
func (s *InputState) KeyReleased(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyReleased[key]
}

// Text returns the characters typed this frame.
func (s *InputState) Text() []rune {
	return s.text
}

// Frozen reports whether a frame is reading the buffer.
func (s *InputState) Frozen() bool {
	return s.frozen
}

// freeze is called by BeginFrame.
func (s *InputState) freeze() {
	s.delta = s.mousePos.Sub(s.lastMouse)
	s.frozen = true
}

// endFrame is called by EndFrame. Held buttons and keys survive; edges,
// text and wheel are dropped.
func (s *InputState) endFrame() {
	clear(s.mousePressed[:])
	clear(s.mouseReleased[:])
	clear(s.keyPressed[:])
	clear(s.keyReleased[:])
	s.text = s.text[:0]
	s.wheel = Vec2{}
	s.lastMouse = s.mousePos
	s.delta = Vec2{}
	s.frozen = false
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	switch k {
	case KeyTab:
		return "Tab"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyDelete:
		return "Del"
	case KeyBackspace:
		return "Backspace"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Esc"
	case KeyA:
		return "A"
	case KeyC:
		return "C"
	case KeyV:
		return "V"
	case KeyX:
		return "X"
	case KeyShift:
		return "Shift"
	case KeyCtrl:
		return "Ctrl"
	case KeyAlt:
		return "Alt"
	case KeyNone:
		return "--"
	}
	return "?"
}
