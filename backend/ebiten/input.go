package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-theft-auto/mui"
)

// Key repeat timing in ticks.
const (
	repeatDelay    = 30
	repeatInterval = 4
	scrollStep     = 30
)

var keyMap = map[ebiten.Key]mui.Key{
	ebiten.KeyTab:        mui.KeyTab,
	ebiten.KeyArrowLeft:  mui.KeyLeft,
	ebiten.KeyArrowRight: mui.KeyRight,
	ebiten.KeyArrowUp:    mui.KeyUp,
	ebiten.KeyArrowDown:  mui.KeyDown,
	ebiten.KeyHome:       mui.KeyHome,
	ebiten.KeyEnd:        mui.KeyEnd,
	ebiten.KeyDelete:     mui.KeyDelete,
	ebiten.KeyBackspace:  mui.KeyBackspace,
	ebiten.KeyEnter:      mui.KeyEnter,
	ebiten.KeyKPEnter:    mui.KeyEnter,
	ebiten.KeyEscape:     mui.KeyEscape,
	ebiten.KeyA:          mui.KeyA,
	ebiten.KeyC:          mui.KeyC,
	ebiten.KeyV:          mui.KeyV,
	ebiten.KeyX:          mui.KeyX,
}

var buttonMap = [...]struct {
	from ebiten.MouseButton
	to   mui.MouseButton
}{
	{ebiten.MouseButtonLeft, mui.MouseButtonLeft},
	{ebiten.MouseButtonRight, mui.MouseButtonRight},
	{ebiten.MouseButtonMiddle, mui.MouseButtonMiddle},
}

// Input polls Ebitengine once per tick and writes into a mui.InputState.
type Input struct {
	input *mui.InputState
	chars []rune
}

// NewInput creates a poller for input.
func NewInput(input *mui.InputState) *Input {
	return &Input{input: input}
}

// Update polls the current tick. Call it at the top of Game.Update, before
// the frame begins.
func (p *Input) Update() {
	in := p.input

	x, y := ebiten.CursorPosition()
	in.SetMousePos(float32(x), float32(y))

	for _, b := range buttonMap {
		in.SetMouseButton(b.to, ebiten.IsMouseButtonPressed(b.from))
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		in.SetMouseWheel(float32(-wx)*scrollStep, float32(-wy)*scrollStep)
	}

	in.SetModifiers(
		ebiten.IsKeyPressed(ebiten.KeyShift),
		ebiten.IsKeyPressed(ebiten.KeyControl),
		ebiten.IsKeyPressed(ebiten.KeyAlt),
	)

	for from, to := range keyMap {
		switch {
		case inpututil.IsKeyJustPressed(from):
			in.SetKey(to, true)
		case inpututil.IsKeyJustReleased(from):
			in.SetKey(to, false)
		case repeating(inpututil.KeyPressDuration(from)):
			in.RepeatKey(to)
		}
	}

	p.chars = ebiten.AppendInputChars(p.chars[:0])
	for _, r := range p.chars {
		in.AddInputChar(r)
	}
}

func repeating(ticks int) bool {
	return ticks > repeatDelay && (ticks-repeatDelay)%repeatInterval == 0
}
