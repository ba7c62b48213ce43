package mui

import "github.com/rivo/uniseg"

// Font is an opaque font handle. The engine never looks inside it: it is
// passed back to the TextMeasurer and copied into text commands for the
// renderer.
type Font any

// TextMeasurer supplies text metrics. Both methods are called synchronously
// during widget calls and must be deterministic within a frame.
//
// The engine does not depend on any concrete font implementation.
// Hosts inject one:
//
//	ctx := mui.NewContext(mui.WithTextMeasurer(fontmetrics.Default()))
type TextMeasurer interface {
	// TextWidth returns the advance width of s in pixels.
	TextWidth(font Font, s string) float32

	// TextHeight returns the line height in pixels.
	TextHeight(font Font) float32
}

// Default metrics of MonospaceMeasurer.
const (
	DefaultCharWidth  = 8
	DefaultLineHeight = 16
)

// MonospaceMeasurer measures every grapheme cluster as one fixed-width
// cell. The zero value uses DefaultCharWidth and DefaultLineHeight, which
// match the built-in bitmap font of the OpenGL backend.
type MonospaceMeasurer struct {
	CharWidth  float32
	LineHeight float32
}

// TextWidth implements TextMeasurer.
func (m MonospaceMeasurer) TextWidth(_ Font, s string) float32 {
	w := m.CharWidth
	if w == 0 {
		w = DefaultCharWidth
	}
	return float32(uniseg.GraphemeClusterCount(s)) * w
}

// TextHeight implements TextMeasurer.
func (m MonospaceMeasurer) TextHeight(Font) float32 {
	if m.LineHeight == 0 {
		return DefaultLineHeight
	}
	return m.LineHeight
}

// MeasurerFuncs adapts a pair of plain functions to TextMeasurer.
// Nil fields fall back to MonospaceMeasurer.
type MeasurerFuncs struct {
	Width  func(font Font, s string) float32
	Height func(font Font) float32
}

// TextWidth implements TextMeasurer.
func (f MeasurerFuncs) TextWidth(font Font, s string) float32 {
	if f.Width == nil {
		return MonospaceMeasurer{}.TextWidth(font, s)
	}
	return f.Width(font, s)
}

// TextHeight implements TextMeasurer.
func (f MeasurerFuncs) TextHeight(font Font) float32 {
	if f.Height == nil {
		return MonospaceMeasurer{}.TextHeight(font)
	}
	return f.Height(font)
}
