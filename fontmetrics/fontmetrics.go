// Package fontmetrics measures text for mui with golang.org/x/image faces.
package fontmetrics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/mui"
)

// Face implements mui.TextMeasurer over a font.Face.
//
// Text commands carry a mui.Font handle. When that handle is itself a
// font.Face it is measured directly, otherwise the Face's own font is used.
type Face struct {
	face font.Face
}

var _ mui.TextMeasurer = (*Face)(nil)

// New wraps face. A nil face falls back to basicfont.Face7x13.
func New(face font.Face) *Face {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &Face{face: face}
}

// Default measures with basicfont.Face7x13: 7 pixel advances, 13 pixel lines.
func Default() *Face {
	return New(basicfont.Face7x13)
}

// Face returns the wrapped font face.
func (f *Face) Face() font.Face {
	return f.face
}

func (f *Face) resolve(handle mui.Font) font.Face {
	if face, ok := handle.(font.Face); ok && face != nil {
		return face
	}
	return f.face
}

// TextWidth implements mui.TextMeasurer.
func (f *Face) TextWidth(handle mui.Font, s string) float32 {
	if s == "" {
		return 0
	}
	return toFloat(font.MeasureString(f.resolve(handle), s))
}

// TextHeight implements mui.TextMeasurer.
func (f *Face) TextHeight(handle mui.Font) float32 {
	return toFloat(f.resolve(handle).Metrics().Height)
}

// Ascent returns the distance from the top of a line to its baseline.
func (f *Face) Ascent(handle mui.Font) float32 {
	return toFloat(f.resolve(handle).Metrics().Ascent)
}

func toFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
