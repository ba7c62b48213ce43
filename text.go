package mui

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// TextWrapMode specifies how text is broken into lines.
type TextWrapMode int

const (
	// WrapWord breaks at spaces. A word wider than the line is broken
	// between grapheme clusters.
	WrapWord TextWrapMode = iota
	// WrapChar breaks between any two grapheme clusters (CJK or dense text).
	WrapChar
	// WrapAuto uses WrapChar for text containing CJK and WrapWord otherwise.
	WrapAuto
)

// WrapText breaks one paragraph into lines no wider than maxWidth with the
// current font. An empty paragraph yields one empty line so blank lines
// keep their height.
func (ctx *Context) WrapText(text string, maxWidth float32, mode TextWrapMode) []string {
	if maxWidth <= 0 || ctx.textWidth(text) <= maxWidth {
		return []string{text}
	}

	if mode == WrapAuto {
		mode = WrapWord
		if containsCJK(text) {
			mode = WrapChar
		}
	}

	if mode == WrapChar {
		return ctx.wrapByChar(text, maxWidth)
	}
	return ctx.wrapByWord(text, maxWidth)
}

func (ctx *Context) wrapByWord(text string, maxWidth float32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var line string
	for _, word := range words {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if ctx.textWidth(candidate) <= maxWidth {
			line = candidate
			continue
		}

		if line != "" {
			lines = append(lines, line)
		}
		if ctx.textWidth(word) <= maxWidth {
			line = word
			continue
		}
		// The word alone overflows: split it and carry its tail.
		parts := ctx.wrapByChar(word, maxWidth)
		lines = append(lines, parts[:len(parts)-1]...)
		line = parts[len(parts)-1]
	}
	return append(lines, line)
}

func (ctx *Context) wrapByChar(text string, maxWidth float32) []string {
	var lines []string
	start, end := 0, 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		_, to := g.Positions()
		if ctx.textWidth(text[start:to]) > maxWidth && end > start {
			lines = append(lines, text[start:end])
			start = end
		}
		end = to
	}
	return append(lines, text[start:])
}

// TruncateText shortens text to fit maxWidth, ending it with "..". Text
// that already fits is returned unchanged; when even the suffix does not
// fit the result is empty.
func (ctx *Context) TruncateText(text string, maxWidth float32) string {
	if ctx.textWidth(text) <= maxWidth {
		return text
	}
	for _, suffix := range []string{"..", "."} {
		target := maxWidth - ctx.textWidth(suffix)
		if target < 0 {
			continue
		}
		bounds := graphemeBounds(text)
		for i := len(bounds) - 1; i >= 0; i-- {
			if ctx.textWidth(text[:bounds[i]]) <= target {
				return text[:bounds[i]] + suffix
			}
		}
	}
	return ""
}

// MeasureWrappedText returns the size of text wrapped to maxWidth.
// Newlines always break.
func (ctx *Context) MeasureWrappedText(text string, maxWidth float32, mode TextWrapMode) Vec2 {
	var size Vec2
	for _, para := range strings.Split(text, "\n") {
		for _, line := range ctx.WrapText(para, maxWidth, mode) {
			size.X = maxf(size.X, ctx.textWidth(line))
			size.Y += ctx.textHeight()
		}
	}
	return size
}

func containsCJK(text string) bool {
	for _, r := range text {
		if isCJKRune(r) {
			return true
		}
	}
	return false
}

func isCJKRune(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r) ||
		unicode.In(r, unicode.Bopomofo) ||
		unicode.In(r, unicode.Yi)
}
