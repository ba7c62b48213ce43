package mui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/mui"
)

// All cases use the default monospace metrics: 8px per grapheme, 16px lines.
func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float32
		mode     mui.TextWrapMode
		want     []string
	}{
		{"fits", "hello", 100, mui.WrapWord, []string{"hello"}},
		{"empty", "", 100, mui.WrapWord, []string{""}},
		{"no limit", "hello world", 0, mui.WrapWord, []string{"hello world"}},
		{"words", "hello world foo", 88, mui.WrapWord, []string{"hello world", "foo"}},
		{"long word breaks", "hi abcdefghij", 32, mui.WrapWord, []string{"hi", "abcd", "efgh", "ij"}},
		{"chars", "abcdefghij", 32, mui.WrapChar, []string{"abcd", "efgh", "ij"}},
		{"auto latin", "aaa bbb", 40, mui.WrapAuto, []string{"aaa", "bbb"}},
		{"auto cjk", "日本語のテキスト", 24, mui.WrapAuto, []string{"日本語", "のテキ", "スト"}},
		{"clusters stay whole", "aéio", 16, mui.WrapChar, []string{"aé", "io"}},
	}

	ctx := mui.NewContext()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ctx.WrapText(tt.text, tt.maxWidth, tt.mode))
		})
	}
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float32
		want     string
	}{
		{"fits", "hello", 40, "hello"},
		{"cut", "hello world", 56, "hello.."},
		{"only a dot fits", "hello", 8, "."},
		{"nothing fits", "hello", 4, ""},
	}

	ctx := mui.NewContext()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ctx.TruncateText(tt.text, tt.maxWidth))
		})
	}
}

func TestMeasureWrappedText(t *testing.T) {
	ctx := mui.NewContext()
	size := ctx.MeasureWrappedText("hello world\nfoo", 48, mui.WrapWord)
	assert.Equal(t, mui.Vec2{X: 40, Y: 48}, size)
}

func TestMeasurerFuncs(t *testing.T) {
	m := mui.MeasurerFuncs{
		Width: func(_ mui.Font, s string) float32 { return float32(len(s)) * 3 },
	}
	ctx := mui.NewContext(mui.WithTextMeasurer(m))
	assert.Equal(t, float32(12), ctx.TextWidth("abcd"))
	assert.Equal(t, float32(mui.DefaultLineHeight), ctx.TextHeight())
}

func TestMonospaceMeasurerCountsGraphemes(t *testing.T) {
	m := mui.MonospaceMeasurer{CharWidth: 10, LineHeight: 12}
	assert.Equal(t, float32(20), m.TextWidth(nil, "ée"))
	assert.Equal(t, float32(12), m.TextHeight(nil))
	assert.Equal(t, float32(mui.DefaultCharWidth), mui.MonospaceMeasurer{}.TextWidth(nil, "x"))
}
