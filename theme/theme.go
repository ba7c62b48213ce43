// Package theme loads mui styles from TOML files.
//
// A theme starts from a built-in base style and overrides any subset of
// its metrics and colors:
//
//	base = "gta"
//	padding = 6
//	title_height = 28
//
//	[size]
//	width = 80
//	height = 12
//
//	[colors]
//	window_bg = "#1e1e1ef0"
//	button    = "#4b4b4b"
//
// Colors are "#rrggbb" or "#rrggbbaa". Color keys are the snake_case role
// names of mui.ColorRole.
package theme

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/go-theft-auto/mui"
)

// File is the TOML layout of a theme.
type File struct {
	Base          string            `toml:"base,omitempty"`
	Padding       *float32          `toml:"padding,omitempty"`
	Spacing       *float32          `toml:"spacing,omitempty"`
	Indent        *float32          `toml:"indent,omitempty"`
	TitleHeight   *float32          `toml:"title_height,omitempty"`
	ScrollbarSize *float32          `toml:"scrollbar_size,omitempty"`
	ThumbSize     *float32          `toml:"thumb_size,omitempty"`
	FooterHeight  *float32          `toml:"footer_height,omitempty"`
	BorderSize    *float32          `toml:"border_size,omitempty"`
	Size          *Size             `toml:"size,omitempty"`
	Colors        map[string]string `toml:"colors,omitempty"`
}

// Size is the default widget size.
type Size struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// Load reads a theme file from path.
func Load(path string) (mui.Style, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return mui.Style{}, errors.Wrapf(err, "loading theme %s", path)
	}
	style, err := build(f, md)
	if err != nil {
		return mui.Style{}, errors.Wrapf(err, "theme %s", path)
	}
	return style, nil
}

// Decode reads a theme from r.
func Decode(r io.Reader) (mui.Style, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return mui.Style{}, errors.Wrap(err, "decoding theme")
	}
	return build(f, md)
}

// Encode writes style as a complete theme file.
func Encode(w io.Writer, style mui.Style) error {
	f := File{
		Padding:       &style.Padding,
		Spacing:       &style.Spacing,
		Indent:        &style.Indent,
		TitleHeight:   &style.TitleHeight,
		ScrollbarSize: &style.ScrollbarSize,
		ThumbSize:     &style.ThumbSize,
		FooterHeight:  &style.FooterHeight,
		BorderSize:    &style.BorderSize,
		Size:          &Size{Width: style.Size.X, Height: style.Size.Y},
		Colors:        make(map[string]string, mui.ColorCount),
	}
	for role := range mui.ColorCount {
		f.Colors[role.String()] = FormatColor(style.Colors[role])
	}
	return errors.Wrap(toml.NewEncoder(w).Encode(f), "encoding theme")
}

func build(f File, md toml.MetaData) (mui.Style, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return mui.Style{}, errors.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	style, err := baseStyle(f.Base)
	if err != nil {
		return mui.Style{}, err
	}

	set := func(dst *float32, v *float32) {
		if v != nil {
			*dst = *v
		}
	}
	set(&style.Padding, f.Padding)
	set(&style.Spacing, f.Spacing)
	set(&style.Indent, f.Indent)
	set(&style.TitleHeight, f.TitleHeight)
	set(&style.ScrollbarSize, f.ScrollbarSize)
	set(&style.ThumbSize, f.ThumbSize)
	set(&style.FooterHeight, f.FooterHeight)
	set(&style.BorderSize, f.BorderSize)
	if f.Size != nil {
		style.Size = mui.Vec2{X: f.Size.Width, Y: f.Size.Height}
	}

	names := make([]string, 0, len(f.Colors))
	for name := range f.Colors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		role, ok := mui.ColorRoleByName(name)
		if !ok {
			return mui.Style{}, errors.Errorf("unknown color role %q", name)
		}
		c, err := ParseColor(f.Colors[name])
		if err != nil {
			return mui.Style{}, errors.Wrapf(err, "color %s", name)
		}
		style.Colors[role] = c
	}
	return style, nil
}

func baseStyle(name string) (mui.Style, error) {
	switch name {
	case "", "default":
		return mui.DefaultStyle(), nil
	case "gta":
		return mui.GTAStyle(), nil
	default:
		return mui.Style{}, errors.Errorf("unknown base style %q", name)
	}
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (mui.Color, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return 0, errors.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid color %q", s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return mui.RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// FormatColor formats c as "#rrggbbaa".
func FormatColor(c mui.Color) string {
	r, g, b, a := c.Components()
	v := uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
	s := strconv.FormatUint(uint64(v), 16)
	return "#" + strings.Repeat("0", 8-len(s)) + s
}
