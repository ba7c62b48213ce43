package mui

// ColorRole names one entry of the style color table.
type ColorRole int

const (
	ColorText ColorRole = iota
	ColorBorder
	ColorWindowBg
	ColorTitleBg
	ColorTitleText
	ColorPanelBg
	ColorButton
	ColorButtonHover
	ColorButtonFocus
	ColorBase
	ColorBaseHover
	ColorBaseFocus
	ColorScrollBase
	ColorScrollThumb
	ColorCount
)

var colorRoleNames = [ColorCount]string{
	ColorText:        "text",
	ColorBorder:      "border",
	ColorWindowBg:    "window_bg",
	ColorTitleBg:     "title_bg",
	ColorTitleText:   "title_text",
	ColorPanelBg:     "panel_bg",
	ColorButton:      "button",
	ColorButtonHover: "button_hover",
	ColorButtonFocus: "button_focus",
	ColorBase:        "base",
	ColorBaseHover:   "base_hover",
	ColorBaseFocus:   "base_focus",
	ColorScrollBase:  "scroll_base",
	ColorScrollThumb: "scroll_thumb",
}

func (r ColorRole) String() string {
	if r < 0 || r >= ColorCount {
		return "unknown"
	}
	return colorRoleNames[r]
}

// ColorRoleByName looks up a role by its String() name.
func ColorRoleByName(name string) (ColorRole, bool) {
	for i, n := range colorRoleNames {
		if n == name {
			return ColorRole(i), true
		}
	}
	return 0, false
}

// Style is the flat style table: one color per role plus a handful of
// measurements. It is read-only while a frame is in progress.
type Style struct {
	Colors [ColorCount]Color

	// Font is handed back to the TextMeasurer and to the renderer unchanged.
	Font Font

	// Size is the default widget size (before padding).
	Size          Vec2
	Padding       float32
	Spacing       float32 // Gap between cells of a row and between rows
	Indent        float32 // Tree node indentation
	TitleHeight   float32
	ScrollbarSize float32
	ThumbSize     float32 // Minimum scrollbar thumb / slider grab size
	FooterHeight  float32 // Resize handle size
	BorderSize    float32
}

// Color returns the color for role.
func (s *Style) Color(role ColorRole) Color {
	if role < 0 || role >= ColorCount {
		return ColorTransparent
	}
	return s.Colors[role]
}

// WithColor returns a copy of the style with one role changed.
func (s Style) WithColor(role ColorRole, c Color) Style {
	if role >= 0 && role < ColorCount {
		s.Colors[role] = c
	}
	return s
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Colors: [ColorCount]Color{
			ColorText:        RGBA(230, 230, 230, 255),
			ColorBorder:      RGBA(25, 25, 25, 255),
			ColorWindowBg:    RGBA(50, 50, 50, 255),
			ColorTitleBg:     RGBA(25, 25, 25, 255),
			ColorTitleText:   RGBA(240, 240, 240, 255),
			ColorPanelBg:     RGBA(0, 0, 0, 0),
			ColorButton:      RGBA(75, 75, 75, 255),
			ColorButtonHover: RGBA(95, 95, 95, 255),
			ColorButtonFocus: RGBA(115, 115, 115, 255),
			ColorBase:        RGBA(30, 30, 30, 255),
			ColorBaseHover:   RGBA(35, 35, 35, 255),
			ColorBaseFocus:   RGBA(40, 40, 40, 255),
			ColorScrollBase:  RGBA(43, 43, 43, 255),
			ColorScrollThumb: RGBA(30, 30, 30, 255),
		},
		Size:          Vec2{X: 68, Y: 10},
		Padding:       5,
		Spacing:       8,
		Indent:        24,
		TitleHeight:   24,
		ScrollbarSize: 12,
		ThumbSize:     8,
		FooterHeight:  20,
		BorderSize:    1,
	}
}

// GTAStyle returns a dark theme with cyan/yellow accents.
func GTAStyle() Style {
	s := DefaultStyle()
	s.Colors[ColorText] = RGBA(255, 255, 255, 255)
	s.Colors[ColorWindowBg] = RGBA(0, 0, 0, 220)
	s.Colors[ColorTitleBg] = RGBA(0, 60, 90, 255)
	s.Colors[ColorTitleText] = RGBA(255, 200, 0, 255)
	s.Colors[ColorButton] = RGBA(40, 40, 40, 255)
	s.Colors[ColorButtonHover] = RGBA(60, 80, 100, 255)
	s.Colors[ColorButtonFocus] = RGBA(0, 150, 200, 255)
	s.Colors[ColorBaseFocus] = RGBA(20, 40, 60, 255)
	s.Colors[ColorScrollThumb] = RGBA(0, 150, 200, 255)
	return s
}

// StyleVar identifies a measurement that can be overridden for the
// duration of a container with PushStyleVar.
type StyleVar int

const (
	StyleVarPadding StyleVar = iota
	StyleVarSpacing
	StyleVarIndent
)

type styleVarEntry struct {
	v    StyleVar
	prev float32
}

// PushStyleVar temporarily overrides a spacing measurement. The override
// ends at PopStyleVar or, at the latest, when the enclosing container ends.
func (ctx *Context) PushStyleVar(v StyleVar, value float32) {
	ptr := ctx.styleVarPtr(v)
	if ptr == nil {
		return
	}
	if !ctx.styleVars.push(styleVarEntry{v: v, prev: *ptr}) {
		ctx.report(DiagStackOverflow, "style var stack overflow", "var", v)
		return
	}
	*ptr = value
}

// PopStyleVar restores the most recent override.
func (ctx *Context) PopStyleVar() {
	e, ok := ctx.styleVars.pop()
	if !ok {
		ctx.report(DiagStackUnderflow, "style var stack underflow")
		return
	}
	if ptr := ctx.styleVarPtr(e.v); ptr != nil {
		*ptr = e.prev
	}
}

// popStyleVarsTo unwinds overrides down to depth.
func (ctx *Context) popStyleVarsTo(depth int) {
	for ctx.styleVars.len() > depth {
		ctx.PopStyleVar()
	}
}

func (ctx *Context) styleVarPtr(v StyleVar) *float32 {
	switch v {
	case StyleVarPadding:
		return &ctx.style.Padding
	case StyleVarSpacing:
		return &ctx.style.Spacing
	case StyleVarIndent:
		return &ctx.style.Indent
	}
	return nil
}
