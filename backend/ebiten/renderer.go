// Package ebiten draws mui command lists onto an Ebitengine screen and
// polls Ebitengine input into a mui.InputState.
//
// Ebitengine splits a tick into Update and Draw, so the Renderer records the
// frame's commands when the GUI ends a frame in Update and replays them in
// Draw:
//
//	func (g *game) Update() error {
//	    g.input.Update()
//	    ctx := g.ui.Begin()
//	    // declare widgets
//	    return g.ui.End()
//	}
//
//	func (g *game) Draw(screen *ebiten.Image) {
//	    g.renderer.Draw(screen)
//	}
package ebiten

import (
	"image"
	"iter"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/go-theft-auto/mui"
	"github.com/go-theft-auto/mui/fontmetrics"
)

// Renderer implements mui.Renderer for Ebitengine.
type Renderer struct {
	face    *text.GoXFace
	metrics *fontmetrics.Face
	faces   map[font.Face]*text.GoXFace

	cmds   []mui.Command
	width  int
	height int
}

var _ mui.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer that draws text with face. Pair it with
// Measurer so layout and drawing agree on text widths.
func NewRenderer(face font.Face) *Renderer {
	m := fontmetrics.New(face)
	return &Renderer{
		face:    text.NewGoXFace(m.Face()),
		metrics: m,
		faces:   make(map[font.Face]*text.GoXFace),
	}
}

// Measurer returns the text measurer for the renderer's font.
func (r *Renderer) Measurer() mui.TextMeasurer {
	return r.metrics
}

// Render records the commands of a completed frame.
func (r *Renderer) Render(cmds iter.Seq[mui.Command]) error {
	r.cmds = slices.AppendSeq(r.cmds[:0], cmds)
	return nil
}

// Resize records the layout size reported by the game.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Draw paints the last recorded frame onto screen.
func (r *Renderer) Draw(screen *ebiten.Image) {
	dst := screen
	for _, cmd := range r.cmds {
		switch cmd.Kind {
		case mui.CommandClip:
			dst = clipTo(screen, cmd.Rect)
		case mui.CommandRect:
			if dst == nil {
				continue
			}
			vector.DrawFilledRect(dst, cmd.Rect.X, cmd.Rect.Y, cmd.Rect.W, cmd.Rect.H, cmd.Color, false)
		case mui.CommandText:
			if dst == nil {
				continue
			}
			op := &text.DrawOptions{}
			op.GeoM.Translate(float64(cmd.Rect.X), float64(cmd.Rect.Y))
			op.ColorScale.ScaleWithColor(cmd.Color)
			text.Draw(dst, cmd.Text, r.faceFor(cmd.Font), op)
		case mui.CommandIcon:
			if dst == nil {
				continue
			}
			drawIcon(dst, cmd.Icon, cmd.Rect, cmd.Color)
		}
	}
}

// clipTo returns the part of screen inside r, or nil when none of it is.
// Sub-images keep the parent's coordinate space.
func clipTo(screen *ebiten.Image, r mui.Rect) *ebiten.Image {
	bounds := screen.Bounds()
	rect := image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H)).Intersect(bounds)
	if rect.Empty() {
		return nil
	}
	if rect == bounds {
		return screen
	}
	return screen.SubImage(rect).(*ebiten.Image)
}

func (r *Renderer) faceFor(handle mui.Font) *text.GoXFace {
	face, ok := handle.(font.Face)
	if !ok || face == nil {
		return r.face
	}
	if f, ok := r.faces[face]; ok {
		return f
	}
	f := text.NewGoXFace(face)
	r.faces[face] = f
	return f
}

func drawIcon(dst *ebiten.Image, icon mui.Icon, r mui.Rect, clr mui.Color) {
	s := min(r.W, r.H) * 0.5
	cx := r.X + r.W/2
	cy := r.Y + r.H/2
	h := s / 2

	switch icon {
	case mui.IconClose:
		vector.StrokeLine(dst, cx-h, cy-h, cx+h, cy+h, 1.5, clr, true)
		vector.StrokeLine(dst, cx+h, cy-h, cx-h, cy+h, 1.5, clr, true)
	case mui.IconCheck:
		vector.DrawFilledRect(dst, cx-h, cy-h, s, s, clr, false)
	case mui.IconCollapsed:
		fillTriangle(dst, clr, cx-h/2, cy-h, cx+h/2, cy, cx-h/2, cy+h)
	case mui.IconExpanded:
		fillTriangle(dst, clr, cx-h, cy-h/2, cx+h, cy-h/2, cx, cy+h/2)
	case mui.IconResize:
		fillTriangle(dst, clr, r.X+r.W, r.Y, r.X+r.W, r.Y+r.H, r.X, r.Y+r.H)
	}
}

func fillTriangle(dst *ebiten.Image, clr mui.Color, x1, y1, x2, y2, x3, y3 float32) {
	var path vector.Path
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	path.LineTo(x3, y3)
	path.Close()
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	vector.FillPath(dst, &path, nil, op)
}
