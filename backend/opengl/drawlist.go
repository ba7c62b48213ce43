package opengl

import (
	"iter"
	"math"

	"github.com/rivo/uniseg"

	"github.com/go-theft-auto/mui"
)

// Vertex is the GPU vertex layout: position, texture coordinate and a
// packed 0xAABBGGRR color, which is byte order R,G,B,A in memory.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32
}

// DrawCmd is one glDrawElements call.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     [4]float32 // x1, y1, x2, y2
	TextureID    uint32
	VertexOffset uint32
	IndexOffset  uint32
}

// maxBatchVertices keeps relative indices within uint16.
const maxBatchVertices = math.MaxUint16 - 4

var noClip = [4]float32{-1e9, -1e9, 1e9, 1e9}

// DrawList turns a frame of mui commands into vertex and index buffers,
// batched by clip rectangle and texture.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32
	idxCmdOffset uint32

	fontTex    uint32
	charWidth  float32
	lineHeight float32
}

// NewDrawList creates a draw list that renders text with the 8x8 glyph
// atlas fontTex, laid out on a charWidth x lineHeight grid.
func NewDrawList(fontTex uint32, charWidth, lineHeight float32) *DrawList {
	dl := &DrawList{
		VtxBuffer:  make([]Vertex, 0, 1024),
		IdxBuffer:  make([]uint16, 0, 2048),
		CmdBuffer:  make([]DrawCmd, 0, 16),
		fontTex:    fontTex,
		charWidth:  charWidth,
		lineHeight: lineHeight,
	}
	dl.Clear()
	return dl
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.currentClip = noClip
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// Build appends the geometry of every command in cmds.
func (dl *DrawList) Build(cmds iter.Seq[mui.Command]) {
	for cmd := range cmds {
		switch cmd.Kind {
		case mui.CommandClip:
			r := cmd.Rect
			dl.SetClipRect(r.X, r.Y, r.X+r.W, r.Y+r.H)
		case mui.CommandRect:
			dl.SetTexture(0)
			dl.AddRect(cmd.Rect.X, cmd.Rect.Y, cmd.Rect.W, cmd.Rect.H, uint32(cmd.Color))
		case mui.CommandText:
			dl.SetTexture(dl.fontTex)
			dl.AddText(cmd.Rect.X, cmd.Rect.Y, cmd.Text, uint32(cmd.Color))
		case mui.CommandIcon:
			dl.SetTexture(0)
			dl.AddIcon(cmd.Icon, cmd.Rect, uint32(cmd.Color))
		}
	}
	dl.Finalize()
}

// SetClipRect replaces the clip rectangle for subsequent primitives.
func (dl *DrawList) SetClipRect(x1, y1, x2, y2 float32) {
	clip := [4]float32{x1, y1, x2, y2}
	if clip == dl.currentClip {
		return
	}
	dl.currentClip = clip
	dl.splitDraw()
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addVertices adds vertices and returns the starting index relative to
// the current command.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 || uint32(len(dl.VtxBuffer))-dl.cmdOffset > maxBatchVertices {
		dl.splitDraw()
	}
	startIdx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return startIdx
}

func (dl *DrawList) addQuad(x0, y0, x1, y1, u0, v0, u1, v1 float32, color uint32) {
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x0, y0}, TexCoord: [2]float32{u0, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y0}, TexCoord: [2]float32{u1, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y1}, TexCoord: [2]float32{u1, v1}, Color: color},
		Vertex{Pos: [2]float32{x0, y1}, TexCoord: [2]float32{u0, v1}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 || w <= 0 || h <= 0 {
		return
	}
	dl.addQuad(x, y, x+w, y+h, 0, 0, 0, 0, color)
}

// AddLine draws a line between two points as a quad of the given thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}

	dx := x2 - x1
	dy := y2 - y1
	inv := float32(1)
	if dx != 0 || dy != 0 {
		inv = 1 / float32(math.Sqrt(float64(dx*dx+dy*dy)))
	}

	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddTriangle draws a filled triangle.
func (dl *DrawList) AddTriangle(x1, y1, x2, y2, x3, y3 float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1, y1}, Color: color},
		Vertex{Pos: [2]float32{x2, y2}, Color: color},
		Vertex{Pos: [2]float32{x3, y3}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2)
}

// AddText draws text from the glyph atlas, one cell per grapheme cluster
// so advances agree with mui.MonospaceMeasurer. The 8x8 glyph is drawn
// charWidth wide and centered vertically in the line.
func (dl *DrawList) AddText(x, y float32, text string, color uint32) {
	if color&0xFF000000 == 0 || text == "" {
		return
	}

	size := dl.charWidth
	top := y + (dl.lineHeight-size)/2

	px := x
	state := -1
	rest := text
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		ch := glyphFor([]rune(cluster)[0])

		idx := int(ch - 32)
		col := float32(idx % atlasColumns)
		row := float32(idx / atlasColumns)

		u0 := col * glyphSize / atlasWidth
		v0 := row * glyphSize / atlasHeight
		u1 := (col + 1) * glyphSize / atlasWidth
		v1 := (row + 1) * glyphSize / atlasHeight

		dl.addQuad(px, top, px+size, top+size, u0, v0, u1, v1, color)
		px += size
	}
}

// glyphFor maps a rune to a character in the ASCII atlas.
func glyphFor(r rune) rune {
	switch r {
	case '←':
		return '<'
	case '→':
		return '>'
	case '•', '·':
		return '*'
	case '–', '—':
		return '-'
	case '‘', '’':
		return '\''
	case '“', '”':
		return '"'
	}
	if r < 32 || r > 126 {
		return '?'
	}
	return r
}

// AddIcon draws one of the built-in icons centered in r.
func (dl *DrawList) AddIcon(icon mui.Icon, r mui.Rect, color uint32) {
	s := min(r.W, r.H) * 0.5
	cx := r.X + r.W/2
	cy := r.Y + r.H/2
	h := s / 2

	switch icon {
	case mui.IconClose:
		dl.AddLine(cx-h, cy-h, cx+h, cy+h, color, 1.5)
		dl.AddLine(cx+h, cy-h, cx-h, cy+h, color, 1.5)
	case mui.IconCheck:
		dl.AddRect(cx-h, cy-h, s, s, color)
	case mui.IconCollapsed:
		dl.AddTriangle(cx-h/2, cy-h, cx+h/2, cy, cx-h/2, cy+h, color)
	case mui.IconExpanded:
		dl.AddTriangle(cx-h, cy-h/2, cx+h, cy-h/2, cx, cy+h/2, color)
	case mui.IconResize:
		dl.AddTriangle(r.X+r.W, r.Y, r.X+r.W, r.Y+r.H, r.X, r.Y+r.H, color)
	}
}

// Finalize closes the last command and drops empty ones.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
