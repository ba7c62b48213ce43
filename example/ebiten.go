package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-theft-auto/mui"
	ebitenbackend "github.com/go-theft-auto/mui/backend/ebiten"
	"github.com/go-theft-auto/mui/fontmetrics"
)

type game struct {
	demo     *demo
	ui       *mui.GUI
	renderer *ebitenbackend.Renderer
	input    *ebitenbackend.Input
}

func (g *game) Update() error {
	g.input.Update()
	g.demo.frame(g.ui.Begin())
	return g.ui.End()
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x1f, G: 0x1f, B: 0x24, A: 0xff})
	g.renderer.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ui.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func runEbiten(d *demo, style mui.Style) error {
	renderer := ebitenbackend.NewRenderer(fontmetrics.Default().Face())
	ui := mui.New(renderer,
		mui.WithStyle(style),
		mui.WithTextMeasurer(renderer.Measurer()),
		mui.WithClipboard(&mui.MemoryClipboard{}),
	)

	g := &game{
		demo:     d,
		ui:       ui,
		renderer: renderer,
		input:    ebitenbackend.NewInput(ui.Input()),
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
