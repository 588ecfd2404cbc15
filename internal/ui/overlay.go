//go:build ebiten

package ui

import (
	"image/color"

	"zlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 15
	panelWidth   = 220
)

var helpLines = []string{
	"Space run/pause   N step",
	"C clear   R random",
	"O open   S save",
	"Up/Down speed   wheel zoom",
	"HJKL or right-drag pan",
	"F1 toggle panel   Q quit",
}

// Overlay draws a translucent status panel in the top-left corner.
type Overlay struct {
	visible bool
	panel   *ebiten.Image
	height  int
}

// NewOverlay constructs a visible overlay.
func NewOverlay() *Overlay {
	return &Overlay{visible: true}
}

// Update toggles the panel on F1.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.visible = !o.visible
	}
}

// Draw renders the snapshot groups followed by the key help.
func (o *Overlay) Draw(screen *ebiten.Image, snap core.ParameterSnapshot) {
	if !o.visible {
		return
	}
	lines := append(snap.Lines(), "")
	lines = append(lines, helpLines...)
	height := 2*panelPadding + len(lines)*lineHeight
	if o.panel == nil || o.height != height {
		if o.panel != nil {
			o.panel.Dispose()
		}
		o.panel = ebiten.NewImage(panelWidth, height)
		o.height = height
	}
	o.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	for i, line := range lines {
		text.Draw(o.panel, line, face, panelPadding, panelPadding+(i+1)*lineHeight-3, fg)
	}
	screen.DrawImage(o.panel, &ebiten.DrawImageOptions{})
}
