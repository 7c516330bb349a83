//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 6
	hudLineHeight = 14
	hudWidth      = 120
)

// HUD draws the generation counter and population in the top-left corner.
type HUD struct {
	visible bool
	pixel   *ebiten.Image
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	h := &HUD{visible: true}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update toggles visibility with the H key.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw renders s onto screen.
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	if !h.visible {
		return
	}
	lines := s.Lines()
	height := hudPadding*2 + hudLineHeight*len(lines)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(hudWidth, float64(height))
	op.ColorScale.ScaleWithColor(color.RGBA{A: 160})
	screen.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	for i, line := range lines {
		y := hudPadding + hudLineHeight*(i+1) - 3
		text.Draw(screen, line, face, hudPadding, y, color.White)
	}
}
