//go:build ebiten

package render

import (
	"image/color"

	"lifelog/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from a grid's cell states.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for grids with bounds b.
func NewGridPainter(b core.Bounds) *GridPainter {
	w, h := PixelSize(b.Width, b.Height)
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads g into the painter image and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, on, off color.Color, scale int) {
	cells := g.Cells()
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
