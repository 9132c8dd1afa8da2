// Package glyph rasterises character grids with a fixed-width bitmap font.
package glyph

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/voxelview/internal/engine/palette"
	"github.com/Faultbox/voxelview/internal/engine/renderer"
)

const fullBlock = '█'

// Rasterizer paints a character buffer into pixels.
type Rasterizer struct {
	face   *basicfont.Face
	cellW  int
	cellH  int
	ascent int
}

// NewRasterizer returns a rasterizer using the 7x13 basic font.
func NewRasterizer() *Rasterizer {
	f := basicfont.Face7x13
	return &Rasterizer{face: f, cellW: f.Advance, cellH: f.Height, ascent: f.Ascent}
}

// CellSize returns the pixel size of one character.
func (r *Rasterizer) CellSize() (w, h int) {
	return r.cellW, r.cellH
}

// Grid returns how many characters fit in a w x h pixel area.
func (r *Rasterizer) Grid(w, h int) (cols, rows int) {
	return w / r.cellW, h / r.cellH
}

// FrameSize returns the pixel size of a cols x rows grid.
func (r *Rasterizer) FrameSize(cols, rows int) (w, h int) {
	return cols * r.cellW, rows * r.cellH
}

// Compose paints buf into dst, one cell per character starting at the top
// left. Cells outside dst are clipped.
func (r *Rasterizer) Compose(dst *image.RGBA, buf *renderer.Buffer) {
	cols, rows := buf.Size()
	d := font.Drawer{Dst: dst, Face: r.face}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			g, _ := buf.At(x, y)
			cell := image.Rect(x*r.cellW, y*r.cellH, (x+1)*r.cellW, (y+1)*r.cellH)

			switch g.Rune {
			case ' ':
				draw.Draw(dst, cell, image.NewUniform(rgba(g.Bg)), image.Point{}, draw.Src)
			case fullBlock:
				// Not in the basic font; a solid cell reads the same.
				draw.Draw(dst, cell, image.NewUniform(rgba(g.Fg)), image.Point{}, draw.Src)
			default:
				draw.Draw(dst, cell, image.NewUniform(rgba(g.Bg)), image.Point{}, draw.Src)
				d.Src = image.NewUniform(rgba(g.Fg))
				d.Dot = fixed.P(cell.Min.X, cell.Min.Y+r.ascent)
				d.DrawString(string(g.Rune))
			}
		}
	}
}

func rgba(c palette.Color) color.RGBA {
	r, g, b := c.RGB8()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Image returns a new image of buf.
func (r *Rasterizer) Image(buf *renderer.Buffer) *image.RGBA {
	w, h := r.FrameSize(buf.Size())
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	r.Compose(img, buf)
	return img
}
