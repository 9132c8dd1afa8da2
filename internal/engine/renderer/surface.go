package renderer

import "github.com/Faultbox/voxelview/internal/engine/palette"

// Surface is a character grid the renderer draws onto.
type Surface interface {
	// Size returns the grid size in characters.
	Size() (w, h int)
	// Clear fills the whole grid with blanks on bg.
	Clear(bg palette.Color)
	// Set draws one character. Out-of-range positions are ignored.
	Set(x, y int, fg, bg palette.Color, glyph rune)
}

// Glyph is one drawn character.
type Glyph struct {
	Fg, Bg palette.Color
	Rune   rune
}

// Buffer is an in-memory Surface. Backends without a native character grid
// draw into a Buffer and rasterise it on present.
type Buffer struct {
	w, h  int
	cells []Glyph
}

// NewBuffer returns a w x h buffer of black blanks.
func NewBuffer(w, h int) *Buffer {
	b := &Buffer{}
	b.Resize(w, h)
	return b
}

// Resize changes the grid size and clears it. Negative sizes become zero.
func (b *Buffer) Resize(w, h int) {
	b.w, b.h = max(w, 0), max(h, 0)
	b.cells = make([]Glyph, b.w*b.h)
	b.Clear(palette.Black)
}

// Size implements Surface.
func (b *Buffer) Size() (w, h int) {
	return b.w, b.h
}

// Clear implements Surface.
func (b *Buffer) Clear(bg palette.Color) {
	for i := range b.cells {
		b.cells[i] = Glyph{Fg: bg, Bg: bg, Rune: ' '}
	}
}

// Set implements Surface.
func (b *Buffer) Set(x, y int, fg, bg palette.Color, r rune) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	b.cells[y*b.w+x] = Glyph{Fg: fg, Bg: bg, Rune: r}
}

// At returns the glyph at (x, y) and whether the position is on the grid.
func (b *Buffer) At(x, y int) (Glyph, bool) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return Glyph{}, false
	}
	return b.cells[y*b.w+x], true
}
