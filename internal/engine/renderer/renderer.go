// Package renderer draws one horizontal slice of a voxel map onto a
// character grid.
package renderer

import (
	"github.com/Faultbox/voxelview/internal/engine/camera"
	"github.com/Faultbox/voxelview/internal/engine/palette"
	"github.com/Faultbox/voxelview/internal/engine/style"
	"github.com/Faultbox/voxelview/internal/game/world"
)

// FrameGlyph is the character used for the border and the layer gauge.
const FrameGlyph = '█'

// Options configures a Renderer.
type Options struct {
	// ProbeDepth is how many layers below a Void cell are searched for
	// something to show through.
	ProbeDepth int
	// VoidTone is what see-through cells fade toward, and the colour of
	// Void with nothing underneath.
	VoidTone palette.Color
	// Frame draws the border and layer gauge around the viewport.
	Frame bool

	Background palette.Color
	FrameTone  palette.Color
	GaugeOn    palette.Color
	GaugeOff   palette.Color
}

// DefaultOptions returns the stock look.
func DefaultOptions() Options {
	return Options{
		ProbeDepth: 5,
		VoidTone:   palette.DarkCyan,
		Frame:      true,
		Background: palette.Black,
		FrameTone:  palette.Gray30,
		GaugeOn:    palette.Yellow,
		GaugeOff:   palette.Blue,
	}
}

// View is everything one frame reads.
type View struct {
	Map    *world.Map
	Styles *style.Table
	Camera *camera.Camera
}

// Renderer draws views. It holds no per-frame state.
type Renderer struct {
	opts Options
}

// New returns a renderer. A negative probe depth disables see-through.
func New(opts Options) *Renderer {
	opts.ProbeDepth = max(opts.ProbeDepth, 0)
	return &Renderer{opts: opts}
}

// Options returns the renderer settings.
func (r *Renderer) Options() Options {
	return r.opts
}

// Draw clears s and renders v onto it. With the frame enabled the slice
// occupies the interior [1, w-1) x [1, h-1); otherwise the whole surface.
func (r *Renderer) Draw(s Surface, v View) {
	w, h := s.Size()
	s.Clear(r.opts.Background)

	vw, vh, inset := w, h, 0
	if r.opts.Frame {
		r.drawFrame(s, w, h, v.Camera.Layer())
		vw, vh, inset = w-2, h-2, 1
	}

	for sy := 0; sy < vh; sy++ {
		for sx := 0; sx < vw; sx++ {
			st, ok := r.Resolve(v, sx, sy)
			if !ok {
				continue
			}
			s.Set(sx+inset, sy+inset, st.Fg, st.Bg, st.Glyph)
		}
	}
}

// drawFrame draws the border and, on the right edge, a gauge with one mark
// per layer counted from the bottom; the current layer is highlighted.
func (r *Renderer) drawFrame(s Surface, w, h, layer int) {
	for x := 0; x < w; x++ {
		s.Set(x, 0, r.opts.FrameTone, r.opts.Background, FrameGlyph)
		s.Set(x, h-1, r.opts.FrameTone, r.opts.Background, FrameGlyph)
	}
	for y := 0; y < h; y++ {
		s.Set(0, y, r.opts.FrameTone, r.opts.Background, FrameGlyph)
		s.Set(w-1, y, r.opts.FrameTone, r.opts.Background, FrameGlyph)
	}
	for y := 0; y < h-4; y++ {
		tone := r.opts.GaugeOff
		if y == layer {
			tone = r.opts.GaugeOn
		}
		s.Set(w-1, h-y-3, tone, r.opts.Background, FrameGlyph)
	}
}

// Resolve decides what viewport position (sx, sy) shows. The world cell is
// (sx - offset.X, sy - offset.Y, layer). The second result is false when
// that cell lies outside the map and nothing should be drawn.
//
// A Void cell shows the first non-Void cell up to ProbeDepth layers below
// it, faded toward VoidTone by 0.2 per layer of depth, or a flat blank in
// VoidTone when there is none. Probes that leave the map are skipped.
func (r *Renderer) Resolve(v View, sx, sy int) (style.Style, bool) {
	off := v.Camera.Offset()
	wx, wy, layer := sx-off.X, sy-off.Y, off.Z

	cell, ok := v.Map.Get(wx, wy, layer)
	if !ok {
		return style.Style{}, false
	}
	if !cell.IsVoid() {
		return v.Styles.Lookup(cell), true
	}

	for d := 1; d <= r.opts.ProbeDepth; d++ {
		under, ok := v.Map.Get(wx, wy, layer-d)
		if !ok || under.IsVoid() {
			continue
		}
		st := v.Styles.Lookup(under)
		t := 0.2 * float32(d)
		return style.Style{
			Fg:    st.Fg.Lerp(r.opts.VoidTone, t),
			Bg:    st.Bg.Lerp(r.opts.VoidTone, t),
			Glyph: st.Glyph,
		}, true
	}
	return style.Style{Fg: r.opts.VoidTone, Bg: r.opts.VoidTone, Glyph: ' '}, true
}
