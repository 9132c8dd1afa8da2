package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelview/internal/config"
	"github.com/Faultbox/voxelview/internal/engine/camera"
	"github.com/Faultbox/voxelview/internal/engine/input"
	"github.com/Faultbox/voxelview/internal/engine/renderer"
	"github.com/Faultbox/voxelview/internal/engine/style"
	"github.com/Faultbox/voxelview/internal/engine/terrain"
	"github.com/Faultbox/voxelview/internal/game/world"
	"github.com/Faultbox/voxelview/internal/logger"
	"github.com/Faultbox/voxelview/pkg/math"
)

// ViewerOptions holds everything a Viewer is built from.
type ViewerOptions struct {
	Size       math.Vec3
	Builder    world.Builder
	Styles     *style.Table
	StartLayer int
	Bindings   input.Bindings
	Renderer   renderer.Options
}

// Viewer is the slice-viewing scene: one generated map, a camera moved by
// the keyboard and the void-fallback renderer.
type Viewer struct {
	world      *world.Map
	styles     *style.Table
	camera     *camera.Camera
	startLayer int
	bindings   input.Bindings
	renderer   *renderer.Renderer
	log        *zap.Logger
}

// NewViewer allocates the map and runs the builder on it.
func NewViewer(opts ViewerOptions) (*Viewer, error) {
	log := logger.Named("viewer")

	m, err := world.New(opts.Size.X, opts.Size.Y, opts.Size.Z)
	if err != nil {
		return nil, fmt.Errorf("allocating map: %w", err)
	}

	start := time.Now()
	m = m.ApplyBuild(opts.Builder)
	log.Info("map built",
		zap.Stringer("size", m.Size()),
		zap.Duration("elapsed", time.Since(start)),
		zap.String("fingerprint", fmt.Sprintf("%016x", m.Fingerprint())),
	)
	counts := m.Counts()
	for _, c := range world.Cells() {
		if n := counts[c]; n > 0 {
			log.Debug("cell count", zap.Stringer("cell", c), zap.Int("count", n))
		}
	}

	styles := opts.Styles
	if styles == nil {
		styles = style.Default()
	}
	return &Viewer{
		world:      m,
		styles:     styles,
		camera:     camera.NewAtLayer(opts.StartLayer),
		startLayer: opts.StartLayer,
		bindings:   opts.Bindings,
		renderer:   renderer.New(opts.Renderer),
		log:        log,
	}, nil
}

// ViewerOptionsFromConfig resolves the builder, styles and bindings named
// by cfg.
func ViewerOptionsFromConfig(cfg *config.Config) (ViewerOptions, error) {
	builder, err := terrain.NewBuilder(cfg.World.Builder, cfg.Terrain.Noise())
	if err != nil {
		return ViewerOptions{}, fmt.Errorf("creating builder: %w", err)
	}
	styles, err := style.Default().WithOverrides(cfg.Styles)
	if err != nil {
		return ViewerOptions{}, fmt.Errorf("applying style overrides: %w", err)
	}
	return ViewerOptions{
		Size:       math.NewVec3(cfg.World.Width, cfg.World.Depth, cfg.World.Height),
		Builder:    builder,
		Styles:     styles,
		StartLayer: cfg.Camera.StartLayer,
		Bindings:   input.Bindings{PanStep: cfg.Camera.PanStep, LayerStep: cfg.Camera.LayerStep},
		Renderer:   renderer.DefaultOptions(),
	}, nil
}

// Map returns the generated map.
func (v *Viewer) Map() *world.Map {
	return v.world
}

// Camera returns the viewer camera.
func (v *Viewer) Camera() *camera.Camera {
	return v.camera
}

// Update implements Scene.
func (v *Viewer) Update(events []input.Event) (redraw, quit bool) {
	for _, e := range events {
		action, delta := v.bindings.Resolve(e)
		switch action {
		case input.ActionQuit:
			return false, true
		case input.ActionMove:
			v.camera.Move(delta)
			redraw = true
			v.log.Debug("camera moved", zap.Stringer("offset", v.camera.Offset()))
		case input.ActionReset:
			v.camera.Reset(v.startLayer)
			redraw = true
		}
	}
	return redraw, false
}

// Draw implements Scene.
func (v *Viewer) Draw(s renderer.Surface) {
	v.renderer.Draw(s, renderer.View{Map: v.world, Styles: v.styles, Camera: v.camera})
}

// Caption describes the current view.
func (v *Viewer) Caption() string {
	o := v.camera.Offset()
	return fmt.Sprintf("voxelview - layer %d - offset %d,%d", o.Z, o.X, o.Y)
}
