// Package game runs the main loop: poll input, update the scene, draw and
// present.
package game

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelview/internal/engine/debug"
	"github.com/Faultbox/voxelview/internal/engine/input"
	"github.com/Faultbox/voxelview/internal/engine/renderer"
	"github.com/Faultbox/voxelview/internal/logger"
)

// Display is an output surface that also supplies input.
type Display interface {
	renderer.Surface
	// Poll returns the events that arrived since the last call. It does
	// not block.
	Poll() []input.Event
	// Present shows what was drawn since the last Present.
	Present() error
	Close()
}

// Scene is what the loop shows.
type Scene interface {
	// Update applies one batch of events. It reports whether the scene
	// needs redrawing and whether the user asked to quit.
	Update(events []input.Event) (redraw, quit bool)
	// Draw renders the scene onto s.
	Draw(s renderer.Surface)
}

// titled is implemented by displays with a title bar.
type titled interface {
	SetTitle(title string)
}

// captioned is implemented by scenes that describe their state.
type captioned interface {
	Caption() string
}

// ScreenshotKey saves the current frame when screenshots are enabled.
const ScreenshotKey = 'p'

// Game drives a Scene on a Display.
type Game struct {
	display  Display
	scene    Scene
	shots    *debug.ScreenshotCapture
	interval time.Duration
	dirty    bool
	frames   int
	log      *zap.Logger
}

// New creates a game. fpsLimit caps the loop rate; zero runs unthrottled.
func New(d Display, scene Scene, fpsLimit int) *Game {
	g := &Game{
		display: d,
		scene:   scene,
		dirty:   true,
		log:     logger.Named("game"),
	}
	if fpsLimit > 0 {
		g.interval = time.Second / time.Duration(fpsLimit)
	}
	return g
}

// EnableScreenshots saves a PNG of the frame through sc whenever
// ScreenshotKey is pressed.
func (g *Game) EnableScreenshots(sc *debug.ScreenshotCapture) {
	g.shots = sc
}

// Run loops until the scene asks to quit, ctx is cancelled or presenting
// fails. Quitting returns nil; cancellation returns ctx.Err().
func (g *Game) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if g.interval > 0 {
		t := time.NewTicker(g.interval)
		defer t.Stop()
		tick = t.C
	}

	g.log.Info("starting main loop", zap.Duration("interval", g.interval))
	fpsTimer := time.Now()
	lastFrames := 0

	for {
		running, err := g.Step()
		if err != nil {
			return err
		}
		if !running {
			g.log.Info("quit requested", zap.Int("frames", g.frames))
			return nil
		}

		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", g.frames-lastFrames))
			lastFrames = g.frames
			fpsTimer = time.Now()
		}

		if tick == nil {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
		}
	}
}

// Step runs one loop iteration. It returns false once the scene asks to
// quit. Frames are only drawn when something changed.
func (g *Game) Step() (bool, error) {
	events := g.display.Poll()
	for _, e := range events {
		switch {
		case e.Type == input.EventResize:
			g.dirty = true
		case e.IsRune(ScreenshotKey) && g.shots != nil:
			g.screenshot()
		}
	}

	redraw, quit := g.scene.Update(events)
	if quit {
		return false, nil
	}
	if !redraw && !g.dirty {
		return true, nil
	}

	g.scene.Draw(g.display)
	if err := g.display.Present(); err != nil {
		return false, fmt.Errorf("presenting frame: %w", err)
	}
	g.dirty = false
	g.frames++

	if t, ok := g.display.(titled); ok {
		if c, ok := g.scene.(captioned); ok {
			t.SetTitle(c.Caption())
		}
	}
	return true, nil
}

func (g *Game) screenshot() {
	buf := renderer.NewBuffer(g.display.Size())
	g.scene.Draw(buf)
	path, err := g.shots.CaptureBuffer(buf)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

// Frames returns how many frames have been presented.
func (g *Game) Frames() int {
	return g.frames
}

// Close releases the display.
func (g *Game) Close() {
	g.log.Info("closing game")
	g.display.Close()
}
