// Package window is the SDL2 display backend. Characters are rasterised on
// the CPU and presented through an OpenGL framebuffer blit.
package window

import (
	"fmt"
	"image"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelview/internal/engine/framebuffer"
	"github.com/Faultbox/voxelview/internal/engine/glyph"
	"github.com/Faultbox/voxelview/internal/engine/input"
	"github.com/Faultbox/voxelview/internal/engine/renderer"
	"github.com/Faultbox/voxelview/internal/logger"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

// Window is an SDL2 window with an OpenGL context. It implements
// renderer.Surface over a character grid sized to the window.
type Window struct {
	*renderer.Buffer

	config    Config
	sdlWindow *sdl.Window
	glContext sdl.GLContext
	target    *framebuffer.Framebuffer
	raster    *glyph.Rasterizer
	frame     *image.RGBA
	events    []input.Event
	log       *zap.Logger
}

// New creates the window and its OpenGL context.
func New(cfg Config) (*Window, error) {
	w := &Window{
		config: cfg,
		raster: glyph.NewRasterizer(),
		events: make([]input.Event, 0, 16),
		log:    logger.Named("window"),
	}

	w.log.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// OpenGL 4.1 Core is the newest macOS offers.
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		uint32(sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI),
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}
	if err := gl.Init(); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	w.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		w.log.Warn("failed to set swap interval", zap.Error(err))
	}

	cols, rows := w.raster.Grid(cfg.Width, cfg.Height)
	w.Buffer = renderer.NewBuffer(cols, rows)
	fw, fh := w.raster.FrameSize(cols, rows)
	w.target, err = framebuffer.New(int32(fw), int32(fh))
	if err != nil {
		w.Close()
		return nil, err
	}
	w.frame = image.NewRGBA(image.Rect(0, 0, max(fw, 1), max(fh, 1)))
	sdl.StartTextInput()

	w.log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("cols", cols),
		zap.Int("rows", rows),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

// Poll drains pending SDL events. A resize regrows the character grid.
func (w *Window) Poll() []input.Event {
	w.events = pollEvents(w.events[:0])
	for _, e := range w.events {
		if e.Type == input.EventResize {
			w.resize(e.Width, e.Height)
		}
	}
	return w.events
}

func (w *Window) resize(width, height int) {
	cols, rows := w.raster.Grid(width, height)
	w.Buffer.Resize(cols, rows)
	fw, fh := w.raster.FrameSize(cols, rows)
	w.target.Resize(int32(fw), int32(fh))
	tw, th := w.target.Size()
	w.frame = image.NewRGBA(image.Rect(0, 0, int(tw), int(th)))
	w.log.Debug("window resized", zap.Int("cols", cols), zap.Int("rows", rows))
}

// Present rasterises the grid and swaps buffers.
func (w *Window) Present() error {
	w.raster.Compose(w.frame, w.Buffer)
	if err := w.target.Upload(w.frame); err != nil {
		return fmt.Errorf("uploading frame: %w", err)
	}
	dw, dh := w.sdlWindow.GLGetDrawableSize()
	w.target.BlitToScreen(dw, dh)
	w.sdlWindow.GLSwap()
	return nil
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}

// Close destroys the window and shuts SDL down.
func (w *Window) Close() {
	w.log.Info("closing window")
	sdl.StopTextInput()
	if w.target != nil {
		w.target.Destroy()
	}
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}
	sdl.Quit()
}
