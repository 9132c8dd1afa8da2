// Package terminal is the character-cell display backend built on tcell.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelview/internal/engine/input"
	"github.com/Faultbox/voxelview/internal/engine/palette"
	"github.com/Faultbox/voxelview/internal/logger"
)

// Terminal draws on a tcell screen and reads its key events.
type Terminal struct {
	screen tcell.Screen
	events []input.Event
	log    *zap.Logger
}

// New opens the process terminal.
func New() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return Open(s)
}

// Open initialises s and takes ownership of it.
func Open(s tcell.Screen) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	s.HideCursor()
	s.Clear()

	t := &Terminal{
		screen: s,
		events: make([]input.Event, 0, 16),
		log:    logger.Named("terminal"),
	}
	w, h := s.Size()
	t.log.Info("terminal opened", zap.Int("cols", w), zap.Int("rows", h), zap.Int("colors", s.Colors()))
	return t, nil
}

// Size returns the screen size in characters.
func (t *Terminal) Size() (w, h int) {
	return t.screen.Size()
}

// Clear fills the screen with blanks on bg.
func (t *Terminal) Clear(bg palette.Color) {
	c := color(bg)
	t.screen.Fill(' ', tcell.StyleDefault.Foreground(c).Background(c))
}

// Set draws one character.
func (t *Terminal) Set(x, y int, fg, bg palette.Color, glyph rune) {
	st := tcell.StyleDefault.Foreground(color(fg)).Background(color(bg))
	t.screen.SetContent(x, y, glyph, nil, st)
}

// Poll returns the events queued since the last call without blocking.
func (t *Terminal) Poll() []input.Event {
	t.events = t.events[:0]
	for t.screen.HasPendingEvent() {
		ev := t.screen.PollEvent()
		if ev == nil {
			// Screen finalised.
			t.events = append(t.events, input.Event{Type: input.EventQuit})
			break
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			t.screen.Sync()
		}
		if e, ok := input.FromTcell(ev); ok {
			t.events = append(t.events, e)
		}
	}
	return t.events
}

// Present flushes the drawn frame to the terminal.
func (t *Terminal) Present() error {
	t.screen.Show()
	return nil
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.log.Info("closing terminal")
	t.screen.Fini()
}

func color(c palette.Color) tcell.Color {
	r, g, b := c.RGB8()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
