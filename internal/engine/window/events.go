package window

import (
	"unicode/utf8"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/voxelview/internal/engine/input"
)

// FromSDL converts an SDL event. Printable characters come from text input
// events so shifted keys such as '<' and '>' arrive as typed.
func FromSDL(ev sdl.Event) (input.Event, bool) {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return input.Event{Type: input.EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED {
			return input.Event{Type: input.EventResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			return input.Event{}, false
		}
		switch e.Keysym.Scancode {
		case sdl.SCANCODE_LEFT:
			return input.KeyEvent(input.KeyLeft), true
		case sdl.SCANCODE_RIGHT:
			return input.KeyEvent(input.KeyRight), true
		case sdl.SCANCODE_UP:
			return input.KeyEvent(input.KeyUp), true
		case sdl.SCANCODE_DOWN:
			return input.KeyEvent(input.KeyDown), true
		case sdl.SCANCODE_ESCAPE:
			return input.KeyEvent(input.KeyEscape), true
		case sdl.SCANCODE_RETURN:
			return input.KeyEvent(input.KeyEnter), true
		}

	case *sdl.TextInputEvent:
		// Bindings are single characters; anything composed past the first
		// rune is dropped.
		if r, size := utf8.DecodeRuneInString(e.GetText()); size > 0 {
			return input.RuneEvent(r), true
		}
	}
	return input.Event{}, false
}

// pollEvents drains the SDL event queue into dst.
func pollEvents(dst []input.Event) []input.Event {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if e, ok := FromSDL(ev); ok {
			dst = append(dst, e)
		}
	}
	return dst
}
