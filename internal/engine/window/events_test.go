package window

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/voxelview/internal/engine/input"
)

func TestFromSDL(t *testing.T) {
	keyDown := func(sc sdl.Scancode) *sdl.KeyboardEvent {
		return &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sc}}
	}
	text := func(s string) *sdl.TextInputEvent {
		e := &sdl.TextInputEvent{Type: sdl.TEXTINPUT}
		copy(e.Text[:], s)
		return e
	}

	tests := []struct {
		name string
		ev   sdl.Event
		want input.Event
		ok   bool
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, input.Event{Type: input.EventQuit}, true},
		{"right", keyDown(sdl.SCANCODE_RIGHT), input.KeyEvent(input.KeyRight), true},
		{"escape", keyDown(sdl.SCANCODE_ESCAPE), input.KeyEvent(input.KeyEscape), true},
		{"key up ignored", &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_LEFT}}, input.Event{}, false},
		{"text", text("<"), input.RuneEvent('<'), true},
		{"resize", &sdl.WindowEvent{Event: sdl.WINDOWEVENT_RESIZED, Data1: 640, Data2: 480}, input.Event{Type: input.EventResize, Width: 640, Height: 480}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromSDL(tt.ev)
			if ok != tt.ok || got != tt.want {
				t.Errorf("FromSDL() = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}
