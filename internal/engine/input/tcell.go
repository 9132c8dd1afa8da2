package input

import "github.com/gdamore/tcell/v2"

// FromTcell converts a tcell event. The second result is false for events
// the viewer ignores.
func FromTcell(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true

	case *tcell.EventKey:
		switch e.Key() {
		case tcell.KeyLeft:
			return KeyEvent(KeyLeft), true
		case tcell.KeyRight:
			return KeyEvent(KeyRight), true
		case tcell.KeyUp:
			return KeyEvent(KeyUp), true
		case tcell.KeyDown:
			return KeyEvent(KeyDown), true
		case tcell.KeyEscape:
			return KeyEvent(KeyEscape), true
		case tcell.KeyEnter:
			return KeyEvent(KeyEnter), true
		case tcell.KeyCtrlC:
			return Event{Type: EventQuit}, true
		case tcell.KeyRune:
			return RuneEvent(e.Rune()), true
		}
	}
	return Event{}, false
}
