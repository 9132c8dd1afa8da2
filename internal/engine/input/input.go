// Package input turns backend events into camera actions.
package input

import "github.com/Faultbox/voxelview/pkg/math"

// EventType classifies a backend-neutral event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventResize
	EventKeyDown
)

// Key names the non-character keys the viewer reacts to. Printable keys
// arrive as KeyRune with the character in Event.Rune.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEscape
	KeyEnter
)

// Event is a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	Width  int
	Height int
}

// KeyEvent returns a key-down event for a special key.
func KeyEvent(k Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

// RuneEvent returns a key-down event for a printable character.
func RuneEvent(r rune) Event {
	return Event{Type: EventKeyDown, Key: KeyRune, Rune: r}
}

// IsRune reports whether e is a key-down of character r.
func (e Event) IsRune(r rune) bool {
	return e.Type == EventKeyDown && e.Key == KeyRune && e.Rune == r
}

// Action is what an event asks the viewer to do.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionMove
	ActionResize
	ActionReset
)

// Bindings maps keys to camera movement.
type Bindings struct {
	PanStep   int
	LayerStep int
}

// DefaultBindings pans ten cells at a time and steps one layer.
func DefaultBindings() Bindings {
	return Bindings{PanStep: 10, LayerStep: 1}
}

// Resolve maps e to an action. For ActionMove the second result is the
// camera delta.
//
// The arrows move the world under a fixed viewport: Left adds to X, Right
// subtracts, Up adds to Y and Down subtracts. '>' goes one layer down and
// '<' one layer up. Enter and 'r' return to the starting view. Escape and
// 'q' quit.
func (b Bindings) Resolve(e Event) (Action, math.Vec3) {
	switch e.Type {
	case EventQuit:
		return ActionQuit, math.Zero()
	case EventResize:
		return ActionResize, math.Zero()
	case EventKeyDown:
	default:
		return ActionNone, math.Zero()
	}

	switch e.Key {
	case KeyLeft:
		return ActionMove, math.NewVec3(b.PanStep, 0, 0)
	case KeyRight:
		return ActionMove, math.NewVec3(-b.PanStep, 0, 0)
	case KeyUp:
		return ActionMove, math.NewVec3(0, b.PanStep, 0)
	case KeyDown:
		return ActionMove, math.NewVec3(0, -b.PanStep, 0)
	case KeyEscape:
		return ActionQuit, math.Zero()
	case KeyEnter:
		return ActionReset, math.Zero()
	case KeyRune:
		switch e.Rune {
		case '>':
			return ActionMove, math.NewVec3(0, 0, -b.LayerStep)
		case '<':
			return ActionMove, math.NewVec3(0, 0, b.LayerStep)
		case 'r', 'R':
			return ActionReset, math.Zero()
		case 'q', 'Q':
			return ActionQuit, math.Zero()
		}
	}
	return ActionNone, math.Zero()
}
