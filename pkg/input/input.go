// Package input defines pointer events and the hit-test predicate used to
// route them through a widget tree.
package input

import (
	"fmt"
	"math"

	"github.com/go-drift/trellis/pkg/graphics"
)

// Cursor is a pointer position in layout units.
type Cursor struct {
	X float64
	Y float64
}

// Delta is pointer movement since the previous event.
type Delta struct {
	X float64
	Y float64
}

// Button identifies a pointer button.
type Button int

const (
	// ButtonPrimary is the left mouse button or a touch contact.
	ButtonPrimary Button = iota
	// ButtonSecondary is the right mouse button.
	ButtonSecondary
	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonMiddle:
		return "middle"
	default:
		return fmt.Sprintf("Button(%d)", int(b))
	}
}

// EventKind is the gesture an Event carries.
type EventKind int

const (
	// PointerMoved carries a Delta.
	PointerMoved EventKind = iota
	// PointerPressed carries a Button.
	PointerPressed
	// PointerReleased carries a Button.
	PointerReleased
)

func (k EventKind) String() string {
	switch k {
	case PointerMoved:
		return "moved"
	case PointerPressed:
		return "pressed"
	case PointerReleased:
		return "released"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a single pointer input. Delta is meaningful only for
// PointerMoved, Button only for PointerPressed and PointerReleased.
type Event struct {
	Kind   EventKind
	Cursor Cursor
	Delta  Delta
	Button Button
}

// Moved returns a PointerMoved event at cursor.
func Moved(cursor Cursor, delta Delta) Event {
	return Event{Kind: PointerMoved, Cursor: cursor, Delta: delta}
}

// Pressed returns a PointerPressed event at cursor.
func Pressed(cursor Cursor, button Button) Event {
	return Event{Kind: PointerPressed, Cursor: cursor, Button: button}
}

// Released returns a PointerReleased event at cursor.
func Released(cursor Cursor, button Button) Event {
	return Event{Kind: PointerReleased, Cursor: cursor, Button: button}
}

func (e Event) String() string {
	switch e.Kind {
	case PointerMoved:
		return fmt.Sprintf("moved(%g,%g delta %g,%g)", e.Cursor.X, e.Cursor.Y, e.Delta.X, e.Delta.Y)
	default:
		return fmt.Sprintf("%s(%g,%g %s)", e.Kind, e.Cursor.X, e.Cursor.Y, e.Button)
	}
}

// HitTest reports whether c lies within the rectangle at pos with the given
// size. The near edges compare the floored cursor and the far edges compare
// the ceiled cursor, so a cursor exactly on the right or bottom edge is inside.
func HitTest(c Cursor, pos graphics.Point, size graphics.Size) bool {
	if int(math.Floor(c.X)) < pos.X {
		return false
	}
	if int(math.Floor(c.Y)) < pos.Y {
		return false
	}
	if int(math.Ceil(c.X)) > pos.X+size.Width {
		return false
	}
	if int(math.Ceil(c.Y)) > pos.Y+size.Height {
		return false
	}
	return true
}
