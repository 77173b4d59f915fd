package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/trellis/pkg/input"
)

var buttonMap = []struct {
	mask   tcell.ButtonMask
	button input.Button
}{
	{tcell.Button1, input.ButtonPrimary},
	{tcell.Button2, input.ButtonSecondary},
	{tcell.Button3, input.ButtonMiddle},
}

// Mouse turns tcell mouse reports into pointer events. tcell reports the
// whole button state on each event, so presses and releases come from
// changes in that state. The zero value is ready to use.
type Mouse struct {
	buttons tcell.ButtonMask
	last    input.Cursor
	seen    bool
}

// Translate returns the pointer events ev implies, movement first. The
// cursor sits at the center of the reported cell. Wheel motion is ignored.
func (m *Mouse) Translate(ev *tcell.EventMouse) []input.Event {
	if ev == nil {
		return nil
	}
	x, y := ev.Position()
	cursor := input.Cursor{X: float64(x) + 0.5, Y: float64(y) + 0.5}

	var out []input.Event
	if !m.seen || cursor != m.last {
		var delta input.Delta
		if m.seen {
			delta = input.Delta{X: cursor.X - m.last.X, Y: cursor.Y - m.last.Y}
		}
		out = append(out, input.Moved(cursor, delta))
	}
	m.last, m.seen = cursor, true

	buttons := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	for _, b := range buttonMap {
		was, is := m.buttons&b.mask != 0, buttons&b.mask != 0
		switch {
		case is && !was:
			out = append(out, input.Pressed(cursor, b.button))
		case was && !is:
			out = append(out, input.Released(cursor, b.button))
		}
	}
	m.buttons = buttons
	return out
}
