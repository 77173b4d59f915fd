package testing

import (
	"fmt"

	"github.com/go-drift/trellis/pkg/core"
	"github.com/go-drift/trellis/pkg/input"
)

// Tap simulates a primary press and release at the center of the first
// widget matched by finder.
func (t *WidgetTester) Tap(finder Finder) error {
	center, err := t.centerOf("Tap", finder)
	if err != nil {
		return err
	}
	return t.TapAt(center)
}

// TapAt simulates a primary press and release at c.
func (t *WidgetTester) TapAt(c input.Cursor) error {
	if _, err := t.Press(c, input.ButtonPrimary); err != nil {
		return err
	}
	_, err := t.Release(c, input.ButtonPrimary)
	return err
}

// Drag simulates pressing at the center of the first widget matched by
// finder, moving by delta, and releasing.
func (t *WidgetTester) Drag(finder Finder, delta input.Delta) error {
	start, err := t.centerOf("Drag", finder)
	if err != nil {
		return err
	}
	return t.DragFrom(start, delta)
}

// DragFrom simulates a primary drag from start by delta.
func (t *WidgetTester) DragFrom(start input.Cursor, delta input.Delta) error {
	if _, err := t.MoveTo(start); err != nil {
		return err
	}
	if _, err := t.Press(start, input.ButtonPrimary); err != nil {
		return err
	}
	end := input.Cursor{X: start.X + delta.X, Y: start.Y + delta.Y}
	if _, err := t.MoveTo(end); err != nil {
		return err
	}
	_, err := t.Release(end, input.ButtonPrimary)
	return err
}

// Press sends a pointer-pressed event and reports whether it was consumed.
func (t *WidgetTester) Press(c input.Cursor, button input.Button) (bool, error) {
	return t.SendEvent(input.Pressed(c, button))
}

// Release sends a pointer-released event and reports whether it was consumed.
func (t *WidgetTester) Release(c input.Cursor, button input.Button) (bool, error) {
	return t.SendEvent(input.Released(c, button))
}

// MoveTo sends a pointer-moved event to c, with the delta from the previous
// pointer position.
func (t *WidgetTester) MoveTo(c input.Cursor) (bool, error) {
	delta := input.Delta{X: c.X - t.cursor.X, Y: c.Y - t.cursor.Y}
	return t.SendEvent(input.Moved(c, delta))
}

// SendEvent dispatches ev from the root of the mounted tree.
func (t *WidgetTester) SendEvent(ev input.Event) (bool, error) {
	if t.tree == nil {
		return false, fmt.Errorf("no widget mounted")
	}
	t.cursor = ev.Cursor
	return t.tree.HandleEvent(ev), nil
}

func (t *WidgetTester) centerOf(op string, finder Finder) (input.Cursor, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return input.Cursor{}, fmt.Errorf("%s: finder matched no widgets: %s", op, finder.Description())
	}
	return widgetCenter(t.tree, result.First()), nil
}

// widgetCenter returns the center of the widget rect at h.
func widgetCenter(tree *core.Tree, h core.Handle) input.Cursor {
	b := tree.Get(h).State().Bounds()
	return input.Cursor{
		X: float64(b.Min.X) + float64(b.Size.Width)/2,
		Y: float64(b.Min.Y) + float64(b.Size.Height)/2,
	}
}
