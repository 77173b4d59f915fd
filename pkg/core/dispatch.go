package core

import (
	"github.com/go-drift/trellis/pkg/input"
)

// HandleEvent dispatches ev from the root and reports whether any widget
// consumed it. Pointer-moved events also update the hovered widget, firing
// exited on the previous one and entered on the new one.
func (t *Tree) HandleEvent(ev input.Event) bool {
	consumed := t.dispatch(ev, RootHandle)
	if ev.Kind == input.PointerMoved {
		t.updateHover(ev.Cursor)
	}
	return consumed
}

// HandleInput drains next, dispatching each event from the root, until next
// reports no more events.
func (t *Tree) HandleInput(next func() (input.Event, bool)) {
	for {
		ev, ok := next()
		if !ok {
			return
		}
		t.HandleEvent(ev)
	}
}

// Dispatch offers ev to the subtree at h. A widget whose bounds miss the
// cursor is skipped along with its whole subtree. Otherwise its children are
// asked first, in order, and the first to consume the event ends dispatch;
// h itself gets the event only when no child consumes it. It panics if h is
// not valid.
func (t *Tree) Dispatch(ev input.Event, h Handle) bool {
	t.check("core.Dispatch", h)
	return t.dispatch(ev, h)
}

func (t *Tree) dispatch(ev input.Event, h Handle) bool {
	if !t.widgets[h].State().IsInside(ev.Cursor) {
		return false
	}
	// Children attached by callbacks during this dispatch are not visited.
	n := len(t.entries[h].children)
	for i := 0; i < n; i++ {
		if t.dispatch(ev, t.entries[h].children[i]) {
			return true
		}
	}
	return t.fire(h, ev)
}

// fire delivers ev to h. The callback is copied out of the state before it
// runs so that it may modify the state, including replacing itself.
func (t *Tree) fire(h Handle, ev input.Event) bool {
	w := t.widgets[h]
	st := w.State()
	switch ev.Kind {
	case input.PointerMoved:
		if cb := st.onMoved; cb != nil {
			return cb(t, h, ev.Delta)
		}
		return w.PointerMoved(ev.Delta)
	case input.PointerPressed:
		if cb := st.onPressed; cb != nil {
			return cb(t, h, ev.Button)
		}
		return w.PointerPressed(ev.Button)
	case input.PointerReleased:
		if cb := st.onReleased; cb != nil {
			return cb(t, h, ev.Button)
		}
		return w.PointerReleased(ev.Button)
	}
	return false
}

// WidgetAt returns the widget that would be first to test itself for an
// event at c: the deepest hit, preferring earlier children. Children lying
// outside their parent's bounds are never found.
func (t *Tree) WidgetAt(c input.Cursor) (Handle, bool) {
	return t.widgetAt(c, RootHandle)
}

func (t *Tree) widgetAt(c input.Cursor, h Handle) (Handle, bool) {
	if !t.widgets[h].State().IsInside(c) {
		return InvalidHandle, false
	}
	for _, child := range t.entries[h].children {
		if found, ok := t.widgetAt(c, child); ok {
			return found, true
		}
	}
	return h, true
}

// Hovered returns the widget under the pointer as of the last moved event,
// or InvalidHandle.
func (t *Tree) Hovered() Handle {
	return t.hovered
}

func (t *Tree) updateHover(c input.Cursor) {
	next, ok := t.WidgetAt(c)
	if !ok {
		next = InvalidHandle
	}
	prev := t.hovered
	if next == prev {
		return
	}
	t.hovered = next

	if prev != InvalidHandle {
		w := t.widgets[prev]
		if cb := w.State().onExited; cb != nil {
			cb(t, prev, c)
		} else {
			w.PointerExited()
		}
	}
	if next != InvalidHandle {
		w := t.widgets[next]
		if cb := w.State().onEntered; cb != nil {
			cb(t, next, c)
		} else {
			w.PointerEntered()
		}
	}
}
