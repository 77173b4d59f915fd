package core

import (
	"github.com/go-drift/trellis/pkg/errors"
	"github.com/go-drift/trellis/pkg/graphics"
	"github.com/go-drift/trellis/pkg/input"
	"github.com/go-drift/trellis/pkg/rendering"
	"github.com/go-drift/trellis/pkg/theme"
)

// Handle addresses a widget in a Tree.
type Handle int

const (
	// RootHandle is the handle of every tree's root widget.
	RootHandle Handle = 0
	// InvalidHandle marks the absence of a widget.
	InvalidHandle Handle = -1
)

// Callback is invoked when a widget receives a gesture. It gets the tree and
// the firing widget's handle rather than the widget itself, so it may access
// any widget in the tree. It reports whether the event was consumed.
type Callback[P any] func(t *Tree, h Handle, payload P) bool

// State is the mutable block every widget carries: its place in the tree,
// theme identity, geometry, visuals, queued children and gesture callbacks.
type State struct {
	handle   Handle
	attached bool

	partialTheme string
	themeID      string
	theme        *theme.Theme

	position   graphics.Point
	size       graphics.Size
	background string
	foreground string

	pending []Widget

	onPressed  Callback[input.Button]
	onReleased Callback[input.Button]
	onMoved    Callback[input.Delta]
	onEntered  Callback[input.Cursor]
	onExited   Callback[input.Cursor]
}

// Handle returns the widget's handle. It panics if the widget has not been
// attached to a tree.
func (s *State) Handle() Handle {
	if !s.attached {
		panic(&errors.TopologyError{Op: "core.State.Handle", Handle: int(InvalidHandle), Reason: "widget is not attached"})
	}
	return s.handle
}

// Attached reports whether the widget belongs to a tree.
func (s *State) Attached() bool { return s.attached }

// SetTheme sets the partial theme id. The cascaded id is resolved when the
// widget is attached; changing the partial id afterwards has no effect on it.
func (s *State) SetTheme(id string) { s.partialTheme = id }

// PartialThemeID returns the id set with SetTheme.
func (s *State) PartialThemeID() string { return s.partialTheme }

// ThemeID returns the fully-resolved theme id. It is empty until attached,
// and equals the partial id when resolution found no match.
func (s *State) ThemeID() string { return s.themeID }

// Theme returns the theme record applied at attach time, or nil before.
func (s *State) Theme() *theme.Theme { return s.theme }

func (s *State) Position() graphics.Point     { return s.position }
func (s *State) SetPosition(p graphics.Point) { s.position = p }
func (s *State) Size() graphics.Size          { return s.size }
func (s *State) SetSize(size graphics.Size)   { s.size = size }

// Bounds returns the widget rect.
func (s *State) Bounds() graphics.Rect {
	return graphics.Rect{Min: s.position, Size: s.size}
}

// IsInside hit-tests c against the widget rect.
func (s *State) IsInside(c input.Cursor) bool {
	return input.HitTest(c, s.position, s.size)
}

// Background returns the background visual reference.
func (s *State) Background() string { return s.background }

// SetBackground sets the background visual reference. A non-empty value set
// before attachment takes precedence over the theme's.
func (s *State) SetBackground(ref string) { s.background = ref }

// Foreground returns the foreground visual reference.
func (s *State) Foreground() string { return s.foreground }

// SetForeground sets the foreground visual reference.
func (s *State) SetForeground(ref string) { s.foreground = ref }

// AddChild queues child to be attached beneath this widget. Queued children
// are attached right after this widget is, before its theme-declared
// children. On an already attached widget, call Tree.Flush to attach them.
func (s *State) AddChild(child Widget) {
	s.pending = append(s.pending, child)
}

// Pending returns the number of queued children.
func (s *State) Pending() int { return len(s.pending) }

func (s *State) SetPressedCallback(cb Callback[input.Button])  { s.onPressed = cb }
func (s *State) SetReleasedCallback(cb Callback[input.Button]) { s.onReleased = cb }
func (s *State) SetMovedCallback(cb Callback[input.Delta])     { s.onMoved = cb }
func (s *State) SetEnteredCallback(cb Callback[input.Cursor])  { s.onEntered = cb }
func (s *State) SetExitedCallback(cb Callback[input.Cursor])   { s.onExited = cb }

// Draw issues background and foreground layers for the widget rect.
// Empty references are skipped.
func (s *State) Draw(r rendering.Renderer) {
	if s.background != "" {
		r.Render(rendering.Layer{
			Kind:     rendering.LayerBackground,
			Position: s.position,
			Size:     s.size,
			Visual:   s.background,
		})
	}
	if s.foreground != "" {
		r.Render(rendering.Layer{
			Kind:     rendering.LayerForeground,
			Position: s.position,
			Size:     s.size,
			Visual:   s.foreground,
		})
	}
}

// takePending removes and returns the first queued child.
func (s *State) takePending() (Widget, bool) {
	if len(s.pending) == 0 {
		return nil, false
	}
	w := s.pending[0]
	s.pending[0] = nil
	s.pending = s.pending[1:]
	return w, true
}
