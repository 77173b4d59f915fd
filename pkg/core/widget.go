package core

import (
	"time"

	"github.com/go-drift/trellis/pkg/graphics"
	"github.com/go-drift/trellis/pkg/input"
	"github.com/go-drift/trellis/pkg/rendering"
)

// Widget is the contract every tree node implements. Embed Base to get the
// default behavior for everything except Kind.
type Widget interface {
	// State returns the widget's mutable state block.
	State() *State
	// Kind returns a stable name for the concrete widget type.
	Kind() string

	// Update is called once per frame with the time since the previous frame.
	Update(elapsed time.Duration)
	// OnAdd is called immediately after the widget is attached to a tree.
	// Children queued with State.AddChild during OnAdd are attached next.
	OnAdd()
	// OnRemove is reserved for detachment, which trees do not perform.
	OnRemove()
	// Layout is called after the tree has assigned the widget's geometry.
	Layout()

	Position() graphics.Point
	Size() graphics.Size

	// Draw issues the widget's draw calls.
	Draw(r rendering.Renderer)

	// Pointer handlers are used when no callback is set for the gesture.
	// They report whether the event was consumed.
	PointerPressed(button input.Button) bool
	PointerReleased(button input.Button) bool
	PointerMoved(delta input.Delta) bool
	PointerEntered() bool
	PointerExited() bool
}

// Base supplies State and default implementations of the Widget hooks.
type Base struct {
	state State
}

func (b *Base) State() *State { return &b.state }

func (b *Base) Update(time.Duration) {}
func (b *Base) OnAdd()               {}
func (b *Base) OnRemove()            {}
func (b *Base) Layout()              {}

func (b *Base) Position() graphics.Point { return b.state.position }
func (b *Base) Size() graphics.Size      { return b.state.size }

// Draw draws the background then the foreground visual of the state.
func (b *Base) Draw(r rendering.Renderer) {
	b.state.Draw(r)
}

func (b *Base) PointerPressed(input.Button) bool  { return false }
func (b *Base) PointerReleased(input.Button) bool { return false }
func (b *Base) PointerMoved(input.Delta) bool     { return false }
func (b *Base) PointerEntered() bool              { return false }
func (b *Base) PointerExited() bool               { return false }

// EmptyWidget is a plain container with no behavior of its own. Trees
// materialize one for each Container child a theme declares.
type EmptyWidget struct {
	Base
}

// NewEmptyWidget returns a detached, unthemed container.
func NewEmptyWidget() *EmptyWidget {
	return &EmptyWidget{}
}

func (*EmptyWidget) Kind() string { return "EmptyWidget" }
