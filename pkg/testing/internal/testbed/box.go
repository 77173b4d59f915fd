package testbed

import (
	"time"

	"github.com/go-drift/trellis/pkg/core"
	"github.com/go-drift/trellis/pkg/graphics"
	"github.com/go-drift/trellis/pkg/input"
)

// Box is a plain widget that records what happens to it.
type Box struct {
	core.Base
	Elapsed time.Duration
	Moves   []input.Delta
	Hovered bool
}

// NewBox returns a box occupying the given rect with the given background.
func NewBox(bounds graphics.Rect, background string) *Box {
	b := &Box{}
	b.State().SetPosition(bounds.Min)
	b.State().SetSize(bounds.Size)
	b.State().SetBackground(background)
	return b
}

func (*Box) Kind() string { return "Box" }

func (b *Box) Update(elapsed time.Duration) { b.Elapsed += elapsed }

func (b *Box) PointerMoved(d input.Delta) bool {
	b.Moves = append(b.Moves, d)
	return false
}

func (b *Box) PointerEntered() bool {
	b.Hovered = true
	return false
}

func (b *Box) PointerExited() bool {
	b.Hovered = false
	return false
}
