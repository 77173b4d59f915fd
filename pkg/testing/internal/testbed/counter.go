// Package testbed provides internal test widgets for the testing framework.
package testbed

import (
	"strconv"

	"github.com/go-drift/trellis/pkg/core"
	"github.com/go-drift/trellis/pkg/graphics"
	"github.com/go-drift/trellis/pkg/input"
	"github.com/go-drift/trellis/pkg/rendering"
)

// Counter displays a count and increments it on each press.
type Counter struct {
	core.Base
	Count int
	OnTap func(count int)
}

// NewCounter returns a counter occupying the given rect.
func NewCounter(initial int, bounds graphics.Rect) *Counter {
	c := &Counter{Count: initial}
	c.State().SetPosition(bounds.Min)
	c.State().SetSize(bounds.Size)
	return c
}

func (*Counter) Kind() string { return "Counter" }

// Text returns the count in decimal.
func (c *Counter) Text() string { return strconv.Itoa(c.Count) }

func (c *Counter) PointerPressed(input.Button) bool {
	c.Count++
	if c.OnTap != nil {
		c.OnTap(c.Count)
	}
	return true
}

func (c *Counter) Draw(r rendering.Renderer) {
	st := c.State()
	st.Draw(r)
	r.Render(rendering.Layer{
		Kind:     rendering.LayerText,
		Position: st.Position(),
		Size:     st.Size(),
		Text:     c.Text(),
	})
}
