// Package rendering defines the draw contract between a widget tree and a
// drawing backend.
//
// A tree draws by handing one Layer at a time to a Renderer, in pre-order:
// parents before children, earlier siblings before later ones. Backends
// composite layers back to front in the order received.
package rendering

import (
	"fmt"

	"github.com/go-drift/trellis/pkg/graphics"
	"github.com/go-drift/trellis/pkg/theme"
)

// LayerKind distinguishes the kinds of draw call a widget issues.
type LayerKind int

const (
	// LayerBackground fills the widget rect with its background visual.
	LayerBackground LayerKind = iota
	// LayerForeground draws the foreground visual over the widget rect.
	LayerForeground
	// LayerText draws Text within the widget rect.
	LayerText
)

func (k LayerKind) String() string {
	switch k {
	case LayerBackground:
		return "background"
	case LayerForeground:
		return "foreground"
	case LayerText:
		return "text"
	default:
		return fmt.Sprintf("LayerKind(%d)", int(k))
	}
}

// Layer is a single rectangle-backed draw call.
type Layer struct {
	Kind     LayerKind
	Position graphics.Point
	Size     graphics.Size
	// Visual is a backend-resolved visual reference for background and
	// foreground layers.
	Visual string
	// Text and TextParams are set for text layers.
	Text       string
	TextParams theme.TextParams
}

// Bounds returns the layer rect.
func (l Layer) Bounds() graphics.Rect {
	return graphics.Rect{Min: l.Position, Size: l.Size}
}

// Renderer receives draw calls.
type Renderer interface {
	Render(layer Layer)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(layer Layer)

// Render calls f(layer).
func (f RendererFunc) Render(layer Layer) { f(layer) }

// Palette resolves visual references to colors. References absent from the
// palette are parsed as hex color strings; anything else resolves to false.
type Palette map[string]graphics.Color

// Resolve returns the color for ref.
func (p Palette) Resolve(ref string) (graphics.Color, bool) {
	if ref == "" {
		return graphics.Color{}, false
	}
	if c, ok := p[ref]; ok {
		return c, true
	}
	c, err := graphics.ParseColor(ref)
	if err != nil {
		return graphics.Color{}, false
	}
	return c, true
}
