package testing

import (
	"github.com/go-drift/trellis/pkg/graphics"
	"github.com/go-drift/trellis/pkg/rendering"
	"github.com/go-drift/trellis/pkg/theme"
)

// DisplayOp is a serialized draw call.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// DisplayList is a renderer that records every layer it receives.
type DisplayList struct {
	layers []rendering.Layer
}

// Render records l.
func (d *DisplayList) Render(l rendering.Layer) {
	d.layers = append(d.layers, l)
}

// Layers returns the recorded layers in draw order.
func (d *DisplayList) Layers() []rendering.Layer {
	return d.layers
}

// Texts returns the text of every text layer in draw order.
func (d *DisplayList) Texts() []string {
	var out []string
	for _, l := range d.layers {
		if l.Kind == rendering.LayerText {
			out = append(out, l.Text)
		}
	}
	return out
}

// Ops serializes the recorded layers.
func (d *DisplayList) Ops() []DisplayOp {
	ops := make([]DisplayOp, 0, len(d.layers))
	for _, l := range d.layers {
		ops = append(ops, serializeLayer(l))
	}
	return ops
}

// --- Serialization helpers ---

func serializeLayer(l rendering.Layer) DisplayOp {
	params := sortedMap("rect", serializeRect(l.Bounds()))
	switch l.Kind {
	case rendering.LayerText:
		params["text"] = l.Text
		params["style"] = serializeTextParams(l.TextParams)
	default:
		params["visual"] = l.Visual
	}
	return DisplayOp{Op: l.Kind.String(), Params: params}
}

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"x", r.Min.X,
		"y", r.Min.Y,
		"width", r.Size.Width,
		"height", r.Size.Height,
	)
}

func serializeTextParams(p theme.TextParams) map[string]any {
	return sortedMap(
		"align", p.HorizontalAlignment.String()+"/"+p.VerticalAlignment.String(),
		"color", p.Color.Hex(),
		"font", p.Font,
		"scale", p.Scale,
	)
}

// sortedMap creates a map from alternating key-value pairs.
// JSON marshaling sorts the keys.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
