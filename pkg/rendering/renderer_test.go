package rendering

import (
	"testing"

	"github.com/go-drift/trellis/pkg/graphics"
)

func TestPaletteResolve(t *testing.T) {
	p := Palette{"accent": graphics.ColorGreen}

	tests := []struct {
		ref  string
		want graphics.Color
		ok   bool
	}{
		{"accent", graphics.ColorGreen, true},
		{"f00", graphics.ColorRed, true},
		{"#0000ff", graphics.ColorBlue, true},
		{"missing-image", graphics.Color{}, false},
		{"", graphics.Color{}, false},
	}
	for _, tt := range tests {
		got, ok := p.Resolve(tt.ref)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Resolve(%q) = %+v, %v; want %+v, %v", tt.ref, got, ok, tt.want, tt.ok)
		}
	}

	var nilPalette Palette
	if _, ok := nilPalette.Resolve("fff"); !ok {
		t.Error("nil palette should still parse color strings")
	}
}

func TestRendererFunc(t *testing.T) {
	var got []LayerKind
	r := RendererFunc(func(l Layer) { got = append(got, l.Kind) })
	r.Render(Layer{Kind: LayerBackground})
	r.Render(Layer{Kind: LayerText})
	if len(got) != 2 || got[0] != LayerBackground || got[1] != LayerText {
		t.Errorf("got %v", got)
	}
	if LayerForeground.String() != "foreground" {
		t.Error(LayerForeground.String())
	}
}
