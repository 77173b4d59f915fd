// Package term draws widget trees onto a character-cell terminal screen.
//
// One layout unit is one cell. Backgrounds paint cell backgrounds,
// blending translucent colors over what is already there; foregrounds
// recolor the glyphs in the layer rect; text is written cell by cell using
// display widths, so wide runes take two columns.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/go-drift/trellis/pkg/graphics"
	"github.com/go-drift/trellis/pkg/rendering"
	"github.com/go-drift/trellis/pkg/theme"
)

// Screen is the subset of tcell.Screen the renderer draws through.
type Screen interface {
	Size() (int, int)
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	GetContent(x, y int) (rune, []rune, tcell.Style, int)
}

// Renderer writes layers to a Screen.
type Renderer struct {
	Screen  Screen
	Palette rendering.Palette
}

// New returns a renderer for screen.
func New(screen Screen, palette rendering.Palette) *Renderer {
	return &Renderer{Screen: screen, Palette: palette}
}

// Clear resets every cell to a blank with style.
func (r *Renderer) Clear(style tcell.Style) {
	w, h := r.Screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.Screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Render draws l. Layers whose visual does not resolve draw nothing.
func (r *Renderer) Render(l rendering.Layer) {
	switch l.Kind {
	case rendering.LayerBackground:
		if c, ok := r.Palette.Resolve(l.Visual); ok && c.A > 0 {
			r.fill(l.Bounds(), c)
		}
	case rendering.LayerForeground:
		if c, ok := r.Palette.Resolve(l.Visual); ok && c.A > 0 {
			r.tint(l.Bounds(), c)
		}
	case rendering.LayerText:
		r.text(l.Bounds(), l.Text, l.TextParams)
	}
}

// cells calls fn for every on-screen cell in rect.
func (r *Renderer) cells(rect graphics.Rect, fn func(x, y int)) {
	w, h := r.Screen.Size()
	end := rect.Max()
	for y := max(rect.Min.Y, 0); y < min(end.Y, h); y++ {
		for x := max(rect.Min.X, 0); x < min(end.X, w); x++ {
			fn(x, y)
		}
	}
}

func (r *Renderer) fill(rect graphics.Rect, c graphics.Color) {
	r.cells(rect, func(x, y int) {
		_, _, style, _ := r.Screen.GetContent(x, y)
		_, bg, _ := style.Decompose()
		r.Screen.SetContent(x, y, ' ', nil, style.Background(blend(bg, c)))
	})
}

func (r *Renderer) tint(rect graphics.Rect, c graphics.Color) {
	r.cells(rect, func(x, y int) {
		mainc, combc, style, _ := r.Screen.GetContent(x, y)
		fg, _, _ := style.Decompose()
		r.Screen.SetContent(x, y, mainc, combc, style.Foreground(blend(fg, c)))
	})
}

// text writes s on one row of rect, truncated to the rect width with an
// ellipsis. Cell backgrounds under the run are kept.
func (r *Renderer) text(rect graphics.Rect, s string, params theme.TextParams) {
	if s == "" || rect.Size.Width <= 0 || rect.Size.Height <= 0 {
		return
	}
	if runewidth.StringWidth(s) > rect.Size.Width {
		s = runewidth.Truncate(s, rect.Size.Width, "…")
	}
	width := runewidth.StringWidth(s)

	x := rect.Min.X
	switch params.HorizontalAlignment {
	case theme.AlignCenter:
		x += (rect.Size.Width - width) / 2
	case theme.AlignRight:
		x += rect.Size.Width - width
	}
	y := rect.Min.Y
	switch params.VerticalAlignment {
	case theme.AlignMiddle:
		y += (rect.Size.Height - 1) / 2
	case theme.AlignBottom:
		y += rect.Size.Height - 1
	}

	sw, sh := r.Screen.Size()
	if y < 0 || y >= sh {
		return
	}
	for _, ch := range s {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if x >= 0 && x < sw {
			_, _, style, _ := r.Screen.GetContent(x, y)
			fg, _, _ := style.Decompose()
			r.Screen.SetContent(x, y, ch, nil, style.Foreground(blend(fg, params.Color)))
		}
		x += cw
	}
}

// Color converts c to a terminal color, ignoring alpha.
func Color(c graphics.Color) tcell.Color {
	r, g, b, _ := c.RGB8()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// blend composites c over under. Under colors with no RGB value, such as
// the terminal default, are replaced outright.
func blend(under tcell.Color, c graphics.Color) tcell.Color {
	if c.A >= 1 || !under.Valid() {
		return Color(c)
	}
	ur, ug, ub := under.RGB()
	if ur < 0 {
		return Color(c)
	}
	base := colorful.Color{R: float64(ur) / 255, G: float64(ug) / 255, B: float64(ub) / 255}
	top := colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
	out := base.BlendRgb(top, float64(c.A)).Clamped()
	r, g, b := out.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
