// Package raster draws widget trees into an in-memory RGBA image.
//
// Backgrounds fill the layer rect, foregrounds stroke a one-pixel outline
// of it, and text is drawn with a bitmap face aligned inside the rect.
// Layers are composited over what is already in the image.
package raster

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/trellis/pkg/graphics"
	"github.com/go-drift/trellis/pkg/rendering"
	"github.com/go-drift/trellis/pkg/theme"
)

// Renderer rasterizes layers into Dst, one layout unit per pixel.
type Renderer struct {
	Dst     *image.RGBA
	Palette rendering.Palette
	Fonts   *FontManager
}

// New returns a renderer drawing into a new image of the given size.
func New(size graphics.Size, palette rendering.Palette) *Renderer {
	return &Renderer{
		Dst:     image.NewRGBA(image.Rect(0, 0, size.Width, size.Height)),
		Palette: palette,
		Fonts:   NewFontManager(),
	}
}

// Clear fills the whole image with c.
func (r *Renderer) Clear(c graphics.Color) {
	draw.Draw(r.Dst, r.Dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Image returns the destination image.
func (r *Renderer) Image() *image.RGBA {
	return r.Dst
}

// Render draws l. Layers whose visual does not resolve draw nothing.
func (r *Renderer) Render(l rendering.Layer) {
	rect := toImageRect(l.Bounds())
	switch l.Kind {
	case rendering.LayerBackground:
		if c, ok := r.Palette.Resolve(l.Visual); ok {
			r.fill(rect, c)
		}
	case rendering.LayerForeground:
		if c, ok := r.Palette.Resolve(l.Visual); ok {
			r.stroke(rect, c)
		}
	case rendering.LayerText:
		r.text(rect, l.Text, l.TextParams)
	}
}

func (r *Renderer) fill(rect image.Rectangle, c graphics.Color) {
	draw.Draw(r.Dst, rect.Intersect(r.Dst.Bounds()), image.NewUniform(c), image.Point{}, draw.Over)
}

func (r *Renderer) stroke(rect image.Rectangle, c graphics.Color) {
	if rect.Empty() {
		return
	}
	edges := []image.Rectangle{
		image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+1),
		image.Rect(rect.Min.X, rect.Max.Y-1, rect.Max.X, rect.Max.Y),
		image.Rect(rect.Min.X, rect.Min.Y+1, rect.Min.X+1, rect.Max.Y-1),
		image.Rect(rect.Max.X-1, rect.Min.Y+1, rect.Max.X, rect.Max.Y-1),
	}
	for _, e := range edges {
		r.fill(e, c)
	}
}

// text draws s aligned within rect. Scales above one render the run at
// native size and enlarge it with nearest-neighbor sampling.
func (r *Renderer) text(rect image.Rectangle, s string, params theme.TextParams) {
	clip := rect.Intersect(r.Dst.Bounds())
	if s == "" || clip.Empty() {
		return
	}
	if r.Fonts == nil {
		r.Fonts = NewFontManager()
	}
	face := r.Fonts.Face(params.Font)
	scale := max(int(math.Round(float64(params.Scale))), 1)

	run := measure(face, s)
	target := image.Rectangle{Max: image.Pt(run.X*scale, run.Y*scale)}
	target = target.Add(align(rect, target.Size(), params))
	src := image.NewUniform(params.Color)

	if scale == 1 {
		drawRun(r.Dst.SubImage(clip).(*image.RGBA), face, src, s, target.Min)
		return
	}

	native := image.NewRGBA(image.Rectangle{Max: run})
	drawRun(native, face, src, s, image.Point{})
	big := image.NewRGBA(image.Rectangle{Max: target.Size()})
	draw.NearestNeighbor.Scale(big, big.Bounds(), native, native.Bounds(), draw.Src, nil)

	visible := target.Intersect(clip)
	draw.Draw(r.Dst, visible, big, visible.Min.Sub(target.Min), draw.Over)
}

// measure returns the pixel size of s set in face.
func measure(face font.Face, s string) image.Point {
	m := face.Metrics()
	return image.Pt(font.MeasureString(face, s).Ceil(), (m.Ascent + m.Descent).Ceil())
}

// align positions a run of the given size inside rect.
func align(rect image.Rectangle, run image.Point, params theme.TextParams) image.Point {
	at := rect.Min
	switch params.HorizontalAlignment {
	case theme.AlignCenter:
		at.X += (rect.Dx() - run.X) / 2
	case theme.AlignRight:
		at.X += rect.Dx() - run.X
	}
	switch params.VerticalAlignment {
	case theme.AlignMiddle:
		at.Y += (rect.Dy() - run.Y) / 2
	case theme.AlignBottom:
		at.Y += rect.Dy() - run.Y
	}
	return at
}

// drawRun draws s with its top-left corner at at.
func drawRun(dst draw.Image, face font.Face, src image.Image, s string, at image.Point) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: face,
		Dot:  fixed.P(at.X, at.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

func toImageRect(r graphics.Rect) image.Rectangle {
	end := r.Max()
	return image.Rect(r.Min.X, r.Min.Y, end.X, end.Y)
}
