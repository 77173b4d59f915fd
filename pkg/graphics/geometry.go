package graphics

// Point is a position in integer layout units.
type Point struct {
	X int
	Y int
}

// Add returns the component-wise sum of p and o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Size is a width and height in integer layout units.
type Size struct {
	Width  int
	Height int
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Rect is an axis-aligned rectangle anchored at Min.
type Rect struct {
	Min  Point
	Size Size
}

// RectFromXYWH constructs a Rect from its origin and dimensions.
func RectFromXYWH(x, y, width, height int) Rect {
	return Rect{Min: Point{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

// Max returns the bottom-right corner, exclusive.
func (r Rect) Max() Point {
	return Point{X: r.Min.X + r.Size.Width, Y: r.Min.Y + r.Size.Height}
}

// Inset shrinks r by the given edge amounts. Negative results clamp to zero size.
func (r Rect) Inset(left, top, right, bottom int) Rect {
	out := Rect{
		Min:  Point{X: r.Min.X + left, Y: r.Min.Y + top},
		Size: Size{Width: r.Size.Width - left - right, Height: r.Size.Height - top - bottom},
	}
	if out.Size.Width < 0 {
		out.Size.Width = 0
	}
	if out.Size.Height < 0 {
		out.Size.Height = 0
	}
	return out
}
