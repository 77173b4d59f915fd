package graphics

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// maxByte normalizes two-digit hex components.
	maxByte = 255.0
	// maxNibble normalizes one-digit hex components.
	maxNibble = 15.0
)

// Color holds normalized RGBA components in the range 0..1.
// The zero value is transparent black; use ColorWhite for the theme default.
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

// Common colors.
var (
	ColorTransparent = Color{}
	ColorBlack       = Color{A: 1}
	ColorWhite       = Color{R: 1, G: 1, B: 1, A: 1}
	ColorRed         = Color{R: 1, A: 1}
	ColorGreen       = Color{G: 1, A: 1}
	ColorBlue        = Color{B: 1, A: 1}
)

// ColorError reports a string that is not a valid hex color.
type ColorError struct {
	Text   string
	Reason string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("unable to parse color from %q: %s", e.Text, e.Reason)
}

// ParseColor parses RGB, RGBA, RRGGBB or RRGGBBAA hex strings. A leading
// '#' is ignored. Short forms scale each digit by 1/15 so "f00" equals "ff0000".
func ParseColor(text string) (Color, error) {
	digits := strings.TrimPrefix(text, "#")

	var width int
	var max float32
	switch len(digits) {
	case 3, 4:
		width, max = 1, maxNibble
	case 6, 8:
		width, max = 2, maxByte
	default:
		return Color{}, &ColorError{Text: text, Reason: fmt.Sprintf("invalid length %d", len(digits))}
	}

	components := [4]float32{1, 1, 1, 1}
	for i := 0; i*width < len(digits); i++ {
		part := digits[i*width : (i+1)*width]
		v, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return Color{}, &ColorError{Text: text, Reason: fmt.Sprintf("invalid component %q", part)}
		}
		components[i] = float32(v) / max
	}

	return Color{R: components[0], G: components[1], B: components[2], A: components[3]}, nil
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(text string) Color {
	c, err := ParseColor(text)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBA implements image/color.Color with alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = channel16(c.A)
	r = channel16(c.R) * a / 0xffff
	g = channel16(c.G) * a / 0xffff
	b = channel16(c.B) * a / 0xffff
	return r, g, b, a
}

// RGB8 returns the straight (non-premultiplied) 8-bit channels.
func (c Color) RGB8() (r, g, b, a uint8) {
	return channel8(c.R), channel8(c.G), channel8(c.B), channel8(c.A)
}

// Hex formats the color as an 8-digit RRGGBBAA string.
func (c Color) Hex() string {
	r, g, b, a := c.RGB8()
	return fmt.Sprintf("%02x%02x%02x%02x", r, g, b, a)
}

func (c Color) String() string {
	return "#" + c.Hex()
}

// UnmarshalYAML decodes a hex color string.
func (c *Color) UnmarshalYAML(unmarshal func(any) error) error {
	var text string
	if err := unmarshal(&text); err != nil {
		return err
	}
	parsed, err := ParseColor(text)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func channel16(v float32) uint32 {
	return uint32(math.Round(float64(clamp01(v)) * 0xffff))
}

func channel8(v float32) uint8 {
	return uint8(math.Round(float64(clamp01(v)) * maxByte))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
