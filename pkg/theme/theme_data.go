// Package theme defines theme records and the immutable catalog that widget
// trees resolve cascaded theme ids against.
//
// Theme ids are dotted paths. A widget whose partial id is "button", attached
// beneath a widget resolved to "root.panel", resolves to "root.panel.button"
// when the catalog holds that id. Lookups of unknown ids fall back to the
// record named DefaultID.
package theme

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/trellis/pkg/graphics"
)

// DefaultID names the fallback theme returned for unknown ids.
const DefaultID = "default"

// LayoutKind selects how a container arranges its children.
type LayoutKind int

const (
	LayoutNormal LayoutKind = iota
	LayoutBoxVertical
	LayoutBoxHorizontal
	LayoutGrid
)

var layoutKindNames = []string{"Normal", "BoxVertical", "BoxHorizontal", "Grid"}

func (k LayoutKind) String() string { return enumName(layoutKindNames, int(k)) }

// UnmarshalYAML decodes a layout kind by name.
func (k *LayoutKind) UnmarshalYAML(value *yaml.Node) error {
	return decodeEnum(value, "layout kind", layoutKindNames, k)
}

// SizeRelative controls how a declared size is interpreted against the parent.
type SizeRelative int

const (
	// SizeZero uses the declared size as is.
	SizeZero SizeRelative = iota
	// SizeParent fills the parent's inner size, plus the declared size.
	SizeParent
	// SizeChildMax takes the largest child extent.
	SizeChildMax
	// SizeChildSum takes the summed child extents.
	SizeChildSum
	// SizeCustom leaves the size to the widget.
	SizeCustom
)

var sizeRelativeNames = []string{"Zero", "Parent", "ChildMax", "ChildSum", "Custom"}

func (s SizeRelative) String() string { return enumName(sizeRelativeNames, int(s)) }

// UnmarshalYAML decodes a size mode by name.
func (s *SizeRelative) UnmarshalYAML(value *yaml.Node) error {
	return decodeEnum(value, "size relative", sizeRelativeNames, s)
}

// PositionRelative controls how a declared position is interpreted against the parent.
type PositionRelative int

const (
	// PositionZero offsets from the parent's inner origin.
	PositionZero PositionRelative = iota
	// PositionCenter centers within the parent, then offsets.
	PositionCenter
	// PositionMax aligns to the parent's far edge, then offsets inward.
	PositionMax
	// PositionCustom leaves the position to the widget.
	PositionCustom
)

var positionRelativeNames = []string{"Zero", "Center", "Max", "Custom"}

func (p PositionRelative) String() string { return enumName(positionRelativeNames, int(p)) }

// UnmarshalYAML decodes a position mode by name.
func (p *PositionRelative) UnmarshalYAML(value *yaml.Node) error {
	return decodeEnum(value, "position relative", positionRelativeNames, p)
}

// HorizontalAlignment places text horizontally.
type HorizontalAlignment int

const (
	AlignLeft HorizontalAlignment = iota
	AlignCenter
	AlignRight
)

var horizontalAlignmentNames = []string{"Left", "Center", "Right"}

func (a HorizontalAlignment) String() string { return enumName(horizontalAlignmentNames, int(a)) }

// UnmarshalYAML decodes a horizontal alignment by name.
func (a *HorizontalAlignment) UnmarshalYAML(value *yaml.Node) error {
	return decodeEnum(value, "horizontal alignment", horizontalAlignmentNames, a)
}

// VerticalAlignment places text vertically.
type VerticalAlignment int

const (
	AlignTop VerticalAlignment = iota
	AlignMiddle
	AlignBottom
)

var verticalAlignmentNames = []string{"Top", "Center", "Bottom"}

func (a VerticalAlignment) String() string { return enumName(verticalAlignmentNames, int(a)) }

// UnmarshalYAML decodes a vertical alignment by name.
func (a *VerticalAlignment) UnmarshalYAML(value *yaml.Node) error {
	return decodeEnum(value, "vertical alignment", verticalAlignmentNames, a)
}

// ChildKind tags a theme-declared child.
type ChildKind int

const (
	// ChildLabel materializes a label widget.
	ChildLabel ChildKind = iota
	// ChildContainer materializes an empty container widget.
	ChildContainer
	// ChildReference names a slot filled by an explicit AddChild elsewhere.
	ChildReference
)

var childKindNames = []string{"Label", "Container", "Reference"}

func (k ChildKind) String() string { return enumName(childKindNames, int(k)) }

// UnmarshalYAML decodes a child kind by name.
func (k *ChildKind) UnmarshalYAML(value *yaml.Node) error {
	return decodeEnum(value, "child kind", childKindNames, k)
}

// Border holds per-edge integer insets.
type Border struct {
	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
	Right  int `yaml:"right"`
}

// Horizontal returns Left+Right.
func (b Border) Horizontal() int { return b.Left + b.Right }

// Vertical returns Top+Bottom.
func (b Border) Vertical() int { return b.Top + b.Bottom }

// Relative holds the per-axis resolution modes for position and size.
type Relative struct {
	X      PositionRelative `yaml:"x"`
	Y      PositionRelative `yaml:"y"`
	Width  SizeRelative     `yaml:"width"`
	Height SizeRelative     `yaml:"height"`
}

// TextParams describes how text is drawn.
type TextParams struct {
	HorizontalAlignment HorizontalAlignment
	VerticalAlignment   VerticalAlignment
	Color               graphics.Color
	Scale               float32
	Font                string
}

// DefaultTextParams returns left/center aligned white text at scale 1.
func DefaultTextParams() TextParams {
	return TextParams{
		HorizontalAlignment: AlignLeft,
		VerticalAlignment:   AlignMiddle,
		Color:               graphics.ColorWhite,
		Scale:               1,
		Font:                "Default",
	}
}

// Child is a theme-declared child: a partial theme id and how to materialize it.
type Child struct {
	ID   string
	Kind ChildKind
}

// Theme is an immutable theme record. Records are shared by every widget
// resolved to the same id and must not be modified after the Set is built.
type Theme struct {
	ID            string
	Layout        LayoutKind
	LayoutSpacing Border
	Border        Border
	Size          graphics.Size
	Position      graphics.Point
	Relative      Relative

	// Text is the declared text content; empty means none.
	Text       string
	TextParams TextParams
	// Background and Foreground are visual references resolved by the renderer.
	Background string
	Foreground string

	Custom   map[string]string
	Children []Child
}

// Default returns a fresh copy of the fallback theme.
func Default() *Theme {
	return &Theme{
		ID:         DefaultID,
		TextParams: DefaultTextParams(),
		Custom:     map[string]string{},
	}
}

// CustomValue returns the custom string stored under key.
func (t *Theme) CustomValue(key string) (string, bool) {
	v, ok := t.Custom[key]
	return v, ok
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("Unknown(%d)", i)
	}
	return names[i]
}

func decodeEnum[T ~int](value *yaml.Node, what string, names []string, out *T) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	for i, n := range names {
		if n == name {
			*out = T(i)
			return nil
		}
	}
	return fmt.Errorf("line %d: unknown %s %q", value.Line, what, name)
}
