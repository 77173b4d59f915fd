package core

import (
	"github.com/go-drift/trellis/pkg/graphics"
	"github.com/go-drift/trellis/pkg/theme"
)

// Layout assigns every themed widget a size and position from its theme,
// with the root placed inside area. Widgets whose resolved id is not in the
// catalog keep their geometry, as do the axes of themed widgets set to
// Custom. Each widget's Layout hook runs once its own geometry is final.
//
// Sizes that depend on children (ChildMax, ChildSum) are measured bottom-up
// first; a child's handle is always greater than its parent's, so a reverse
// handle sweep visits children before parents.
func (t *Tree) Layout(area graphics.Size) {
	n := len(t.widgets)
	measured := make([]graphics.Size, n)
	for h := n - 1; h >= 0; h-- {
		measured[h] = t.measure(Handle(h), measured)
	}

	t.place(RootHandle, graphics.Rect{Size: area}, measured[RootHandle])
	t.widgets[RootHandle].Layout()
	for h := 0; h < n; h++ {
		t.arrange(Handle(h), measured)
	}
}

// themed returns the theme of h when its resolved id is in the catalog.
func (t *Tree) themed(h Handle) (*theme.Theme, bool) {
	st := t.widgets[h].State()
	if st.theme == nil || !t.themes.Has(st.themeID) {
		return nil, false
	}
	return st.theme, true
}

func (t *Tree) measure(h Handle, measured []graphics.Size) graphics.Size {
	st := t.widgets[h].State()
	th, ok := t.themed(h)
	if !ok {
		return st.size
	}

	var maxSize, sum graphics.Size
	children := t.entries[h].children
	for _, c := range children {
		m := measured[c]
		maxSize.Width = max(maxSize.Width, m.Width)
		maxSize.Height = max(maxSize.Height, m.Height)
		sum.Width += m.Width + th.LayoutSpacing.Horizontal()
		sum.Height += m.Height + th.LayoutSpacing.Vertical()
	}

	return graphics.Size{
		Width:  measureAxis(th.Relative.Width, th.Size.Width, st.size.Width, maxSize.Width, sum.Width, th.Border.Horizontal()),
		Height: measureAxis(th.Relative.Height, th.Size.Height, st.size.Height, maxSize.Height, sum.Height, th.Border.Vertical()),
	}
}

// measureAxis returns the natural extent along one axis. Parent-relative
// extents are not known until placement and measure as declared.
func measureAxis(mode theme.SizeRelative, declared, current, maxExtent, sum, border int) int {
	switch mode {
	case theme.SizeChildMax:
		return maxExtent + border
	case theme.SizeChildSum:
		return sum + border
	case theme.SizeCustom:
		return current
	default:
		return declared
	}
}

// place sets the size and position of h within inner, the inner rect of its
// parent. Box and grid parents override the stacking axis afterwards.
func (t *Tree) place(h Handle, inner graphics.Rect, measured graphics.Size) {
	th, ok := t.themed(h)
	if !ok {
		return
	}
	st := t.widgets[h].State()

	size := graphics.Size{
		Width:  placeSize(th.Relative.Width, th.Size.Width, inner.Size.Width, measured.Width, st.size.Width),
		Height: placeSize(th.Relative.Height, th.Size.Height, inner.Size.Height, measured.Height, st.size.Height),
	}
	st.size = size
	st.position = graphics.Point{
		X: placePos(th.Relative.X, th.Position.X, inner.Min.X, inner.Size.Width, size.Width, st.position.X),
		Y: placePos(th.Relative.Y, th.Position.Y, inner.Min.Y, inner.Size.Height, size.Height, st.position.Y),
	}
}

func placeSize(mode theme.SizeRelative, declared, inner, measured, current int) int {
	switch mode {
	case theme.SizeZero:
		return declared
	case theme.SizeParent:
		return inner + declared
	case theme.SizeCustom:
		return current
	default:
		return measured
	}
}

func placePos(mode theme.PositionRelative, declared, innerMin, innerExtent, extent, current int) int {
	switch mode {
	case theme.PositionZero:
		return innerMin + declared
	case theme.PositionCenter:
		return innerMin + (innerExtent-extent)/2 + declared
	case theme.PositionMax:
		return innerMin + innerExtent - extent - declared
	default:
		return current
	}
}

// arrange places the children of h inside its inner rect according to its
// layout kind, then runs each child's Layout hook.
func (t *Tree) arrange(h Handle, measured []graphics.Size) {
	children := t.entries[h].children
	if len(children) == 0 {
		return
	}
	st := t.widgets[h].State()

	kind := theme.LayoutNormal
	var border, spacing theme.Border
	if th, ok := t.themed(h); ok {
		kind, border, spacing = th.Layout, th.Border, th.LayoutSpacing
	}
	inner := st.Bounds().Inset(border.Left, border.Top, border.Right, border.Bottom)

	cursor := inner.Min
	rowHeight := 0
	for _, c := range children {
		t.place(c, inner, measured[c])
		cst := t.widgets[c].State()
		_, themed := t.themed(c)
		rel := theme.Relative{X: theme.PositionCustom, Y: theme.PositionCustom}
		if themed {
			rel = cst.theme.Relative
		}

		switch kind {
		case theme.LayoutBoxVertical:
			if rel.Y != theme.PositionCustom {
				cst.position.Y = cursor.Y + spacing.Top + cst.theme.Position.Y
			}
			cursor.Y = cst.position.Y + cst.size.Height + spacing.Bottom
		case theme.LayoutBoxHorizontal:
			if rel.X != theme.PositionCustom {
				cst.position.X = cursor.X + spacing.Left + cst.theme.Position.X
			}
			cursor.X = cst.position.X + cst.size.Width + spacing.Right
		case theme.LayoutGrid:
			cell := graphics.Size{
				Width:  cst.size.Width + spacing.Horizontal(),
				Height: cst.size.Height + spacing.Vertical(),
			}
			if cursor.X > inner.Min.X && cursor.X+cell.Width > inner.Max().X {
				cursor.X = inner.Min.X
				cursor.Y += rowHeight
				rowHeight = 0
			}
			if themed {
				cst.position = graphics.Point{X: cursor.X + spacing.Left, Y: cursor.Y + spacing.Top}
			}
			cursor.X += cell.Width
			rowHeight = max(rowHeight, cell.Height)
		}

		t.widgets[c].Layout()
	}
}
