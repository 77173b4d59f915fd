package widgets_test

import (
	"fmt"

	"github.com/go-drift/trellis/pkg/core"
	"github.com/go-drift/trellis/pkg/graphics"
	"github.com/go-drift/trellis/pkg/input"
	"github.com/go-drift/trellis/pkg/theme"
	"github.com/go-drift/trellis/pkg/widgets"
)

// This example shows a button whose click handler updates a label
// elsewhere in the tree.
func ExampleButton_OnClick() {
	themes := theme.NewSet(
		&theme.Theme{ID: "form", Size: graphics.Size{Width: 100, Height: 100}},
		&theme.Theme{ID: "form.label"},
		&theme.Theme{ID: "form.button", Size: graphics.Size{Width: 40, Height: 12}},
	)
	root := core.NewEmptyWidget()
	root.State().SetTheme("form")
	tree := core.New(root, themes)

	status := widgets.NewLabel("idle")
	tree.AddChild(core.RootHandle, status)

	submit := widgets.NewButton("Submit")
	submit.OnClick(func(b *widgets.Button) {
		status.SetText(b.Text() + " clicked")
	})
	tree.AddChild(core.RootHandle, submit)
	tree.Layout(graphics.Size{Width: 100, Height: 100})

	tree.HandleEvent(input.Pressed(input.Cursor{X: 10, Y: 5}, input.ButtonPrimary))
	fmt.Println(status.Text())

	// Output:
	// Submit clicked
}
