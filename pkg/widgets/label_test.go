package widgets_test

import (
	"testing"

	"github.com/go-drift/trellis/pkg/core"
	"github.com/go-drift/trellis/pkg/graphics"
	"github.com/go-drift/trellis/pkg/rendering"
	trellistest "github.com/go-drift/trellis/pkg/testing"
	"github.com/go-drift/trellis/pkg/theme"
	"github.com/go-drift/trellis/pkg/widgets"
)

const labelThemes = `
version: v1.0.0
themes:
  dialog:
    size: {width: 200, height: 100}
    background: panel
    children:
      - id: title
        kind: Label
        theme:
          size: {width: 200, height: 20}
          text: Confirm
          text_params:
            horizontal_alignment: Center
            color: "f00"
      - id: label
        theme:
          size: {width: 100, height: 10}
          position: {x: 0, y: 40}
          foreground: "ffffff"
`

func TestLabel_Defaults(t *testing.T) {
	l := widgets.NewLabel("hi")
	if l.Kind() != "Label" {
		t.Errorf("Kind() = %q", l.Kind())
	}
	if got := l.State().PartialThemeID(); got != widgets.LabelTheme {
		t.Errorf("partial theme = %q, want %q", got, widgets.LabelTheme)
	}
	l.SetText("bye")
	if l.Text() != "bye" {
		t.Errorf("Text() = %q after SetText", l.Text())
	}
}

func TestLabel_DeclaredByTheme(t *testing.T) {
	tester := trellistest.NewWidgetTesterWithT(t)
	if err := tester.LoadThemes(labelThemes); err != nil {
		t.Fatal(err)
	}
	root := core.NewEmptyWidget()
	root.State().SetTheme("dialog")
	tester.PumpWidget(root)

	title := tester.Find(trellistest.ByTheme("dialog.title"))
	if !title.Exists() {
		t.Fatal("declared title should be materialized")
	}
	label, ok := title.Widget().(*widgets.Label)
	if !ok {
		t.Fatalf("declared title is %T, want *widgets.Label", title.Widget())
	}
	if label.Text() != "Confirm" {
		t.Errorf("Text() = %q, want the theme text", label.Text())
	}

	var text rendering.Layer
	for _, l := range tester.DisplayList().Layers() {
		if l.Kind == rendering.LayerText {
			text = l
		}
	}
	if text.Text != "Confirm" {
		t.Fatalf("text layer = %+v", text)
	}
	if text.TextParams.HorizontalAlignment != theme.AlignCenter {
		t.Errorf("alignment = %v, want Center", text.TextParams.HorizontalAlignment)
	}
	if text.TextParams.Color != graphics.ColorRed {
		t.Errorf("color = %v, want red", text.TextParams.Color)
	}
	if text.Size != (graphics.Size{Width: 200, Height: 20}) {
		t.Errorf("text layer size = %+v", text.Size)
	}
}

func TestLabel_ResolvesUnderTheme(t *testing.T) {
	tester := trellistest.NewWidgetTesterWithT(t)
	if err := tester.LoadThemes(labelThemes); err != nil {
		t.Fatal(err)
	}
	root := core.NewEmptyWidget()
	root.State().SetTheme("dialog")
	tester.PumpWidget(root)

	body := widgets.NewLabel("Are you sure?")
	tester.Tree().AddChild(core.RootHandle, body)
	tester.Pump()

	if got := body.State().ThemeID(); got != "dialog.label" {
		t.Errorf("ThemeID() = %q, want dialog.label", got)
	}
	if got := body.State().Bounds(); got != graphics.RectFromXYWH(0, 40, 100, 10) {
		t.Errorf("bounds = %+v", got)
	}
	if got := tester.DisplayList().Texts(); len(got) != 2 || got[1] != "Are you sure?" {
		t.Errorf("texts = %v", got)
	}
	if len(tester.Errors()) != 0 {
		t.Errorf("unexpected reports: %v", tester.Errors())
	}
}

func TestLabel_EmptyDrawsNoText(t *testing.T) {
	var layers []rendering.Layer
	l := widgets.NewLabel("")
	core.New(l, nil).Draw(rendering.RendererFunc(func(layer rendering.Layer) {
		layers = append(layers, layer)
	}))
	if len(layers) != 0 {
		t.Errorf("layers = %+v, want none", layers)
	}
}
