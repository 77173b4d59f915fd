package widgets

import (
	"github.com/go-drift/trellis/pkg/core"
	"github.com/go-drift/trellis/pkg/rendering"
	"github.com/go-drift/trellis/pkg/theme"
)

// LabelTheme is the partial theme id labels start with.
const LabelTheme = "label"

// Label displays a line of text using its theme's text parameters. When the
// label's own text is empty the theme's declared text is shown, which is how
// theme-declared label children get their content.
type Label struct {
	core.Base
	text string
}

// NewLabel returns a detached label themed "label".
func NewLabel(text string) *Label {
	l := &Label{text: text}
	l.State().SetTheme(LabelTheme)
	return l
}

func (*Label) Kind() string { return "Label" }

// Text returns the displayed text.
func (l *Label) Text() string {
	if l.text == "" {
		if th := l.State().Theme(); th != nil {
			return th.Text
		}
	}
	return l.text
}

// SetText replaces the label's own text.
func (l *Label) SetText(text string) {
	l.text = text
}

// Draw draws the background and foreground visuals, then the text.
func (l *Label) Draw(r rendering.Renderer) {
	st := l.State()
	st.Draw(r)
	drawText(r, st, l.Text())
}

// drawText issues a text layer over the widget rect using the state's theme
// text parameters. Empty text draws nothing.
func drawText(r rendering.Renderer, st *core.State, text string) {
	if text == "" {
		return
	}
	params := theme.DefaultTextParams()
	if th := st.Theme(); th != nil {
		params = th.TextParams
	}
	r.Render(rendering.Layer{
		Kind:       rendering.LayerText,
		Position:   st.Position(),
		Size:       st.Size(),
		Text:       text,
		TextParams: params,
	})
}

func init() {
	core.RegisterKind(theme.ChildLabel, func() core.Widget { return &Label{} })
}
