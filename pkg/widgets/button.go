package widgets

import (
	"github.com/go-drift/trellis/pkg/core"
	"github.com/go-drift/trellis/pkg/input"
	"github.com/go-drift/trellis/pkg/rendering"
)

// ButtonTheme is the partial theme id buttons start with.
const ButtonTheme = "button"

// Button is a clickable widget with a text caption.
//
// Click handlers run in registration order when the button is pressed with
// any pointer button; the press is always consumed. A pressed callback set
// directly on the button's state replaces this behavior.
type Button struct {
	core.Base
	text    string
	onClick []func(b *Button)
}

// NewButton returns a detached button themed "button".
func NewButton(text string) *Button {
	b := &Button{text: text}
	b.State().SetTheme(ButtonTheme)
	return b
}

func (*Button) Kind() string { return "Button" }

// Text returns the caption.
func (b *Button) Text() string { return b.text }

// SetText replaces the caption.
func (b *Button) SetText(text string) { b.text = text }

// OnClick adds a click handler.
func (b *Button) OnClick(fn func(b *Button)) {
	if fn != nil {
		b.onClick = append(b.onClick, fn)
	}
}

// Click runs the click handlers.
func (b *Button) Click() {
	for _, fn := range b.onClick {
		fn(b)
	}
}

func (b *Button) PointerPressed(input.Button) bool {
	b.Click()
	return true
}

// Draw draws the button visuals with the caption over them.
func (b *Button) Draw(r rendering.Renderer) {
	st := b.State()
	st.Draw(r)
	drawText(r, st, b.text)
}
