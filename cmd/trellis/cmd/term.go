package cmd

import (
	"bytes"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/trellis/pkg/core"
	"github.com/go-drift/trellis/pkg/errors"
	"github.com/go-drift/trellis/pkg/frame"
	"github.com/go-drift/trellis/pkg/graphics"
	"github.com/go-drift/trellis/pkg/input"
	"github.com/go-drift/trellis/pkg/rendering/term"
)

func init() {
	RegisterCommand(&Command{
		Name:  "term",
		Short: "Run a theme file in the terminal",
		Long: `Build the widget tree declared by a theme file and draw it in the
terminal, one cell per layout unit.

Mouse input is dispatched to the tree. Any key exits. Diagnostics reported
while the screen is active are printed after it closes.`,
		Usage: "trellis term <file> [-root id]",
		Run:   runTerm,
	})
}

func runTerm(args []string) error {
	var tf treeFlags
	fs := newFlagSet("term")
	tf.register(fs)

	path, err := parseFile(fs, args, "trellis term <file> [-root id]")
	if err != nil {
		return err
	}

	var diagnostics bytes.Buffer
	prev := errors.SetHandler(&errors.LogHandler{Logger: log.New(&diagnostics, "trellis: ", 0)})
	defer func() {
		errors.SetHandler(prev)
		os.Stderr.Write(diagnostics.Bytes())
	}()

	tree, err := buildTree(path, tf.root)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	return runSession(screen, tree)
}

// dispatch delivers e, reporting a panicking handler instead of ending
// the session.
func dispatch(tree *core.Tree, e input.Event) {
	defer errors.Recover("trellis.term")
	tree.HandleEvent(e)
}

// runSession redraws the tree after every event until a key is pressed or
// the screen closes.
func runSession(screen tcell.Screen, tree *core.Tree) error {
	loop := frame.NewLoop(tree)
	r := term.New(screen, nil)
	var mouse term.Mouse

	for {
		w, h := screen.Size()
		r.Clear(tcell.StyleDefault)
		loop.LayoutFrame(graphics.Size{Width: w, Height: h}, r)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventMouse:
			for _, e := range mouse.Translate(ev) {
				dispatch(tree, e)
			}
		}
	}
}
