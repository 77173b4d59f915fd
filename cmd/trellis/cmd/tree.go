package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-drift/trellis/pkg/core"
	"github.com/go-drift/trellis/pkg/graphics"
)

func init() {
	RegisterCommand(&Command{
		Name:  "tree",
		Short: "Print the widget tree a theme file builds",
		Long: `Build the widget tree declared by a theme file and print it.

The tree is rooted at an empty widget themed with -root and laid out in a
-width by -height area. Each line shows the handle, kind, resolved theme id and
bounds of one widget, indented by depth.`,
		Usage: "trellis tree <file> [-root id] [-width n] [-height n]",
		Run:   runTree,
	})
}

func runTree(args []string) error {
	var tf treeFlags
	fs := newFlagSet("tree")
	tf.register(fs)
	width := fs.Int("width", 320, "layout width")
	height := fs.Int("height", 240, "layout height")

	path, err := parseFile(fs, args, "trellis tree <file> [-root id]")
	if err != nil {
		return err
	}
	tree, err := buildTree(path, tf.root)
	if err != nil {
		return err
	}
	tree.Layout(graphics.Size{Width: *width, Height: *height})
	printTree(stdout, tree)
	return nil
}

type texter interface {
	Text() string
}

// printTree writes one line per widget in draw order.
func printTree(w io.Writer, tree *core.Tree) {
	for h, widget := range tree.All() {
		st := widget.State()
		b := st.Bounds()
		id := st.ThemeID()
		if id == "" {
			id = "-"
		}
		fmt.Fprintf(w, "%s#%d %s %s (%d,%d %dx%d)",
			strings.Repeat("  ", depth(tree, h)), h, widget.Kind(), id,
			b.Min.X, b.Min.Y, b.Size.Width, b.Size.Height)
		if t, ok := widget.(texter); ok && t.Text() != "" {
			fmt.Fprintf(w, " %q", t.Text())
		}
		fmt.Fprintln(w)
	}
}

func depth(tree *core.Tree, h core.Handle) int {
	d := 0
	for h != core.RootHandle {
		h = tree.Parent(h)
		d++
	}
	return d
}
