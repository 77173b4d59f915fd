package cmd

import (
	"flag"
	"fmt"
	"io"

	"github.com/go-drift/trellis/pkg/core"
	"github.com/go-drift/trellis/pkg/theme"

	// Registers the Label materializer.
	_ "github.com/go-drift/trellis/pkg/widgets"
)

// DefaultRootTheme is the theme id a tree is rooted at unless -root says
// otherwise.
const DefaultRootTheme = "root"

// treeFlags are shared by the commands that build a tree from a file.
type treeFlags struct {
	root string
}

func (f *treeFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.root, "root", DefaultRootTheme, "theme id of the root widget")
}

// newFlagSet returns a flag set that reports errors instead of exiting.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseFile parses args and returns the single positional file argument.
// Flags may appear before or after the file.
func parseFile(fs *flag.FlagSet, args []string, usage string) (string, error) {
	var files []string
	for {
		if err := fs.Parse(args); err != nil {
			return "", fmt.Errorf("%w\n\nUsage: %s", err, usage)
		}
		if fs.NArg() == 0 {
			break
		}
		files = append(files, fs.Arg(0))
		args = fs.Args()[1:]
	}
	if len(files) != 1 {
		return "", fmt.Errorf("exactly one theme file is required\n\nUsage: %s", usage)
	}
	return files[0], nil
}

// buildTree loads path and builds the tree rooted at an empty widget themed
// with root. The root id must be defined in the file.
func buildTree(path, root string) (*core.Tree, error) {
	themes, err := theme.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if !themes.Has(root) {
		return nil, fmt.Errorf("%s: no theme %q to root the tree at", path, root)
	}
	w := core.NewEmptyWidget()
	w.State().SetTheme(root)
	return core.New(w, themes), nil
}
