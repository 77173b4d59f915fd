package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-drift/trellis/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate a theme file",
		Long: `Validate a theme file.

Parses the file with the strict loader and reports the first error.
Declared children whose ids have no theme of their own are listed as
warnings; they attach with the default theme.`,
		Usage: "trellis check <file>",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	fs := newFlagSet("check")
	path, err := parseFile(fs, args, "trellis check <file>")
	if err != nil {
		return err
	}

	themes, err := theme.LoadFile(path)
	if err != nil {
		return err
	}

	warnings := 0
	for _, id := range themes.IDs() {
		for _, child := range themes.ChildrenOf(id) {
			if child.Kind == theme.ChildReference {
				continue
			}
			if !definesTail(themes, child.ID) {
				fmt.Fprintf(stdout, "warning: %s: child %q has no theme\n", id, child.ID)
				warnings++
			}
		}
	}

	fmt.Fprintf(stdout, "%s: %d themes, %d warnings\n", path, themes.Len(), warnings)
	return nil
}

// definesTail reports whether any theme id ends with the partial id, which
// is every id the child could resolve to.
func definesTail(themes *theme.Set, partial string) bool {
	return slices.ContainsFunc(themes.IDs(), func(id string) bool {
		return id == partial || strings.HasSuffix(id, "."+partial)
	})
}
