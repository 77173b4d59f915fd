package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/trellis/pkg/core"
)

// Finder locates widgets in a tree.
type Finder interface {
	// Evaluate returns all matching handles in draw order.
	Evaluate(tree *core.Tree) []core.Handle
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	tree    *core.Tree
	handles []core.Handle
	finder  Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() core.Handle {
	if len(r.handles) == 0 {
		panic(fmt.Sprintf("Finder found no widgets: %s", r.description()))
	}
	return r.handles[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) core.Handle {
	if index < 0 || index >= len(r.handles) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.handles), r.description()))
	}
	return r.handles[index]
}

// All returns all matches in draw order.
func (r FinderResult) All() []core.Handle {
	return r.handles
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.handles)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.handles) > 0
}

// Widget returns the first matched widget. Panics if no matches.
func (r FinderResult) Widget() core.Widget {
	return r.tree.Get(r.First())
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// --- Concrete finders ---

// typeFinder matches widgets of the specified type.
type typeFinder struct {
	widgetType reflect.Type
}

func (f *typeFinder) Evaluate(tree *core.Tree) []core.Handle {
	return collectMatches(tree, core.RootHandle, func(w core.Widget) bool {
		return reflect.TypeOf(w) == f.widgetType
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.widgetType)
}

// ByType returns a finder that matches widgets of type T.
func ByType[T core.Widget]() Finder {
	return &typeFinder{widgetType: reflect.TypeFor[T]()}
}

// ByKind returns a finder that matches widgets whose Kind() equals kind.
func ByKind(kind string) Finder {
	return &predicateFinder{
		fn:   func(w core.Widget) bool { return w.Kind() == kind },
		desc: fmt.Sprintf("ByKind(%q)", kind),
	}
}

// ByTheme returns a finder that matches widgets whose resolved theme id
// equals id.
func ByTheme(id string) Finder {
	return &predicateFinder{
		fn:   func(w core.Widget) bool { return w.State().ThemeID() == id },
		desc: fmt.Sprintf("ByTheme(%q)", id),
	}
}

// texter is implemented by widgets that display text.
type texter interface {
	Text() string
}

// ByText returns a finder that matches widgets with a Text() method
// returning exactly text.
func ByText(text string) Finder {
	return &predicateFinder{
		fn: func(w core.Widget) bool {
			t, ok := w.(texter)
			return ok && t.Text() == text
		},
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining returns a finder that matches widgets whose Text()
// contains substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		fn: func(w core.Widget) bool {
			t, ok := w.(texter)
			return ok && strings.Contains(t.Text(), substring)
		},
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

// predicateFinder matches widgets satisfying a predicate.
type predicateFinder struct {
	fn   func(core.Widget) bool
	desc string
}

func (f *predicateFinder) Evaluate(tree *core.Tree) []core.Handle {
	return collectMatches(tree, core.RootHandle, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches widgets satisfying fn.
func ByPredicate(fn func(core.Widget) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// descendantFinder finds widgets matching 'matching' that are strict
// descendants of widgets matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(tree *core.Tree) []core.Handle {
	var results []core.Handle
	seen := make(map[core.Handle]bool)
	for _, match := range f.matching.Evaluate(tree) {
		for _, ancestor := range f.of.Evaluate(tree) {
			if !seen[match] && isAncestorOf(tree, ancestor, match) {
				seen[match] = true
				results = append(results, match)
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches widgets satisfying 'matching'
// that are descendants of widgets matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// ancestorFinder finds widgets matching 'matching' that are strict
// ancestors of widgets matching 'of'.
type ancestorFinder struct {
	of       Finder
	matching Finder
}

func (f *ancestorFinder) Evaluate(tree *core.Tree) []core.Handle {
	var results []core.Handle
	seen := make(map[core.Handle]bool)
	for _, candidate := range f.matching.Evaluate(tree) {
		for _, desc := range f.of.Evaluate(tree) {
			if !seen[candidate] && isAncestorOf(tree, candidate, desc) {
				seen[candidate] = true
				results = append(results, candidate)
			}
		}
	}
	return results
}

func (f *ancestorFinder) Description() string {
	return fmt.Sprintf("Ancestor(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Ancestor returns a finder that matches widgets satisfying 'matching'
// that are ancestors of widgets matching 'of'.
func Ancestor(of, matching Finder) Finder {
	return &ancestorFinder{of: of, matching: matching}
}

// isAncestorOf reports whether ancestor is a strict ancestor of h.
func isAncestorOf(tree *core.Tree, ancestor, h core.Handle) bool {
	for h != core.RootHandle {
		h = tree.Parent(h)
		if h == ancestor {
			return true
		}
	}
	return false
}

// collectMatches walks the subtree at from in draw order, collecting
// handles whose widget satisfies the predicate.
func collectMatches(tree *core.Tree, from core.Handle, predicate func(core.Widget) bool) []core.Handle {
	var results []core.Handle
	for h, w := range tree.Walk(from) {
		if predicate(w) {
			results = append(results, h)
		}
	}
	return results
}
