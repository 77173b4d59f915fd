package core

import (
	"fmt"

	"github.com/go-drift/trellis/pkg/errors"
	"github.com/go-drift/trellis/pkg/theme"
)

// Tree owns a set of widgets addressed by Handle, their parent/child
// topology and the theme catalog they resolve against. It is not safe for
// concurrent use.
type Tree struct {
	widgets []Widget
	entries []entry
	themes  *theme.Set
	hovered Handle
}

// entry is the topology record of one handle.
type entry struct {
	parent   Handle
	children []Handle
}

// New creates a tree rooted at root. The root's resolved theme id is its
// partial id. Its queued and theme-declared children are attached before
// New returns. A nil catalog is treated as an empty one.
func New(root Widget, themes *theme.Set) *Tree {
	if themes == nil {
		themes = theme.NewSet()
	}
	t := &Tree{themes: themes, hovered: InvalidHandle}
	t.attach(RootHandle, root, root.State().PartialThemeID())
	return t
}

// Root returns the root widget.
func (t *Tree) Root() Widget {
	return t.widgets[RootHandle]
}

// Themes returns the tree's theme catalog.
func (t *Tree) Themes() *theme.Set {
	return t.themes
}

// Theme looks up id in the catalog, falling back to the default theme.
func (t *Tree) Theme(id string) *theme.Theme {
	return t.themes.Lookup(id)
}

// Len returns the number of attached widgets.
func (t *Tree) Len() int {
	return len(t.widgets)
}

// Valid reports whether h addresses an attached widget.
func (t *Tree) Valid(h Handle) bool {
	return h >= 0 && int(h) < len(t.widgets)
}

// Get returns the widget at h. It panics if h is not valid.
func (t *Tree) Get(h Handle) Widget {
	t.check("core.Get", h)
	return t.widgets[h]
}

// Parent returns the parent handle of h. The root is its own parent.
func (t *Tree) Parent(h Handle) Handle {
	t.check("core.Parent", h)
	return t.entries[h].parent
}

// Children returns a copy of h's child handles in insertion order.
func (t *Tree) Children(h Handle) []Handle {
	t.check("core.Children", h)
	children := t.entries[h].children
	out := make([]Handle, len(children))
	copy(out, children)
	return out
}

// AddChild attaches child beneath parent, or beneath the descendant of
// parent where the child's theme resolves, and returns its handle. The
// child's OnAdd hook, queued children and theme-declared children all run
// before AddChild returns.
//
// A child whose theme matches nowhere in parent's subtree is attached
// directly under parent with its partial id unresolved, and the shortfall
// is reported through the errors package. AddChild panics if parent is not
// valid or child is already attached.
func (t *Tree) AddChild(parent Handle, child Widget) Handle {
	return t.addChild(parent, child, true)
}

// addChild is AddChild with the resolution report optional. Children a
// theme declares for itself may have no record of their own and attach
// silently.
func (t *Tree) addChild(parent Handle, child Widget, report bool) Handle {
	t.check("core.AddChild", parent)
	if child == nil {
		panic(&errors.TopologyError{Op: "core.AddChild", Handle: int(parent), Reason: "nil child"})
	}

	st := child.State()
	partial := st.PartialThemeID()
	if partial == "" {
		return t.attach(parent, child, "")
	}

	target, id, ok := t.resolve(parent, partial, true)
	if !ok && report {
		errors.Report(&errors.TrellisError{
			Op:   "core.AddChild",
			Kind: errors.KindResolution,
			Err: &errors.ResolutionError{
				Parent:      int(parent),
				ParentTheme: t.widgets[parent].State().ThemeID(),
				Partial:     partial,
				Kind:        child.Kind(),
			},
		})
	}
	if !ok {
		target, id = parent, partial
	}
	return t.attach(target, child, id)
}

// Flush attaches any children queued on the widget at h since it was
// attached.
func (t *Tree) Flush(h Handle) {
	t.check("core.Flush", h)
	st := t.widgets[h].State()
	for {
		child, ok := st.takePending()
		if !ok {
			return
		}
		t.AddChild(h, child)
	}
}

// resolve finds the first widget in h's subtree, depth-first in child
// order, whose resolved id joined with partial names a theme in the
// catalog. Unthemed widgets below the starting point are searched through
// but never match themselves.
func (t *Tree) resolve(h Handle, partial string, start bool) (Handle, string, bool) {
	parentID := t.widgets[h].State().ThemeID()
	if parentID != "" || start {
		if candidate := theme.Join(parentID, partial); t.themes.Has(candidate) {
			return h, candidate, true
		}
	}
	for _, child := range t.entries[h].children {
		if found, id, ok := t.resolve(child, partial, false); ok {
			return found, id, true
		}
	}
	return InvalidHandle, "", false
}

// attach inserts w under parent with the given resolved theme id and runs
// the attachment lifecycle.
func (t *Tree) attach(parent Handle, w Widget, themeID string) Handle {
	st := w.State()
	if st.attached {
		panic(&errors.TopologyError{
			Op:     "core.AddChild",
			Handle: int(st.handle),
			Reason: fmt.Sprintf("%s is already attached", w.Kind()),
		})
	}

	h := Handle(len(t.widgets))
	if h == RootHandle {
		parent = RootHandle
	} else {
		t.entries[parent].children = append(t.entries[parent].children, h)
	}
	t.widgets = append(t.widgets, w)
	t.entries = append(t.entries, entry{parent: parent})

	st.handle = h
	st.attached = true
	t.applyTheme(st, themeID)

	w.OnAdd()

	t.Flush(h)

	for _, declared := range t.themes.ChildrenOf(themeID) {
		if declared.Kind == theme.ChildReference {
			continue
		}
		child, ok := materialize(declared.Kind)
		if !ok {
			errors.Report(&errors.TrellisError{
				Op:   "core.AddChild",
				Kind: errors.KindResolution,
				Err:  fmt.Errorf("no widget registered for %s child %q of %q; using EmptyWidget", declared.Kind, declared.ID, themeID),
			})
			child = NewEmptyWidget()
		}
		child.State().SetTheme(declared.ID)
		t.addChild(h, child, false)
	}
	return h
}

// applyTheme records the resolved theme on st. Visuals already set on the
// state win over the theme's.
func (t *Tree) applyTheme(st *State, themeID string) {
	th := t.themes.Lookup(themeID)
	st.themeID = themeID
	st.theme = th
	if st.background == "" {
		st.background = th.Background
	}
	if st.foreground == "" {
		st.foreground = th.Foreground
	}
}

func (t *Tree) check(op string, h Handle) {
	if !t.Valid(h) {
		panic(&errors.TopologyError{Op: op, Handle: int(h), Reason: fmt.Sprintf("no widget (tree has %d)", len(t.widgets))})
	}
}
