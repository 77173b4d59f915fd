// Package core holds the widget tree engine: the Widget contract, per-widget
// State, and the Tree arena that owns every attached widget.
//
// # Handles
//
// Widgets live in an arena and are addressed by Handle, a dense integer that
// is assigned when the widget is attached and never reused. Handle 0 is the
// root. The root is recorded as its own parent; walks up the tree stop there.
//
// # Attaching
//
// AddChild resolves where the child's theme attaches before inserting it.
// The cascaded id is the parent's resolved id joined with the child's
// partial id. If the theme catalog has no such theme, the parent's attached
// descendants are searched depth-first for a widget whose resolved id
// produces a match, so a theme can interpose wrapper containers without
// the calling code knowing about them:
//
//	root := core.NewEmptyWidget()
//	root.State().SetTheme("root")
//	tree := core.New(root, themes)
//
//	button := widgets.NewButton("OK")
//	tree.AddChild(core.RootHandle, button) // may land under "root.panel"
//
// Once attached, a widget's OnAdd hook runs, then the children it queued
// with State.AddChild, then the children its theme declares.
//
// # Events
//
// HandleEvent routes pointer input depth-first. Each widget offers the event
// to its children in order before testing itself, and the first widget that
// consumes it stops propagation. Callbacks receive the Tree and the firing
// handle rather than the widget, so they may freely read or modify other
// widgets while dispatch is in progress.
//
// # Traversal
//
// Walk and Iter visit a subtree in pre-order, which is also draw order.
// Each handle is yielded at most once per pass.
package core
