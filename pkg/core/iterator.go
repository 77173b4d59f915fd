package core

import (
	"iter"
	"time"

	"github.com/go-drift/trellis/pkg/rendering"
)

// Iterator walks a subtree in pre-order without recursion. It keeps, for
// each level below its starting handle, the position of the next sibling
// to visit, so every handle in the subtree is yielded exactly once.
type Iterator struct {
	tree  *Tree
	next  Handle
	stack []int
}

// Iter returns an iterator over the subtree rooted at from. It panics if
// from is not valid.
func (t *Tree) Iter(from Handle) *Iterator {
	t.check("core.Iter", from)
	return &Iterator{tree: t, next: from}
}

// Next returns the next handle in pre-order.
func (it *Iterator) Next() (Handle, bool) {
	if it.next == InvalidHandle {
		return InvalidHandle, false
	}
	current := it.next
	entries := it.tree.entries

	if children := entries[current].children; len(children) > 0 {
		it.stack = append(it.stack, 1)
		it.next = children[0]
		return current, true
	}

	// Climb until an ancestor has an unvisited child. An empty stack means
	// we are back at the starting level, so the root's self-parent link is
	// never followed.
	node := current
	for len(it.stack) > 0 {
		top := len(it.stack) - 1
		parent := entries[node].parent
		siblings := entries[parent].children
		if idx := it.stack[top]; idx < len(siblings) {
			it.stack[top] = idx + 1
			it.next = siblings[idx]
			return current, true
		}
		it.stack = it.stack[:top]
		node = parent
	}
	it.next = InvalidHandle
	return current, true
}

// Walk yields the handles and widgets of the subtree at from in pre-order,
// which is also draw order. Widgets yielded may be modified; no handle is
// yielded twice in one pass.
func (t *Tree) Walk(from Handle) iter.Seq2[Handle, Widget] {
	t.check("core.Walk", from)
	return func(yield func(Handle, Widget) bool) {
		it := &Iterator{tree: t, next: from}
		for h, ok := it.Next(); ok; h, ok = it.Next() {
			if !yield(h, t.widgets[h]) {
				return
			}
		}
	}
}

// Handles yields the handles of the subtree at from in pre-order.
func (t *Tree) Handles(from Handle) iter.Seq[Handle] {
	t.check("core.Handles", from)
	return func(yield func(Handle) bool) {
		it := &Iterator{tree: t, next: from}
		for h, ok := it.Next(); ok; h, ok = it.Next() {
			if !yield(h) {
				return
			}
		}
	}
}

// All walks the whole tree.
func (t *Tree) All() iter.Seq2[Handle, Widget] {
	return t.Walk(RootHandle)
}

// Draw draws every widget in pre-order.
func (t *Tree) Draw(r rendering.Renderer) {
	for _, w := range t.All() {
		w.Draw(r)
	}
}

// Update calls Update on every widget in pre-order.
func (t *Tree) Update(elapsed time.Duration) {
	for _, w := range t.All() {
		w.Update(elapsed)
	}
}
