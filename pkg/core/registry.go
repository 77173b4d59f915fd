package core

import (
	"sync"

	"github.com/go-drift/trellis/pkg/theme"
)

var (
	kindsMu sync.RWMutex
	kinds   = map[theme.ChildKind]func() Widget{
		theme.ChildContainer: func() Widget { return NewEmptyWidget() },
	}
)

// RegisterKind sets the constructor used to materialize theme-declared
// children of the given kind and returns the previous one. Passing nil
// removes the registration. The widgets package registers ChildLabel when
// imported.
func RegisterKind(kind theme.ChildKind, fn func() Widget) func() Widget {
	kindsMu.Lock()
	defer kindsMu.Unlock()
	prev := kinds[kind]
	if fn == nil {
		delete(kinds, kind)
	} else {
		kinds[kind] = fn
	}
	return prev
}

// materialize constructs a detached widget for kind. Reference children and
// unregistered kinds report false.
func materialize(kind theme.ChildKind) (Widget, bool) {
	kindsMu.RLock()
	fn := kinds[kind]
	kindsMu.RUnlock()
	if fn == nil {
		return nil, false
	}
	return fn(), true
}
