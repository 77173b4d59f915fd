package core

import (
	"fmt"
	"reflect"

	"github.com/go-drift/trellis/pkg/errors"
)

// As reports whether w is a T and returns it.
func As[T Widget](w Widget) (T, bool) {
	v, ok := w.(T)
	return v, ok
}

// Lookup returns the widget at h as a T. It reports false when h is not
// valid or addresses a different widget type.
func Lookup[T Widget](t *Tree, h Handle) (T, bool) {
	if !t.Valid(h) {
		var zero T
		return zero, false
	}
	return As[T](t.widgets[h])
}

// WidgetAs returns the widget at h as a T. It panics if h is not valid or
// the widget is of another type.
func WidgetAs[T Widget](t *Tree, h Handle) T {
	w := t.Get(h)
	v, ok := w.(T)
	if !ok {
		panic(&errors.TopologyError{
			Op:     "core.WidgetAs",
			Handle: int(h),
			Reason: fmt.Sprintf("widget is %s, not %v", w.Kind(), reflect.TypeFor[T]()),
		})
	}
	return v
}

// FindParent returns the nearest ancestor of h, excluding h itself, that is
// a T. It panics when the root is passed without a match.
func FindParent[T Widget](t *Tree, h Handle) T {
	t.check("core.FindParent", h)
	for p := h; p != RootHandle; {
		p = t.entries[p].parent
		if v, ok := t.widgets[p].(T); ok {
			return v
		}
	}
	panic(&errors.TopologyError{
		Op:     "core.FindParent",
		Handle: int(h),
		Reason: fmt.Sprintf("no ancestor of type %v", reflect.TypeFor[T]()),
	})
}
