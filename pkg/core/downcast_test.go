package core

import (
	"testing"
)

func TestAs(t *testing.T) {
	var w Widget = newRecorder("p", "", nil)
	if _, ok := As[*recorder](w); !ok {
		t.Error("As[*recorder] should succeed")
	}
	if _, ok := As[*EmptyWidget](w); ok {
		t.Error("As[*EmptyWidget] should fail for a recorder")
	}
}

func TestLookupAndWidgetAs(t *testing.T) {
	tree := New(NewEmptyWidget(), nil)
	h := tree.AddChild(RootHandle, newRecorder("p", "", nil))

	if p, ok := Lookup[*recorder](tree, h); !ok || p.name != "p" {
		t.Errorf("Lookup[*recorder](%d) = %v, %v", h, p, ok)
	}
	if _, ok := Lookup[*recorder](tree, RootHandle); ok {
		t.Error("Lookup of the wrong type should fail")
	}
	if _, ok := Lookup[*recorder](tree, 99); ok {
		t.Error("Lookup of an unknown handle should fail")
	}

	if got := WidgetAs[*recorder](tree, h); got.name != "p" {
		t.Errorf("WidgetAs name = %q", got.name)
	}
	err := expectTopologyPanic(t, func() { WidgetAs[*recorder](tree, RootHandle) })
	if err.Op != "core.WidgetAs" {
		t.Errorf("Op = %q", err.Op)
	}
}

func TestFindParent(t *testing.T) {
	tree := New(newRecorder("root", "", nil), nil)
	box := tree.AddChild(RootHandle, NewEmptyWidget())
	outer := tree.AddChild(box, newRecorder("outer", "", nil))
	leaf := tree.AddChild(outer, newRecorder("leaf", "", nil))

	if got := FindParent[*recorder](tree, leaf); got.name != "outer" {
		t.Errorf("FindParent(leaf) = %q, want outer (self excluded)", got.name)
	}
	if got := FindParent[*recorder](tree, box); got.name != "root" {
		t.Errorf("FindParent(box) = %q, want root", got.name)
	}
	if got := FindParent[*EmptyWidget](tree, leaf); got.State().Handle() != box {
		t.Errorf("FindParent[*EmptyWidget](leaf) = %d, want %d", got.State().Handle(), box)
	}

	err := expectTopologyPanic(t, func() { FindParent[*ticker](tree, leaf) })
	if err.Handle != int(leaf) {
		t.Errorf("Handle = %d, want %d", err.Handle, leaf)
	}
	expectTopologyPanic(t, func() { FindParent[*recorder](tree, RootHandle) })
}
