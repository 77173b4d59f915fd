package theme

import (
	"slices"
	"testing"
)

func TestSetLookupFallsBackToDefault(t *testing.T) {
	s := NewSet(&Theme{ID: "root"})

	if got := s.Lookup("root").ID; got != "root" {
		t.Errorf("Lookup(root).ID = %q", got)
	}
	if got := s.Lookup("missing").ID; got != DefaultID {
		t.Errorf("Lookup(missing).ID = %q, want %q", got, DefaultID)
	}
	if s.Has("missing") {
		t.Error("Has(missing) should be false")
	}
	if !s.Has(DefaultID) {
		t.Error("catalog should always hold the default theme")
	}
}

func TestSetCustomDefault(t *testing.T) {
	custom := &Theme{ID: DefaultID, Background: "333"}
	s := NewSet(custom)
	if s.Lookup("anything") != custom {
		t.Error("expected supplied default theme to be used as fallback")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestSetChildrenOf(t *testing.T) {
	s := NewSet(&Theme{
		ID: "root",
		Children: []Child{
			{ID: "title", Kind: ChildLabel},
			{ID: "body", Kind: ChildContainer},
			{ID: "slot", Kind: ChildReference},
		},
	})

	got := s.ChildrenOf("root")
	want := []Child{{"title", ChildLabel}, {"body", ChildContainer}, {"slot", ChildReference}}
	if !slices.Equal(got, want) {
		t.Errorf("ChildrenOf(root) = %v, want %v", got, want)
	}

	got[0].ID = "mutated"
	if s.ChildrenOf("root")[0].ID != "title" {
		t.Error("ChildrenOf should return a copy")
	}

	if len(s.ChildrenOf("missing")) != 0 {
		t.Error("unknown ids should have no children")
	}
}

func TestSetIDs(t *testing.T) {
	s := NewSet(&Theme{ID: "b"}, &Theme{ID: "a"}, nil)
	want := []string{"a", "b", DefaultID}
	if got := s.IDs(); !slices.Equal(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}

func TestJoin(t *testing.T) {
	tests := []struct{ parent, partial, want string }{
		{"root", "panel", "root.panel"},
		{"root.panel", "button", "root.panel.button"},
		{"", "root", "root"},
	}
	for _, tt := range tests {
		if got := Join(tt.parent, tt.partial); got != tt.want {
			t.Errorf("Join(%q, %q) = %q, want %q", tt.parent, tt.partial, got, tt.want)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	if LayoutBoxHorizontal.String() != "BoxHorizontal" {
		t.Error(LayoutBoxHorizontal.String())
	}
	if SizeChildSum.String() != "ChildSum" {
		t.Error(SizeChildSum.String())
	}
	if PositionMax.String() != "Max" {
		t.Error(PositionMax.String())
	}
	if ChildReference.String() != "Reference" {
		t.Error(ChildReference.String())
	}
	if AlignMiddle.String() != "Center" {
		t.Error(AlignMiddle.String())
	}
	if got := LayoutKind(9).String(); got != "Unknown(9)" {
		t.Error(got)
	}
}
