package theme

import "slices"

// Set is an immutable, id-indexed catalog of themes. It always contains a
// record for DefaultID.
type Set struct {
	themes   map[string]*Theme
	fallback *Theme
}

// NewSet builds a catalog from themes. When several share an id the last
// wins. A default theme is added when none is supplied.
func NewSet(themes ...*Theme) *Set {
	s := &Set{themes: make(map[string]*Theme, len(themes)+1)}
	for _, t := range themes {
		if t == nil {
			continue
		}
		s.themes[t.ID] = t
	}
	if _, ok := s.themes[DefaultID]; !ok {
		s.themes[DefaultID] = Default()
	}
	s.fallback = s.themes[DefaultID]
	return s
}

// Lookup returns the theme for id, or the default theme when id is unknown.
func (s *Set) Lookup(id string) *Theme {
	if t, ok := s.themes[id]; ok {
		return t
	}
	return s.fallback
}

// Has reports whether the catalog holds a theme with exactly this id.
func (s *Set) Has(id string) bool {
	_, ok := s.themes[id]
	return ok
}

// ChildrenOf returns the declared children of id in declaration order.
// Unknown ids and themes without children yield an empty slice.
func (s *Set) ChildrenOf(id string) []Child {
	t, ok := s.themes[id]
	if !ok || len(t.Children) == 0 {
		return nil
	}
	return slices.Clone(t.Children)
}

// IDs returns every theme id in sorted order.
func (s *Set) IDs() []string {
	ids := make([]string, 0, len(s.themes))
	for id := range s.themes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len returns the number of themes, including the default.
func (s *Set) Len() int {
	return len(s.themes)
}

// Join builds the cascaded id of partial beneath parent. An empty parent
// yields partial unchanged.
func Join(parent, partial string) string {
	if parent == "" {
		return partial
	}
	return parent + "." + partial
}
