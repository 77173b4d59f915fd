package raster

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/trellis/pkg/errors"
)

// DefaultFont is the font name themes use unless they say otherwise.
const DefaultFont = "Default"

// FontManager maps theme font names to faces. The zero value is not usable;
// use NewFontManager.
type FontManager struct {
	mu       sync.RWMutex
	faces    map[string]font.Face
	reported map[string]bool
}

// NewFontManager returns a manager with DefaultFont bound to the 7x13
// bitmap face.
func NewFontManager() *FontManager {
	return &FontManager{
		faces:    map[string]font.Face{DefaultFont: basicfont.Face7x13},
		reported: make(map[string]bool),
	}
}

// Register binds name to face, replacing any previous binding.
func (m *FontManager) Register(name string, face font.Face) error {
	if name == "" {
		return fmt.Errorf("font name required")
	}
	if face == nil {
		return fmt.Errorf("font %q: nil face", name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faces[name] = face
	return nil
}

// Face resolves name. Unknown names fall back to DefaultFont; the first
// miss for each name is reported.
func (m *FontManager) Face(name string) font.Face {
	m.mu.RLock()
	face, ok := m.faces[name]
	m.mu.RUnlock()
	if ok {
		return face
	}

	m.mu.Lock()
	first := !m.reported[name]
	m.reported[name] = true
	face = m.faces[DefaultFont]
	m.mu.Unlock()

	if first {
		errors.Report(&errors.TrellisError{
			Op:   "raster.Face",
			Kind: errors.KindRender,
			Err:  fmt.Errorf("unknown font %q, using %s", name, DefaultFont),
		})
	}
	return face
}
