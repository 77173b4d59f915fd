package theme

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/trellis/pkg/errors"
	"github.com/go-drift/trellis/pkg/graphics"
)

// FormatVersion is the newest theme description version this package reads.
// Descriptions may declare any version with the same major.
const FormatVersion = "v1.0.0"

// document is the top-level theme description.
type document struct {
	Version string                `yaml:"version"`
	Themes  map[string]*themeDesc `yaml:"themes"`
}

// themeDesc mirrors Theme with optional fields for everything that has a
// non-zero default.
type themeDesc struct {
	Layout        LayoutKind        `yaml:"layout"`
	LayoutSpacing Border            `yaml:"layout_spacing"`
	Border        Border            `yaml:"border"`
	Size          sizeDesc          `yaml:"size"`
	Position      pointDesc         `yaml:"position"`
	Relative      Relative          `yaml:"relative"`
	Text          string            `yaml:"text"`
	TextParams    textParamsDesc    `yaml:"text_params"`
	Background    string            `yaml:"background"`
	Foreground    string            `yaml:"foreground"`
	Custom        map[string]string `yaml:"custom"`
	Children      []childDesc       `yaml:"children"`
}

type sizeDesc struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type pointDesc struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type textParamsDesc struct {
	HorizontalAlignment *HorizontalAlignment `yaml:"horizontal_alignment"`
	VerticalAlignment   *VerticalAlignment   `yaml:"vertical_alignment"`
	Color               *graphics.Color      `yaml:"color"`
	Scale               *float32             `yaml:"scale"`
	Font                *string              `yaml:"font"`
}

type childDesc struct {
	ID    string     `yaml:"id"`
	Kind  *ChildKind `yaml:"kind"`
	Theme *themeDesc `yaml:"theme"`
}

// LoadFile reads and parses the theme description at path.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.TrellisError{Op: "theme.LoadFile", Kind: errors.KindConfig, Err: err}
	}
	return parse(path, data)
}

// Load parses a theme description from r.
func Load(r io.Reader) (*Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &errors.TrellisError{Op: "theme.Load", Kind: errors.KindConfig, Err: err}
	}
	return parse("", data)
}

// Parse parses a theme description held in memory.
func Parse(data []byte) (*Set, error) {
	return parse("", data)
}

func parse(source string, data []byte) (*Set, error) {
	fail := func(themeID, field string, err error) error {
		return &errors.TrellisError{
			Op:   "theme.Parse",
			Kind: errors.KindConfig,
			Err:  &errors.ConfigError{Source: source, Theme: themeID, Field: field, Err: err},
		}
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fail("", "", err)
	}

	if doc.Version != "" {
		if !semver.IsValid(doc.Version) {
			return nil, fail("", "version", fmt.Errorf("invalid version %q", doc.Version))
		}
		if semver.Major(doc.Version) != semver.Major(FormatVersion) {
			return nil, fail("", "version", fmt.Errorf("unsupported version %s, want %s.x", doc.Version, semver.Major(FormatVersion)))
		}
	}

	b := &builder{themes: make(map[string]*Theme)}
	ids := make([]string, 0, len(doc.Themes))
	for id := range doc.Themes {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		if err := b.add(id, doc.Themes[id]); err != nil {
			return nil, fail(err.theme, err.field, err.err)
		}
	}

	themes := make([]*Theme, 0, len(b.themes))
	for _, t := range b.themes {
		themes = append(themes, t)
	}
	return NewSet(themes...), nil
}

type buildError struct {
	theme string
	field string
	err   error
}

// builder flattens nested child themes into dotted ids.
type builder struct {
	themes map[string]*Theme
}

func (b *builder) add(id string, desc *themeDesc) *buildError {
	if id == "" {
		return &buildError{field: "themes", err: fmt.Errorf("empty theme id")}
	}
	if _, dup := b.themes[id]; dup {
		return &buildError{theme: id, err: fmt.Errorf("theme defined more than once")}
	}
	if desc == nil {
		desc = &themeDesc{}
	}

	t := desc.build(id)
	b.themes[id] = t

	for i, child := range desc.Children {
		if child.ID == "" {
			return &buildError{theme: id, field: fmt.Sprintf("children[%d].id", i), err: fmt.Errorf("child id is required")}
		}
		if child.Theme == nil {
			continue
		}
		if err := b.add(Join(id, child.ID), child.Theme); err != nil {
			return err
		}
	}
	return nil
}

func (s *themeDesc) build(id string) *Theme {
	t := &Theme{
		ID:            id,
		Layout:        s.Layout,
		LayoutSpacing: s.LayoutSpacing,
		Border:        s.Border,
		Size:          graphics.Size{Width: s.Size.Width, Height: s.Size.Height},
		Position:      graphics.Point{X: s.Position.X, Y: s.Position.Y},
		Relative:      s.Relative,
		Text:          s.Text,
		TextParams:    s.TextParams.build(),
		Background:    s.Background,
		Foreground:    s.Foreground,
		Custom:        map[string]string{},
	}
	for k, v := range s.Custom {
		t.Custom[k] = v
	}
	for _, c := range s.Children {
		kind := ChildContainer
		if c.Kind != nil {
			kind = *c.Kind
		}
		t.Children = append(t.Children, Child{ID: c.ID, Kind: kind})
	}
	return t
}

func (s textParamsDesc) build() TextParams {
	p := DefaultTextParams()
	if s.HorizontalAlignment != nil {
		p.HorizontalAlignment = *s.HorizontalAlignment
	}
	if s.VerticalAlignment != nil {
		p.VerticalAlignment = *s.VerticalAlignment
	}
	if s.Color != nil {
		p.Color = *s.Color
	}
	if s.Scale != nil {
		p.Scale = *s.Scale
	}
	if s.Font != nil {
		p.Font = *s.Font
	}
	return p
}
