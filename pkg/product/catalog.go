package product

import (
	"github.com/samber/lo"
)

// ColorOption is one entry of the closed color catalog
type ColorOption struct {
	ID   string `json:"id" toml:"id" yaml:"id"`
	Name string `json:"name" toml:"name" yaml:"name"`
	Hex  string `json:"hex" toml:"hex" yaml:"hex"`
}

// GlazingOption describes a glass package. Tint and Opacity drive how glass
// panels are drawn; Panes is informational.
type GlazingOption struct {
	ID      string  `json:"id" toml:"id" yaml:"id"`
	Name    string  `json:"name" toml:"name" yaml:"name"`
	Tint    string  `json:"tint" toml:"tint" yaml:"tint"`
	Opacity float64 `json:"opacity" toml:"opacity" yaml:"opacity"`
	Panes   int     `json:"panes" toml:"panes" yaml:"panes"`
}

// Hinge is the side a sash is hung on, seen from outside
type Hinge string

const (
	HingeLeft  Hinge = "left"
	HingeRight Hinge = "right"
)

// OpeningDirection describes how the primary sash swings
type OpeningDirection struct {
	ID     string `json:"id" toml:"id" yaml:"id"`
	Name   string `json:"name" toml:"name" yaml:"name"`
	Hinge  Hinge  `json:"hinge" toml:"hinge" yaml:"hinge"`
	Inward bool   `json:"inward" toml:"inward" yaml:"inward"`
}

// Catalog bundles the static lookup tables the engine resolves ids against.
// It is never mutated after construction.
type Catalog struct {
	Colors            []ColorOption      `json:"colors" toml:"colors" yaml:"colors"`
	Glazing           []GlazingOption    `json:"glazing" toml:"glazing" yaml:"glazing"`
	OpeningDirections []OpeningDirection `json:"openingDirections" toml:"opening_directions" yaml:"opening_directions"`

	colors     map[string]ColorOption
	glazing    map[string]GlazingOption
	directions map[string]OpeningDirection
}

// NewCatalog indexes the given tables. Later duplicates win.
func NewCatalog(colors []ColorOption, glazing []GlazingOption, directions []OpeningDirection) *Catalog {
	c := &Catalog{
		Colors:            colors,
		Glazing:           glazing,
		OpeningDirections: directions,
	}
	c.reindex()
	return c
}

func (c *Catalog) reindex() {
	c.colors = lo.KeyBy(c.Colors, func(o ColorOption) string { return o.ID })
	c.glazing = lo.KeyBy(c.Glazing, func(o GlazingOption) string { return o.ID })
	c.directions = lo.KeyBy(c.OpeningDirections, func(o OpeningDirection) string { return o.ID })
}

// Color resolves a color id
func (c *Catalog) Color(id string) (ColorOption, error) {
	o, ok := c.colors[id]
	if !ok {
		return ColorOption{}, unknownID("color", id)
	}
	return o, nil
}

// GlazingOption resolves a glazing id
func (c *Catalog) GlazingOption(id string) (GlazingOption, error) {
	o, ok := c.glazing[id]
	if !ok {
		return GlazingOption{}, unknownID("glazing", id)
	}
	return o, nil
}

// OpeningDirection resolves an opening direction id
func (c *Catalog) OpeningDirection(id string) (OpeningDirection, error) {
	o, ok := c.directions[id]
	if !ok {
		return OpeningDirection{}, unknownID("opening_direction", id)
	}
	return o, nil
}

// DefaultCatalog returns the shop's built-in tables
func DefaultCatalog() *Catalog {
	return NewCatalog(
		[]ColorOption{
			{ID: "white", Name: "White", Hex: "#FFFFFF"},
			{ID: "cream", Name: "Cream white", Hex: "#F3EFE0"},
			{ID: "light-grey", Name: "Light grey", Hex: "#D7D7D7"},
			{ID: "anthracite", Name: "Anthracite grey", Hex: "#383E42"},
			{ID: "black", Name: "Black", Hex: "#0A0A0A"},
			{ID: "golden-oak", Name: "Golden oak", Hex: "#A0651F"},
			{ID: "walnut", Name: "Walnut", Hex: "#5C4033"},
			{ID: "grey", Name: "Grey", Hex: "#7A7A7A"},
		},
		[]GlazingOption{
			{ID: "G1", Name: "Double glazing 4/16/4", Tint: "#DCEBF5", Opacity: 0.35, Panes: 2},
			{ID: "G2", Name: "Triple glazing 4/12/4/12/4", Tint: "#D2E6F0", Opacity: 0.45, Panes: 3},
			{ID: "G3", Name: "Frosted privacy glass", Tint: "#F0F4F5", Opacity: 0.85, Panes: 2},
			{ID: "G4", Name: "Solar control glass", Tint: "#8FA9BD", Opacity: 0.55, Panes: 2},
		},
		[]OpeningDirection{
			{ID: "left-inward", Name: "Left hinged, opens inward", Hinge: HingeLeft, Inward: true},
			{ID: "right-inward", Name: "Right hinged, opens inward", Hinge: HingeRight, Inward: true},
			{ID: "left-outward", Name: "Left hinged, opens outward", Hinge: HingeLeft, Inward: false},
			{ID: "right-outward", Name: "Right hinged, opens outward", Hinge: HingeRight, Inward: false},
			{ID: "tilt-turn-left", Name: "Tilt and turn, left hinged", Hinge: HingeLeft, Inward: true},
			{ID: "tilt-turn-right", Name: "Tilt and turn, right hinged", Hinge: HingeRight, Inward: true},
		},
	)
}
