// Package product holds the configuration record chosen by the buyer and the
// closed catalogs its ids refer to.
package product

import (
	"fmt"
	"math"
	"strings"
)

// ProductType distinguishes windows from doors
type ProductType string

const (
	ProductWindow ProductType = "window"
	ProductDoor   ProductType = "door"
)

// ParseProductType accepts the canonical names case-insensitively
func ParseProductType(s string) (ProductType, error) {
	switch ProductType(strings.ToLower(strings.TrimSpace(s))) {
	case ProductWindow:
		return ProductWindow, nil
	case ProductDoor:
		return ProductDoor, nil
	}
	return "", &ConfigurationError{Field: "product_type", Value: s, Reason: "unknown product type"}
}

// WindowType is the sash layout variant
type WindowType string

const (
	// WindowUnspecified falls back to a single sash
	WindowUnspecified WindowType = ""
	WindowSingle      WindowType = "single"
	WindowDoubleLeaf  WindowType = "double-leaf"
	WindowTripleLeaf  WindowType = "triple-leaf"
	WindowFixed       WindowType = "fixed"
)

// WindowTypes lists the supported variants in catalog order
var WindowTypes = []WindowType{WindowSingle, WindowDoubleLeaf, WindowTripleLeaf, WindowFixed}

// ParseWindowType accepts the canonical names plus a few shop aliases
func ParseWindowType(s string) (WindowType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return WindowUnspecified, nil
	case "single", "single-leaf":
		return WindowSingle, nil
	case "double", "double-leaf":
		return WindowDoubleLeaf, nil
	case "triple", "triple-leaf":
		return WindowTripleLeaf, nil
	case "fixed":
		return WindowFixed, nil
	}
	return "", &ConfigurationError{Field: "window_type", Value: s, Reason: "unknown window type"}
}

// Normalize maps the unspecified variant to the default single sash
func (w WindowType) Normalize() WindowType {
	if w == WindowUnspecified {
		return WindowSingle
	}
	return w
}

// Known reports whether w is part of the closed enumeration
func (w WindowType) Known() bool {
	switch w {
	case WindowUnspecified, WindowSingle, WindowDoubleLeaf, WindowTripleLeaf, WindowFixed:
		return true
	}
	return false
}

// SashCount returns the number of sashes the layout carries
func (w WindowType) SashCount() int {
	switch w.Normalize() {
	case WindowDoubleLeaf:
		return 2
	case WindowTripleLeaf:
		return 3
	default:
		return 1
	}
}

// Operable reports whether any sash of the layout can open
func (w WindowType) Operable() bool {
	return w.Normalize() != WindowFixed
}

// Variant is the part of a Configuration that determines part layout.
// Two configurations with the same variant have compatible sash sets.
type Variant struct {
	Product ProductType
	Window  WindowType
}

func (v Variant) String() string {
	return fmt.Sprintf("%s/%s", v.Product, v.Window)
}

// Configuration is the full set of options chosen by the buyer. Dimensions are
// in millimeters; color, glazing and opening direction fields are catalog ids.
type Configuration struct {
	ProductType        ProductType `json:"productType" toml:"product_type" yaml:"product_type"`
	WindowType         WindowType  `json:"windowType" toml:"window_type" yaml:"window_type"`
	Width              float64     `json:"width" toml:"width" yaml:"width"`
	Height             float64     `json:"height" toml:"height" yaml:"height"`
	BaseColor          string      `json:"baseColor" toml:"base_color" yaml:"base_color"`
	OutsideColor       string      `json:"outsideColor" toml:"outside_color" yaml:"outside_color"`
	InsideColor        string      `json:"insideColor" toml:"inside_color" yaml:"inside_color"`
	RubberColor        string      `json:"rubberColor" toml:"rubber_color" yaml:"rubber_color"`
	GlazingID          string      `json:"glazingId" toml:"glazing" yaml:"glazing"`
	OpeningDirectionID string      `json:"openingDirectionId" toml:"opening_direction" yaml:"opening_direction"`
}

// DefaultConfiguration is the configurator's initial selection
func DefaultConfiguration() Configuration {
	return Configuration{
		ProductType:        ProductWindow,
		WindowType:         WindowSingle,
		Width:              1000,
		Height:             1200,
		BaseColor:          "white",
		OutsideColor:       "white",
		InsideColor:        "white",
		RubberColor:        "black",
		GlazingID:          "G1",
		OpeningDirectionID: "left-inward",
	}
}

// Variant returns the layout-determining part of the configuration
func (c Configuration) Variant() Variant {
	return Variant{Product: c.ProductType, Window: c.WindowType.Normalize()}
}

// finitePositive rejects zero, negatives, NaN and both infinities
func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Validate checks dimensions, enumerations and that every id resolves in cat.
// The first problem found is returned as a *ConfigurationError.
func (c Configuration) Validate(cat *Catalog) error {
	if !finitePositive(c.Width) {
		return &ConfigurationError{Field: "width", Value: c.Width, Reason: "must be a positive finite length"}
	}
	if !finitePositive(c.Height) {
		return &ConfigurationError{Field: "height", Value: c.Height, Reason: "must be a positive finite length"}
	}
	if c.ProductType != ProductWindow && c.ProductType != ProductDoor {
		return &ConfigurationError{Field: "product_type", Value: c.ProductType, Reason: "unknown product type"}
	}
	if !c.WindowType.Known() {
		return &ConfigurationError{Field: "window_type", Value: c.WindowType, Reason: "unknown window type"}
	}

	colors := []struct {
		field string
		id    string
	}{
		{"base_color", c.BaseColor},
		{"outside_color", c.OutsideColor},
		{"inside_color", c.InsideColor},
		{"rubber_color", c.RubberColor},
	}
	for _, col := range colors {
		if _, ok := cat.colors[col.id]; !ok {
			return unknownID(col.field, col.id)
		}
	}
	if _, ok := cat.glazing[c.GlazingID]; !ok {
		return unknownID("glazing", c.GlazingID)
	}
	if _, ok := cat.directions[c.OpeningDirectionID]; !ok {
		return unknownID("opening_direction", c.OpeningDirectionID)
	}
	return nil
}
