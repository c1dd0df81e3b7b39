// Package material maps the color fields of a configuration to renderable
// surface properties per part role.
package material

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/philipparndt/fenster/pkg/product"
	"github.com/philipparndt/fenster/pkg/scene"
)

// Set holds one material per part role
type Set struct {
	Frame       scene.Material
	Divider     scene.Material
	Handle      scene.Material
	SashOutside scene.Material
	SashInside  scene.Material
	Seal        scene.Material
	Glass       scene.Material
}

// For returns the primary material of a part kind. Sashes return their
// outside face; use SashInside for the other one.
func (s Set) For(kind scene.Kind) scene.Material {
	switch kind {
	case scene.KindFrame:
		return s.Frame
	case scene.KindSash:
		return s.SashOutside
	case scene.KindDivider:
		return s.Divider
	case scene.KindGlassPanel:
		return s.Glass
	case scene.KindSeal:
		return s.Seal
	case scene.KindHandle:
		return s.Handle
	}
	return s.Frame
}

// surface finish per role
var (
	profileFinish = finish{roughness: 0.55, metalness: 0}
	handleFinish  = finish{roughness: 0.3, metalness: 0.7}
	sealFinish    = finish{roughness: 0.9, metalness: 0}
	glassFinish   = finish{roughness: 0.05, metalness: 0.1}
)

type finish struct {
	roughness float64
	metalness float64
}

// Resolve looks up every color and the glazing of cfg in cat. It fails with a
// *product.ConfigurationError naming the first field that does not resolve.
func Resolve(cfg product.Configuration, cat *product.Catalog) (Set, error) {
	base, err := resolveColor(cat, "base_color", cfg.BaseColor, profileFinish)
	if err != nil {
		return Set{}, err
	}
	outside, err := resolveColor(cat, "outside_color", cfg.OutsideColor, profileFinish)
	if err != nil {
		return Set{}, err
	}
	inside, err := resolveColor(cat, "inside_color", cfg.InsideColor, profileFinish)
	if err != nil {
		return Set{}, err
	}
	rubber, err := resolveColor(cat, "rubber_color", cfg.RubberColor, sealFinish)
	if err != nil {
		return Set{}, err
	}
	glass, err := resolveGlass(cat, cfg.GlazingID)
	if err != nil {
		return Set{}, err
	}

	handle := base
	handle.Roughness = handleFinish.roughness
	handle.Metalness = handleFinish.metalness

	return Set{
		Frame:       base,
		Divider:     base,
		Handle:      handle,
		SashOutside: outside,
		SashInside:  inside,
		Seal:        rubber,
		Glass:       glass,
	}, nil
}

func resolveColor(cat *product.Catalog, field, id string, f finish) (scene.Material, error) {
	opt, err := cat.Color(id)
	if err != nil {
		return scene.Material{}, &product.ConfigurationError{Field: field, Value: id, Reason: "not found in catalog"}
	}
	c, err := ParseHex(opt.Hex)
	if err != nil {
		return scene.Material{}, &product.ConfigurationError{Field: field, Value: opt.Hex, Reason: err.Error()}
	}
	return scene.Material{
		Name:      opt.ID,
		Color:     c,
		Roughness: f.roughness,
		Metalness: f.metalness,
		Opacity:   1,
	}, nil
}

func resolveGlass(cat *product.Catalog, id string) (scene.Material, error) {
	opt, err := cat.GlazingOption(id)
	if err != nil {
		return scene.Material{}, err
	}
	c, err := ParseHex(opt.Tint)
	if err != nil {
		return scene.Material{}, &product.ConfigurationError{Field: "glazing", Value: opt.Tint, Reason: err.Error()}
	}
	opacity := opt.Opacity
	if opacity <= 0 || opacity > 1 {
		opacity = 0.35
	}
	return scene.Material{
		Name:      opt.ID,
		Color:     c,
		Roughness: glassFinish.roughness,
		Metalness: glassFinish.metalness,
		Opacity:   opacity,
	}, nil
}

// ParseHex parses #RRGGBB or #RGB (the leading # is optional)
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// Hex formats c as #RRGGBB
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
