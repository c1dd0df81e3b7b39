// Package model composes parts into the complete scene of a configured
// window or door.
package model

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/fenster/pkg/geometry"
	"github.com/philipparndt/fenster/pkg/material"
	"github.com/philipparndt/fenster/pkg/parts"
	"github.com/philipparndt/fenster/pkg/product"
	"github.com/philipparndt/fenster/pkg/scene"
)

// OpenAngle is how far an operable sash swings when fully open
var OpenAngle = mgl64.DegToRad(75)

// DoorHandleHeight is the handle pivot height above the floor
const DoorHandleHeight = 1050.0

// doorBottomRail is the share of the sash height taken by a door's lower panel
const doorBottomRail = 0.35

// doorGap is the clearance between a door sash and the threshold
const doorGap = 5.0

// Builder turns configurations into scene groups. It holds no per-build state
// and may be reused for every configuration change.
type Builder struct {
	log     *slog.Logger
	catalog *product.Catalog
}

// NewBuilder creates a builder resolving ids against catalog, the default
// catalog when nil
func NewBuilder(log *slog.Logger, catalog *product.Catalog) *Builder {
	if log == nil {
		log = slog.Default()
	}
	if catalog == nil {
		catalog = product.DefaultCatalog()
	}
	return &Builder{log: log, catalog: catalog}
}

// Catalog returns the catalog ids are resolved against
func (b *Builder) Catalog() *product.Catalog {
	return b.catalog
}

// Build validates cfg, resolves its materials and assembles a new group.
// Invalid input yields a *product.ConfigurationError and no group.
func (b *Builder) Build(cfg product.Configuration) (*scene.Group, error) {
	if err := cfg.Validate(b.catalog); err != nil {
		return nil, err
	}
	mats, err := material.Resolve(cfg, b.catalog)
	if err != nil {
		return nil, err
	}
	return b.Assemble(cfg, mats)
}

// Assemble builds the group for an already validated configuration
func (b *Builder) Assemble(cfg product.Configuration, mats material.Set) (*scene.Group, error) {
	variant := cfg.Variant()
	lay, ok := layouts[variant.Window]
	if !ok {
		return nil, &product.ConfigurationError{Field: "window_type", Value: cfg.WindowType, Reason: "unknown window type"}
	}
	dir, err := b.catalog.OpeningDirection(cfg.OpeningDirectionID)
	if err != nil {
		return nil, err
	}

	w, h := cfg.Width, cfg.Height
	door := variant.Product == product.ProductDoor
	if w <= 2*parts.FrameProfile {
		return nil, tooSmall("width", w, variant)
	}
	if h <= 2*parts.FrameProfile {
		return nil, tooSmall("height", h, variant)
	}

	// frame's clear opening and the span the sashes share
	opening := parts.SlotBetween(-w/2+parts.FrameProfile, w/2-parts.FrameProfile, -h/2+parts.FrameProfile, h/2-parts.FrameProfile)
	if door {
		opening = parts.SlotBetween(opening.Left(), opening.Right(), -h/2+parts.ThresholdHeight, opening.Top())
	}
	span := opening.Inset(-parts.SashLap)
	if door {
		span = parts.SlotBetween(span.Left(), span.Right(), opening.Bottom()+doorGap, span.Top())
	}
	rail := parts.SashProfile
	if door {
		rail = math.Max(parts.SashProfile, doorBottomRail*span.Height)
	}

	// every sash must leave room for its pane
	if lay.narrowest()*span.Width <= 2*parts.SashProfile {
		return nil, tooSmall("width", w, variant)
	}
	if span.Height <= parts.SashProfile+rail {
		return nil, tooSmall("height", h, variant)
	}

	g := scene.NewGroup(fmt.Sprintf("%s %gx%g", variant, w, h))
	if door {
		g.Add(parts.DoorFrame(w, h, mats.Frame), parts.Threshold(w, h, mats.Frame))
	} else {
		g.Add(parts.Frame(w, h, mats.Frame))
	}

	for _, d := range lay.dividers {
		g.Add(parts.Divider(parts.Slot{
			X:      span.X + d.center*span.Width,
			Y:      opening.Y,
			Width:  d.width * span.Width,
			Height: opening.Height,
		}, mats.Divider))
	}
	g.Add(parts.FrameSeal(opening, mats.Seal))

	fixed := !variant.Window.Operable()

	for _, spec := range lay.sashes {
		slot := parts.SlotBetween(
			span.X+spec.left*span.Width,
			span.X+spec.right*span.Width,
			span.Bottom(),
			span.Top(),
		)
		hinge := spec.hinge
		if hinge == "" {
			hinge = dir.Hinge
		}

		sash := parts.Sash(spec.role, slot, rail, mats.SashOutside, mats.SashInside)
		sash.Fixed = fixed
		pane := parts.SashOpening(slot, rail)
		g.Add(
			sash,
			parts.GlassPanel(spec.role, pane, mats.Glass),
			parts.GlazingSeal(spec.role, pane, mats.Seal),
		)
		g.AddLeaf(leafFor(spec.role, slot, hinge, dir.Inward, fixed))

		if spec.handle && !fixed {
			g.Add(parts.Handle(spec.role, handlePosition(slot, hinge, door, h), mats.Handle))
		}
	}

	b.log.Debug("built scene",
		"variant", variant.String(),
		"width", w,
		"height", h,
		"parts", len(g.Parts()),
		"triangles", g.TriangleCount(),
	)
	return g, nil
}

func tooSmall(field string, value float64, variant product.Variant) error {
	return &product.ConfigurationError{
		Field:  field,
		Value:  value,
		Reason: fmt.Sprintf("too small for the %s layout", variant),
	}
}

// leafFor places the hinge axis on the sash edge and face it swings from.
// A positive rotation about +Y carries the free edge of a left-hinged sash
// toward -Z (inside), so the sign flips for right hinges and outward swings.
func leafFor(role scene.Role, slot parts.Slot, hinge product.Hinge, inward, fixed bool) scene.Leaf {
	x := slot.Left()
	sign := 1.0
	if hinge == product.HingeRight {
		x = slot.Right()
		sign = -sign
	}
	z := -parts.SashDepth / 2
	if !inward {
		z = parts.SashDepth / 2
		sign = -sign
	}

	leaf := scene.Leaf{
		Role:     role,
		Hinge:    geometry.NewVector3(x, 0, z),
		Width:    slot.Width,
		Operable: !fixed,
	}
	if !fixed {
		leaf.Swing = sign * OpenAngle
	}
	return leaf
}

// handlePosition puts the handle on the stile opposite the hinge
func handlePosition(slot parts.Slot, hinge product.Hinge, door bool, height float64) geometry.Vector3 {
	x := slot.Right() - parts.SashProfile/2
	if hinge == product.HingeRight {
		x = slot.Left() + parts.SashProfile/2
	}
	y := slot.Y
	if door {
		y = -height/2 + DoorHandleHeight
		y = math.Min(y, slot.Top()-parts.SashProfile-80)
	}
	return geometry.NewVector3(x, y, -parts.SashDepth/2)
}
