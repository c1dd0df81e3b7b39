// Package analysis measures a built scene: a bill of quantities per part
// kind for quoting and production.
package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/fenster/pkg/geometry"
	"github.com/philipparndt/fenster/pkg/scene"
	"github.com/philipparndt/fenster/pkg/stl"
	"github.com/samber/lo"
)

// KindTakeoff sums the parts of one kind
type KindTakeoff struct {
	Kind      scene.Kind
	Parts     int
	Triangles int
	// SurfaceArea is the outer surface in mm²
	SurfaceArea float64
	// Length is the summed length of the profile members in mm
	Length float64
}

// Takeoff contains the quantities of a scene
type Takeoff struct {
	BoundingBox geometry.BoundingBox
	Dimensions  geometry.Vector3
	Kinds       []KindTakeoff
	// GlassArea is the pane area in mm², one face per pane
	GlassArea     float64
	ProfileLength float64
	SealLength    float64
	Handles       int
	Sashes        int
	Operable      int
}

// Analyze measures g in its current pose
func Analyze(g *scene.Group) *Takeoff {
	result := &Takeoff{
		BoundingBox: g.Bounds(),
	}
	result.Dimensions = result.BoundingBox.Size()

	for _, kind := range scene.Kinds {
		parts := g.PartsOf(kind)
		if len(parts) == 0 {
			continue
		}
		model := stl.FromGroup(g, kind)
		kt := KindTakeoff{
			Kind:        kind,
			Parts:       len(parts),
			Triangles:   model.TriangleCount(),
			SurfaceArea: model.SurfaceArea(),
			Length:      lo.SumBy(parts, memberLength),
		}
		result.Kinds = append(result.Kinds, kt)

		switch kind {
		case scene.KindFrame, scene.KindSash, scene.KindDivider:
			result.ProfileLength += kt.Length
		case scene.KindSeal:
			result.SealLength += kt.Length
		case scene.KindGlassPanel:
			result.GlassArea += lo.SumBy(parts, func(p *scene.Part) float64 { return p.Size.X * p.Size.Y })
		case scene.KindHandle:
			result.Handles = len(parts)
		}
	}

	result.Sashes = len(g.Leaves())
	result.Operable = lo.CountBy(g.Leaves(), func(l scene.Leaf) bool { return l.Operable })
	return result
}

// Kind returns the takeoff of one kind, zero if the scene has none
func (t *Takeoff) Kind(kind scene.Kind) KindTakeoff {
	kt, _ := lo.Find(t.Kinds, func(kt KindTakeoff) bool { return kt.Kind == kind })
	return kt
}

// memberLength is the summed longest in-plane edge of every box of p, the
// cut length of a profile bar
func memberLength(p *scene.Part) float64 {
	return lo.SumBy(p.Mesh.Boxes, func(b geometry.BoundingBox) float64 {
		size := b.Size()
		return math.Max(size.X, size.Y)
	})
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "mm"
	}
	return fmt.Sprintf("%.1f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.1f, %.1f, %.1f)", v.X, v.Y, v.Z)
}
