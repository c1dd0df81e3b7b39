package scene

import (
	"fmt"
	"math"

	"github.com/philipparndt/fenster/pkg/geometry"
	"github.com/samber/lo"
)

// Summary is a serialisable description of a group
type Summary struct {
	Name      string         `json:"name"`
	Parts     []PartSummary  `json:"parts"`
	Counts    map[string]int `json:"counts"`
	Leaves    []LeafSummary  `json:"leaves"`
	Min       [3]float64     `json:"min"`
	Max       [3]float64     `json:"max"`
	Triangles int            `json:"triangles"`
}

// PartSummary describes one part
type PartSummary struct {
	Kind     string     `json:"kind"`
	Name     string     `json:"name"`
	Role     string     `json:"role,omitempty"`
	Position [3]float64 `json:"position"`
	Size     [3]float64 `json:"size"`
	Material string     `json:"material"`
	Color    string     `json:"color"`
	Inner    string     `json:"inner,omitempty"`
	Opacity  float64    `json:"opacity"`
	Fixed    bool       `json:"fixed,omitempty"`
}

// LeafSummary describes one sash pivot
type LeafSummary struct {
	Role     string  `json:"role"`
	Operable bool    `json:"operable"`
	Width    float64 `json:"width"`
	// Angle is the current swing in degrees
	Angle float64 `json:"angle"`
}

// Summarize describes the group in its current pose
func (g *Group) Summarize() Summary {
	g.mustLive()

	b := g.Bounds()
	return Summary{
		Name: g.Name,
		Parts: lo.Map(g.parts, func(p *Part, _ int) PartSummary {
			s := PartSummary{
				Kind:     p.Kind.String(),
				Name:     p.Name,
				Role:     string(p.Role),
				Position: triple(p.Position),
				Size:     triple(p.Size),
				Material: p.Material.Name,
				Color:    hex(p.Material),
				Opacity:  p.Material.Opacity,
				Fixed:    p.Fixed,
			}
			if p.Inner != nil {
				s.Inner = hex(*p.Inner)
			}
			return s
		}),
		Counts: lo.CountValuesBy(g.parts, func(p *Part) string {
			return p.Kind.String()
		}),
		Leaves: lo.Map(g.leaves, func(l Leaf, _ int) LeafSummary {
			return LeafSummary{
				Role:     string(l.Role),
				Operable: l.Operable,
				Width:    l.Width,
				Angle:    g.angles[l.Role] * 180 / math.Pi,
			}
		}),
		Min:       triple(b.Min),
		Max:       triple(b.Max),
		Triangles: g.TriangleCount(),
	}
}

func triple(v geometry.Vector3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hex(m Material) string {
	return fmt.Sprintf("#%02x%02x%02x", m.Color.R, m.Color.G, m.Color.B)
}
