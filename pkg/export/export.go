// Package export turns a scene into a watertight solid by unioning the
// signed distance fields of every part box, then meshes it with marching
// cubes. Unlike the triangle soup written by pkg/stl, the result has no
// internal faces and is fit for printing scale models.
package export

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/philipparndt/fenster/pkg/geometry"
	"github.com/philipparndt/fenster/pkg/scene"
	"github.com/philipparndt/fenster/pkg/stl"
	"github.com/samber/lo"
)

// DefaultCells is the marching cubes resolution along the longest axis.
// Features thinner than one cell (seals) may disappear.
const DefaultCells = 200

// Solid unions the boxes of every part of g in its current pose. With kinds
// given only parts of those kinds are included.
func Solid(g *scene.Group, kinds ...scene.Kind) (sdf.SDF3, error) {
	parts := g.Parts()
	if len(kinds) > 0 {
		parts = lo.Filter(parts, func(p *scene.Part, _ int) bool { return lo.Contains(kinds, p.Kind) })
	}

	var solids []sdf.SDF3
	for _, p := range parts {
		m := partMatrix(g, p)
		for _, b := range p.Mesh.Boxes {
			box, err := sdf.Box3D(vec(b.Size()), 0)
			if err != nil {
				return nil, fmt.Errorf("part %s: %w", p.Name, err)
			}
			c := b.Center()
			solids = append(solids, sdf.Transform3D(box, m.Mul(sdf.Translate3d(vec(c)))))
		}
	}
	if len(solids) == 0 {
		return nil, fmt.Errorf("scene %q has no parts to export", g.Name)
	}
	return sdf.Union3D(solids...), nil
}

// partMatrix mirrors scene.Group.WorldTransform in sdfx matrices
func partMatrix(g *scene.Group, p *scene.Part) sdf.M44 {
	local := sdf.Translate3d(vec(p.Position))
	if p.Role == scene.RoleNone {
		return local
	}
	leaf, ok := g.Leaf(p.Role)
	angle := g.LeafAngle(p.Role)
	if !ok || angle == 0 {
		return local
	}
	h := leaf.Hinge
	return sdf.Translate3d(vec(h)).
		Mul(sdf.RotateY(angle)).
		Mul(sdf.Translate3d(vec(h.Mul(-1)))).
		Mul(local)
}

func vec(v geometry.Vector3) v3.Vec {
	return v3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// Mesh meshes the solid of g with the given resolution
func Mesh(g *scene.Group, cells int, kinds ...scene.Kind) (*stl.Model, error) {
	if cells <= 0 {
		cells = DefaultCells
	}
	s, err := Solid(g, kinds...)
	if err != nil {
		return nil, err
	}

	model := stl.NewModel(g.Name)
	for _, tri := range render.ToTriangles(s, render.NewMarchingCubesUniform(cells)) {
		n := tri.Normal()
		model.AddTriangle(geometry.NewTriangle(
			geometry.NewVector3(n.X, n.Y, n.Z),
			geometry.NewVector3(tri[0].X, tri[0].Y, tri[0].Z),
			geometry.NewVector3(tri[1].X, tri[1].Y, tri[1].Z),
			geometry.NewVector3(tri[2].X, tri[2].Y, tri[2].Z),
		))
	}
	return model, nil
}

// Save meshes g and writes a binary STL to path
func Save(path string, g *scene.Group, cells int, kinds ...scene.Kind) (*stl.Model, error) {
	model, err := Mesh(g, cells, kinds...)
	if err != nil {
		return nil, err
	}
	if err := stl.Save(path, model, false); err != nil {
		return nil, err
	}
	return model, nil
}
