package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/fenster/pkg/geometry"
	"github.com/philipparndt/fenster/pkg/scene"
)

// drawWireframe outlines every box of every part in its current pose
func (app *App) drawWireframe(g *scene.Group) {
	wireframeColor := rl.NewColor(60, 60, 60, 200)

	for _, p := range g.Parts() {
		m := g.WorldTransform(p)
		for _, b := range p.Mesh.Boxes {
			var corners [8]rl.Vector3
			for i := range corners {
				c := geometry.NewVector3(pick(i&1, b.Min.X, b.Max.X), pick(i&2, b.Min.Y, b.Max.Y), pick(i&4, b.Min.Z, b.Max.Z))
				corners[i] = toVector3(geometry.FromVec(m.Mul4x1(c.Vec().Vec4(1)).Vec3()))
			}
			// edges connect corners differing in exactly one bit
			for i := range corners {
				for _, bit := range [3]int{1, 2, 4} {
					if i&bit == 0 {
						rl.DrawLine3D(corners[i], corners[i|bit], wireframeColor)
					}
				}
			}
		}
	}
}

func pick(bit int, lo, hi float64) float64 {
	if bit == 0 {
		return lo
	}
	return hi
}
