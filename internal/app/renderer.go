package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/fenster/pkg/camera"
	"github.com/philipparndt/fenster/pkg/engine"
	"github.com/philipparndt/fenster/pkg/geometry"
	"github.com/philipparndt/fenster/pkg/scene"
)

// lightDir is the baked key light in part-local coordinates
var lightDir = geometry.NewVector3(-0.4, -0.8, -0.6).Normalize()

// upload creates GPU meshes for every part of g and binds their release to
// the group. It must run on the window thread.
func (app *App) upload(g *scene.Group) error {
	var uploaded []*scene.Part
	for _, p := range g.Parts() {
		if len(p.Mesh.Triangles) == 0 {
			continue
		}
		app.gpu.meshes[p] = partToRaylibMesh(p)
		uploaded = append(uploaded, p)
	}

	g.Bind(scene.ReleaseFunc(func() {
		for _, p := range uploaded {
			mesh := app.gpu.meshes[p]
			rl.UnloadMesh(&mesh)
			delete(app.gpu.meshes, p)
		}
		app.log.Debug("unloaded meshes", "group", g.Name, "count", len(uploaded))
	}))
	app.log.Debug("uploaded meshes", "group", g.Name, "count", len(uploaded))
	return nil
}

// partToRaylibMesh converts a part mesh to a raylib mesh with baked lighting
// and the part's material colors
func partToRaylibMesh(p *scene.Part) rl.Mesh {
	triangleCount := len(p.Mesh.Triangles)
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, vertexCount*4)

	idx := 0
	for _, triangle := range p.Mesh.Triangles {
		normal := triangle.CalculateNormal()
		mat := p.MaterialFor(normal)

		// 35% ambient, the rest diffuse; metals get a little extra
		intensity := math.Max(0.35, -normal.Dot(lightDir))
		intensity = math.Min(1, intensity+0.15*mat.Metalness)
		r := uint8(float64(mat.Color.R) * intensity)
		g := uint8(float64(mat.Color.G) * intensity)
		b := uint8(float64(mat.Color.B) * intensity)
		a := uint8(255 * math.Max(0, math.Min(1, mat.Opacity)))

		for i, v := range [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			vertices[idx*3+0] = float32(v.X)
			vertices[idx*3+1] = float32(v.Y)
			vertices[idx*3+2] = float32(v.Z)
			normals[idx*3+0] = float32(normal.X)
			normals[idx*3+1] = float32(normal.Y)
			normals[idx*3+2] = float32(normal.Z)
			texcoords[idx*2+0] = float32(i & 1)
			texcoords[idx*2+1] = float32(i >> 1)
			colors[idx*4+0] = r
			colors[idx*4+1] = g
			colors[idx*4+2] = b
			colors[idx*4+3] = a
			idx++
		}
	}

	if len(vertices) > 0 {
		mesh.Vertices = &vertices[0]
		mesh.Normals = &normals[0]
		mesh.Texcoords = &texcoords[0]
		mesh.Colors = &colors[0]
	}

	// Upload mesh data to GPU
	rl.UploadMesh(&mesh, false)

	return mesh
}

// windowSurface draws into the raylib window. Each Draw is one complete
// frame.
type windowSurface struct {
	app *App
}

var _ engine.Surface = (*windowSurface)(nil)

// Resize is a no-op: raylib resizes the framebuffer with the window
func (s *windowSurface) Resize(width, height int) {}

func (s *windowSurface) Draw(g *scene.Group, cam *camera.Camera) error {
	app := s.app

	rl.BeginDrawing()
	rl.ClearBackground(app.UI.background)

	if g != nil {
		rl.BeginMode3D(toCamera3D(cam))

		var transparent []*scene.Part
		for _, p := range g.Parts() {
			if p.Material.Transparent() {
				transparent = append(transparent, p)
				continue
			}
			app.drawPart(g, p)
		}

		// Glass after the opaque parts so the frame shows through it
		rl.BeginBlendMode(rl.BlendAlpha)
		for _, p := range transparent {
			app.drawPart(g, p)
		}
		rl.EndBlendMode()

		if app.View.showWireframe {
			app.drawWireframe(g)
		}
		if app.View.showDimensions {
			app.drawDimensionLines(g)
		}

		rl.EndMode3D()

		if app.View.showDimensions {
			app.drawDimensionLabels(g, cam)
		}
		app.drawAxes(cam)
	}

	app.drawUI(g)
	rl.EndDrawing()
	return nil
}

func (app *App) drawPart(g *scene.Group, p *scene.Part) {
	mesh, ok := app.gpu.meshes[p]
	if !ok {
		return
	}
	rl.DrawMesh(mesh, app.gpu.material, toMatrix(g.WorldTransform(p)))
}
