// Package viewer draws scene groups in software: a z-buffered triangle
// rasteriser with flat shading into an RGBA image, plus a fyne widget
// showing that image.
package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"sync"

	"github.com/philipparndt/fenster/pkg/camera"
	"github.com/philipparndt/fenster/pkg/engine"
	"github.com/philipparndt/fenster/pkg/geometry"
	"github.com/philipparndt/fenster/pkg/scene"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultBackground is a light studio grey
var DefaultBackground = color.RGBA{R: 236, G: 238, B: 240, A: 255}

const ambient = 0.35

// RasterSurface renders into an in-memory image. It implements
// engine.Surface.
type RasterSurface struct {
	Background color.RGBA
	// Wireframe draws triangle edges on top of the shaded image
	Wireframe bool
	// Caption is printed in the lower left corner when set
	Caption string

	mu    sync.RWMutex
	img   *image.RGBA
	zbuf  []float64
	draws int
}

var _ engine.Surface = (*RasterSurface)(nil)

// NewRasterSurface allocates a width×height surface. A non-positive size is a
// *engine.ResourceError.
func NewRasterSurface(width, height int) (*RasterSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, &engine.ResourceError{Op: "raster surface", Err: fmt.Errorf("invalid size %dx%d", width, height)}
	}
	s := &RasterSurface{Background: DefaultBackground}
	s.allocate(width, height)
	return s, nil
}

func (s *RasterSurface) allocate(width, height int) {
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.zbuf = make([]float64, width*height)
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.Background), image.Point{}, draw.Src)
}

// Resize reallocates the image. Non-positive sizes are ignored.
func (s *RasterSurface) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return
	}
	s.allocate(width, height)
}

// Size returns the surface size in pixels
func (s *RasterSurface) Size() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Draws returns the number of completed Draw calls
func (s *RasterSurface) Draws() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draws
}

// Image returns a copy of the last frame
func (s *RasterSurface) Image() *image.RGBA {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// WritePNG encodes the last frame as PNG
func (s *RasterSurface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.Image())
}

// SavePNG writes the last frame to a PNG file
func (s *RasterSurface) SavePNG(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := s.WritePNG(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}

// Draw renders g as seen by cam. Opaque parts go first; glass is blended on
// top in a second pass.
func (s *RasterSurface) Draw(g *scene.Group, cam *camera.Camera) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.Background), image.Point{}, draw.Src)
	for i := range s.zbuf {
		s.zbuf[i] = math.Inf(1)
	}

	if g != nil {
		light := keyLight(cam)
		parts := g.Parts()
		for _, p := range parts {
			if !p.Material.Transparent() {
				s.drawPart(g, p, cam, light)
			}
		}
		for _, p := range parts {
			if p.Material.Transparent() {
				s.drawPart(g, p, cam, light)
			}
		}
	}

	if s.Caption != "" {
		s.drawCaption(s.Caption)
	}
	s.draws++
	return nil
}

func (s *RasterSurface) drawPart(g *scene.Group, p *scene.Part, cam *camera.Camera, light geometry.Vector3) {
	b := s.img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	for _, t := range g.WorldTriangles(p) {
		// back-face culling
		if t.Normal.Dot(t.Center().Sub(cam.Position)) >= 0 {
			continue
		}

		var v [3]screenVertex
		behind := false
		for i, pt := range [3]geometry.Vector3{t.V1, t.V2, t.V3} {
			x, y, z := cam.Project(pt, w, h)
			if z <= cam.Near {
				behind = true
				break
			}
			v[i] = screenVertex{x, y, z}
		}
		if behind {
			continue
		}

		mat := p.MaterialFor(t.Normal)
		col := shade(mat, t.Normal, light)
		fillTriangleWithDepth(s.img, s.zbuf, v, col, mat.Opacity)

		if s.Wireframe && !mat.Transparent() {
			edge := color.RGBA{R: 60, G: 60, B: 60, A: 255}
			for i := range 3 {
				a, c := v[i], v[(i+1)%3]
				drawLine(s.img, int(a.x), int(a.y), int(c.x), int(c.y), edge)
			}
		}
	}
}

// keyLight returns the direction toward a light above and to the left of
// the viewer, so every side the camera looks at is lit
func keyLight(cam *camera.Camera) geometry.Vector3 {
	back := cam.Position.Sub(cam.Target).Normalize()
	right := cam.Up.Cross(back).Normalize()
	up := back.Cross(right).Normalize()
	return back.Add(up.Mul(0.6)).Add(right.Mul(-0.4)).Normalize()
}

// shade applies lambert lighting. Shiny materials get a little extra
// highlight on faces turned toward the light.
func shade(m scene.Material, normal, light geometry.Vector3) color.RGBA {
	diffuse := math.Max(0, normal.Dot(light))
	intensity := ambient + (1-ambient)*diffuse
	highlight := m.Metalness * (1 - m.Roughness) * math.Pow(diffuse, 8) * 0.5

	ch := func(c uint8) uint8 {
		v := float64(c)*intensity + 255*highlight
		return uint8(math.Min(255, math.Round(v)))
	}
	return color.RGBA{R: ch(m.Color.R), G: ch(m.Color.G), B: ch(m.Color.B), A: 255}
}

func (s *RasterSurface) drawCaption(text string) {
	face := basicfont.Face7x13
	b := s.img.Bounds()
	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(color.RGBA{R: 40, G: 40, B: 40, A: 255}),
		Face: face,
		Dot:  fixed.P(8, b.Max.Y-8),
	}
	d.DrawString(text)
}
