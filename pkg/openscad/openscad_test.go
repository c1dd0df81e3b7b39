package openscad

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/fenster/pkg/geometry"
	"github.com/philipparndt/fenster/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGroup() *scene.Group {
	g := scene.NewGroup("window/single 1000x1200")
	g.Add(&scene.Part{
		Kind:     scene.KindFrame,
		Name:     "frame",
		Mesh:     scene.NewBoxMesh(geometry.BoxFromCenter(geometry.NewVector3(0, 565, 0), geometry.NewVector3(1000, 70, 70))),
		Material: scene.Material{Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}, Opacity: 1},
	})
	g.Add(&scene.Part{
		Kind:     scene.KindGlassPanel,
		Name:     "glass",
		Role:     scene.RoleSingle,
		Position: geometry.NewVector3(0, 0, 10),
		Mesh:     scene.NewBoxMesh(geometry.BoxFromCenter(geometry.Vector3{}, geometry.NewVector3(800, 1000, 24))),
		Material: scene.Material{Color: color.RGBA{R: 0, G: 128, B: 255, A: 255}, Opacity: 0.35},
	})
	g.AddLeaf(scene.Leaf{Role: scene.RoleSingle, Hinge: geometry.NewVector3(-400, 0, 0), Swing: math.Pi / 2, Operable: true})
	return g
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testGroup()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "// window/single 1000x1200\n"))
	assert.Contains(t, out, "// frame frame\ncolor([1, 1, 1, 1])\n")
	assert.Contains(t, out, "translate([0, 565, 0]) cube([1000, 70, 70], center = true);")
	assert.Contains(t, out, "color([0, 0.502, 1, 0.35])")
	assert.Contains(t, out, "multmatrix([[1, 0, 0, 0], [0, 1, 0, 0], [0, 0, 1, 10], [0, 0, 0, 1]])")
	assert.Equal(t, 2, strings.Count(out, "multmatrix("))
}

func TestWriteFollowsLeafMotion(t *testing.T) {
	g := testGroup()
	g.Apply([]scene.Motion{{Role: scene.RoleSingle, Angle: math.Pi / 2}})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g, scene.KindGlassPanel))
	out := buf.String()

	assert.NotContains(t, out, "frame")
	// rotated a quarter turn about the hinge, the glass faces along X
	assert.Contains(t, out, "[[0, 0, 1, ")
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "window.scad")
	require.NoError(t, Save(path, testGroup()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "cube(")
}

func TestRenderWithoutOpenSCAD(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	err := NewRenderer(t.TempDir()).RenderToSTL(context.Background(), "window.scad", "window.stl")
	assert.ErrorIs(t, err, ErrNotInstalled)
}

func TestRenderErrorIncludesOutput(t *testing.T) {
	err := &RenderError{File: "window.scad", Err: errors.New("exit status 1"), Output: "Parser error"}
	assert.Equal(t, "failed to render window.scad: exit status 1: Parser error", err.Error())
	assert.EqualError(t, errors.Unwrap(err), "exit status 1")

	err.Output = ""
	assert.Equal(t, "failed to render window.scad: exit status 1", err.Error())
}
