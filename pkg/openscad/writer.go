// Package openscad writes scenes as OpenSCAD programs and renders them with
// the openscad binary.
package openscad

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/fenster/pkg/scene"
)

// Write describes g in its current pose as an OpenSCAD program: one colored
// group of cubes per part. With kinds given only those parts are written.
func Write(w io.Writer, g *scene.Group, kinds ...scene.Kind) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "// %s\n", g.Name)
	fmt.Fprintln(bw, "// units: mm, +Z faces outside")
	fmt.Fprintln(bw)

	for _, p := range g.Parts() {
		if len(kinds) > 0 && !slices.Contains(kinds, p.Kind) {
			continue
		}
		c := p.Material.Color
		fmt.Fprintf(bw, "// %s %s\n", p.Kind, p.Name)
		fmt.Fprintf(bw, "color([%s, %s, %s, %s])\n",
			num(float64(c.R)/255), num(float64(c.G)/255), num(float64(c.B)/255), num(p.Material.Opacity))
		fmt.Fprintf(bw, "multmatrix(%s) {\n", matrix(g.WorldTransform(p)))
		for _, b := range p.Mesh.Boxes {
			center := b.Center()
			size := b.Size()
			fmt.Fprintf(bw, "  translate([%s, %s, %s]) cube([%s, %s, %s], center = true);\n",
				num(center.X), num(center.Y), num(center.Z),
				num(size.X), num(size.Y), num(size.Z))
		}
		fmt.Fprintln(bw, "}")
	}

	return bw.Flush()
}

// Save writes the program to path, creating parent directories
func Save(path string, g *scene.Group, kinds ...scene.Kind) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	return Write(f, g, kinds...)
}

// matrix formats m row by row as OpenSCAD expects
func matrix(m mgl64.Mat4) string {
	rows := make([]string, 4)
	for r := range 4 {
		row := m.Row(r)
		rows[r] = fmt.Sprintf("[%s, %s, %s, %s]", num(row[0]), num(row[1]), num(row[2]), num(row[3]))
	}
	return "[" + strings.Join(rows, ", ") + "]"
}

// num prints v compactly; rounding noise and -0 print as 0
func num(v float64) string {
	if math.Abs(v) < 1e-9 {
		v = 0
	}
	return fmt.Sprintf("%.4g", v)
}
