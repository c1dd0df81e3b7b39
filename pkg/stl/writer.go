package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/fenster/pkg/geometry"
)

// WriteBinary encodes m as binary STL
func WriteBinary(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)

	header := make([]byte, 80)
	copy(header, m.Name)
	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i, t := range m.Triangles {
		record := struct {
			Normal, V1, V2, V3 [3]float32
			Attribute          uint16
		}{
			Normal: vec32(t.Normal),
			V1:     vec32(t.V1),
			V2:     vec32(t.V2),
			V3:     vec32(t.V3),
		}
		if err := binary.Write(bw, binary.LittleEndian, &record); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}
	return bw.Flush()
}

func vec32(v geometry.Vector3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

// WriteASCII encodes m as ASCII STL
func WriteASCII(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)
	name := strings.ReplaceAll(m.Name, " ", "_")

	fmt.Fprintf(bw, "solid %s\n", name)
	for _, t := range m.Triangles {
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", t.Normal.X, t.Normal.Y, t.Normal.Z)
		fmt.Fprintf(bw, "    outer loop\n")
		for _, v := range [3]geometry.Vector3{t.V1, t.V2, t.V3} {
			fmt.Fprintf(bw, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)
	return bw.Flush()
}

// Save writes m to path, as ASCII when ascii is set and binary otherwise
func Save(path string, m *Model, ascii bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if ascii {
		err = WriteASCII(file, m)
	} else {
		err = WriteBinary(file, m)
	}
	if err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
