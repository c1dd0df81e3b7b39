package stl

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/fenster/pkg/model"
	"github.com/philipparndt/fenster/pkg/product"
	"github.com/philipparndt/fenster/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGroup(t *testing.T) *scene.Group {
	t.Helper()
	g, err := model.NewBuilder(nil, product.DefaultCatalog()).Build(product.DefaultConfiguration())
	require.NoError(t, err)
	return g
}

func TestFromGroup(t *testing.T) {
	g := buildGroup(t)

	all := FromGroup(g)
	assert.Equal(t, g.TriangleCount(), all.TriangleCount())

	glass := FromGroup(g, scene.KindGlassPanel)
	assert.Equal(t, 12, glass.TriangleCount())

	bbox := all.BoundingBox()
	assert.InDelta(t, 1000, bbox.Size().X, 1e-6)
	assert.InDelta(t, 1200, bbox.Size().Y, 1e-6)
	assert.Greater(t, all.SurfaceArea(), 0.0)
}

func TestFromGroupFollowsSashPose(t *testing.T) {
	g := buildGroup(t)
	closed := FromGroup(g, scene.KindSash).BoundingBox()

	leaf, _ := g.Leaf(scene.RoleSingle)
	g.Apply([]scene.Motion{{Role: scene.RoleSingle, Angle: leaf.Swing}})
	open := FromGroup(g, scene.KindSash).BoundingBox()

	assert.Less(t, open.Min.Z, closed.Min.Z-200)
}

func TestWriteBinary(t *testing.T) {
	g := buildGroup(t)
	m := FromGroup(g)

	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, m))

	data := buf.Bytes()
	require.Len(t, data, 84+50*m.TriangleCount())
	assert.Equal(t, uint32(m.TriangleCount()), binary.LittleEndian.Uint32(data[80:84]))
	assert.True(t, strings.HasPrefix(string(data[:80]), g.Name))
}

func TestWriteASCII(t *testing.T) {
	m := FromGroup(buildGroup(t), scene.KindHandle)

	var buf bytes.Buffer
	require.NoError(t, WriteASCII(&buf, m))

	text := buf.String()
	assert.True(t, strings.HasPrefix(text, "solid "))
	assert.Equal(t, m.TriangleCount(), strings.Count(text, "endfacet"))
	assert.Equal(t, 3*m.TriangleCount(), strings.Count(text, "vertex "))
}

func TestSave(t *testing.T) {
	m := FromGroup(buildGroup(t), scene.KindFrame)
	path := filepath.Join(t.TempDir(), "out", "frame.stl")

	require.NoError(t, Save(path, m, false))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(84+50*m.TriangleCount()), info.Size())
}
