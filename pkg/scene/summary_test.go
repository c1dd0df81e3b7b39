package scene

import (
	"encoding/json"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	g := testGroup()
	g.Parts()[0].Material = Material{Name: "frame", Color: color.RGBA{R: 0xff, G: 0x80, A: 0xff}, Opacity: 1}
	g.Apply([]Motion{{Role: RoleSingle, Angle: math.Pi / 4}})

	s := g.Summarize()
	assert.Equal(t, "test", s.Name)
	require.Len(t, s.Parts, 2)
	assert.Equal(t, "frame", s.Parts[0].Kind)
	assert.Equal(t, "#ff8000", s.Parts[0].Color)
	assert.Equal(t, "single", s.Parts[1].Role)
	assert.Equal(t, [3]float64{0, 0, 10}, s.Parts[1].Position)
	assert.Equal(t, map[string]int{"frame": 1, "sash": 1}, s.Counts)
	require.Len(t, s.Leaves, 1)
	assert.InDelta(t, 45, s.Leaves[0].Angle, 1e-9)
	assert.Equal(t, g.TriangleCount(), s.Triangles)
	assert.InDelta(t, -500, s.Min[0], 1e-9)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"counts":{"frame":1,"sash":1}`)
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("shutter")
	assert.Error(t, err)
}
