package material

import (
	"image/color"
	"testing"

	"github.com/philipparndt/fenster/pkg/product"
	"github.com/philipparndt/fenster/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWhiteDoubleLeaf(t *testing.T) {
	cfg := product.Configuration{
		ProductType:        product.ProductWindow,
		WindowType:         product.WindowDoubleLeaf,
		Width:              1200,
		Height:             1500,
		BaseColor:          "white",
		OutsideColor:       "white",
		InsideColor:        "white",
		RubberColor:        "white",
		GlazingID:          "G1",
		OpeningDirectionID: "left-inward",
	}

	set, err := Resolve(cfg, product.DefaultCatalog())
	require.NoError(t, err)

	white := color.RGBA{255, 255, 255, 255}
	for _, kind := range []scene.Kind{scene.KindFrame, scene.KindDivider, scene.KindHandle, scene.KindSeal} {
		assert.Equal(t, white, set.For(kind).Color, kind.String())
	}
	assert.Equal(t, "G1", set.Glass.Name)
	assert.True(t, set.Glass.Transparent())
	assert.False(t, set.Frame.Transparent())
}

func TestResolveRoleMapping(t *testing.T) {
	cfg := product.DefaultConfiguration()
	cfg.BaseColor = "anthracite"
	cfg.OutsideColor = "golden-oak"
	cfg.InsideColor = "cream"
	cfg.RubberColor = "grey"

	set, err := Resolve(cfg, product.DefaultCatalog())
	require.NoError(t, err)

	assert.Equal(t, "anthracite", set.Frame.Name)
	assert.Equal(t, "anthracite", set.Divider.Name)
	assert.Equal(t, "anthracite", set.Handle.Name)
	assert.Equal(t, "golden-oak", set.SashOutside.Name)
	assert.Equal(t, "cream", set.SashInside.Name)
	assert.Equal(t, "grey", set.Seal.Name)
	assert.Greater(t, set.Handle.Metalness, set.Frame.Metalness)
}

func TestResolveUnknownColor(t *testing.T) {
	cfg := product.DefaultConfiguration()
	cfg.InsideColor = "neon"

	_, err := Resolve(cfg, product.DefaultCatalog())

	var cerr *product.ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "inside_color", cerr.Field)
	assert.Equal(t, "neon", cerr.Value)
}

func TestResolveUnknownGlazing(t *testing.T) {
	cfg := product.DefaultConfiguration()
	cfg.GlazingID = "G7"

	_, err := Resolve(cfg, product.DefaultCatalog())

	var cerr *product.ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "glazing", cerr.Field)
}

func TestResolveBadCatalogHex(t *testing.T) {
	cat := product.NewCatalog(
		[]product.ColorOption{{ID: "white", Hex: "#FFFFFF"}, {ID: "black", Hex: "nope"}},
		[]product.GlazingOption{{ID: "G1", Tint: "#FFFFFF", Opacity: 0.3}},
		[]product.OpeningDirection{{ID: "left-inward", Hinge: product.HingeLeft, Inward: true}},
	)

	_, err := Resolve(product.DefaultConfiguration(), cat)

	var cerr *product.ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "rubber_color", cerr.Field)
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#383E42")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x38, 0x3E, 0x42, 255}, c)

	c, err = ParseHex("fa0")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xFF, 0xAA, 0x00, 255}, c)

	_, err = ParseHex("#12345")
	assert.Error(t, err)
	_, err = ParseHex("#GGGGGG")
	assert.Error(t, err)

	assert.Equal(t, "#383E42", Hex(color.RGBA{0x38, 0x3E, 0x42, 255}))
}
