package product

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeConfigurationTOML(t *testing.T) {
	src := `
product_type = "door"
window_type = "double-leaf"
width = 1400
height = 2100
base_color = "anthracite"
glazing = "G2"
`
	cfg, err := DecodeConfiguration(strings.NewReader(src), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, ProductDoor, cfg.ProductType)
	assert.Equal(t, WindowDoubleLeaf, cfg.WindowType)
	assert.Equal(t, 1400.0, cfg.Width)
	assert.Equal(t, "anthracite", cfg.BaseColor)
	// untouched fields keep their defaults
	assert.Equal(t, "black", cfg.RubberColor)
	require.NoError(t, cfg.Validate(DefaultCatalog()))
}

func TestInfiniteWidthFromFileIsRejected(t *testing.T) {
	for format, src := range map[Format]string{
		FormatTOML: "width = inf\n",
		FormatYAML: "width: .inf\n",
	} {
		t.Run(string(format), func(t *testing.T) {
			cfg, err := DecodeConfiguration(strings.NewReader(src), format)
			require.NoError(t, err)

			var cerr *ConfigurationError
			require.ErrorAs(t, cfg.Validate(DefaultCatalog()), &cerr)
			assert.Equal(t, "width", cerr.Field)
		})
	}
}

func TestDecodeConfigurationYAML(t *testing.T) {
	src := "product_type: window\nwindow_type: triple-leaf\nwidth: 2400\nheight: 1400\n"
	cfg, err := DecodeConfiguration(strings.NewReader(src), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, WindowTripleLeaf, cfg.WindowType)
	assert.Equal(t, 2400.0, cfg.Width)
}

func TestDecodeConfigurationJSON(t *testing.T) {
	src := `{"productType":"window","windowType":"fixed","width":800,"height":600,"glazingId":"G3"}`
	cfg, err := DecodeConfiguration(strings.NewReader(src), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, WindowFixed, cfg.WindowType)
	assert.Equal(t, "G3", cfg.GlazingID)
}

func TestLoadConfigurationFile(t *testing.T) {
	var buf bytes.Buffer
	want := DefaultConfiguration()
	want.WindowType = WindowDoubleLeaf
	want.Width = 1200
	require.NoError(t, WriteConfiguration(&buf, want, FormatTOML))

	path := filepath.Join(t.TempDir(), "window.toml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	got, err := LoadConfiguration(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadConfigurationUnsupportedExtension(t *testing.T) {
	_, err := LoadConfiguration("window.ini")
	assert.Error(t, err)
}

func TestDecodeCatalogIndexes(t *testing.T) {
	src := `
[[colors]]
id = "red"
name = "Signal red"
hex = "#A52019"

[[glazing]]
id = "G1"
name = "Double"
tint = "#FFFFFF"
opacity = 0.3

[[opening_directions]]
id = "left-inward"
hinge = "left"
inward = true
`
	cat, err := DecodeCatalog(strings.NewReader(src), FormatTOML)
	require.NoError(t, err)

	red, err := cat.Color("red")
	require.NoError(t, err)
	assert.Equal(t, "#A52019", red.Hex)

	dir, err := cat.OpeningDirection("left-inward")
	require.NoError(t, err)
	assert.Equal(t, HingeLeft, dir.Hinge)

	_, err = cat.Color("white")
	var cerr *ConfigurationError
	assert.ErrorAs(t, err, &cerr)
}

func TestDecodeCatalogRequiresColors(t *testing.T) {
	_, err := DecodeCatalog(strings.NewReader(`{"glazing":[]}`), FormatJSON)
	assert.Error(t, err)
}

func TestWriteCatalogRoundTrip(t *testing.T) {
	def := DefaultCatalog()
	for _, format := range []Format{FormatTOML, FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteCatalog(&buf, def, format))

			cat, err := DecodeCatalog(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, def.Colors, cat.Colors)
			assert.Equal(t, def.OpeningDirections, cat.OpeningDirections)

			_, err = cat.GlazingOption("G1")
			assert.NoError(t, err)
		})
	}
}
