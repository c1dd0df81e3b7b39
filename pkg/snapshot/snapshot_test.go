package snapshot

import (
	"errors"
	"image"
	"testing"

	"github.com/philipparndt/fenster/pkg/camera"
	"github.com/philipparndt/fenster/pkg/product"
	"github.com/philipparndt/fenster/pkg/viewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallOptions() Options {
	opts := DefaultOptions()
	opts.Width, opts.Height = 160, 120
	return opts
}

func covered(img *image.RGBA) int {
	n := 0
	bg := viewer.DefaultBackground
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				n++
			}
		}
	}
	return n
}

func TestStillDrawsWindow(t *testing.T) {
	img, err := Still(product.DefaultConfiguration(), smallOptions())
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 160, 120), img.Bounds())
	assert.Greater(t, covered(img), 160*120/10)
}

func TestStillOpenDiffersFromClosed(t *testing.T) {
	opts := smallOptions()
	closed, err := Still(product.DefaultConfiguration(), opts)
	require.NoError(t, err)

	opts.Open = true
	open, err := Still(product.DefaultConfiguration(), opts)
	require.NoError(t, err)

	assert.NotEqual(t, closed.Pix, open.Pix)
}

func TestStillBackView(t *testing.T) {
	opts := smallOptions()
	opts.Pitch, opts.Yaw = 0, 0
	front, err := Still(product.DefaultConfiguration(), opts)
	require.NoError(t, err)

	opts.View = camera.Back
	back, err := Still(product.DefaultConfiguration(), opts)
	require.NoError(t, err)

	assert.NotEqual(t, front.Pix, back.Pix)
}

func TestStillRejectsInvalidConfiguration(t *testing.T) {
	cfg := product.DefaultConfiguration()
	cfg.Width = -1

	_, err := Still(cfg, smallOptions())
	var cerr *product.ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "width", cerr.Field)
}

func TestStillRejectsEmptySurface(t *testing.T) {
	opts := smallOptions()
	opts.Width = 0
	_, err := Still(product.DefaultConfiguration(), opts)
	require.Error(t, err)
}

func TestSequenceRendersEveryFrame(t *testing.T) {
	var seen []int
	var first, middle []byte
	err := Sequence(product.DefaultConfiguration(), smallOptions(), 8, 8, func(i int, img *image.RGBA) error {
		seen = append(seen, i)
		switch i {
		case 0:
			first = img.Pix
		case 4:
			middle = img.Pix
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, seen)
	assert.NotEqual(t, first, middle)
}

func TestSequenceStopsOnError(t *testing.T) {
	stop := errors.New("disk full")
	calls := 0
	err := Sequence(product.DefaultConfiguration(), smallOptions(), 10, 10, func(i int, _ *image.RGBA) error {
		calls++
		if i == 2 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 3, calls)
}

func TestSequenceRejectsBadTiming(t *testing.T) {
	err := Sequence(product.DefaultConfiguration(), smallOptions(), 0, 30, func(int, *image.RGBA) error { return nil })
	require.Error(t, err)
}
