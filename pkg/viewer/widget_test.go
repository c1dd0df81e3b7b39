package viewer

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/philipparndt/fenster/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachedPreviewDropsEventsAfterClose(t *testing.T) {
	test.NewTempApp(t)

	surface, err := NewRasterSurface(64, 48)
	require.NoError(t, err)
	preview := NewPreview(surface)

	session, err := engine.NewSession(engine.Options{
		Surface:         preview.Surface(),
		DragSensitivity: 0.5,
	})
	require.NoError(t, err)
	preview.Attach(session)

	drag := &fyne.DragEvent{Dragged: fyne.Delta{DX: 40, DY: 0}}
	preview.Dragged(drag)
	assert.InDelta(t, 20, session.CameraState().RotationY, 1e-9)

	// window closed mid-drag
	session.Close()

	assert.NotPanics(t, func() {
		preview.Dragged(drag)
		preview.DragEnd()
		preview.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: 10}})
	})
}
