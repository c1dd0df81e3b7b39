package viewer

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/fenster/pkg/camera"
	"github.com/philipparndt/fenster/pkg/engine"
	"github.com/philipparndt/fenster/pkg/scene"
)

// Controls is the part of a session the preview widget forwards input to
type Controls interface {
	BeginDrag()
	Drag(dx, dy float64)
	EndDrag()
	Resize(width, height int)
	Zoom(delta float64)
}

// Preview is a fyne widget showing a RasterSurface. Sessions draw through
// Surface, which refreshes the widget after every frame.
type Preview struct {
	widget.BaseWidget
	surface   *RasterSurface
	image     *canvas.Image
	controls  Controls
	dragStart *fyne.Position
}

// NewPreview creates a preview widget drawing into surface
func NewPreview(surface *RasterSurface) *Preview {
	p := &Preview{
		surface: surface,
		image:   canvas.NewImageFromImage(surface.Image()),
	}
	p.image.FillMode = canvas.ImageFillStretch
	p.image.ScaleMode = canvas.ImageScaleFastest
	p.ExtendBaseWidget(p)
	return p
}

// SetControls connects pointer and layout events to a session
func (p *Preview) SetControls(c Controls) {
	p.controls = c
}

// Attach forwards input to s until s is closed. Events arriving after
// teardown are dropped.
func (p *Preview) Attach(s *engine.Session) {
	p.SetControls(s)
	s.OnTeardown(func() {
		p.SetControls(nil)
		p.dragStart = nil
	})
}

// Surface returns the render target sessions draw into
func (p *Preview) Surface() engine.Surface {
	return previewSurface{preview: p}
}

func (p *Preview) draw(g *scene.Group, cam *camera.Camera) error {
	if err := p.surface.Draw(g, cam); err != nil {
		return err
	}
	p.image.Image = p.surface.Image()
	p.image.Refresh()
	return nil
}

type previewSurface struct {
	preview *Preview
}

func (s previewSurface) Resize(width, height int) {
	s.preview.surface.Resize(width, height)
}

func (s previewSurface) Draw(g *scene.Group, cam *camera.Camera) error {
	return s.preview.draw(g, cam)
}

// Snapshot returns the last rendered frame
func (p *Preview) Snapshot() image.Image {
	return p.surface.Image()
}

// CreateRenderer creates the renderer for the widget
func (p *Preview) CreateRenderer() fyne.WidgetRenderer {
	return &previewRenderer{preview: p}
}

// Dragged handles mouse drag events for rotation
func (p *Preview) Dragged(event *fyne.DragEvent) {
	if p.controls == nil {
		return
	}
	if p.dragStart == nil {
		p.controls.BeginDrag()
	}
	p.controls.Drag(float64(event.Dragged.DX), float64(event.Dragged.DY))
	pos := event.Position
	p.dragStart = &pos
}

// DragEnd handles the end of a drag event
func (p *Preview) DragEnd() {
	p.dragStart = nil
	if p.controls != nil {
		p.controls.EndDrag()
	}
}

// Scrolled handles scroll events for zooming
func (p *Preview) Scrolled(event *fyne.ScrollEvent) {
	if p.controls != nil {
		p.controls.Zoom(-float64(event.Scrolled.DY) * 0.001)
	}
}

// previewRenderer implements fyne.WidgetRenderer
type previewRenderer struct {
	preview *Preview
}

func (r *previewRenderer) Layout(size fyne.Size) {
	r.preview.image.Resize(size)
	r.preview.image.Move(fyne.NewPos(0, 0))

	scale := float32(1)
	if c := fyne.CurrentApp().Driver().CanvasForObject(r.preview); c != nil {
		scale = c.Scale()
	}
	w, h := int(size.Width*scale), int(size.Height*scale)
	if r.preview.controls != nil {
		r.preview.controls.Resize(w, h)
	} else {
		r.preview.surface.Resize(w, h)
	}
}

func (r *previewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *previewRenderer) Refresh() {
	canvas.Refresh(r.preview.image)
}

func (r *previewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.preview.image}
}

func (r *previewRenderer) Destroy() {}
