package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/fenster/internal/config"
	"github.com/philipparndt/fenster/pkg/analysis"
	"github.com/philipparndt/fenster/pkg/engine"
	"github.com/philipparndt/fenster/pkg/product"
	"github.com/philipparndt/fenster/pkg/viewer"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
)

type App struct {
	window  fyne.Window
	log     *slog.Logger
	catalog *product.Catalog
	session *engine.Session
	preview *viewer.Preview

	form    ConfigForm
	syncing bool

	status *widget.Label
	info   *widget.Label
}

// ConfigForm holds the configurator inputs
type ConfigForm struct {
	product   *widget.Select
	window    *widget.Select
	width     *widget.Entry
	height    *widget.Entry
	base      *widget.Select
	outside   *widget.Select
	inside    *widget.Select
	rubber    *widget.Select
	glazing   *widget.Select
	direction *widget.Select
}

func main() {
	settingsPath := pflag.String("settings", "", "Settings file (TOML), created with defaults if missing")
	pflag.Parse()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}
	log, err := settings.NewLogger()
	if err != nil {
		panic(err)
	}

	catalog := product.DefaultCatalog()
	if settings.Fenster.Catalog != "" {
		catalog, err = product.LoadCatalog(settings.Fenster.Catalog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
			os.Exit(1)
		}
	}

	cfg := product.DefaultConfiguration()
	if pflag.NArg() > 0 {
		cfg, err = product.LoadConfiguration(pflag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			os.Exit(1)
		}
	}

	a := app.New()
	w := a.NewWindow("Fenster - Configurator")

	surface, err := viewer.NewRasterSurface(800, 600)
	if err != nil {
		panic(err)
	}

	appInstance := &App{
		window:  w,
		log:     log,
		catalog: catalog,
		preview: viewer.NewPreview(surface),
		status:  widget.NewLabel(""),
		info:    widget.NewLabel(""),
	}

	session, err := engine.NewSession(engine.Options{
		Logger:            log,
		Catalog:           appInstance.catalog,
		Surface:           appInstance.preview.Surface(),
		Scheduler:         engine.NewTickerScheduler(settings.FrameInterval(), fyne.Do),
		AnimationDuration: settings.Animation.Duration.Duration,
		AutoRotateStep:    settings.Camera.AutoRotateStep,
		DragSensitivity:   settings.Camera.DragSensitivity,
		AutoRotate:        settings.Camera.AutoRotate,
	})
	if err != nil {
		panic(err)
	}
	session.Camera().FOV = mgl64.DegToRad(settings.Camera.FOV)
	appInstance.session = session
	appInstance.preview.Attach(session)

	appInstance.setupMainUI()
	appInstance.load(cfg)
	if err := session.Start(); err != nil {
		panic(err)
	}

	w.SetOnClosed(session.Close)
	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) setupMainUI() {
	cat := a.catalog
	colors := lo.Map(cat.Colors, func(c product.ColorOption, _ int) string { return c.ID })
	changed := func(string) { a.apply() }

	a.form = ConfigForm{
		product:   widget.NewSelect([]string{string(product.ProductWindow), string(product.ProductDoor)}, changed),
		window:    widget.NewSelect([]string{"single", "double-leaf", "triple-leaf", "fixed"}, changed),
		width:     widget.NewEntry(),
		height:    widget.NewEntry(),
		base:      widget.NewSelect(colors, changed),
		outside:   widget.NewSelect(colors, changed),
		inside:    widget.NewSelect(colors, changed),
		rubber:    widget.NewSelect(colors, changed),
		glazing:   widget.NewSelect(lo.Map(cat.Glazing, func(g product.GlazingOption, _ int) string { return g.ID }), changed),
		direction: widget.NewSelect(lo.Map(cat.OpeningDirections, func(d product.OpeningDirection, _ int) string { return d.ID }), changed),
	}
	a.form.width.OnSubmitted = changed
	a.form.height.OnSubmitted = changed

	form := widget.NewForm(
		widget.NewFormItem("Product", a.form.product),
		widget.NewFormItem("Window type", a.form.window),
		widget.NewFormItem("Width (mm)", a.form.width),
		widget.NewFormItem("Height (mm)", a.form.height),
		widget.NewFormItem("Base color", a.form.base),
		widget.NewFormItem("Outside", a.form.outside),
		widget.NewFormItem("Inside", a.form.inside),
		widget.NewFormItem("Seals", a.form.rubber),
		widget.NewFormItem("Glazing", a.form.glazing),
		widget.NewFormItem("Opening", a.form.direction),
	)

	sashButton := widget.NewButton("Open / Close", func() {
		a.session.ToggleSash()
	})
	autoRotate := widget.NewCheck("Auto-rotate", func(on bool) {
		a.session.SetAutoRotate(on)
	})
	autoRotate.SetChecked(a.session.CameraState().AutoRotating)
	viewButton := widget.NewButton("Front / Back", func() {
		a.session.ToggleView()
	})
	resetButton := widget.NewButton("Reset View", func() {
		a.session.ResetView()
	})
	openButton := widget.NewButton("Open Configuration", a.showFileDialog)
	saveButton := widget.NewButton("Save Configuration", a.showSaveDialog)
	snapshotButton := widget.NewButton("Save Snapshot", a.showSnapshotDialog)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag to rotate the view\n" +
			"• Scroll to zoom in/out\n" +
			"• Press Enter after editing a size",
	)
	instructions.Wrapping = fyne.TextWrapWord
	a.status.Wrapping = fyne.TextWrapWord

	panel := container.NewVBox(
		widget.NewLabel("Configuration:"),
		widget.NewSeparator(),
		form,
		a.status,
		widget.NewSeparator(),
		widget.NewLabel("Preview:"),
		sashButton,
		autoRotate,
		viewButton,
		resetButton,
		widget.NewSeparator(),
		a.info,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
		saveButton,
		snapshotButton,
	)

	panelScroll := container.NewVScroll(panel)
	panelScroll.SetMinSize(fyne.NewSize(320, 0))

	content := container.NewBorder(
		nil,         // top
		nil,         // bottom
		nil,         // left
		panelScroll, // right
		a.preview,   // center
	)

	a.window.SetContent(content)
}

// load shows cfg in the form and applies it
func (a *App) load(cfg product.Configuration) {
	a.syncing = true
	a.form.product.SetSelected(string(cfg.ProductType))
	a.form.window.SetSelected(string(cfg.WindowType.Normalize()))
	a.form.width.SetText(strconv.FormatFloat(cfg.Width, 'f', -1, 64))
	a.form.height.SetText(strconv.FormatFloat(cfg.Height, 'f', -1, 64))
	a.form.base.SetSelected(cfg.BaseColor)
	a.form.outside.SetSelected(cfg.OutsideColor)
	a.form.inside.SetSelected(cfg.InsideColor)
	a.form.rubber.SetSelected(cfg.RubberColor)
	a.form.glazing.SetSelected(cfg.GlazingID)
	a.form.direction.SetSelected(cfg.OpeningDirectionID)
	a.syncing = false
	a.apply()
}

// configuration reads the form
func (a *App) configuration() (product.Configuration, error) {
	width, err := strconv.ParseFloat(a.form.width.Text, 64)
	if err != nil {
		return product.Configuration{}, &product.ConfigurationError{Field: "width", Value: a.form.width.Text, Reason: "not a number"}
	}
	height, err := strconv.ParseFloat(a.form.height.Text, 64)
	if err != nil {
		return product.Configuration{}, &product.ConfigurationError{Field: "height", Value: a.form.height.Text, Reason: "not a number"}
	}
	return product.Configuration{
		ProductType:        product.ProductType(a.form.product.Selected),
		WindowType:         product.WindowType(a.form.window.Selected),
		Width:              width,
		Height:             height,
		BaseColor:          a.form.base.Selected,
		OutsideColor:       a.form.outside.Selected,
		InsideColor:        a.form.inside.Selected,
		RubberColor:        a.form.rubber.Selected,
		GlazingID:          a.form.glazing.Selected,
		OpeningDirectionID: a.form.direction.Selected,
	}, nil
}

// apply rebuilds the scene from the form. A rejected configuration leaves
// the current preview in place.
func (a *App) apply() {
	if a.syncing {
		return
	}
	cfg, err := a.configuration()
	if err == nil {
		err = a.session.SetConfiguration(cfg)
	}
	if err != nil {
		a.status.SetText(err.Error())
		return
	}
	a.status.SetText("")
	a.updateInfo()
}

func (a *App) updateInfo() {
	g := a.session.Group()
	if g == nil {
		a.info.SetText("")
		return
	}
	result := analysis.Analyze(g)
	a.info.SetText(fmt.Sprintf(
		"Parts: %d\nTriangles: %d\nSashes: %d (%d operable)\nProfile: %.0f mm\nSeals: %.0f mm\nGlass: %.3f m²",
		len(g.Parts()),
		g.TriangleCount(),
		result.Sashes,
		result.Operable,
		result.ProfileLength,
		result.SealLength,
		result.GlassArea/1e6,
	))
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		format, err := product.FormatFromPath(reader.URI().Path())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		cfg, err := product.DecodeConfiguration(reader, format)
		if err != nil {
			dialog.ShowError(fmt.Errorf("failed to load configuration: %w", err), a.window)
			return
		}
		a.load(cfg)
	}, a.window)
}

func (a *App) showSaveDialog() {
	cfg, ok := a.session.Configuration()
	if !ok {
		return
	}
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		format, err := product.FormatFromPath(writer.URI().Path())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if err := product.WriteConfiguration(writer, cfg, format); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
}

func (a *App) showSnapshotDialog() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		if err := png.Encode(writer, a.preview.Snapshot()); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
}
