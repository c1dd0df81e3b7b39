// Package app hosts a preview session in a GPU-accelerated raylib window.
package app

import (
	"errors"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/fenster/pkg/engine"
	"github.com/philipparndt/fenster/pkg/scene"
)

// Run opens the window and blocks until it is closed. A window that cannot
// be created is reported as *engine.ResourceError.
func Run(opts Options) error {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	if opts.Title == "" {
		opts.Title = "Fenster"
	}
	settings := opts.Settings

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(settings.Window.Width), int32(settings.Window.Height), opts.Title)
	if !rl.IsWindowReady() {
		return &engine.ResourceError{Op: "window", Err: errors.New("raylib window could not be created")}
	}
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(settings.Window.FPS))

	app := &App{
		log:      log,
		settings: settings,
		sched:    engine.NewFrameScheduler(),
		mailbox:  engine.NewMailbox(),
		gpu: &gpuCache{
			material: rl.LoadMaterialDefault(),
			meshes:   make(map[*scene.Part]rl.Mesh),
		},
		View: ViewSettings{showHelp: true, showDimensions: true},
		FileWatch: FileWatchState{
			sourceFile: opts.ConfigPath,
		},
		UI: UIState{
			font:       rl.GetFontDefault(),
			background: rl.NewColor(236, 238, 240, 255),
		},
	}
	defer rl.UnloadMaterial(app.gpu.material)

	session, err := engine.NewSession(engine.Options{
		Logger:            log,
		Catalog:           opts.Catalog,
		Surface:           &windowSurface{app: app},
		Scheduler:         app.sched,
		AnimationDuration: settings.Animation.Duration.Duration,
		AutoRotateStep:    settings.Camera.AutoRotateStep,
		DragSensitivity:   settings.Camera.DragSensitivity,
		AutoRotate:        settings.Camera.AutoRotate,
		OnBuild:           app.upload,
	})
	if err != nil {
		return err
	}
	app.session = session
	defer session.Close()

	session.Camera().FOV = mgl64.DegToRad(settings.Camera.FOV)
	session.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	if err := session.SetConfiguration(opts.Configuration); err != nil {
		return err
	}

	if app.FileWatch.sourceFile != "" {
		if err := app.setupFileWatcher(); err != nil {
			log.Warn("auto-reload not available", "error", err)
		}
	}

	session.Loop().OnError(func(err error) {
		log.Error("render failed", "error", err)
		session.Stop()
	})
	if err := session.Start(); err != nil {
		return err
	}

	// Main loop: one scheduled render tick per frame
	for !rl.WindowShouldClose() && session.Running() {
		app.mailbox.Drain()
		app.handleInput()
		app.sched.Pump(time.Now())
	}

	return nil
}
