package app

import (
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/fenster/internal/config"
	"github.com/philipparndt/fenster/pkg/engine"
	"github.com/philipparndt/fenster/pkg/product"
	"github.com/philipparndt/fenster/pkg/scene"
	"github.com/philipparndt/fenster/pkg/watcher"
)

// App is the raylib window hosting one preview session
type App struct {
	log      *slog.Logger
	settings config.Settings

	session *engine.Session
	sched   *engine.FrameScheduler
	mailbox *engine.Mailbox
	gpu     *gpuCache

	Input     InputState
	View      ViewSettings
	FileWatch FileWatchState
	UI        UIState
}

// InputState holds the pointer bookkeeping between frames
type InputState struct {
	dragging bool
}

// ViewSettings holds display toggles
type ViewSettings struct {
	showWireframe  bool
	showDimensions bool
	showHelp       bool
}

// FileWatchState tracks the configuration file and live reload
type FileWatchState struct {
	sourceFile  string
	fileWatcher *watcher.FileWatcher
	lastReload  time.Time
	lastError   error
}

// UIState holds overlay resources
type UIState struct {
	font       rl.Font
	background rl.Color
}

// gpuCache maps scene parts to their uploaded meshes. Entries are removed
// when the owning group is released.
type gpuCache struct {
	material rl.Material
	meshes   map[*scene.Part]rl.Mesh
}

// Options configures Run
type Options struct {
	Logger   *slog.Logger
	Settings config.Settings
	Catalog  *product.Catalog
	// ConfigPath is watched and reloaded when set
	ConfigPath    string
	Configuration product.Configuration
	Title         string
}
