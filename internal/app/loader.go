package app

import (
	"fmt"
	"time"

	"github.com/philipparndt/fenster/pkg/product"
	"github.com/philipparndt/fenster/pkg/watcher"
)

// setupFileWatcher reloads the configuration file whenever it changes. The
// watcher calls back on its own goroutine, so the reload is posted to the
// window thread's mailbox.
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(app.log, 300*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	callback := func(changedFile string) {
		app.mailbox.Post(app.reloadConfiguration)
	}
	if err := fw.Watch([]string{app.FileWatch.sourceFile}, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}

	fw.Start()
	app.FileWatch.fileWatcher = fw
	app.session.OnTeardown(func() {
		app.mailbox.Close()
		fw.Close()
	})
	app.log.Info("watching configuration", "path", app.FileWatch.sourceFile)
	return nil
}

// reloadConfiguration applies the file's current contents. A broken file
// keeps the current scene.
func (app *App) reloadConfiguration() {
	if app.session.Closed() {
		return
	}
	cfg, err := product.LoadConfiguration(app.FileWatch.sourceFile)
	if err == nil {
		err = app.session.SetConfiguration(cfg)
	}
	app.FileWatch.lastError = err
	if err != nil {
		app.log.Warn("reload failed", "path", app.FileWatch.sourceFile, "error", err)
		return
	}
	app.FileWatch.lastReload = time.Now()
}
