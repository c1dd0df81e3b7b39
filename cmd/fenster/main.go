package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/philipparndt/fenster/internal/config"
	"github.com/philipparndt/fenster/pkg/animation"
	"github.com/philipparndt/fenster/pkg/engine"
	"github.com/philipparndt/fenster/pkg/product"
	"github.com/philipparndt/fenster/pkg/scene"
	"github.com/philipparndt/fenster/version"
	"github.com/spf13/cobra"
)

var (
	settingsPath string
	catalogPath  string
	logLevel     string

	settings config.Settings
	logger   *slog.Logger
	catalog  *product.Catalog
)

var rootCmd = &cobra.Command{
	Use:   "fenster",
	Short: "Parametric window and door preview",
	Long: `fenster builds 3D previews of configured windows and doors. It renders
them in a window, to PNG images and turntables, exports STL and OpenSCAD
models and serves previews over HTTP.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "Settings file (TOML), created with defaults if missing")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog file (.toml, .yaml or .json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
}

// setup loads settings, logger, error reporting and catalog for every command
func setup(cmd *cobra.Command, args []string) error {
	s, err := config.Load(settingsPath)
	if err != nil {
		return err
	}
	settings = s
	if logLevel != "" {
		settings.Fenster.LogLevel = logLevel
	}

	l, err := settings.NewLogger()
	if err != nil {
		return err
	}
	logger = l
	slog.SetDefault(logger)

	if dsn := settings.Fenster.SentryDsn; dsn != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:     dsn,
			Release: "fenster@" + version.GetVersion(),
		})
		if err != nil {
			logger.Warn("sentry disabled", "error", err)
		}
	}

	path := catalogPath
	if path == "" {
		path = settings.Fenster.Catalog
	}
	catalog = product.DefaultCatalog()
	if path != "" {
		c, err := product.LoadCatalog(path)
		if err != nil {
			return err
		}
		catalog = c
	}
	return nil
}

// loadConfiguration reads the optional configuration file argument
func loadConfiguration(args []string) (product.Configuration, error) {
	if len(args) == 0 {
		return product.DefaultConfiguration(), nil
	}
	return product.LoadConfiguration(args[0])
}

// openSashes poses every operable sash of g fully open
func openSashes(g *scene.Group) {
	anim := animation.New(0)
	anim.Reset(g.Leaves())
	anim.RequestOpen()
	anim.Finish()
	g.Apply(anim.Motions())
}

// report sends errors the user cannot fix by changing input to Sentry
func report(err error) {
	var rerr *engine.ResourceError
	if errors.As(err, &rerr) {
		sentry.CaptureException(err)
	}
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		report(err)
	}
	sentry.Flush(2 * time.Second)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
