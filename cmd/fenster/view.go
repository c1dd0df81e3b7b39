package main

import (
	"path/filepath"

	"github.com/philipparndt/fenster/internal/app"
	"github.com/spf13/cobra"
)

var viewNoWatch bool

var viewCmd = &cobra.Command{
	Use:   "view [configuration]",
	Short: "Open an interactive preview window",
	Long: `Open a GPU preview of the configuration. The configuration file is watched
and the preview updates when it is saved.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().BoolVar(&viewNoWatch, "no-watch", false, "Do not reload the configuration file on change")
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration(args)
	if err != nil {
		return err
	}

	opts := app.Options{
		Logger:        logger,
		Settings:      settings,
		Catalog:       catalog,
		Configuration: cfg,
		Title:         "Fenster",
	}
	if len(args) > 0 {
		opts.Title = "Fenster - " + filepath.Base(args[0])
		if !viewNoWatch {
			opts.ConfigPath = args[0]
		}
	}
	return app.Run(opts)
}
