package main

import (
	"os/signal"
	"syscall"

	"github.com/philipparndt/fenster/internal/server"
	"github.com/spf13/cobra"
)

var serveAddress string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve previews over HTTP",
	Long: `Start the preview service:
  GET  /healthz       liveness
  GET  /catalog       catalog as JSON
  POST /scene         part summary for a JSON configuration
  POST /preview.png   rendered preview (query: width, height, open, view, pitch, yaw)`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddress, "address", "", "Listen address (default from settings)")
}

func runServe(cmd *cobra.Command, args []string) error {
	address := serveAddress
	if address == "" {
		address = settings.Server.Address
	}

	srv := server.New(logger, server.Options{
		Address: address,
		Catalog: catalog,
		Width:   settings.Server.ImageWidth,
		Height:  settings.Server.ImageHeight,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}

