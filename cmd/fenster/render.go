package main

import (
	"os"
	"path/filepath"

	"github.com/philipparndt/fenster/pkg/camera"
	"github.com/philipparndt/fenster/pkg/snapshot"
	"github.com/spf13/cobra"
)

var (
	renderOutput    string
	renderWidth     int
	renderHeight    int
	renderOpen      bool
	renderBack      bool
	renderPitch     float64
	renderYaw       float64
	renderCaption   string
	renderWireframe bool
)

var renderCmd = &cobra.Command{
	Use:   "render [configuration]",
	Short: "Render a preview image to PNG",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	addViewFlags(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "preview.png", "Output PNG file")
	renderCmd.Flags().BoolVar(&renderOpen, "open", false, "Render with the sashes open")
	renderCmd.Flags().StringVar(&renderCaption, "caption", "", "Caption printed in the lower left corner")
	renderCmd.Flags().BoolVar(&renderWireframe, "wireframe", false, "Draw triangle edges")
}

// addViewFlags registers the image size and camera flags shared by render
// and turntable
func addViewFlags(cmd *cobra.Command) {
	defaults := snapshot.DefaultOptions()
	cmd.Flags().IntVar(&renderWidth, "width", defaults.Width, "Image width in pixels")
	cmd.Flags().IntVar(&renderHeight, "height", defaults.Height, "Image height in pixels")
	cmd.Flags().BoolVar(&renderBack, "back", false, "View from inside")
	cmd.Flags().Float64Var(&renderPitch, "pitch", defaults.Pitch, "Camera pitch in degrees")
	cmd.Flags().Float64Var(&renderYaw, "yaw", defaults.Yaw, "Camera yaw in degrees")
}

func snapshotOptions() snapshot.Options {
	opts := snapshot.Options{
		Logger:    logger,
		Catalog:   catalog,
		Width:     renderWidth,
		Height:    renderHeight,
		Open:      renderOpen,
		Pitch:     renderPitch,
		Yaw:       renderYaw,
		Caption:   renderCaption,
		Wireframe: renderWireframe,
	}
	if renderBack {
		opts.View = camera.Back
	}
	return opts
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration(args)
	if err != nil {
		return err
	}

	img, err := snapshot.Still(cfg, snapshotOptions())
	if err != nil {
		return err
	}

	if dir := filepath.Dir(renderOutput); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := writePNG(renderOutput, img); err != nil {
		return err
	}
	logger.Info("rendered preview", "path", renderOutput, "variant", cfg.Variant().String())
	return nil
}
