package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/fenster/pkg/export"
	"github.com/philipparndt/fenster/pkg/model"
	"github.com/philipparndt/fenster/pkg/openscad"
	"github.com/philipparndt/fenster/pkg/scene"
	"github.com/philipparndt/fenster/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportFormat string
	exportKinds  []string
	exportCells  int
	exportOpen   bool
	exportRender bool
)

var exportCmd = &cobra.Command{
	Use:   "export [configuration]",
	Short: "Export the configured product as STL or OpenSCAD",
	Long: `Export the product geometry. Formats:
  stl        binary STL triangle soup
  stl-ascii  ASCII STL triangle soup
  solid      watertight STL via signed distance fields and marching cubes
  scad       OpenSCAD program (--render converts it with openscad)`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: product.<ext>)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "stl", "Format: stl, stl-ascii, solid or scad")
	exportCmd.Flags().StringSliceVarP(&exportKinds, "kinds", "k", nil, "Only export these part kinds (frame, sash, divider, glass, seal, handle)")
	exportCmd.Flags().IntVar(&exportCells, "cells", export.DefaultCells, "Marching cubes resolution along the longest side (solid)")
	exportCmd.Flags().BoolVar(&exportOpen, "open", false, "Export with the sashes open")
	exportCmd.Flags().BoolVar(&exportRender, "render", false, "Render the SCAD file to STL with openscad (scad)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration(args)
	if err != nil {
		return err
	}
	kinds, err := parseKinds(exportKinds)
	if err != nil {
		return err
	}

	g, err := model.NewBuilder(logger, catalog).Build(cfg)
	if err != nil {
		return err
	}
	defer g.Release()
	if exportOpen {
		openSashes(g)
	}

	output := exportOutput
	if output == "" {
		ext := ".stl"
		if exportFormat == "scad" {
			ext = ".scad"
		}
		output = "product" + ext
	}

	switch exportFormat {
	case "stl", "stl-ascii":
		m := stl.FromGroup(g, kinds...)
		if err := stl.Save(output, m, exportFormat == "stl-ascii"); err != nil {
			return err
		}
		logger.Info("exported", "path", output, "triangles", m.TriangleCount())
	case "solid":
		m, err := export.Save(output, g, exportCells, kinds...)
		if err != nil {
			return err
		}
		logger.Info("exported solid", "path", output, "triangles", m.TriangleCount())
	case "scad":
		if err := openscad.Save(output, g, kinds...); err != nil {
			return err
		}
		logger.Info("exported", "path", output)
		if exportRender {
			stlPath := strings.TrimSuffix(output, filepath.Ext(output)) + ".stl"
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			if err := openscad.NewRenderer(wd).RenderToSTL(cmd.Context(), output, stlPath); err != nil {
				return err
			}
			logger.Info("rendered", "path", stlPath)
		}
	default:
		return fmt.Errorf("unknown format %q", exportFormat)
	}
	return nil
}

func parseKinds(names []string) ([]scene.Kind, error) {
	kinds := make([]scene.Kind, 0, len(names))
	for _, name := range names {
		k, err := scene.ParseKind(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
