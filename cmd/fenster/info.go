package main

import (
	"encoding/json"
	"os"

	"github.com/philipparndt/fenster/pkg/analysis"
	"github.com/philipparndt/fenster/pkg/model"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	infoLang string
	infoJSON bool
	infoOpen bool
)

var infoCmd = &cobra.Command{
	Use:   "info [configuration]",
	Short: "Display the parts and quantities of a configuration",
	Long:  "Build the configuration and show its variant, dimensions, parts, profile and seal lengths and glass area.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVar(&infoLang, "lang", "en", "Language for number formatting (e.g. en, de)")
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Print the scene summary as JSON")
	infoCmd.Flags().BoolVar(&infoOpen, "open", false, "Measure with the sashes fully open")
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration(args)
	if err != nil {
		return err
	}
	tag, err := language.Parse(infoLang)
	if err != nil {
		return err
	}

	g, err := model.NewBuilder(logger, catalog).Build(cfg)
	if err != nil {
		return err
	}
	defer g.Release()

	if infoOpen {
		openSashes(g)
	}

	if infoJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(g.Summarize())
	}

	result := analysis.Analyze(g)
	p := message.NewPrinter(tag)

	p.Println("Configuration")
	p.Println("=============")
	if len(args) > 0 {
		p.Printf("File: %s\n", args[0])
	}
	p.Printf("Variant: %s\n", cfg.Variant())
	p.Printf("Size: %.0f × %.0f mm\n", cfg.Width, cfg.Height)
	p.Printf("Colors: base %s, outside %s, inside %s, seals %s\n", cfg.BaseColor, cfg.OutsideColor, cfg.InsideColor, cfg.RubberColor)
	p.Printf("Glazing: %s, opening: %s\n\n", cfg.GlazingID, cfg.OpeningDirectionID)

	p.Println("Parts:")
	for _, kt := range result.Kinds {
		p.Printf("  %-8s %3d parts  %6d triangles  %12.0f mm²  %9.0f mm\n",
			kt.Kind, kt.Parts, kt.Triangles, kt.SurfaceArea, kt.Length)
	}
	p.Println()

	p.Println("Quantities:")
	p.Printf("  Sashes: %d (%d operable)\n", result.Sashes, result.Operable)
	p.Printf("  Handles: %d\n", result.Handles)
	p.Printf("  Profile length: %.0f mm\n", result.ProfileLength)
	p.Printf("  Seal length: %.0f mm\n", result.SealLength)
	p.Printf("  Glass area: %.3f m²\n\n", result.GlassArea/1e6)

	p.Println("Bounding Box:")
	p.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	p.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	p.Printf("  Dimensions: %s\n", analysis.FormatVector(result.Dimensions))
	return nil
}
