package main

import (
	"os"

	"github.com/philipparndt/fenster/pkg/product"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var catalogFormat string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the colors, glazing and opening directions",
	Long: `List the catalog the configurations are checked against. With --format the
catalog is written as toml, yaml or json, a starting point for a custom
catalog file.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVarP(&catalogFormat, "format", "f", "", "Write the catalog as toml, yaml or json")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	if catalogFormat != "" {
		return product.WriteCatalog(os.Stdout, catalog, product.Format(catalogFormat))
	}

	p := message.NewPrinter(language.English)

	p.Println("Colors:")
	for _, c := range catalog.Colors {
		p.Printf("  %-16s %-8s %s\n", c.ID, c.Hex, c.Name)
	}
	p.Println()

	p.Println("Glazing:")
	for _, g := range catalog.Glazing {
		p.Printf("  %-16s %d panes  %-8s opacity %.2f  %s\n", g.ID, g.Panes, g.Tint, g.Opacity, g.Name)
	}
	p.Println()

	p.Println("Opening directions:")
	for _, d := range catalog.OpeningDirections {
		swing := "outward"
		if d.Inward {
			swing = "inward"
		}
		p.Printf("  %-16s %-5s %-7s %s\n", d.ID, d.Hinge, swing, d.Name)
	}
	return nil
}
