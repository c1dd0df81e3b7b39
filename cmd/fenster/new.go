package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/fenster/pkg/product"
	"github.com/spf13/cobra"
)

var (
	newWindowType string
	newDoor       bool
	newForce      bool
)

var newCmd = &cobra.Command{
	Use:   "new <configuration>",
	Short: "Write a starting configuration file",
	Long:  "Write the default configuration to a .toml, .yaml or .json file.",
	Args:  cobra.ExactArgs(1),
	RunE:  runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVarP(&newWindowType, "type", "t", "single", "Window type: single, double-leaf, triple-leaf or fixed")
	newCmd.Flags().BoolVar(&newDoor, "door", false, "Configure a door")
	newCmd.Flags().BoolVar(&newForce, "force", false, "Overwrite an existing file")
}

func runNew(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, err := product.FormatFromPath(path)
	if err != nil {
		return err
	}

	cfg := product.DefaultConfiguration()
	if cfg.WindowType, err = product.ParseWindowType(newWindowType); err != nil {
		return err
	}
	if newDoor {
		cfg.ProductType = product.ProductDoor
		cfg.Width, cfg.Height = 1000, 2100
	}
	if err := cfg.Validate(catalog); err != nil {
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if newForce {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := product.WriteConfiguration(f, cfg, format); err != nil {
		return err
	}
	logger.Info("wrote configuration", "path", path, "variant", cfg.Variant().String())
	return nil
}
