// Package cli provides the Cobra commands for the panelgrid tool. Commands
// read and write layout documents on disk and hand the actual work to the
// engine, which stays a pure data-in/data-out library.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/piwi3910/PanelGrid/internal/logging"
	"github.com/piwi3910/PanelGrid/internal/model"
	"github.com/piwi3910/PanelGrid/internal/project"
)

var (
	log       zerolog.Logger
	appConfig model.AppConfig

	// Shared container flags; every command operates against a viewport.
	containerWidth  float64
	containerHeight float64

	rootCmd = &cobra.Command{
		Use:   "panelgrid",
		Short: "Panel layout and space-allocation engine for the PanelGrid shell",
		Long: `PanelGrid - layout tooling for movable, resizable panels.

Computes where panels may legally sit, finds free space for new panels,
detects and resolves overlaps, compacts arrangements, and reads/writes
portable layout documents.

Use the subcommands to validate, optimize, and inspect layout files, to
import panel lists from spreadsheets, and to export diagrams and reports.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}
			log = logging.NewFromEnv()

			var err error
			appConfig, err = project.LoadAppConfig(project.DefaultConfigPath())
			if err != nil {
				log.Warn().Err(err).Msg("could not load app config, using defaults")
				appConfig = model.DefaultAppConfig()
			}
			if !cmd.Flags().Changed("width") {
				containerWidth = appConfig.DefaultContainerWidth
			}
			if !cmd.Flags().Changed("height") {
				containerHeight = appConfig.DefaultContainerHeight
			}
			return nil
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Float64Var(&containerWidth, "width", 1920, "container width in viewport units")
	rootCmd.PersistentFlags().Float64Var(&containerHeight, "height", 1080, "container height in viewport units")
}

func containerSize() model.Size {
	return model.Size{Width: containerWidth, Height: containerHeight}
}

// loadPanels reads a layout file through the lenient importer and logs how
// much of it survived.
func loadPanels(path string) ([]model.PanelLayout, error) {
	result, err := project.LoadLayout(path)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, fmt.Errorf("import failed: %s", result.Error)
	}
	if result.Skipped > 0 {
		log.Warn().Int("skipped", result.Skipped).Str("file", path).
			Msg("dropped malformed panel entries during import")
	}
	log.Debug().Int("panels", len(result.Panels)).Str("file", path).Msg("layout loaded")
	return result.Panels, nil
}
