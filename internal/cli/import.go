package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PanelGrid/internal/engine"
	"github.com/piwi3910/PanelGrid/internal/importer"
	"github.com/piwi3910/PanelGrid/internal/model"
	"github.com/piwi3910/PanelGrid/internal/project"
)

var (
	importOutput string
	importName   string
	importPlace  bool
)

var importCmd = &cobra.Command{
	Use:   "import <panels.csv|panels.xlsx>",
	Short: "Build a layout file from a CSV or Excel panel list",
	Long: `Import reads panel definitions from a spreadsheet and writes a layout
document. Rows without a position are placed one at a time into the largest
free region of the growing layout. Malformed rows are reported and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		input := args[0]

		var result importer.ImportResult
		switch strings.ToLower(filepath.Ext(input)) {
		case ".xlsx", ".xlsm":
			result = importer.ImportExcel(input)
		default:
			result = importer.ImportCSVFile(input)
		}

		for _, w := range result.Warnings {
			log.Warn().Str("file", input).Msg(w)
		}
		for _, e := range result.Errors {
			log.Error().Str("file", input).Msg(e)
		}
		if len(result.Panels) == 0 {
			return fmt.Errorf("no importable panels in %s (%d error(s))", input, len(result.Errors))
		}

		if importPlace {
			result.Panels = placeUnpositioned(result.Panels)
		}

		output := importOutput
		if output == "" {
			output = strings.TrimSuffix(input, filepath.Ext(input)) + ".json"
		}
		name := importName
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(output), ".json")
		}

		doc := engine.ExportLayout(result.Panels, &engine.ExportMetadata{Name: name})
		if err := project.SaveLayout(output, doc); err != nil {
			return fmt.Errorf("failed to save layout: %w", err)
		}

		project.AddRecentLayout(&appConfig, output)
		if err := project.SaveAppConfig(project.DefaultConfigPath(), appConfig); err != nil {
			log.Warn().Err(err).Msg("could not update recent layouts")
		}

		fmt.Printf("wrote %s (%d panel(s), %d row(s) rejected)\n", output, len(result.Panels), len(result.Errors))
		return nil
	},
}

// placeUnpositioned routes panels still sitting at the origin through the
// placement solver, one at a time, so each sees the panels placed before it.
func placeUnpositioned(panels []model.PanelLayout) []model.PanelLayout {
	placed := make([]model.PanelLayout, 0, len(panels))
	for _, p := range panels {
		if p.Position == (model.Position{}) {
			p.Position = engine.FindOptimalPosition(p.Size, placed, containerSize(), appConfig.DefaultPadding, model.PlacementOptions{
				Alignment:          model.AlignTopLeft,
				AvoidOverlap:       true,
				PreferLargestSpace: true,
			})
		}
		placed = append(placed, p)
	}
	return placed
}

func init() {
	importCmd.Flags().StringVarP(&importOutput, "output", "o", "", "output layout file (default: input name with .json)")
	importCmd.Flags().StringVar(&importName, "name", "", "layout name stored in the document metadata")
	importCmd.Flags().BoolVar(&importPlace, "place", true, "solve positions for rows that did not provide one")
	rootCmd.AddCommand(importCmd)
}
