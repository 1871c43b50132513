package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PanelGrid/internal/engine"
	"github.com/piwi3910/PanelGrid/internal/model"
)

var metricsJSON bool

var metricsCmd = &cobra.Command{
	Use:   "metrics <layout.json>",
	Short: "Print utilization, density, overlap, and gap statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		panels, err := loadPanels(args[0])
		if err != nil {
			return err
		}

		m := engine.CalculateLayoutMetrics(panels, containerSize())
		if metricsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(m)
		}

		fmt.Printf("panels:        %d\n", m.PanelCount)
		fmt.Printf("utilization:   %.1f%%\n", m.Utilization)
		fmt.Printf("used area:     %.0f of %.0f\n", m.UsedArea, m.TotalArea)
		fmt.Printf("density:       %.2f panels / 10k units\n", m.Density)
		fmt.Printf("overlaps:      %d pair(s)\n", m.OverlapCount)
		fmt.Printf("centroid:      (%.0f, %.0f)\n", m.Centroid.X, m.Centroid.Y)
		fmt.Printf("bounding box:  (%.0f, %.0f) %.0f x %.0f\n",
			m.BoundingBox.X, m.BoundingBox.Y, m.BoundingBox.Width, m.BoundingBox.Height)
		fmt.Printf("gaps:          %d region(s)\n", len(m.Gaps))
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare <layout.json>",
	Short: "Compare optimization strategies side by side",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		panels, err := loadPanels(args[0])
		if err != nil {
			return err
		}

		base := model.DefaultOptions(containerSize())
		loose := base
		loose.Compact = false
		snapped := base
		snapped.SnapToGrid = true
		byTitle := base
		byTitle.SortBy = model.SortTitle

		results := engine.CompareScenarios([]engine.ComparisonScenario{
			{Name: "default", Options: base},
			{Name: "no-compaction", Options: loose},
			{Name: "grid-snapped", Options: snapped},
			{Name: "by-title", Options: byTitle},
		}, panels)

		fmt.Printf("%-15s %12s %10s %8s\n", "scenario", "utilization", "overlaps", "gaps")
		for _, r := range results {
			fmt.Printf("%-15s %11.1f%% %10d %8d\n",
				r.Scenario.Name, r.Metrics.Utilization, r.Metrics.OverlapCount, len(r.Metrics.Gaps))
		}
		return nil
	},
}

func init() {
	metricsCmd.Flags().BoolVar(&metricsJSON, "json", false, "emit metrics as JSON")
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(compareCmd)
}
