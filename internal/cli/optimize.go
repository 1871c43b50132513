package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PanelGrid/internal/engine"
	"github.com/piwi3910/PanelGrid/internal/model"
	"github.com/piwi3910/PanelGrid/internal/project"
)

var (
	optimizeOutput   string
	optimizeGrid     float64
	optimizePadding  float64
	optimizeSort     string
	optimizeCompact  bool
	optimizeSnap     bool
	optimizePreserve bool
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize <layout.json>",
	Short: "Rearrange a layout to reduce overlap and wasted space",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		panels, err := loadPanels(args[0])
		if err != nil {
			return err
		}

		opts := model.DefaultOptions(containerSize())
		appConfig.ApplyToOptions(&opts)
		opts.ContainerSize = containerSize()
		opts.GridSize = optimizeGrid
		opts.Padding = optimizePadding
		opts.Compact = optimizeCompact
		opts.SnapToGrid = optimizeSnap
		opts.PreserveRelativePositions = optimizePreserve
		opts.SortBy = model.SortKey(optimizeSort)

		before := engine.CalculateLayoutMetrics(panels, opts.ContainerSize)
		optimized := engine.OptimizeLayout(panels, opts)
		after := engine.CalculateLayoutMetrics(optimized, opts.ContainerSize)

		log.Info().
			Int("overlaps_before", before.OverlapCount).
			Int("overlaps_after", after.OverlapCount).
			Float64("utilization", after.Utilization).
			Msg("layout optimized")

		output := optimizeOutput
		if output == "" {
			output = args[0]
		}
		doc := engine.ExportLayout(optimized, &engine.ExportMetadata{Name: "Optimized layout"})
		if err := project.SaveLayout(output, doc); err != nil {
			return fmt.Errorf("failed to save optimized layout: %w", err)
		}
		fmt.Printf("wrote %s (%d panel(s), %d overlap(s) remaining)\n", output, len(optimized), after.OverlapCount)
		return nil
	},
}

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeOutput, "output", "o", "", "output file (default: overwrite input)")
	optimizeCmd.Flags().Float64Var(&optimizeGrid, "grid", 20, "grid size for snapping and compaction")
	optimizeCmd.Flags().Float64Var(&optimizePadding, "padding", 20, "inset from the container edges")
	optimizeCmd.Flags().StringVar(&optimizeSort, "sort", "area", "sort key: area, title, or empty for input order")
	optimizeCmd.Flags().BoolVar(&optimizeCompact, "compact", true, "nudge panels toward the origin")
	optimizeCmd.Flags().BoolVar(&optimizeSnap, "snap", false, "snap positions to the grid")
	optimizeCmd.Flags().BoolVar(&optimizePreserve, "preserve", false, "keep current positions, skip repositioning")
	rootCmd.AddCommand(optimizeCmd)
}
