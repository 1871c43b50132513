package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PanelGrid/internal/engine"
	"github.com/piwi3910/PanelGrid/internal/model"
)

var (
	placeWidth   float64
	placeHeight  float64
	placeAlign   string
	placeAvoid   bool
	placeLargest bool
)

var placeCmd = &cobra.Command{
	Use:   "place <layout.json>",
	Short: "Find a position for a new panel in an existing layout",
	Long: `Place answers "where would a panel of this size go?" against the panels
in a layout file and prints the chosen position. With --avoid-overlap the
solver prefers free regions and falls back to cascade positioning; the
terminal fallback is best-effort and may overlap.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		panels, err := loadPanels(args[0])
		if err != nil {
			return err
		}

		size := model.Size{Width: placeWidth, Height: placeHeight}
		pos := engine.FindOptimalPosition(size, panels, containerSize(), appConfig.DefaultPadding, model.PlacementOptions{
			Alignment:          model.Alignment(placeAlign),
			AvoidOverlap:       placeAvoid,
			PreferLargestSpace: placeLargest,
		})

		fmt.Printf("x=%.1f y=%.1f\n", pos.X, pos.Y)
		return nil
	},
}

func init() {
	placeCmd.Flags().Float64Var(&placeWidth, "panel-width", 400, "requested panel width")
	placeCmd.Flags().Float64Var(&placeHeight, "panel-height", 300, "requested panel height")
	placeCmd.Flags().StringVar(&placeAlign, "align", "top-left", "alignment: top-left, top-right, bottom-left, bottom-right, center")
	placeCmd.Flags().BoolVar(&placeAvoid, "avoid-overlap", true, "avoid overlapping existing panels")
	placeCmd.Flags().BoolVar(&placeLargest, "prefer-largest", true, "prefer the largest free region")
	rootCmd.AddCommand(placeCmd)
}
