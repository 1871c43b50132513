package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PanelGrid/internal/engine"
)

var validateCmd = &cobra.Command{
	Use:   "validate <layout.json>",
	Short: "Check a layout file for structural problems",
	Long: `Validate runs structural checks over a layout file: duplicate panel ids
and negative positions are errors; out-of-bounds, undersized, and overlapping
panels are warnings. The exit code is non-zero only for errors.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		panels, err := loadPanels(args[0])
		if err != nil {
			return err
		}

		result := engine.ValidateLayout(panels, containerSize())
		for _, e := range result.Errors {
			fmt.Println("error:", e)
		}
		for _, w := range result.Warnings {
			fmt.Println("warning:", w)
		}
		for _, s := range result.Suggestions {
			fmt.Println("suggestion:", s)
		}

		if !result.Valid {
			return fmt.Errorf("layout is invalid: %d error(s)", len(result.Errors))
		}
		fmt.Printf("layout is valid (%d panel(s), %d warning(s))\n", len(panels), len(result.Warnings))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
