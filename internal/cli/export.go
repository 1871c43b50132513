package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PanelGrid/internal/export"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a layout as a PDF diagram, panel cards, or an Excel report",
}

var exportPDFCmd = &cobra.Command{
	Use:   "pdf <layout.json>",
	Short: "Render a scaled layout diagram with a metrics summary page",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		panels, err := loadPanels(args[0])
		if err != nil {
			return err
		}
		output := exportTarget(args[0], ".pdf")
		if err := export.ExportPDF(output, panels, containerSize()); err != nil {
			return fmt.Errorf("pdf export failed: %w", err)
		}
		fmt.Printf("wrote %s\n", output)
		return nil
	},
}

var exportCardsCmd = &cobra.Command{
	Use:   "cards <layout.json>",
	Short: "Print label cards with QR codes, one per visible panel",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		panels, err := loadPanels(args[0])
		if err != nil {
			return err
		}
		output := exportTarget(args[0], "-cards.pdf")
		if err := export.ExportCards(output, panels); err != nil {
			return fmt.Errorf("card export failed: %w", err)
		}
		fmt.Printf("wrote %s\n", output)
		return nil
	},
}

var exportReportCmd = &cobra.Command{
	Use:   "report <layout.json>",
	Short: "Write an Excel workbook with panel and metrics sheets",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		panels, err := loadPanels(args[0])
		if err != nil {
			return err
		}
		output := exportTarget(args[0], ".xlsx")
		if err := export.ExportReport(output, panels, containerSize()); err != nil {
			return fmt.Errorf("report export failed: %w", err)
		}
		fmt.Printf("wrote %s\n", output)
		return nil
	},
}

func exportTarget(input, suffix string) string {
	if exportOutput != "" {
		return exportOutput
	}
	return strings.TrimSuffix(input, ".json") + suffix
}

func init() {
	exportCmd.PersistentFlags().StringVarP(&exportOutput, "output", "o", "", "output file (default: derived from the layout name)")
	exportCmd.AddCommand(exportPDFCmd)
	exportCmd.AddCommand(exportCardsCmd)
	exportCmd.AddCommand(exportReportCmd)
	rootCmd.AddCommand(exportCmd)
}
