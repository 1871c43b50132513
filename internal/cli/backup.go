package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PanelGrid/internal/engine"
	"github.com/piwi3910/PanelGrid/internal/project"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Bundle the app config and saved layouts into a single file",
}

var backupExportCmd = &cobra.Command{
	Use:   "export [backup.json]",
	Short: "Write the config and every saved layout to a backup file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		target := fmt.Sprintf("panelgrid-backup-%s.json", time.Now().Format("2006-01-02"))
		if len(args) == 1 {
			target = args[0]
		}

		dir, err := project.DefaultLayoutDir()
		if err != nil {
			return err
		}
		names, err := project.ListLayouts(dir)
		if err != nil {
			return err
		}

		var layouts []engine.LayoutExport
		for _, name := range names {
			path := filepath.Join(dir, name+".json")
			result, err := project.LoadLayout(path)
			if err != nil || !result.Success {
				log.Warn().Str("layout", name).Msg("skipping unreadable layout")
				continue
			}
			layouts = append(layouts, engine.ExportLayout(result.Panels, result.Metadata))
		}

		if err := project.ExportAllData(target, appConfig, layouts); err != nil {
			return fmt.Errorf("backup failed: %w", err)
		}
		fmt.Printf("wrote %s (%d layout(s))\n", target, len(layouts))
		return nil
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import <backup.json>",
	Short: "Restore the config and layouts from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		data, err := project.ImportAllData(args[0])
		if err != nil {
			return fmt.Errorf("restore failed: %w", err)
		}

		if err := project.SaveAppConfig(project.DefaultConfigPath(), data.Config); err != nil {
			return fmt.Errorf("could not restore config: %w", err)
		}

		dir, err := project.DefaultLayoutDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
		restored := 0
		for i, doc := range data.Layouts {
			name := doc.Metadata.Name
			if name == "" {
				name = fmt.Sprintf("layout-%d", i+1)
			}
			path := filepath.Join(dir, name+".json")
			if err := project.SaveLayout(path, doc); err != nil {
				log.Warn().Err(err).Str("layout", name).Msg("could not restore layout")
				continue
			}
			restored++
		}

		fmt.Printf("restored config and %d layout(s) to %s\n", restored, dir)
		return nil
	},
}

func init() {
	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupImportCmd)
	rootCmd.AddCommand(backupCmd)
}
