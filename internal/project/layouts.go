// Package project handles the JSON documents PanelGrid keeps on disk: saved
// layouts, the application config, and full-data backups. The engine itself
// never touches files; everything here is caller-side plumbing.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/PanelGrid/internal/engine"
)

// DefaultLayoutDir returns the default directory for saved layouts,
// ~/.panelgrid/layouts.
func DefaultLayoutDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".panelgrid", "layouts")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// SaveLayout writes a layout document to a JSON file, creating parent
// directories as needed.
func SaveLayout(path string, doc engine.LayoutExport) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadLayout reads a layout file and runs it through the lenient importer.
// A missing file is an error here, unlike config loading: asking for a saved
// layout that does not exist is a caller mistake.
func LoadLayout(path string) (engine.ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return engine.ImportResult{}, fmt.Errorf("failed to read layout file: %w", err)
	}
	return engine.ImportLayout(data), nil
}

// ListLayouts returns the names (without extension) of all saved layouts in
// the given directory. A missing directory yields an empty list.
func ListLayouts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	return names, nil
}
