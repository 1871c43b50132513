// PanelGrid — panel layout and space-allocation engine
//
// A command-line tool for computing, validating, and optimizing the
// arrangement of movable, resizable panels inside a container viewport,
// with spreadsheet import and PDF/Excel export.
//
// Build:
//   go build -o panelgrid ./cmd/panelgrid
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o panelgrid.exe ./cmd/panelgrid
//   GOOS=darwin  GOARCH=arm64 go build -o panelgrid-darwin ./cmd/panelgrid

package main

import "github.com/piwi3910/PanelGrid/internal/cli"

func main() {
	cli.Execute()
}
