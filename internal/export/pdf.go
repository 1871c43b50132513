// Package export provides functionality for exporting panel layouts to
// various file formats: visual PDF diagrams, QR-coded panel cards, and xlsx
// reports.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/PanelGrid/internal/engine"
	"github.com/piwi3910/PanelGrid/internal/model"
)

// panelColor represents an RGB color for a drawn panel.
type panelColor struct {
	R, G, B int
}

// panelColors mirrors the color scheme the shell uses for panel chrome.
var panelColors = []panelColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document for a panel layout: a diagram page
// showing every visible panel inside the viewport, followed by a summary page
// with layout metrics.
func ExportPDF(path string, panels []model.PanelLayout, container model.Size) error {
	if len(panels) == 0 {
		return fmt.Errorf("no panels to export")
	}
	if container.Width <= 0 || container.Height <= 0 {
		return fmt.Errorf("container size must be positive")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderDiagramPage(pdf, panels, container)

	pdf.AddPage()
	renderSummaryPage(pdf, panels, container)

	return pdf.OutputFileAndClose(path)
}

// renderDiagramPage draws the viewport and its panels on the current page.
func renderDiagramPage(pdf *fpdf.Fpdf, panels []model.PanelLayout, container model.Size) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Panel Layout (%.0f x %.0f)", container.Width, container.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom

	scaleX := drawWidth / container.Width
	scaleY := drawHeight / container.Height
	scale := math.Min(scaleX, scaleY)

	canvasW := container.Width * scale
	canvasH := container.Height * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Viewport background
	pdf.SetFillColor(245, 245, 245)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	colorIdx := 0
	for _, p := range panels {
		if !p.Visible {
			continue
		}
		col := panelColors[colorIdx%len(panelColors)]
		colorIdx++

		px := offsetX + p.Position.X*scale
		py := offsetY + p.Position.Y*scale
		pw := p.Size.Width * scale
		ph := p.Size.Height * scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(20, 20, 20)
		pdf.SetXY(px+1, py+1)
		label := fmt.Sprintf("%s (%.0fx%.0f)", p.Title(), p.Size.Width, p.Size.Height)
		pdf.CellFormat(pw-2, 4, label, "", 0, "L", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
}

// renderSummaryPage writes layout metrics as a simple table.
func renderSummaryPage(pdf *fpdf.Fpdf, panels []model.PanelLayout, container model.Size) {
	metrics := engine.CalculateLayoutMetrics(panels, container)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Layout Summary", "", 0, "L", false, 0, "")

	rows := [][2]string{
		{"Panels", fmt.Sprintf("%d", metrics.PanelCount)},
		{"Total area", fmt.Sprintf("%.0f", metrics.TotalArea)},
		{"Used area", fmt.Sprintf("%.0f", metrics.UsedArea)},
		{"Free area", fmt.Sprintf("%.0f", metrics.FreeArea)},
		{"Utilization", fmt.Sprintf("%.1f%%", metrics.Utilization)},
		{"Density", fmt.Sprintf("%.2f panels / 10k units", metrics.Density)},
		{"Overlapping pairs", fmt.Sprintf("%d", metrics.OverlapCount)},
		{"Gaps found", fmt.Sprintf("%d", len(metrics.Gaps))},
		{"Average panel size", fmt.Sprintf("%.0f x %.0f", metrics.AverageSize.Width, metrics.AverageSize.Height)},
	}

	pdf.SetFont("Helvetica", "", 10)
	y := drawAreaTop
	for _, row := range rows {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(60, 6, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(80, 6, row[1], "", 0, "L", false, 0, "")
		y += 7
	}
}
