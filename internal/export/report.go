package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/PanelGrid/internal/engine"
	"github.com/piwi3910/PanelGrid/internal/model"
)

// ExportReport writes an xlsx workbook with two sheets: a panel inventory
// and the computed layout metrics.
func ExportReport(path string, panels []model.PanelLayout, container model.Size) error {
	if len(panels) == 0 {
		return fmt.Errorf("no panels to report on")
	}

	f := excelize.NewFile()
	defer f.Close()

	const panelSheet = "Panels"
	f.SetSheetName("Sheet1", panelSheet)

	headers := []string{"ID", "Component", "Title", "X", "Y", "Width", "Height", "Z-Index", "Visible"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(panelSheet, cell, h); err != nil {
			return err
		}
	}

	for row, p := range panels {
		values := []interface{}{
			p.ID, p.Component, p.Title(),
			p.Position.X, p.Position.Y,
			p.Size.Width, p.Size.Height,
			p.ZIndex, p.Visible,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(panelSheet, cell, v); err != nil {
				return err
			}
		}
	}

	const metricsSheet = "Metrics"
	if _, err := f.NewSheet(metricsSheet); err != nil {
		return err
	}

	metrics := engine.CalculateLayoutMetrics(panels, container)
	rows := [][2]interface{}{
		{"Container width", container.Width},
		{"Container height", container.Height},
		{"Panel count", metrics.PanelCount},
		{"Total area", metrics.TotalArea},
		{"Used area", metrics.UsedArea},
		{"Free area", metrics.FreeArea},
		{"Utilization %", metrics.Utilization},
		{"Density (per 10k units)", metrics.Density},
		{"Overlapping pairs", metrics.OverlapCount},
		{"Gap count", len(metrics.Gaps)},
	}
	for i, row := range rows {
		nameCell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		valueCell, err := excelize.CoordinatesToCellName(2, i+1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(metricsSheet, nameCell, row[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(metricsSheet, valueCell, row[1]); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
