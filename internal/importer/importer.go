// Package importer provides CSV and Excel import functionality for panel
// lists. It supports automatic delimiter detection, flexible column mapping,
// and case-insensitive header recognition, so users can bring panel sets in
// from spreadsheets without reshaping them first.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/PanelGrid/internal/model"
)

// ImportResult holds the results of an import operation. Row-level problems
// go into Errors and Warnings; a bad row never aborts the batch.
type ImportResult struct {
	Panels   []model.PanelLayout
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
// -1 means the column is absent.
type ColumnMapping struct {
	Component int
	Title     int
	Width     int
	Height    int
	X         int
	Y         int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"component": {"component", "kind", "type", "panel", "widget"},
	"title":     {"title", "label", "name", "description", "desc"},
	"width":     {"width", "w"},
	"height":    {"height", "h"},
	"x":         {"x", "left", "pos x", "x position"},
	"y":         {"y", "top", "pos y", "y position"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe; the delimiter that
// produces the most consistent multi-column row shape wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each
// column role. Returns the mapping and true if a header was detected, or a
// default positional mapping (component, title, width, height, x, y) and
// false if not.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Component: -1, Title: -1, Width: -1, Height: -1, X: -1, Y: -1}

	isHeader := false
	assign := func(target *int, i int) {
		isHeader = true
		if *target == -1 {
			*target = i
		}
	}
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				switch role {
				case "component":
					assign(&mapping.Component, i)
				case "title":
					assign(&mapping.Title, i)
				case "width":
					assign(&mapping.Width, i)
				case "height":
					assign(&mapping.Height, i)
				case "x":
					assign(&mapping.X, i)
				case "y":
					assign(&mapping.Y, i)
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{Component: 0, Title: 1, Width: 2, Height: 3, X: 4, Y: 5}, false
	}
	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseRow extracts a PanelLayout from a row using the given column mapping.
// Returns the panel, any error message, and any warning message. Positions
// are optional; panels without one land at the origin for the caller to
// place.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, panelCount int) (model.PanelLayout, string, string) {
	component := getCell(row, mapping.Component)
	if component == "" {
		return model.PanelLayout{}, fmt.Sprintf("%s: missing component kind", rowLabel), ""
	}

	title := getCell(row, mapping.Title)
	if title == "" {
		title = fmt.Sprintf("Panel %d", panelCount+1)
	}

	widthStr := getCell(row, mapping.Width)
	if widthStr == "" {
		return model.PanelLayout{}, fmt.Sprintf("%s: missing width value", rowLabel), ""
	}
	width, err := strconv.ParseFloat(widthStr, 64)
	if err != nil || width <= 0 {
		return model.PanelLayout{}, fmt.Sprintf("%s: invalid width '%s'", rowLabel, widthStr), ""
	}

	heightStr := getCell(row, mapping.Height)
	if heightStr == "" {
		return model.PanelLayout{}, fmt.Sprintf("%s: missing height value", rowLabel), ""
	}
	height, err := strconv.ParseFloat(heightStr, 64)
	if err != nil || height <= 0 {
		return model.PanelLayout{}, fmt.Sprintf("%s: invalid height '%s'", rowLabel, heightStr), ""
	}

	panel := model.NewPanel(component, title, width, height)

	var warning string
	xStr, yStr := getCell(row, mapping.X), getCell(row, mapping.Y)
	if xStr != "" || yStr != "" {
		x, errX := strconv.ParseFloat(xStr, 64)
		y, errY := strconv.ParseFloat(yStr, 64)
		if errX != nil || errY != nil {
			warning = fmt.Sprintf("%s: ignoring invalid position (%q, %q)", rowLabel, xStr, yStr)
		} else {
			panel.Position = model.Position{X: x, Y: y}
		}
	}

	return panel, "", warning
}

// ImportCSV imports panels from CSV data with automatic delimiter detection.
func ImportCSV(data []byte) ImportResult {
	result := ImportResult{}

	delim := DetectCSVDelimiter(data)
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delim
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot parse CSV data: %v", err))
		return result
	}
	return importFromRows(records, "Line")
}

// ImportCSVFile imports panels from a CSV file on disk.
func ImportCSVFile(path string) ImportResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("cannot read file: %v", err)}}
	}
	return ImportCSV(data)
}

// ImportExcel imports panels from an Excel (.xlsx) file. It reads the first
// sheet and auto-detects the column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot read Excel data: %v", err))
		return result
	}
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "sheet is empty")
		return result
	}

	return importFromRows(rows, "Row")
}

// importFromRows is the shared import logic for CSV and Excel data: detect a
// header, map columns, parse every remaining row.
func importFromRows(rows [][]string, rowPrefix string) ImportResult {
	result := ImportResult{}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "no data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "detected header row, skipping")

		missing := []string{}
		if mapping.Component == -1 {
			missing = append(missing, "Component")
		}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		panel, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Panels))

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
		result.Panels = append(result.Panels, panel)
	}

	return result
}
