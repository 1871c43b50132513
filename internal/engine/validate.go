package engine

import (
	"fmt"

	"github.com/piwi3910/PanelGrid/internal/model"
)

// Panels smaller than this are hard to grab or read.
const (
	minUsableWidth  = 100.0
	minUsableHeight = 100.0
)

// Validator advisory thresholds.
const (
	manyPanelsThreshold    = 12
	highUtilizationPercent = 85.0
)

// ValidationResult categorizes structural layout problems. Only errors flip
// Valid to false; warnings and suggestions are advisory.
type ValidationResult struct {
	Valid       bool     `json:"valid"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

// ValidateLayout runs structural checks over a panel set. Duplicate ids and
// negative positions are errors. Panels extending past the container are only
// warnings: a panel is allowed to be temporarily out of bounds while the user
// drags it around. Undersized panels and pairwise overlaps are warnings too.
func ValidateLayout(panels []model.PanelLayout, container model.Size) ValidationResult {
	result := ValidationResult{
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}

	seen := make(map[string]bool, len(panels))
	for _, p := range panels {
		if seen[p.ID] {
			result.Errors = append(result.Errors, fmt.Sprintf("duplicate panel id %q", p.ID))
		}
		seen[p.ID] = true

		if p.Position.X < 0 || p.Position.Y < 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("panel %q has negative position (%.0f, %.0f)", p.ID, p.Position.X, p.Position.Y))
		}

		if p.Position.X+p.Size.Width > container.Width || p.Position.Y+p.Size.Height > container.Height {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("panel %q extends past the container", p.ID))
		}

		if p.Size.Width < minUsableWidth || p.Size.Height < minUsableHeight {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("panel %q is smaller than %.0fx%.0f", p.ID, minUsableWidth, minUsableHeight))
		}
	}

	overlapPairs := 0
	for i := 0; i < len(panels); i++ {
		for j := i + 1; j < len(panels); j++ {
			if Overlaps(panels[i].Bounds(), panels[j].Bounds()) {
				overlapPairs++
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("panels %q and %q overlap", panels[i].ID, panels[j].ID))
			}
		}
	}

	if len(panels) > manyPanelsThreshold {
		result.Suggestions = append(result.Suggestions,
			fmt.Sprintf("%d panels is a lot; consider hiding or grouping some", len(panels)))
	}
	metrics := CalculateLayoutMetrics(panels, container)
	if metrics.Utilization > highUtilizationPercent {
		result.Suggestions = append(result.Suggestions,
			fmt.Sprintf("utilization is %.0f%%; a larger container or fewer panels would help", metrics.Utilization))
	}
	if overlapPairs > 0 {
		result.Suggestions = append(result.Suggestions,
			"run layout optimization to resolve overlapping panels")
	}

	result.Valid = len(result.Errors) == 0
	return result
}
