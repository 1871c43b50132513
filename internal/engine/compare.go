package engine

import "github.com/piwi3910/PanelGrid/internal/model"

// ComparisonScenario defines a named set of optimization options to compare.
type ComparisonScenario struct {
	Name    string
	Options model.OptimizationOptions
}

// ComparisonResult holds the optimized arrangement and its metrics for a
// single scenario.
type ComparisonResult struct {
	Scenario     ComparisonScenario
	Panels       []model.PanelLayout
	Metrics      model.LayoutMetrics
	OverlapDelta int // overlaps after minus overlaps before
}

// CompareScenarios optimizes the same panel set under each scenario and
// returns the results in scenario order. This enables side-by-side comparison
// of different option sets (sort keys, compaction on/off, grid sizes).
func CompareScenarios(scenarios []ComparisonScenario, panels []model.PanelLayout) []ComparisonResult {
	before := countOverlaps(panels)
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		optimized := OptimizeLayout(panels, scenario.Options)
		results = append(results, ComparisonResult{
			Scenario:     scenario,
			Panels:       optimized,
			Metrics:      CalculateLayoutMetrics(optimized, scenario.Options.ContainerSize),
			OverlapDelta: countOverlaps(optimized) - before,
		})
	}
	return results
}
