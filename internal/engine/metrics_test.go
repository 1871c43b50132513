package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/PanelGrid/internal/model"
)

func TestCalculateLayoutMetrics_EmptySet(t *testing.T) {
	m := CalculateLayoutMetrics(nil, model.Size{Width: 1000, Height: 800})

	assert.Equal(t, 800000.0, m.TotalArea)
	assert.Equal(t, 0.0, m.UsedArea)
	assert.Equal(t, 800000.0, m.FreeArea)
	assert.Equal(t, 0.0, m.Utilization)
	assert.Equal(t, 0, m.PanelCount)
	assert.Equal(t, 0, m.OverlapCount)
}

func TestCalculateLayoutMetrics_AreaAccounting(t *testing.T) {
	panels := []model.PanelLayout{
		testPanel("a", 0, 0, 400, 200),   // 80,000
		testPanel("b", 500, 300, 200, 200), // 40,000
	}
	m := CalculateLayoutMetrics(panels, model.Size{Width: 1000, Height: 1000})

	assert.Equal(t, 1000000.0, m.TotalArea)
	assert.Equal(t, 120000.0, m.UsedArea)
	assert.Equal(t, 880000.0, m.FreeArea)
	assert.InDelta(t, 12.0, m.Utilization, 0.001)
	assert.Equal(t, 2, m.PanelCount)
	assert.Equal(t, model.Size{Width: 300, Height: 200}, m.AverageSize)
}

func TestCalculateLayoutMetrics_OverlapCountAndCentroid(t *testing.T) {
	panels := []model.PanelLayout{
		testPanel("a", 0, 0, 200, 200),
		testPanel("b", 100, 100, 200, 200),
		testPanel("c", 700, 700, 200, 200),
	}
	m := CalculateLayoutMetrics(panels, model.Size{Width: 1000, Height: 1000})

	assert.Equal(t, 1, m.OverlapCount)
	// Centers: (100,100), (200,200), (800,800)
	assert.InDelta(t, 366.667, m.Centroid.X, 0.01)
	assert.InDelta(t, 366.667, m.Centroid.Y, 0.01)
}

func TestCalculateLayoutMetrics_BoundingBox(t *testing.T) {
	panels := []model.PanelLayout{
		testPanel("a", 100, 50, 300, 200),
		testPanel("b", 600, 400, 200, 300),
	}
	m := CalculateLayoutMetrics(panels, model.Size{Width: 1000, Height: 1000})

	assert.Equal(t, model.Bounds{X: 100, Y: 50, Width: 700, Height: 650}, m.BoundingBox)
}

func TestCalculateLayoutMetrics_GapsExcludeTinyRegions(t *testing.T) {
	panels := []model.PanelLayout{testPanel("a", 0, 0, 1000, 900)}
	m := CalculateLayoutMetrics(panels, model.Size{Width: 1000, Height: 1000})

	// The 1000x100 strip below the panel is the only gap and it clears the
	// four-cell threshold at the coarse metrics resolution.
	for _, gap := range m.Gaps {
		assert.Greater(t, gap.Area, 4*MetricsGridSize*MetricsGridSize)
	}
}

func TestCalculateLayoutMetrics_HiddenPanelsExcluded(t *testing.T) {
	hidden := testPanel("h", 0, 0, 400, 400)
	hidden.Visible = false

	m := CalculateLayoutMetrics([]model.PanelLayout{hidden}, model.Size{Width: 1000, Height: 1000})
	assert.Equal(t, 0, m.PanelCount)
	assert.Equal(t, 0.0, m.UsedArea)
}

func TestCompareScenarios_RunsEachScenario(t *testing.T) {
	panels := []model.PanelLayout{
		testPanel("a", 100, 100, 300, 200),
		testPanel("b", 100, 100, 300, 200),
	}
	container := model.Size{Width: 1920, Height: 1080}

	compacted := model.DefaultOptions(container)
	loose := model.DefaultOptions(container)
	loose.Compact = false

	results := CompareScenarios([]ComparisonScenario{
		{Name: "compacted", Options: compacted},
		{Name: "loose", Options: loose},
	}, panels)

	assert.Len(t, results, 2)
	assert.Equal(t, "compacted", results[0].Scenario.Name)
	for _, r := range results {
		assert.Len(t, r.Panels, 2)
		assert.LessOrEqual(t, r.OverlapDelta, 0, "minimize-overlaps scenarios must not add overlaps")
	}
}
