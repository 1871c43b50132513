package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/PanelGrid/internal/model"
)

func TestCalculateAvailableSpace_EmptyContainer(t *testing.T) {
	space := CalculateAvailableSpace(nil, model.Size{Width: 400, Height: 400}, 20)

	require.Len(t, space.Regions, 1, "empty container is one big free region")
	region := space.Regions[0]
	assert.Equal(t, 0.0, region.X)
	assert.Equal(t, 0.0, region.Y)
	assert.Equal(t, 400.0, region.Width)
	assert.Equal(t, 400.0, region.Height)
	require.NotNil(t, space.LargestRegion)
	assert.Equal(t, region.Area, space.LargestRegion.Area)
}

func TestCalculateAvailableSpace_RegionsAreDisjoint(t *testing.T) {
	panels := []model.PanelLayout{
		testPanel("a", 0, 0, 300, 200),
		testPanel("b", 500, 100, 200, 400),
		testPanel("c", 100, 600, 400, 150),
	}
	space := CalculateAvailableSpace(panels, model.Size{Width: 1000, Height: 800}, 20)

	require.NotEmpty(t, space.Regions)
	for i := 0; i < len(space.Regions); i++ {
		ri := model.Bounds{X: space.Regions[i].X, Y: space.Regions[i].Y,
			Width: space.Regions[i].Width, Height: space.Regions[i].Height}
		for j := i + 1; j < len(space.Regions); j++ {
			rj := model.Bounds{X: space.Regions[j].X, Y: space.Regions[j].Y,
				Width: space.Regions[j].Width, Height: space.Regions[j].Height}
			assert.False(t, Overlaps(ri, rj), "regions %d and %d overlap", i, j)
		}
	}
}

func TestCalculateAvailableSpace_RegionsAvoidPanels(t *testing.T) {
	panels := []model.PanelLayout{
		testPanel("a", 100, 100, 300, 200),
		testPanel("b", 600, 400, 250, 250),
	}
	space := CalculateAvailableSpace(panels, model.Size{Width: 1000, Height: 800}, 20)

	for _, region := range space.Regions {
		rect := model.Bounds{X: region.X, Y: region.Y, Width: region.Width, Height: region.Height}
		for _, p := range panels {
			assert.False(t, Overlaps(rect, p.Bounds()),
				"region at (%.0f,%.0f) intersects panel %s", region.X, region.Y, p.ID)
		}
	}
}

func TestCalculateAvailableSpace_HiddenPanelsDoNotOccupy(t *testing.T) {
	hidden := testPanel("h", 0, 0, 400, 400)
	hidden.Visible = false

	space := CalculateAvailableSpace([]model.PanelLayout{hidden}, model.Size{Width: 400, Height: 400}, 20)

	require.Len(t, space.Regions, 1)
	assert.Equal(t, 400.0*400.0, space.TotalArea)
}

func TestCalculateAvailableSpace_FullyOccupied(t *testing.T) {
	panels := []model.PanelLayout{testPanel("a", 0, 0, 400, 400)}
	space := CalculateAvailableSpace(panels, model.Size{Width: 400, Height: 400}, 20)

	assert.Empty(t, space.Regions)
	assert.Equal(t, 0.0, space.TotalArea)
	assert.Nil(t, space.LargestRegion)
}

func TestCalculateAvailableSpace_InvalidInputs(t *testing.T) {
	space := CalculateAvailableSpace(nil, model.Size{Width: 400, Height: 400}, 0)
	assert.Empty(t, space.Regions)

	space = CalculateAvailableSpace(nil, model.Size{}, 20)
	assert.Empty(t, space.Regions)
}

// testPanel builds a visible panel at a fixed position for grid and placement
// tests.
func testPanel(id string, x, y, w, h float64) model.PanelLayout {
	p := model.NewPanel("tasks", id, w, h)
	p.ID = id
	p.Position = model.Position{X: x, Y: y}
	return p
}
