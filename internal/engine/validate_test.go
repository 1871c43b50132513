package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/PanelGrid/internal/model"
)

func TestValidateLayout_CleanLayout(t *testing.T) {
	panels := []model.PanelLayout{
		testPanel("a", 0, 0, 400, 300),
		testPanel("b", 500, 0, 400, 300),
	}
	result := ValidateLayout(panels, model.Size{Width: 1920, Height: 1080})

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateLayout_DuplicateIDIsError(t *testing.T) {
	panels := []model.PanelLayout{
		testPanel("p1", 0, 0, 400, 300),
		testPanel("p1", 500, 0, 400, 300),
	}
	result := ValidateLayout(panels, model.Size{Width: 1920, Height: 1080})

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "p1")
}

func TestValidateLayout_NegativePositionIsError(t *testing.T) {
	panels := []model.PanelLayout{testPanel("a", -10, 5, 400, 300)}
	result := ValidateLayout(panels, model.Size{Width: 1920, Height: 1080})

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "negative position")
}

func TestValidateLayout_OutOfBoundsIsOnlyWarning(t *testing.T) {
	// Panels may be temporarily out of bounds mid-drag; that must not make
	// the layout invalid.
	panels := []model.PanelLayout{testPanel("a", 1800, 1000, 400, 300)}
	result := ValidateLayout(panels, model.Size{Width: 1920, Height: 1080})

	assert.True(t, result.Valid)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "extends past")
}

func TestValidateLayout_UndersizedIsWarning(t *testing.T) {
	panels := []model.PanelLayout{testPanel("tiny", 0, 0, 80, 60)}
	result := ValidateLayout(panels, model.Size{Width: 1920, Height: 1080})

	assert.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "tiny")
}

func TestValidateLayout_OverlapWarnsAndSuggestsOptimization(t *testing.T) {
	panels := []model.PanelLayout{
		testPanel("a", 0, 0, 400, 300),
		testPanel("b", 100, 100, 400, 300),
	}
	result := ValidateLayout(panels, model.Size{Width: 1920, Height: 1080})

	assert.True(t, result.Valid, "overlap is a warning, not an error")
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "overlap") {
			found = true
		}
	}
	assert.True(t, found)
	require.NotEmpty(t, result.Suggestions)
	assert.Contains(t, strings.Join(result.Suggestions, " "), "optimization")
}

func TestValidateLayout_ManyPanelsSuggestion(t *testing.T) {
	var panels []model.PanelLayout
	for i := 0; i < 15; i++ {
		p := model.NewPanel("tasks", "t", 150, 120)
		p.Position = model.Position{X: float64(i%5) * 200, Y: float64(i/5) * 200}
		panels = append(panels, p)
	}
	result := ValidateLayout(panels, model.Size{Width: 1920, Height: 1080})

	require.NotEmpty(t, result.Suggestions)
	assert.Contains(t, result.Suggestions[0], "15 panels")
}
