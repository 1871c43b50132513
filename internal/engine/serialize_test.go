package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/PanelGrid/internal/model"
)

func sampleLayout() []model.PanelLayout {
	bookmarks := model.NewPanel("bookmarks", "Bookmarks", 400, 300)
	bookmarks.Position = model.Position{X: 20, Y: 20}
	bookmarks.ZIndex = 150

	timer := model.NewPanel("timer", "Pomodoro", 250, 200)
	timer.Position = model.Position{X: 500, Y: 20}
	timer.Visible = false

	return []model.PanelLayout{bookmarks, timer}
}

func TestExportLayout_Envelope(t *testing.T) {
	doc := ExportLayout(sampleLayout(), &ExportMetadata{Name: "Morning", Tags: []string{"work"}})

	assert.Equal(t, ExportVersion, doc.Version)
	assert.NotEmpty(t, doc.Timestamp)
	assert.Equal(t, "Morning", doc.Metadata.Name)
	assert.Equal(t, 2, doc.Metadata.PanelCount)
	require.Len(t, doc.Panels, 2)
	assert.Equal(t, "bookmarks", doc.Panels[0].Component)
}

func TestExportImport_RoundTrip(t *testing.T) {
	original := sampleLayout()
	doc := ExportLayout(original, nil)

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	result := ImportLayout(data)
	require.True(t, result.Success, result.Error)
	require.Len(t, result.Panels, len(original))
	assert.Equal(t, 0, result.Skipped)

	for i, p := range result.Panels {
		assert.Equal(t, original[i].ID, p.ID)
		assert.Equal(t, original[i].Component, p.Component)
		assert.Equal(t, original[i].Position, p.Position)
		assert.Equal(t, original[i].Size, p.Size)
		assert.Equal(t, original[i].ZIndex, p.ZIndex)
		assert.Equal(t, original[i].Visible, p.Visible)
	}
}

func TestImportLayout_RejectsMissingPanels(t *testing.T) {
	result := ImportLayout([]byte(`{"version":"1.0.0"}`))
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "panels")
}

func TestImportLayout_RejectsNonListPanels(t *testing.T) {
	result := ImportLayout([]byte(`{"panels":{"oops":true}}`))
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "not a list")
}

func TestImportLayout_RejectsGarbage(t *testing.T) {
	result := ImportLayout([]byte(`{{{`))
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestImportLayout_SkipsMalformedEntries(t *testing.T) {
	data := []byte(`{
		"version": "1.0.0",
		"panels": [
			{"component": "chat", "position": {"x": 10, "y": 20}, "size": {"width": 300, "height": 400}},
			{"component": "tasks"},
			{"position": {"x": 0, "y": 0}, "size": {"width": 100, "height": 100}}
		]
	}`)
	result := ImportLayout(data)

	require.True(t, result.Success)
	assert.Len(t, result.Panels, 1, "entries missing required fields are dropped")
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, "chat", result.Panels[0].Component)
}

func TestImportLayout_AppliesDefaults(t *testing.T) {
	data := []byte(`{
		"panels": [
			{"component": "chat", "position": {"x": 10, "y": 20}, "size": {"width": 300, "height": 400}}
		]
	}`)
	result := ImportLayout(data)

	require.True(t, result.Success)
	require.Len(t, result.Panels, 1)
	p := result.Panels[0]
	assert.NotEmpty(t, p.ID, "id is generated when omitted")
	assert.Equal(t, model.DefaultZIndex, p.ZIndex)
	assert.True(t, p.Visible)
	assert.Equal(t, model.Size{Width: model.DefaultMinWidth, Height: model.DefaultMinHeight}, p.Constraints.MinSize)
}

func TestImportLayout_PreservesMetadata(t *testing.T) {
	data := []byte(`{
		"metadata": {"name": "Focus", "description": "deep work", "tags": ["focus"], "panelCount": 1},
		"panels": [
			{"component": "timer", "position": {"x": 0, "y": 0}, "size": {"width": 250, "height": 200}}
		]
	}`)
	result := ImportLayout(data)

	require.True(t, result.Success)
	require.NotNil(t, result.Metadata)
	assert.Equal(t, "Focus", result.Metadata.Name)
}
