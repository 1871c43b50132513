package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/PanelGrid/internal/model"
)

func TestDetectCSVDelimiter(t *testing.T) {
	cases := []struct {
		name string
		data string
		want rune
	}{
		{"comma", "component,title,width,height\nchat,Chat,300,400\n", ','},
		{"semicolon", "component;title;width;height\nchat;Chat;300;400\n", ';'},
		{"tab", "component\ttitle\twidth\theight\nchat\tChat\t300\t400\n", '\t'},
		{"pipe", "component|title|width|height\nchat|Chat|300|400\n", '|'},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectCSVDelimiter([]byte(tc.data)))
		})
	}
}

func TestDetectColumns_HeaderAliases(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Type", "Name", "W", "H", "Left", "Top"})

	assert.True(t, isHeader)
	assert.Equal(t, 0, mapping.Component)
	assert.Equal(t, 1, mapping.Title)
	assert.Equal(t, 2, mapping.Width)
	assert.Equal(t, 3, mapping.Height)
	assert.Equal(t, 4, mapping.X)
	assert.Equal(t, 5, mapping.Y)
}

func TestDetectColumns_NoHeaderFallsBackToPositional(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"chat", "Chat", "300", "400"})

	assert.False(t, isHeader)
	assert.Equal(t, 0, mapping.Component)
	assert.Equal(t, 2, mapping.Width)
}

func TestImportCSV_WithHeaderAndPositions(t *testing.T) {
	data := []byte("component,title,width,height,x,y\nchat,Team Chat,300,500,40,40\ntimer,Pomodoro,250,200,400,40\n")

	result := ImportCSV(data)

	require.Empty(t, result.Errors)
	require.Len(t, result.Panels, 2)
	assert.Equal(t, "chat", result.Panels[0].Component)
	assert.Equal(t, "Team Chat", result.Panels[0].Metadata.Title)
	assert.Equal(t, model.Position{X: 40, Y: 40}, result.Panels[0].Position)
	assert.Equal(t, model.Size{Width: 250, Height: 200}, result.Panels[1].Size)
}

func TestImportCSV_BadRowsAreCollectedNotFatal(t *testing.T) {
	data := []byte("component,width,height\nchat,300,400\n,100,100\ntasks,abc,200\n")

	result := ImportCSV(data)

	require.Len(t, result.Panels, 1)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "missing component")
	assert.Contains(t, result.Errors[1], "invalid width")
}

func TestImportCSV_InvalidPositionIsWarning(t *testing.T) {
	data := []byte("component,width,height,x,y\nchat,300,400,oops,40\n")

	result := ImportCSV(data)

	require.Len(t, result.Panels, 1)
	assert.Equal(t, model.Position{}, result.Panels[0].Position)
	found := false
	for _, w := range result.Warnings {
		if w != "" && w != "detected header row, skipping" {
			found = true
		}
	}
	assert.True(t, found, "expected a position warning")
}

func TestImportCSV_MissingRequiredColumns(t *testing.T) {
	data := []byte("title,x,y\nChat,10,10\n")

	result := ImportCSV(data)

	assert.Empty(t, result.Panels)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "required columns")
}

func TestImportCSV_SkipsEmptyRows(t *testing.T) {
	data := []byte("component,width,height\nchat,300,400\n,,\n\ntasks,200,300\n")

	result := ImportCSV(data)

	assert.Empty(t, result.Errors)
	assert.Len(t, result.Panels, 2)
}

func TestImportCSVFile_MissingFile(t *testing.T) {
	result := ImportCSVFile("/nonexistent/panels.csv")
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "cannot read file")
}

func TestImportExcel_MissingFile(t *testing.T) {
	result := ImportExcel("/nonexistent/panels.xlsx")
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "cannot open Excel file")
}
