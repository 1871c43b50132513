package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/PanelGrid/internal/model"
)

func TestExportReport_WritesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	panels := samplePanels()

	require.NoError(t, ExportReport(path, panels, model.Size{Width: 1920, Height: 1080}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Panels", "Metrics"}, f.GetSheetList())

	rows, err := f.GetRows("Panels")
	require.NoError(t, err)
	require.Len(t, rows, len(panels)+1, "header plus one row per panel")
	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "bookmarks", rows[1][1])

	count, err := f.GetCellValue("Metrics", "B3")
	require.NoError(t, err)
	assert.Equal(t, "3", count)
}

func TestExportReport_NoPanels(t *testing.T) {
	err := ExportReport(filepath.Join(t.TempDir(), "report.xlsx"), nil, model.Size{Width: 100, Height: 100})
	assert.Error(t, err)
}
