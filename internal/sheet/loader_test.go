package sheet

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook creates an in-memory workbook with the given cells on
// the default sheet. cells[row][col] maps to A1-style coordinates.
func buildWorkbook(t *testing.T, cells [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for r, rowCells := range cells {
		for c, value := range rowCells {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestLoadReader(t *testing.T) {
	t.Parallel()

	buf := buildWorkbook(t, [][]string{
		{"WEEK -6"},
		{"", "", "Monday", "MATH(1)", "", "PHY(2)/CHEM(1)"},
	})

	grid, err := LoadReader(buf)
	require.NoError(t, err)
	require.Len(t, grid, 2)

	assert.Equal(t, "WEEK -6", grid[0][0])
	assert.Equal(t, "Monday", grid[1][2])
	assert.Equal(t, "MATH(1)", grid[1][3])
	assert.Equal(t, "PHY(2)/CHEM(1)", grid[1][5])
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.xlsx"))
	assert.Error(t, err)
}

func TestLoadReaderGarbage(t *testing.T) {
	t.Parallel()

	_, err := LoadReader(bytes.NewBufferString("not a workbook"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "WEEK -6"))

	path := filepath.Join(t.TempDir(), "TimeTable.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	grid, err := Load(path)
	require.NoError(t, err)
	require.NotEmpty(t, grid)
	assert.Equal(t, "WEEK -6", grid[0][0])
}
