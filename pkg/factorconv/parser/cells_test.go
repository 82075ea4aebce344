package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"", nil},
		{"2024", int64(2024)},
		{"-100", int64(-100)},
		{"0.182", 0.182},
		{"2.8679999999", 2.868},
		{"0.1234564999", 0.123456},
		{"Gas natural (m³)", "Gas natural (m³)"},
		{"  Gasóleo  ", "Gasóleo"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CoerceValue(tt.input), "CoerceValue(%q)", tt.input)
	}
}

func TestExtractGrid(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	require.NoError(t, f.SetCellValue(sheetName, "A1", "Combustible"))
	require.NoError(t, f.SetCellValue(sheetName, "B1", 2024))
	require.NoError(t, f.SetCellValue(sheetName, "A2", "Gas natural"))
	require.NoError(t, f.SetCellValue(sheetName, "B2", 0.182))

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	f2, err := excelize.OpenFile(tmpFile)
	require.NoError(t, err)
	defer f2.Close()

	grid, err := ExtractGrid(f2, sheetName)
	require.NoError(t, err)
	require.Len(t, grid, 2)

	assert.Equal(t, "Combustible", grid[0][0])
	assert.Equal(t, int64(2024), grid[0][1])
	assert.Equal(t, "Gas natural", grid[1][0])
	assert.Equal(t, 0.182, grid[1][1])
}

func TestExtractGridMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := ExtractGrid(f, "No existe")
	assert.Error(t, err)
}
