// Package parser provides the worksheet heuristics of the converter: grid
// reading, factor-sheet location, section detection and data-validation
// dropdown collection.
package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExtractGrid reads every cell of a sheet into a row-major grid of coerced
// values. Formula cells yield their last-computed value, matching the
// read-only contract of the loader.
func ExtractGrid(f *excelize.File, sheetName string) ([][]interface{}, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	grid := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, raw := range row {
			cells[j] = CoerceValue(raw)
		}
		grid[i] = cells
	}
	return grid, nil
}

// CoerceValue normalizes a raw cell string to one of nil (empty cell),
// int64, float64 rounded to 6 decimal places, or trimmed string.
func CoerceValue(s string) interface{} {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return math.Round(f*1e6) / 1e6
	}
	return strings.TrimSpace(s)
}
