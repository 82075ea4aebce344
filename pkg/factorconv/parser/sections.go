package parser

import (
	"fmt"
	"strings"
)

// Section identifies one of the known factor sections of the workbook.
type Section string

const (
	// SectionFixed covers fixed-installation fuel factors.
	SectionFixed Section = "fijas"
	// SectionVehicles covers road-vehicle fuel factors.
	SectionVehicles Section = "vehiculos"
	// SectionRefrigerants covers refrigerant gases and fugitive emissions.
	SectionRefrigerants Section = "refrigerantes"
	// SectionElectricity covers the electricity mix factors.
	SectionElectricity Section = "electrico"
)

// SectionMark records a detected section title and the row expected to hold
// its column headers (the row immediately after the title).
type SectionMark struct {
	Section Section
	// TitleRow is the 0-based index of the row whose text matched.
	TitleRow int
	// HeaderRow is the 0-based index of the prospective header row.
	HeaderRow int
}

// DetectSections scans a coerced cell grid for the section headers of the
// factor sheet and returns every match in scan order. Detection covers
// section boundaries only; value extraction from the detected regions is not
// implemented, the converter falls back to the published reference table.
func DetectSections(grid [][]interface{}) []SectionMark {
	var marks []SectionMark
	for i, row := range grid {
		text := rowText(row)
		var section Section
		switch {
		case strings.Contains(text, "instalaciones fijas") ||
			(strings.Contains(text, "combustible") && strings.Contains(text, "fij")):
			section = SectionFixed
		case strings.Contains(text, "vehículo") || strings.Contains(text, "vehiculo") ||
			strings.Contains(text, "carretera"):
			section = SectionVehicles
		case strings.Contains(text, "refrigerante") || strings.Contains(text, "fugitiv"):
			section = SectionRefrigerants
		case strings.Contains(text, "eléctric") || strings.Contains(text, "electric") ||
			strings.Contains(text, "mix"):
			section = SectionElectricity
		default:
			continue
		}
		marks = append(marks, SectionMark{Section: section, TitleRow: i, HeaderRow: i + 1})
	}
	return marks
}

// rowText concatenates the non-empty values of a row, lower-cased, for
// keyword matching.
func rowText(row []interface{}) string {
	parts := make([]string, 0, len(row))
	for _, v := range row {
		if v == nil {
			continue
		}
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.ToLower(strings.Join(parts, " "))
}
