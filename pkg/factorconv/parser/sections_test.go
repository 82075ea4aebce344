package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(values ...interface{}) []interface{} { return values }

func TestDetectSections(t *testing.T) {
	grid := [][]interface{}{
		row("Factores de emisión de la calculadora"),
		row(nil, nil),
		row("COMBUSTIBLES PARA INSTALACIONES FIJAS"),
		row("Combustible", "Unidad", int64(2024)),
		row("Gas natural", "kWh PCS", 0.182),
		row("Vehículos de carretera"),
		row("Combustible", "Categoría", int64(2024)),
		row("Emisiones fugitivas de gases refrigerantes"),
		row("Mix eléctrico por comercializadora"),
	}

	marks := DetectSections(grid)

	var sections []Section
	for _, m := range marks {
		sections = append(sections, m.Section)
	}
	require.Contains(t, sections, SectionFixed)
	require.Contains(t, sections, SectionVehicles)
	require.Contains(t, sections, SectionRefrigerants)
	require.Contains(t, sections, SectionElectricity)

	for _, m := range marks {
		if m.Section == SectionFixed && m.TitleRow == 2 {
			assert.Equal(t, 3, m.HeaderRow, "header row follows the title row")
		}
	}
}

func TestDetectSectionsCompoundKeyword(t *testing.T) {
	grid := [][]interface{}{
		row("Combustible para equipos fijos"),
	}

	marks := DetectSections(grid)
	require.Len(t, marks, 1)
	assert.Equal(t, SectionFixed, marks[0].Section)
}

func TestDetectSectionsEmptyGrid(t *testing.T) {
	assert.Empty(t, DetectSections(nil))
	assert.Empty(t, DetectSections([][]interface{}{row(nil, nil)}))
}
