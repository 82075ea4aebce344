package factorconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDropdownsCategories(t *testing.T) {
	set := DefaultDropdowns()

	want := []string{
		"tipos_combustible_fijo",
		"tipos_combustible_vehiculo",
		"categorias_vehiculo",
		"tipos_gas_refrigerante",
		"tipos_equipo_climatizacion",
		"comercializadoras_electricas",
		"sectores",
		"tipos_organizacion",
		"metodos_calculo_vehiculos",
		"anios_calculo",
		"tipos_transporte_no_carretera",
	}
	assert.Equal(t, want, set.Keys())

	for _, key := range want {
		v, ok := set.Get(key)
		require.True(t, ok, key)
		assert.NotEmpty(t, v, key)
	}
}

func TestDefaultDropdownsYearRange(t *testing.T) {
	set := DefaultDropdowns()

	v, ok := set.Get("anios_calculo")
	require.True(t, ok)
	years, ok := v.([]int)
	require.True(t, ok)

	require.Len(t, years, 18)
	assert.Equal(t, 2007, years[0])
	assert.Equal(t, 2024, years[17])
}

func TestDefaultDropdownsContents(t *testing.T) {
	set := DefaultDropdowns()

	v, _ := set.Get("tipos_combustible_fijo")
	assert.Len(t, v, 8)

	v, _ = set.Get("categorias_vehiculo")
	assert.Equal(t, []string{
		"Turismos (M1)",
		"Furgonetas (N1)",
		"Camiones pesados (N2/N3)",
		"Autobuses (M2/M3)",
		"Motocicletas (L)",
	}, v)

	v, _ = set.Get("tipos_gas_refrigerante")
	gases, ok := v.([]string)
	require.True(t, ok)
	assert.Len(t, gases, 20)

	// Dropdown names match the factor table display names by convention.
	fs := DefaultFactorSet()
	for _, gas := range gases {
		assert.Contains(t, fs.GasesRefrigerantesPCA, gas)
	}
}
