package factorconv

import "github.com/huellaco/factorconv/pkg/factorconv/models"

// DefaultDropdowns returns the static option categories used by the input
// forms, in their fixed order. Option strings match the display names of the
// factor table entries by convention; no referential integrity is enforced.
func DefaultDropdowns() *models.DropdownSet {
	set := models.NewDropdownSet()

	set.Set("tipos_combustible_fijo", []string{
		"Gas natural (kWh PCS)",
		"Gas natural (m³)",
		"Gasóleo calefacción (litros)",
		"GLP (litros)",
		"GLP (kg)",
		"Carbón (kg)",
		"Biomasa - Pellets (kg)",
		"Biomasa - Astillas (kg)",
	})
	set.Set("tipos_combustible_vehiculo", []string{
		"Gasolina (litros)",
		"Gasóleo (litros)",
		"GLP vehículos (litros)",
		"Gas natural vehículos (kWh)",
	})
	set.Set("categorias_vehiculo", []string{
		"Turismos (M1)",
		"Furgonetas (N1)",
		"Camiones pesados (N2/N3)",
		"Autobuses (M2/M3)",
		"Motocicletas (L)",
	})
	set.Set("tipos_gas_refrigerante", []string{
		"R-134a", "R-410A", "R-407C", "R-404A", "R-507A",
		"R-32", "R-125", "R-143a", "R-227ea", "R-245fa",
		"R-236fa", "R-422D", "R-417A", "R-290", "R-600a",
		"R-744", "R-717", "SF6", "HFC-23", "NF3",
	})
	set.Set("tipos_equipo_climatizacion", []string{
		"Climatizador split",
		"Climatizador multisplit",
		"Climatizador tipo cassette",
		"Bomba de calor",
		"Enfriadora",
		"Rooftop",
		"VRV/VRF",
		"Cámara frigorífica",
		"Equipo frigorífico industrial",
		"Otro",
	})
	set.Set("comercializadoras_electricas", []string{
		"Mix eléctrico peninsular",
		"Iberdrola",
		"Endesa",
		"Naturgy",
		"Repsol",
		"EDP",
		"TotalEnergies",
		"Otra (usar mix peninsular)",
	})
	set.Set("sectores", []string{
		"Agricultura, ganadería, silvicultura y pesca",
		"Industrias extractivas",
		"Industria manufacturera",
		"Suministro de energía eléctrica, gas, vapor y aire acondicionado",
		"Suministro de agua, actividades de saneamiento",
		"Construcción",
		"Comercio al por mayor y al por menor",
		"Transporte y almacenamiento",
		"Hostelería",
		"Información y comunicaciones",
		"Actividades financieras y de seguros",
		"Actividades inmobiliarias",
		"Actividades profesionales, científicas y técnicas",
		"Actividades administrativas y servicios auxiliares",
		"Administración Pública y defensa",
		"Educación",
		"Actividades sanitarias y de servicios sociales",
		"Actividades artísticas, recreativas y de entretenimiento",
		"Otros servicios",
	})
	set.Set("tipos_organizacion", []string{
		"Empresa privada",
		"Empresa pública",
		"Administración Pública",
		"Fundación / ONG",
		"Autónomo",
		"Otra",
	})
	set.Set("metodos_calculo_vehiculos", []string{
		"A1 - Por combustible consumido (litros/kWh)",
		"A2 - Por distancia recorrida (km)",
	})
	set.Set("anios_calculo", availableYears())
	set.Set("tipos_transporte_no_carretera", []string{
		"Ferroviario",
		"Marítimo de carga",
		"Aéreo nacional",
		"Aéreo internacional corto (<3700 km)",
		"Aéreo internacional largo (>3700 km)",
	})

	return set
}
