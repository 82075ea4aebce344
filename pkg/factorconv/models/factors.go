// Package models defines the JSON data structures produced by the converter.
//
// Field names follow the Spanish keys of the original MITECO dataset because
// the downstream application consumes them verbatim.
package models

// EmissionFactorSet is the root record written to emission_factors.json.
// Field order matches the serialized layout.
type EmissionFactorSet struct {
	// Version is the workbook version tag (e.g. "V.31").
	Version string `json:"version"`
	// Fuente is the attribution string for the published dataset.
	Fuente string `json:"fuente"`
	// PCAAR6 holds the IPCC AR6 global-warming potentials.
	PCAAR6 GWPValues `json:"pca_ar6"`
	// AniosDisponibles lists the years covered by the dataset, ascending.
	AniosDisponibles []int `json:"anios_disponibles"`
	// CombustiblesInstalacionesFijas maps fuel+unit id to stationary fuel factors.
	CombustiblesInstalacionesFijas map[string]StationaryFuelFactor `json:"combustibles_instalaciones_fijas"`
	// CombustiblesVehiculosCarretera maps fuel id to road vehicle factors.
	CombustiblesVehiculosCarretera map[string]RoadVehicleFuelFactor `json:"combustibles_vehiculos_carretera"`
	// GasesRefrigerantesPCA maps commercial refrigerant name to its potential.
	GasesRefrigerantesPCA map[string]RefrigerantGas `json:"gases_refrigerantes_pca"`
	// MixElectricoComercializadoras maps supplier id to electricity mix factors.
	MixElectricoComercializadoras map[string]ElectricityMixFactor `json:"mix_electrico_comercializadoras"`
	// TransporteNoCarretera maps transport mode to non-road factors.
	TransporteNoCarretera map[string]NonRoadTransportFactor `json:"transporte_no_carretera"`
}

// GWPValues holds the fixed AR6 global-warming potentials used to convert
// CH4 and N2O mass into CO2 equivalent.
type GWPValues struct {
	CH4         float64 `json:"CH4"`
	N2O         float64 `json:"N2O"`
	Descripcion string  `json:"descripcion,omitempty"`
}

// FactorTriple holds the per-year coefficients for one fuel:
// CO2 in kg per unit, CH4 and N2O in g per unit.
type FactorTriple struct {
	CO2KgUd float64 `json:"co2_kg_ud"`
	CH4GUd  float64 `json:"ch4_g_ud"`
	N2OGUd  float64 `json:"n2o_g_ud"`
}

// StationaryFuelFactor describes a fixed-installation fuel. Factores is keyed
// by year ("2024"); missing years are simply absent, no interpolation.
type StationaryFuelFactor struct {
	Nombre   string                  `json:"nombre"`
	Unidad   string                  `json:"unidad"`
	Factores map[string]FactorTriple `json:"factores"`
}

// RoadVehicleFuelFactor describes a road-transport fuel broken down by
// vehicle category. The category set is closed: turismos_M1, furgonetas_N1,
// camiones_pesados_N2_N3, autobuses_M2_M3, motocicletas_L.
type RoadVehicleFuelFactor struct {
	Nombre       string                     `json:"nombre"`
	Unidad       string                     `json:"unidad"`
	PorCategoria map[string]CategoryFactors `json:"por_categoria"`
}

// CategoryFactors holds the per-year coefficients for one vehicle category.
type CategoryFactors struct {
	Nombre   string                  `json:"nombre"`
	Factores map[string]FactorTriple `json:"factores"`
}

// RefrigerantGas describes one refrigerant and its global-warming potential.
// PCA is constant across time; there is no year dimension.
type RefrigerantGas struct {
	Formula string  `json:"formula"`
	PCA     float64 `json:"pca"`
	Nombre  string  `json:"nombre"`
}

// ElectricityMixFactor describes one electricity supplier's per-year
// kg CO2/kWh factor. The distinguished "con_garantia_origen" entry carries
// zero for every year: a certificate of origin supersedes supplier factors.
type ElectricityMixFactor struct {
	Nombre           string             `json:"nombre"`
	FactoresKgCO2KWh map[string]float64 `json:"factores_kg_co2_kwh"`
}

// TransportFactor holds the per-year coefficient for a non-road mode. The
// coefficient name depends on the mode's unit, so exactly one field is set:
// co2_kg_km for per-km modes, co2_kg_tkm for per-tonne-km modes.
type TransportFactor struct {
	CO2KgKm  *float64 `json:"co2_kg_km,omitempty"`
	CO2KgTkm *float64 `json:"co2_kg_tkm,omitempty"`
}

// NonRoadTransportFactor describes one non-road transport mode (rail, sea
// freight, air split by distance band).
type NonRoadTransportFactor struct {
	Nombre   string                     `json:"nombre"`
	Unidad   string                     `json:"unidad"`
	Factores map[string]TransportFactor `json:"factores"`
}
