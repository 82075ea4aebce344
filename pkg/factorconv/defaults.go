package factorconv

import (
	"strconv"

	"github.com/huellaco/factorconv/pkg/factorconv/models"
)

// Dataset identity, fixed to the published MITECO calculator release.
const (
	DatasetVersion = "V.31"
	DatasetSource  = "MITECO - Ministerio para la Transición Ecológica y el Reto Demográfico"
)

// IPCC AR6 global-warming potentials.
const (
	GWPCH4 = 27.9
	GWPN2O = 273
)

// Year range covered by the dataset.
const (
	firstYear = 2007
	lastYear  = 2024
)

func availableYears() []int {
	years := make([]int, 0, lastYear-firstYear+1)
	for y := firstYear; y <= lastYear; y++ {
		years = append(years, y)
	}
	return years
}

func triple(co2, ch4, n2o float64) models.FactorTriple {
	return models.FactorTriple{CO2KgUd: co2, CH4GUd: ch4, N2OGUd: n2o}
}

func perKm(v float64) models.TransportFactor {
	return models.TransportFactor{CO2KgKm: &v}
}

func perTkm(v float64) models.TransportFactor {
	return models.TransportFactor{CO2KgTkm: &v}
}

// DefaultFactorSet returns the complete hand-curated emission factor table of
// the MITECO calculator V.31 (Alcance 1 + 2, España). This is the source of
// truth for the generated output whenever sheet detection or extraction
// comes up short.
//
// Reference: https://www.miteco.gob.es/es/cambio-climatico/temas/mitigacion-politicas-y-medidas/calculadoras.html
func DefaultFactorSet() *models.EmissionFactorSet {
	return &models.EmissionFactorSet{
		Version: DatasetVersion,
		Fuente:  DatasetSource,
		PCAAR6: models.GWPValues{
			CH4:         GWPCH4,
			N2O:         GWPN2O,
			Descripcion: "Potenciales de Calentamiento Global del Sexto Informe de Evaluación (AR6) del IPCC",
		},
		AniosDisponibles: availableYears(),

		// Combustibles para instalaciones fijas: factores por unidad de
		// combustible consumido.
		CombustiblesInstalacionesFijas: map[string]models.StationaryFuelFactor{
			"gas_natural_kWhPCS": {
				Nombre: "Gas natural (kWh PCS)",
				Unidad: "kWh PCS",
				Factores: map[string]models.FactorTriple{
					"2024": triple(0.182, 0.004, 0.001),
					"2023": triple(0.182, 0.004, 0.001),
					"2022": triple(0.182, 0.004, 0.001),
					"2021": triple(0.182, 0.004, 0.001),
					"2020": triple(0.182, 0.004, 0.001),
				},
			},
			"gas_natural_m3": {
				Nombre: "Gas natural (m³)",
				Unidad: "m³",
				Factores: map[string]models.FactorTriple{
					"2024": triple(2.016, 0.044, 0.008),
					"2023": triple(2.016, 0.044, 0.008),
					"2022": triple(2.016, 0.044, 0.008),
				},
			},
			"gasoleo_calefaccion_litros": {
				Nombre: "Gasóleo calefacción (litros)",
				Unidad: "litros",
				Factores: map[string]models.FactorTriple{
					"2024": triple(2.868, 0.080, 0.016),
					"2023": triple(2.868, 0.080, 0.016),
					"2022": triple(2.868, 0.080, 0.016),
				},
			},
			"glp_litros": {
				Nombre: "GLP (litros)",
				Unidad: "litros",
				Factores: map[string]models.FactorTriple{
					"2024": triple(1.612, 0.023, 0.023),
					"2023": triple(1.612, 0.023, 0.023),
					"2022": triple(1.612, 0.023, 0.023),
				},
			},
			"glp_kg": {
				Nombre: "GLP (kg)",
				Unidad: "kg",
				Factores: map[string]models.FactorTriple{
					"2024": triple(2.938, 0.042, 0.042),
					"2023": triple(2.938, 0.042, 0.042),
				},
			},
			"carbon_kg": {
				Nombre: "Carbón (kg)",
				Unidad: "kg",
				Factores: map[string]models.FactorTriple{
					"2024": triple(2.533, 0.028, 0.057),
					"2023": triple(2.533, 0.028, 0.057),
				},
			},
			"biomasa_pellets_kg": {
				Nombre: "Biomasa - Pellets (kg)",
				Unidad: "kg",
				Factores: map[string]models.FactorTriple{
					"2024": triple(0.0, 0.540, 0.054),
					"2023": triple(0.0, 0.540, 0.054),
				},
			},
			"biomasa_astillas_kg": {
				Nombre: "Biomasa - Astillas (kg)",
				Unidad: "kg",
				Factores: map[string]models.FactorTriple{
					"2024": triple(0.0, 1.080, 0.054),
					"2023": triple(0.0, 1.080, 0.054),
				},
			},
		},

		// Combustibles para vehículos de carretera: factores por tipo de
		// combustible y categoría de vehículo. Las entradas km_* cubren el
		// método de cálculo A2 (por distancia recorrida).
		CombustiblesVehiculosCarretera: map[string]models.RoadVehicleFuelFactor{
			"gasolina_litros": {
				Nombre: "Gasolina (litros)",
				Unidad: "litros",
				PorCategoria: map[string]models.CategoryFactors{
					"turismos_M1": {
						Nombre: "Turismos (M1)",
						Factores: map[string]models.FactorTriple{
							"2024": triple(2.196, 0.238, 0.025),
							"2023": triple(2.196, 0.238, 0.025),
							"2022": triple(2.196, 0.238, 0.025),
						},
					},
					"furgonetas_N1": {
						Nombre: "Furgonetas (N1)",
						Factores: map[string]models.FactorTriple{
							"2024": triple(2.196, 0.316, 0.062),
							"2023": triple(2.196, 0.316, 0.062),
						},
					},
					"camiones_pesados_N2_N3": {
						Nombre: "Camiones pesados (N2/N3)",
						Factores: map[string]models.FactorTriple{
							"2024": triple(2.196, 0.316, 0.062),
							"2023": triple(2.196, 0.316, 0.062),
						},
					},
					"autobuses_M2_M3": {
						Nombre: "Autobuses (M2/M3)",
						Factores: map[string]models.FactorTriple{
							"2024": triple(2.196, 0.316, 0.062),
							"2023": triple(2.196, 0.316, 0.062),
						},
					},
					"motocicletas_L": {
						Nombre: "Motocicletas (L)",
						Factores: map[string]models.FactorTriple{
							"2024": triple(2.196, 0.572, 0.019),
							"2023": triple(2.196, 0.572, 0.019),
						},
					},
				},
			},
			"gasoleo_litros": {
				Nombre: "Gasóleo (litros)",
				Unidad: "litros",
				PorCategoria: map[string]models.CategoryFactors{
					"turismos_M1": {
						Nombre: "Turismos (M1)",
						Factores: map[string]models.FactorTriple{
							"2024": triple(2.607, 0.005, 0.028),
							"2023": triple(2.607, 0.005, 0.028),
							"2022": triple(2.607, 0.005, 0.028),
						},
					},
					"furgonetas_N1": {
						Nombre: "Furgonetas (N1)",
						Factores: map[string]models.FactorTriple{
							"2024": triple(2.607, 0.005, 0.028),
							"2023": triple(2.607, 0.005, 0.028),
						},
					},
					"camiones_pesados_N2_N3": {
						Nombre: "Camiones pesados (N2/N3)",
						Factores: map[string]models.FactorTriple{
							"2024": triple(2.607, 0.010, 0.107),
							"2023": triple(2.607, 0.010, 0.107),
						},
					},
					"autobuses_M2_M3": {
						Nombre: "Autobuses (M2/M3)",
						Factores: map[string]models.FactorTriple{
							"2024": triple(2.607, 0.010, 0.107),
							"2023": triple(2.607, 0.010, 0.107),
						},
					},
				},
			},
			"glp_litros_vehiculos": {
				Nombre: "GLP vehículos (litros)",
				Unidad: "litros",
				PorCategoria: map[string]models.CategoryFactors{
					"turismos_M1": {
						Nombre: "Turismos (M1)",
						Factores: map[string]models.FactorTriple{
							"2024": triple(1.612, 0.572, 0.019),
							"2023": triple(1.612, 0.572, 0.019),
						},
					},
				},
			},
			"gas_natural_vehiculos_kWh": {
				Nombre: "Gas natural vehículos (kWh)",
				Unidad: "kWh",
				PorCategoria: map[string]models.CategoryFactors{
					"turismos_M1": {
						Nombre: "Turismos (M1)",
						Factores: map[string]models.FactorTriple{
							"2024": triple(0.182, 1.349, 0.019),
							"2023": triple(0.182, 1.349, 0.019),
						},
					},
				},
			},
			"km_gasolina": {
				Nombre: "Distancia gasolina (km)",
				Unidad: "km",
				PorCategoria: map[string]models.CategoryFactors{
					"turismos_M1": {
						Nombre: "Turismos (M1)",
						Factores: map[string]models.FactorTriple{
							"2024": triple(0.148, 0.016, 0.002),
							"2023": triple(0.148, 0.016, 0.002),
						},
					},
					"furgonetas_N1": {
						Nombre: "Furgonetas (N1)",
						Factores: map[string]models.FactorTriple{
							"2024": triple(0.186, 0.027, 0.005),
							"2023": triple(0.186, 0.027, 0.005),
						},
					},
				},
			},
			"km_gasoleo": {
				Nombre: "Distancia gasóleo (km)",
				Unidad: "km",
				PorCategoria: map[string]models.CategoryFactors{
					"turismos_M1": {
						Nombre: "Turismos (M1)",
						Factores: map[string]models.FactorTriple{
							"2024": triple(0.153, 0.000, 0.002),
							"2023": triple(0.153, 0.000, 0.002),
						},
					},
					"furgonetas_N1": {
						Nombre: "Furgonetas (N1)",
						Factores: map[string]models.FactorTriple{
							"2024": triple(0.195, 0.000, 0.002),
							"2023": triple(0.195, 0.000, 0.002),
						},
					},
				},
			},
		},

		// Gases refrigerantes y su potencial de calentamiento (emisiones
		// fugitivas). El PCA es constante, sin dimensión de año.
		GasesRefrigerantesPCA: map[string]models.RefrigerantGas{
			"R-134a":  {Formula: "CH2FCF3", PCA: 1530, Nombre: "R-134a (HFC)"},
			"R-410A":  {Formula: "R410A", PCA: 2088, Nombre: "R-410A (mezcla HFC)"},
			"R-407C":  {Formula: "R407C", PCA: 1774, Nombre: "R-407C (mezcla HFC)"},
			"R-404A":  {Formula: "R404A", PCA: 3922, Nombre: "R-404A (mezcla HFC)"},
			"R-507A":  {Formula: "R507A", PCA: 3985, Nombre: "R-507A (mezcla HFC)"},
			"R-32":    {Formula: "CH2F2", PCA: 771, Nombre: "R-32 (HFC)"},
			"R-125":   {Formula: "C2HF5", PCA: 3740, Nombre: "R-125 (HFC)"},
			"R-143a":  {Formula: "C2H3F3", PCA: 5810, Nombre: "R-143a (HFC)"},
			"R-227ea": {Formula: "C3HF7", PCA: 3600, Nombre: "R-227ea (HFC)"},
			"R-245fa": {Formula: "C3H3F5", PCA: 1030, Nombre: "R-245fa (HFC)"},
			"R-236fa": {Formula: "C3H2F6", PCA: 8690, Nombre: "R-236fa (HFC)"},
			"R-422D":  {Formula: "R422D", PCA: 2729, Nombre: "R-422D (mezcla HFC)"},
			"R-417A":  {Formula: "R417A", PCA: 2346, Nombre: "R-417A (mezcla HFC)"},
			"R-290":   {Formula: "C3H8", PCA: 0.02, Nombre: "R-290 Propano (HC)"},
			"R-600a":  {Formula: "C4H10", PCA: 0.02, Nombre: "R-600a Isobutano (HC)"},
			"R-744":   {Formula: "CO2", PCA: 1, Nombre: "R-744 CO2"},
			"R-717":   {Formula: "NH3", PCA: 0, Nombre: "R-717 Amoniaco"},
			"SF6":     {Formula: "SF6", PCA: 25200, Nombre: "Hexafluoruro de azufre"},
			"HFC-23":  {Formula: "CHF3", PCA: 14800, Nombre: "HFC-23"},
			"NF3":     {Formula: "NF3", PCA: 17200, Nombre: "Trifluoruro de nitrógeno"},
		},

		// Mix eléctrico por comercializadora (Alcance 2), kg CO2/kWh por
		// año. Con Garantía de Origen el factor es 0 en todos los años,
		// independientemente de la comercializadora.
		MixElectricoComercializadoras: map[string]models.ElectricityMixFactor{
			"mix_nacional": {
				Nombre: "Mix eléctrico peninsular (sin GdO)",
				FactoresKgCO2KWh: map[string]float64{
					"2024": 0.120,
					"2023": 0.127,
					"2022": 0.144,
					"2021": 0.151,
					"2020": 0.122,
					"2019": 0.157,
					"2018": 0.208,
					"2017": 0.245,
					"2016": 0.225,
					"2015": 0.265,
					"2014": 0.267,
					"2013": 0.248,
					"2012": 0.309,
					"2011": 0.267,
					"2010": 0.218,
					"2009": 0.290,
					"2008": 0.338,
					"2007": 0.372,
				},
			},
			"iberdrola": {
				Nombre: "Iberdrola (sin GdO)",
				FactoresKgCO2KWh: map[string]float64{
					"2024": 0.070,
					"2023": 0.075,
					"2022": 0.090,
				},
			},
			"endesa": {
				Nombre: "Endesa (sin GdO)",
				FactoresKgCO2KWh: map[string]float64{
					"2024": 0.100,
					"2023": 0.110,
					"2022": 0.130,
				},
			},
			"naturgy": {
				Nombre: "Naturgy (sin GdO)",
				FactoresKgCO2KWh: map[string]float64{
					"2024": 0.140,
					"2023": 0.150,
					"2022": 0.170,
				},
			},
			"repsol": {
				Nombre: "Repsol (sin GdO)",
				FactoresKgCO2KWh: map[string]float64{
					"2024": 0.180,
					"2023": 0.190,
					"2022": 0.200,
				},
			},
			"edp": {
				Nombre: "EDP (sin GdO)",
				FactoresKgCO2KWh: map[string]float64{
					"2024": 0.090,
					"2023": 0.095,
					"2022": 0.110,
				},
			},
			"totalenergies": {
				Nombre: "TotalEnergies (sin GdO)",
				FactoresKgCO2KWh: map[string]float64{
					"2024": 0.160,
					"2023": 0.170,
				},
			},
			"con_garantia_origen": {
				Nombre:           "Con Garantía de Origen (GdO) - cualquier comercializadora",
				FactoresKgCO2KWh: zeroedYears(),
			},
		},

		// Transporte no carretera: ferroviario, marítimo y aéreo.
		TransporteNoCarretera: map[string]models.NonRoadTransportFactor{
			"ferroviario": {
				Nombre: "Transporte ferroviario",
				Unidad: "km",
				Factores: map[string]models.TransportFactor{
					"2024": perKm(0.026),
					"2023": perKm(0.028),
				},
			},
			"maritimo_carga": {
				Nombre: "Transporte marítimo de carga",
				Unidad: "t·km",
				Factores: map[string]models.TransportFactor{
					"2024": perTkm(0.016),
					"2023": perTkm(0.016),
				},
			},
			"aereo_nacional": {
				Nombre: "Transporte aéreo nacional",
				Unidad: "km",
				Factores: map[string]models.TransportFactor{
					"2024": perKm(0.163),
					"2023": perKm(0.165),
				},
			},
			"aereo_internacional_corto": {
				Nombre: "Transporte aéreo internacional corto (<3700 km)",
				Unidad: "km",
				Factores: map[string]models.TransportFactor{
					"2024": perKm(0.097),
					"2023": perKm(0.099),
				},
			},
			"aereo_internacional_largo": {
				Nombre: "Transporte aéreo internacional largo (>3700 km)",
				Unidad: "km",
				Factores: map[string]models.TransportFactor{
					"2024": perKm(0.112),
					"2023": perKm(0.114),
				},
			},
		},
	}
}

// zeroedYears returns a 0.0 factor for every available year, used by the
// certificate-of-origin override.
func zeroedYears() map[string]float64 {
	out := make(map[string]float64, lastYear-firstYear+1)
	for y := firstYear; y <= lastYear; y++ {
		out[strconv.Itoa(y)] = 0.0
	}
	return out
}
