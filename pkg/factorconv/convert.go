package factorconv

import (
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/huellaco/factorconv/pkg/factorconv/models"
	"github.com/huellaco/factorconv/pkg/factorconv/parser"
)

// CheckInput reports whether the workbook exists at path, returning
// ErrInputNotFound when it is absent. Other stat failures are not surfaced
// here; opening the workbook reports them.
func CheckInput(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	return nil
}

// Convert opens the workbook at path and extracts both the emission factor
// set and the dropdown option set. The workbook is read once and is
// read-only for the duration of the run. An error is returned only when the
// file cannot be opened as a spreadsheet; detection failures inside a
// readable workbook recover to the published reference data.
func Convert(path string, opts Options) (*models.EmissionFactorSet, *models.DropdownSet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	factors := ExtractFactors(f, opts)
	dropdowns := ExtractDropdowns(f, opts)
	return factors, dropdowns, nil
}

// ExtractFactors locates the emission-factor sheet and scans it for section
// boundaries. Section detection yields header positions only; it never
// populates factor values, so the result's category maps stay empty and the
// published V.31 reference table is substituted. The sheet scan is kept as
// the forward path for structured extraction of future workbook versions.
func ExtractFactors(f *excelize.File, opts Options) *models.EmissionFactorSet {
	logger := opts.Logger

	sheetName, err := parser.LocateFactorSheet(f.GetSheetList())
	if err != nil {
		if errors.Is(err, parser.ErrSheetNotFound) {
			logger.Warn().Msg("factor sheet not found, using V.31 reference data")
		}
		return DefaultFactorSet()
	}
	logger.Info().Str("sheet", sheetName).Msg("reading emission factors")

	factors, err := parseFactorSheet(f, sheetName, opts)
	if err != nil {
		logger.Warn().Err(err).Msg("factor sheet unreadable, using V.31 reference data")
		return DefaultFactorSet()
	}
	if len(factors.CombustiblesInstalacionesFijas) == 0 {
		logger.Info().Msg("using V.31 reference emission factors")
		return DefaultFactorSet()
	}
	return factors
}

// parseFactorSheet reads the located sheet into a coerced grid and records
// the detected section boundaries. It returns the factor-set scaffold with
// empty category maps; callers treat an empty stationary-fuel map as the
// signal to fall back to the reference table.
func parseFactorSheet(f *excelize.File, sheetName string, opts Options) (*models.EmissionFactorSet, error) {
	grid, err := parser.ExtractGrid(f, sheetName)
	if err != nil {
		return nil, &ParseError{Sheet: sheetName, Err: err}
	}

	for _, mark := range parser.DetectSections(grid) {
		opts.Logger.Debug().
			Str("section", string(mark.Section)).
			Int("header_row", mark.HeaderRow).
			Msg("section detected")
	}

	return newFactorScaffold(), nil
}

// newFactorScaffold returns a factor set with the fixed metadata populated
// and every category map empty.
func newFactorScaffold() *models.EmissionFactorSet {
	return &models.EmissionFactorSet{
		Version: DatasetVersion,
		Fuente:  DatasetSource,
		PCAAR6: models.GWPValues{
			CH4: GWPCH4,
			N2O: GWPN2O,
		},
		AniosDisponibles:               availableYears(),
		CombustiblesInstalacionesFijas: map[string]models.StationaryFuelFactor{},
		CombustiblesVehiculosCarretera: map[string]models.RoadVehicleFuelFactor{},
		GasesRefrigerantesPCA:          map[string]models.RefrigerantGas{},
		MixElectricoComercializadoras:  map[string]models.ElectricityMixFactor{},
		TransporteNoCarretera:          map[string]models.NonRoadTransportFactor{},
	}
}

// ExtractDropdowns returns the static option categories augmented with any
// literal drop lists found in the workbook's data-validation rules. Static
// categories come first in their fixed order; dynamic entries are appended
// in worksheet iteration order and never displace a static category.
func ExtractDropdowns(f *excelize.File, opts Options) *models.DropdownSet {
	set := DefaultDropdowns()
	for _, dl := range parser.ListValidations(f) {
		set.Set(dl.Key, dl.Items)
		opts.Logger.Debug().Str("key", dl.Key).Int("options", len(dl.Items)).
			Msg("dropdown recovered from data validation")
	}
	return set
}
