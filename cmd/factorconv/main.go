// Package main provides the CLI entry point for factorconv.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/huellaco/factorconv/pkg/factorconv"
	"github.com/huellaco/factorconv/pkg/factorconv/models"
	"github.com/huellaco/factorconv/pkg/factorconv/output"
)

// Conventional locations, relative to the invocation root.
const (
	defaultWorkbook = "calculadora_hc_tcm30-485617.xlsx"
	defaultOutDir   = "data"

	factorsFile   = "emission_factors.json"
	dropdownsFile = "dropdowns.json"
)

var (
	inputPath string
	outDir    string
	pretty    bool
	debug     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "factorconv",
		Short: "Convert the MITECO carbon-footprint workbook to JSON",
		Long: `factorconv reads the official MITECO carbon-footprint calculator workbook
(V.31) and writes the emission factors and dropdown option lists as structured
JSON for the downstream application. When the workbook is missing or its
factor sheet cannot be located, the published V.31 reference data is written
instead.`,
		Args: cobra.NoArgs,
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", defaultWorkbook, "Workbook path")
	rootCmd.Flags().StringVarP(&outDir, "out-dir", "o", defaultOutDir, "Output directory for the JSON files")
	rootCmd.Flags().BoolVar(&pretty, "pretty", true, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := newLogger(debug)

	var (
		factors   *models.EmissionFactorSet
		dropdowns *models.DropdownSet
	)

	if err := factorconv.CheckInput(inputPath); errors.Is(err, factorconv.ErrInputNotFound) {
		// Recovered path, not an error: the whole run switches to the
		// published reference data.
		logger.Info().Str("path", inputPath).Msg("workbook not found, using V.31 reference data")
		factors = factorconv.DefaultFactorSet()
		dropdowns = factorconv.DefaultDropdowns()
	} else {
		logger.Info().Str("path", inputPath).Msg("opening workbook")
		factors, dropdowns, err = factorconv.Convert(inputPath, factorconv.Options{Logger: logger})
		if err != nil {
			return fmt.Errorf("conversion failed: %w", err)
		}
	}

	factorsPath, err := output.WriteFile(outDir, factorsFile, factors, pretty)
	if err != nil {
		return fmt.Errorf("failed to write emission factors: %w", err)
	}
	logger.Info().Str("path", factorsPath).Msg("wrote emission factors")

	dropdownsPath, err := output.WriteFile(outDir, dropdownsFile, dropdowns, pretty)
	if err != nil {
		return fmt.Errorf("failed to write dropdowns: %w", err)
	}
	logger.Info().Str("path", dropdownsPath).Msg("wrote dropdowns")

	logger.Info().
		Int("combustibles_fijos", len(factors.CombustiblesInstalacionesFijas)).
		Int("combustibles_vehiculos", len(factors.CombustiblesVehiculosCarretera)).
		Int("gases_refrigerantes", len(factors.GasesRefrigerantesPCA)).
		Int("comercializadoras", len(factors.MixElectricoComercializadoras)).
		Int("transporte_no_carretera", len(factors.TransporteNoCarretera)).
		Int("categorias_dropdown", dropdowns.Len()).
		Msg("conversion complete")

	return nil
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
