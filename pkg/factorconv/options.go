// Package factorconv converts the MITECO carbon-footprint calculator
// workbook into the two JSON documents consumed by the application:
// emission factors and dropdown option lists.
package factorconv

import "github.com/rs/zerolog"

// Options configures a conversion run.
type Options struct {
	// Logger receives informational progress events (sheet located,
	// sections detected, fallback to reference data). Defaults to a
	// disabled logger.
	Logger zerolog.Logger
}

// DefaultOptions returns options with logging disabled.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}
