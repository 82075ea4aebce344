package factorconv

import (
	"errors"
	"fmt"
)

// ErrInputNotFound indicates the workbook does not exist at the resolved
// path. The CLI recovers by writing the published reference data instead.
var ErrInputNotFound = errors.New("workbook not found")

// ParseError wraps a failure while reading or scanning the factor sheet.
type ParseError struct {
	Sheet string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in sheet %q: %v", e.Sheet, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
