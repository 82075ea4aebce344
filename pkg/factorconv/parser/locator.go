package parser

import (
	"errors"
	"strings"
)

// ErrSheetNotFound indicates no worksheet could be identified as the
// emission-factor sheet. Callers recover by substituting the default table.
var ErrSheetNotFound = errors.New("emission factor sheet not found")

// sheetKeywords are matched case-insensitively against worksheet names.
// The names vary between workbook versions ("FE 2024", "Factores de
// Emisión", ...), hence substring matching.
var sheetKeywords = []string{"factor", "fe", "emisión", "emision"}

// fallbackSheetIndex is the position of the factor sheet in known workbook
// versions, used when no name matches a keyword.
const fallbackSheetIndex = 9

// LocateFactorSheet selects the worksheet most likely to contain emission
// factors. The first sheet whose name contains a keyword wins; otherwise the
// sheet at fallbackSheetIndex is used when the workbook has enough sheets.
// Deterministic given the sheet-name ordering of the source file.
func LocateFactorSheet(sheetNames []string) (string, error) {
	for _, name := range sheetNames {
		lower := strings.ToLower(name)
		for _, kw := range sheetKeywords {
			if strings.Contains(lower, kw) {
				return name, nil
			}
		}
	}
	if len(sheetNames) > fallbackSheetIndex {
		return sheetNames[fallbackSheetIndex], nil
	}
	return "", ErrSheetNotFound
}
