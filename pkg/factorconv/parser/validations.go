package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DynamicList is a dropdown option list recovered from a worksheet's
// data-validation rules, keyed by sheet name and target cell range.
type DynamicList struct {
	Key   string
	Items []string
}

// ListValidations collects literal comma-separated drop lists from the
// data-validation rules of every worksheet, in sheet iteration order.
// Range-reference formulas (leading "=") and lists with fewer than two
// distinct items are skipped. Sheets whose rules cannot be read are skipped
// rather than failing the run.
func ListValidations(f *excelize.File) []DynamicList {
	var out []DynamicList
	for _, sheetName := range f.GetSheetList() {
		dvs, err := f.GetDataValidations(sheetName)
		if err != nil {
			continue
		}
		for _, dv := range dvs {
			if dv == nil || dv.Type != "list" || dv.Formula1 == "" {
				continue
			}
			items, ok := splitLiteralList(dv.Formula1)
			if !ok {
				continue
			}
			ref := dv.Sqref
			if ref == "" {
				ref = "unknown"
			}
			key := fmt.Sprintf("dropdown_%s_%s", sheetName, ref)
			key = strings.ToLower(strings.ReplaceAll(key, " ", "_"))
			out = append(out, DynamicList{Key: key, Items: items})
		}
	}
	return out
}

// splitLiteralList splits a list-validation formula of the form
// `"option1,option2,option3"` into its items, trimming whitespace and
// surrounding quotes. It reports false for cell-range references and for
// lists that do not yield more than one distinct item.
func splitLiteralList(formula string) ([]string, bool) {
	if strings.HasPrefix(formula, "=") || !strings.Contains(formula, ",") {
		return nil, false
	}
	parts := strings.Split(formula, ",")
	items := make([]string, 0, len(parts))
	distinct := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		item := strings.Trim(strings.TrimSpace(p), `"`)
		items = append(items, item)
		distinct[item] = struct{}{}
	}
	if len(distinct) < 2 {
		return nil, false
	}
	return items, true
}
