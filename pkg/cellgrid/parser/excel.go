package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/akettabi/cellgrid-go/pkg/cellgrid/models"
)

// ParseExcel reads one worksheet of an open xlsx workbook through the
// same pipeline as delimited text: header handling, ragged-row policy,
// and per-column kind inference all apply to spreadsheet input too.
// The Separator setting is ignored since cells arrive pre-split.
func ParseExcel(f *excelize.File, sheetName string, cfg Config) (*models.Sheet, []RowIssue, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("read worksheet %q: %w", sheetName, err)
	}
	// GetRows omits trailing empty cells, so a row whose last cells
	// are blank comes back short. Pad rows to the schema width before
	// the ragged-row policy runs; only rows wider than the schema are
	// genuinely ragged in a worksheet.
	if len(rows) > 0 {
		width := len(rows[0])
		for i, row := range rows {
			if len(row) < width {
				padded := make([]string, width)
				copy(padded, row)
				rows[i] = padded
			}
		}
	}
	return buildSheet(rows, cfg)
}
