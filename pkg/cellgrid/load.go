package cellgrid

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/akettabi/cellgrid-go/pkg/cellgrid/models"
	"github.com/akettabi/cellgrid-go/pkg/cellgrid/parser"
)

// Load reads a delimited text file into a sheet. The path must end in
// .csv. Row-level anomalies (ragged rows) are returned as issues, not
// errors; an unreadable file is an IOError and structurally malformed
// content a ParseError.
func Load(path string, opts Options) (*models.Sheet, []RowIssue, error) {
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return nil, nil, &IOError{Path: path, Err: ErrInvalidFormat}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()
	return parser.Parse(f, opts.parserConfig())
}

// LoadString parses raw delimited text into a sheet. It shares the
// field-splitting and type-inference logic of Load.
func LoadString(data string, opts Options) (*models.Sheet, []RowIssue, error) {
	return parser.Parse(strings.NewReader(data), opts.parserConfig())
}

// LoadExcel reads one worksheet of an xlsx workbook into a sheet,
// applying the same header and type-inference rules as delimited text.
// An empty sheetName selects the workbook's first worksheet.
func LoadExcel(path, sheetName string, opts Options) (*models.Sheet, []RowIssue, error) {
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return nil, nil, &IOError{Path: path, Err: ErrInvalidFormat}
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	return parser.ParseExcel(f, sheetName, opts.parserConfig())
}

// InsertRow parses a delimited string against the sheet's schema and
// appends it as a row. Fields are split by the configured separator
// and parsed against each column's declared kind; unparseable values
// become missing, the same policy the loader applies.
func InsertRow(s *models.Sheet, input string, opts Options) error {
	fields := strings.Split(input, string(opts.parserConfig().Separator))
	cells := make([]models.Cell, len(fields))
	cols := s.Columns()
	for i, field := range fields {
		if opts.ShouldTrim() {
			field = strings.TrimSpace(field)
		}
		if i < len(cols) {
			cells[i] = parser.ParseAs(field, cols[i].Kind)
		}
	}
	return s.InsertRow(cells)
}
