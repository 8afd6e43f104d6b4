package cellgrid

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/akettabi/cellgrid-go/pkg/cellgrid/models"
	"github.com/akettabi/cellgrid-go/pkg/cellgrid/output"
)

// Export serializes the sheet to a delimited text file, truncating any
// existing file. The path must end in .csv. A sheet exported and
// loaded again reproduces the same column names and cell values,
// except where re-running type inference reads a column differently
// (a text column whose values all happen to look boolean, for one);
// that is a documented inference limit, not an export defect.
func Export(s *models.Sheet, path string, opts ExportOptions) error {
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return &IOError{Path: path, Err: ErrInvalidFormat}
	}
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	if err := output.WriteCSV(f, s, opts.outputConfig()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}

// Write serializes the sheet as delimited text to w.
func Write(w io.Writer, s *models.Sheet, opts ExportOptions) error {
	return output.WriteCSV(w, s, opts.outputConfig())
}

// ExportString serializes the sheet as delimited text and returns it.
func ExportString(s *models.Sheet, opts ExportOptions) (string, error) {
	var b strings.Builder
	if err := output.WriteCSV(&b, s, opts.outputConfig()); err != nil {
		return "", err
	}
	return b.String(), nil
}
