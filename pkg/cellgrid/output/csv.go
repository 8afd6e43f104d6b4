// Package output serializes a models.Sheet: delimited text for export,
// JSON and console tables for the CLI.
package output

import (
	"encoding/csv"
	"io"

	"github.com/akettabi/cellgrid-go/pkg/cellgrid/models"
)

// Config holds resolved serialization parameters.
type Config struct {
	// Separator is the output field separator character.
	Separator rune
	// WriteHeader specifies whether a header line of column names is
	// written first.
	WriteHeader bool
}

// DefaultConfig returns the default serialization parameters: comma
// separated with a header line.
func DefaultConfig() Config {
	return Config{Separator: ',', WriteHeader: true}
}

// WriteCSV writes the sheet as delimited text. Every cell uses its
// canonical rendering, missing cells become empty fields, and fields
// containing the separator, quotes, or newlines get minimal RFC 4180
// quoting so a reload splits them identically.
func WriteCSV(w io.Writer, s *models.Sheet, cfg Config) error {
	cw := csv.NewWriter(w)
	cw.Comma = cfg.Separator
	if cfg.WriteHeader {
		if err := cw.Write(s.ColumnNames()); err != nil {
			return err
		}
	}
	record := make([]string, s.NumColumns())
	for _, row := range s.Rows() {
		for j, cell := range row {
			record[j] = cell.String()
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
