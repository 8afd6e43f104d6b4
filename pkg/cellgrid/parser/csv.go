// Package parser turns raw delimited text or spreadsheet rows into a
// populated models.Sheet, inferring a cell kind per column.
package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/akettabi/cellgrid-go/pkg/cellgrid/models"
)

// Config holds resolved parsing parameters.
type Config struct {
	// Separator is the field separator character.
	Separator rune
	// HasHeader specifies whether the first row holds column names.
	// When false, synthetic names col0, col1, ... are generated.
	HasHeader bool
	// TrimFields specifies whether surrounding whitespace is trimmed
	// from every field before parsing.
	TrimFields bool
}

// DefaultConfig returns the default parsing parameters: comma
// separated, first row is a header, fields trimmed.
func DefaultConfig() Config {
	return Config{Separator: ',', HasHeader: true, TrimFields: true}
}

// ParseError represents a structural failure during load, with the
// offending line number.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RowIssue reports a row-level anomaly that did not fail the load: a
// row with too many fields is skipped, a row with too few is padded
// with missing cells.
type RowIssue struct {
	// Line is the 1-based line of the offending row, counting the
	// header line if present.
	Line int
	// Fields is the number of fields found on the row.
	Fields int
	// Reason describes how the row was handled.
	Reason string
}

var errEmptyInput = errors.New("empty input")

// Parse reads delimited text into a sheet. Fields are split by the
// configured separator with minimal RFC 4180 quoting; each column's
// kind is fixed from its first non-missing value (int, float, bool,
// then text), and later values are parsed against that kind, becoming
// missing when they cannot. Ragged rows are reported as RowIssues, not
// errors: shorter rows are padded with missing cells, longer rows are
// skipped. Structural failures return a ParseError with the line
// number.
func Parse(r io.Reader, cfg Config) (*models.Sheet, []RowIssue, error) {
	cr := csv.NewReader(r)
	cr.Comma = cfg.Separator
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		var ce *csv.ParseError
		if errors.As(err, &ce) {
			return nil, nil, &ParseError{Line: ce.Line, Err: ce.Err}
		}
		return nil, nil, &ParseError{Line: 0, Err: err}
	}
	return buildSheet(records, cfg)
}

// buildSheet runs the shared record pipeline: header handling, ragged
// row policy, per-column kind inference, and cell parsing. Lines are
// numbered from 1 over the full record list, header included.
func buildSheet(records [][]string, cfg Config) (*models.Sheet, []RowIssue, error) {
	if cfg.TrimFields {
		for _, rec := range records {
			for i, field := range rec {
				rec[i] = strings.TrimSpace(field)
			}
		}
	}
	if len(records) == 0 {
		return nil, nil, &ParseError{Line: 1, Err: errEmptyInput}
	}

	var names []string
	dataStart := 0
	if cfg.HasHeader {
		names = make([]string, len(records[0]))
		for i, name := range records[0] {
			// Header names are trimmed even when field trimming is
			// off; a padded name is never addressable.
			names[i] = strings.TrimSpace(name)
		}
		dataStart = 1
	} else {
		names = make([]string, len(records[0]))
		for i := range names {
			names[i] = fmt.Sprintf("col%d", i)
		}
	}
	ncols := len(names)

	var issues []RowIssue
	var data [][]string
	for i := dataStart; i < len(records); i++ {
		rec := records[i]
		line := i + 1
		switch {
		case len(rec) > ncols:
			issues = append(issues, RowIssue{Line: line, Fields: len(rec), Reason: "too many fields, row skipped"})
			continue
		case len(rec) < ncols:
			issues = append(issues, RowIssue{Line: line, Fields: len(rec), Reason: "too few fields, row padded with missing"})
			padded := make([]string, ncols)
			copy(padded, rec)
			rec = padded
		}
		data = append(data, rec)
	}

	cols := make([]models.Column, ncols)
	for j := 0; j < ncols; j++ {
		cols[j] = models.Column{Name: names[j], Kind: inferColumn(data, j)}
	}
	sheet, err := models.NewSheet(cols)
	if err != nil {
		return nil, nil, &ParseError{Line: 1, Err: err}
	}

	row := make([]models.Cell, ncols)
	for _, rec := range data {
		for j, field := range rec {
			row[j] = ParseAs(field, cols[j].Kind)
		}
		if err := sheet.InsertRow(row); err != nil {
			return nil, nil, err
		}
	}
	return sheet, issues, nil
}

// inferColumn fixes a column's kind from its first non-empty value. A
// column with no values at all defaults to text.
func inferColumn(data [][]string, j int) models.Kind {
	for _, rec := range data {
		if rec[j] != "" {
			return InferKind(rec[j])
		}
	}
	return models.KindText
}
