package cellgrid

import (
	"errors"
	"fmt"

	"github.com/akettabi/cellgrid-go/pkg/cellgrid/models"
	"github.com/akettabi/cellgrid-go/pkg/cellgrid/parser"
)

// ErrInvalidFormat indicates a file path with an unsupported extension.
var ErrInvalidFormat = errors.New("invalid file format")

// IOError represents a file system failure while loading or exporting.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error on %q: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// The remaining error kinds of the taxonomy are defined where they
// originate and aliased here so callers can branch on every kind from
// one import.
type (
	// ParseError is a structural failure during load, with line number.
	ParseError = parser.ParseError
	// RowIssue is a non-fatal row-level anomaly reported by the loader.
	RowIssue = parser.RowIssue
	// UnknownColumnError is an operation on a non-existent column.
	UnknownColumnError = models.UnknownColumnError
	// TypeMismatchError is a numeric aggregation on a non-numeric column.
	TypeMismatchError = models.TypeMismatchError
	// UndefinedError is an aggregation over zero qualifying values.
	UndefinedError = models.UndefinedError
)
