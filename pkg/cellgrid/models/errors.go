package models

import (
	"errors"
	"fmt"
)

// ErrRowLength indicates an inserted row does not match the sheet's
// column count.
var ErrRowLength = errors.New("row length does not match column count")

// ErrDuplicateColumn indicates a sheet was constructed with two columns
// of the same name.
var ErrDuplicateColumn = errors.New("duplicate column name")

// ErrColumnKind indicates a sheet was constructed with a column whose
// declared kind is missing. Missing is a cell state, not a column type.
var ErrColumnKind = errors.New("column kind cannot be missing")

// UnknownColumnError indicates an operation referenced a column that
// does not exist in the sheet.
type UnknownColumnError struct {
	Name string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column %q", e.Name)
}

// TypeMismatchError indicates an aggregation was invoked on a column
// whose declared kind does not support it.
type TypeMismatchError struct {
	Column string
	Kind   Kind
	Op     string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s requires a numeric column, %q is %s", e.Op, e.Column, e.Kind)
}

// UndefinedError indicates an aggregation was requested over zero
// qualifying values. It is returned instead of a defaulted number so
// that "no data" is never confused with a legitimate zero.
type UndefinedError struct {
	Column string
	Op     string
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("%s of %q is undefined: no qualifying values", e.Op, e.Column)
}
