// Package models defines the data types of a cellgrid table: cells,
// column schemas, and the sheet that owns them.
package models

import "strconv"

// Kind identifies the variant stored in a Cell.
type Kind uint8

const (
	// KindMissing is the explicit "no value" state, permitted in any column.
	KindMissing Kind = iota
	// KindInt is a 64-bit signed integer value.
	KindInt
	// KindFloat is a 64-bit floating point value.
	KindFloat
	// KindBool is a boolean value.
	KindBool
	// KindText is a text value.
	KindText
)

// String returns the kind name as used in error messages and CLI output.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Numeric reports whether the kind is int or float.
func (k Kind) Numeric() bool {
	return k == KindInt || k == KindFloat
}

// Cell is one typed table entry: a closed variant over missing, int,
// float, bool, and text. Cells are immutable values; they are copied
// freely and never shared by reference.
//
// Only the field matching the kind is ever set, so two cells are equal
// exactly when their kind and value are equal. This keeps Cell usable
// as a map key.
type Cell struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
}

// Missing returns the explicit no-value cell.
func Missing() Cell {
	return Cell{kind: KindMissing}
}

// Int returns an integer cell.
func Int(v int64) Cell {
	return Cell{kind: KindInt, i: v}
}

// Float returns a floating point cell.
func Float(v float64) Cell {
	return Cell{kind: KindFloat, f: v}
}

// Bool returns a boolean cell.
func Bool(v bool) Cell {
	return Cell{kind: KindBool, b: v}
}

// Text returns a text cell.
func Text(v string) Cell {
	return Cell{kind: KindText, s: v}
}

// Kind returns the variant stored in the cell.
func (c Cell) Kind() Kind {
	return c.kind
}

// IsMissing reports whether the cell holds no value.
func (c Cell) IsMissing() bool {
	return c.kind == KindMissing
}

// IsNumeric reports whether the cell holds an int or float value.
func (c Cell) IsNumeric() bool {
	return c.kind.Numeric()
}

// Int returns the integer value. The bool is false when the cell is not
// an int; no coercion is attempted.
func (c Cell) Int() (int64, bool) {
	return c.i, c.kind == KindInt
}

// Float returns the floating point value. The bool is false when the
// cell is not a float.
func (c Cell) Float() (float64, bool) {
	return c.f, c.kind == KindFloat
}

// Bool returns the boolean value. The bool is false when the cell is
// not a bool.
func (c Cell) Bool() (bool, bool) {
	return c.b, c.kind == KindBool
}

// Text returns the text value. The bool is false when the cell is not
// text.
func (c Cell) Text() (string, bool) {
	return c.s, c.kind == KindText
}

// Number returns the cell's value on a common numeric scale, widening
// ints to float64. The bool is false for non-numeric cells.
func (c Cell) Number() (float64, bool) {
	switch c.kind {
	case KindInt:
		return float64(c.i), true
	case KindFloat:
		return c.f, true
	}
	return 0, false
}

// String returns the canonical text rendering of the cell, shared by
// export and console printing. Missing renders as the empty string.
func (c Cell) String() string {
	switch c.kind {
	case KindInt:
		return strconv.FormatInt(c.i, 10)
	case KindFloat:
		return strconv.FormatFloat(c.f, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(c.b)
	case KindText:
		return c.s
	}
	return ""
}

// Equal reports whether two cells hold the same variant and value.
// Cells of different variants are never equal.
func (c Cell) Equal(o Cell) bool {
	return c == o
}

// Less orders two cells of the same variant. The second return is false
// when the cells are of different variants or either is missing; such
// pairs are unordered rather than an error.
func (c Cell) Less(o Cell) (less, ok bool) {
	if c.kind != o.kind || c.kind == KindMissing {
		return false, false
	}
	switch c.kind {
	case KindInt:
		return c.i < o.i, true
	case KindFloat:
		return c.f < o.f, true
	case KindBool:
		return !c.b && o.b, true
	case KindText:
		return c.s < o.s, true
	}
	return false, false
}

// convert rewrites a cell to the given kind after a column promotion.
// Promotions only ever widen int to float or fall back to text, so the
// conversion cannot fail. Missing stays missing.
func (c Cell) convert(k Kind) Cell {
	if c.kind == KindMissing || c.kind == k {
		return c
	}
	if k == KindFloat && c.kind == KindInt {
		return Float(float64(c.i))
	}
	return Text(c.String())
}
