package models

// Column describes one column of a sheet: its name, declared kind, and
// ordinal position. The declared kind is never KindMissing; missing
// cells are permitted in every column regardless of its kind.
type Column struct {
	// Name is the column name, unique within a sheet and case-sensitive.
	Name string
	// Kind is the declared cell kind of the column.
	Kind Kind
	// Index is the ordinal position within the sheet. It is maintained
	// by the sheet and reassigned when columns are dropped.
	Index int
}

// promoteKind returns the declared kind a column needs to hold a cell
// of kind k alongside its existing values. Int and float promote to
// float; any other mix falls back to text. Missing never changes a
// column's kind.
func promoteKind(declared, k Kind) Kind {
	if k == KindMissing || k == declared {
		return declared
	}
	if declared.Numeric() && k.Numeric() {
		return KindFloat
	}
	return KindText
}
