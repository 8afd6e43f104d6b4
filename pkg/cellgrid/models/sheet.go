package models

import "fmt"

// Sheet is the in-memory table: an ordered sequence of columns and an
// ordered sequence of rows, each row holding exactly one cell per
// column. A sheet owns its cells and columns exclusively; accessors
// hand out copies, never internal slices.
//
// A sheet is not safe for concurrent use. Predicates and transforms
// passed to its methods must not mutate the sheet they are applied to.
type Sheet struct {
	cols   []Column
	byName map[string]int
	rows   [][]Cell
}

// NewSheet creates an empty sheet with the given columns. Column
// indexes are assigned from position; names must be unique.
func NewSheet(cols []Column) (*Sheet, error) {
	s := &Sheet{
		cols:   make([]Column, len(cols)),
		byName: make(map[string]int, len(cols)),
	}
	for i, col := range cols {
		if col.Kind == KindMissing {
			return nil, fmt.Errorf("column %q: %w", col.Name, ErrColumnKind)
		}
		if _, dup := s.byName[col.Name]; dup {
			return nil, fmt.Errorf("column %q: %w", col.Name, ErrDuplicateColumn)
		}
		col.Index = i
		s.cols[i] = col
		s.byName[col.Name] = i
	}
	return s, nil
}

// NumRows returns the number of data rows.
func (s *Sheet) NumRows() int {
	return len(s.rows)
}

// NumColumns returns the number of columns.
func (s *Sheet) NumColumns() int {
	return len(s.cols)
}

// Columns returns a copy of the column schemas in ordinal order.
func (s *Sheet) Columns() []Column {
	cols := make([]Column, len(s.cols))
	copy(cols, s.cols)
	return cols
}

// ColumnNames returns the column names in ordinal order.
func (s *Sheet) ColumnNames() []string {
	names := make([]string, len(s.cols))
	for i, col := range s.cols {
		names[i] = col.Name
	}
	return names
}

// Column returns the schema of the named column.
func (s *Sheet) Column(name string) (Column, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Column{}, false
	}
	return s.cols[i], true
}

// Row returns a copy of the row at index i, or nil when i is out of
// range.
func (s *Sheet) Row(i int) []Cell {
	if i < 0 || i >= len(s.rows) {
		return nil
	}
	return copyRow(s.rows[i])
}

// Rows returns a copy of all rows in order.
func (s *Sheet) Rows() [][]Cell {
	return copyRows(s.rows)
}

// InsertRow appends a row. The number of values must match the column
// count. A value whose kind differs from its column's declared kind
// promotes the column (int with float to float, any other mix to text)
// and rewrites the column's existing cells to the promoted kind, so the
// sheet never holds a cell inconsistent with its schema.
func (s *Sheet) InsertRow(values []Cell) error {
	if len(values) != len(s.cols) {
		return fmt.Errorf("got %d values for %d columns: %w", len(values), len(s.cols), ErrRowLength)
	}
	row := copyRow(values)
	for i, v := range row {
		s.promoteColumn(i, v.Kind())
		row[i] = v.convert(s.cols[i].Kind)
	}
	s.rows = append(s.rows, row)
	return nil
}

// DropRows removes every row whose cell in the named column satisfies
// the predicate. Remaining rows keep their relative order. Applying the
// same predicate twice removes nothing the second time.
func (s *Sheet) DropRows(column string, predicate func(Cell) bool) error {
	idx, ok := s.byName[column]
	if !ok {
		return &UnknownColumnError{Name: column}
	}
	kept := s.rows[:0]
	for _, row := range s.rows {
		if !predicate(row[idx]) {
			kept = append(kept, row)
		}
	}
	// Release dropped rows at the tail.
	for i := len(kept); i < len(s.rows); i++ {
		s.rows[i] = nil
	}
	s.rows = kept
	return nil
}

// DropColumn removes the named column and the cell at its ordinal from
// every row, then reindexes the remaining columns.
func (s *Sheet) DropColumn(name string) error {
	idx, ok := s.byName[name]
	if !ok {
		return &UnknownColumnError{Name: name}
	}
	s.cols = append(s.cols[:idx], s.cols[idx+1:]...)
	delete(s.byName, name)
	for i := idx; i < len(s.cols); i++ {
		s.cols[i].Index = i
		s.byName[s.cols[i].Name] = i
	}
	for i, row := range s.rows {
		s.rows[i] = append(row[:idx], row[idx+1:]...)
	}
	return nil
}

// Transform replaces every cell in the named column with fn(cell),
// applied independently per row; no row observes another row's
// transformed value. When a result's kind differs from the column's
// declared kind the column is promoted to the needed common kind and
// all results are rewritten to it.
func (s *Sheet) Transform(column string, fn func(Cell) Cell) error {
	idx, ok := s.byName[column]
	if !ok {
		return &UnknownColumnError{Name: column}
	}
	results := make([]Cell, len(s.rows))
	kind := s.cols[idx].Kind
	for i, row := range s.rows {
		results[i] = fn(row[idx])
		kind = promoteKind(kind, results[i].Kind())
	}
	s.cols[idx].Kind = kind
	for i := range s.rows {
		s.rows[i][idx] = results[i].convert(kind)
	}
	return nil
}

// FillColumn replaces every cell in the named column with value,
// following the same promotion rule as Transform.
func (s *Sheet) FillColumn(column string, value Cell) error {
	return s.Transform(column, func(Cell) Cell { return value })
}

// FindFirst returns a copy of the first row whose cell in the named
// column satisfies the predicate. ok is false when no row matches.
func (s *Sheet) FindFirst(column string, predicate func(Cell) bool) (row []Cell, ok bool, err error) {
	idx, found := s.byName[column]
	if !found {
		return nil, false, &UnknownColumnError{Name: column}
	}
	for _, r := range s.rows {
		if predicate(r[idx]) {
			return copyRow(r), true, nil
		}
	}
	return nil, false, nil
}

// Filter returns copies of every row whose cell in the named column
// satisfies the predicate, in original order. The sheet is not
// modified.
func (s *Sheet) Filter(column string, predicate func(Cell) bool) ([][]Cell, error) {
	idx, ok := s.byName[column]
	if !ok {
		return nil, &UnknownColumnError{Name: column}
	}
	var res [][]Cell
	for _, row := range s.rows {
		if predicate(row[idx]) {
			res = append(res, copyRow(row))
		}
	}
	return res, nil
}

// Page returns copies of the rows of the zero-based page index, size
// rows per page. A page beyond the row count, a non-positive size, or a
// negative index yields an empty result, never an error.
func (s *Sheet) Page(size, index int) [][]Cell {
	if size <= 0 || index < 0 || len(s.rows) == 0 {
		return nil
	}
	// Compare against the last page index before multiplying, so a
	// huge index cannot overflow into a negative offset.
	if index > (len(s.rows)-1)/size {
		return nil
	}
	start := size * index
	end := start + size
	if end > len(s.rows) {
		end = len(s.rows)
	}
	return copyRows(s.rows[start:end])
}

// promoteColumn widens the declared kind of column i to hold kind k,
// rewriting existing cells when the kind changes.
func (s *Sheet) promoteColumn(i int, k Kind) {
	promoted := promoteKind(s.cols[i].Kind, k)
	if promoted == s.cols[i].Kind {
		return
	}
	s.cols[i].Kind = promoted
	for _, row := range s.rows {
		row[i] = row[i].convert(promoted)
	}
}

func copyRow(row []Cell) []Cell {
	out := make([]Cell, len(row))
	copy(out, row)
	return out
}

func copyRows(rows [][]Cell) [][]Cell {
	out := make([][]Cell, len(rows))
	for i, row := range rows {
		out[i] = copyRow(row)
	}
	return out
}
