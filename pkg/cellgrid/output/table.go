package output

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/akettabi/cellgrid-go/pkg/cellgrid/models"
)

// describeEdge is how many rows Describe shows from each end.
const describeEdge = 5

// RenderTable writes the whole sheet as a console table.
func RenderTable(w io.Writer, s *models.Sheet) {
	renderRows(w, s, s.Rows())
	fmt.Fprintf(w, "(%d rows)\n", s.NumRows())
}

// RenderPage writes one page of the sheet as a console table.
func RenderPage(w io.Writer, s *models.Sheet, size, index int) {
	rows := s.Page(size, index)
	if len(rows) == 0 {
		fmt.Fprintln(w, "(empty page)")
		return
	}
	renderRows(w, s, rows)
	fmt.Fprintf(w, "(page %d, %d rows)\n", index, len(rows))
}

// Describe writes the first and last rows of the sheet plus its
// dimensions and column kinds.
func Describe(w io.Writer, s *models.Sheet) {
	n := s.NumRows()
	if n <= 2*describeEdge {
		renderRows(w, s, s.Rows())
	} else {
		t := newWriter(w, s)
		for _, row := range s.Page(describeEdge, 0) {
			t.AppendRow(toRow(row))
		}
		t.AppendSeparator()
		for i := n - describeEdge; i < n; i++ {
			t.AppendRow(toRow(s.Row(i)))
		}
		t.Render()
	}
	fmt.Fprintf(w, "%d rows, %d columns\n", n, s.NumColumns())
	for _, col := range s.Columns() {
		fmt.Fprintf(w, "  %s: %s\n", col.Name, col.Kind)
	}
}

func renderRows(w io.Writer, s *models.Sheet, rows [][]models.Cell) {
	t := newWriter(w, s)
	for _, row := range rows {
		t.AppendRow(toRow(row))
	}
	t.Render()
}

func newWriter(w io.Writer, s *models.Sheet) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	header := make(table.Row, s.NumColumns())
	for i, name := range s.ColumnNames() {
		header[i] = name
	}
	t.AppendHeader(header)
	return t
}

func toRow(row []models.Cell) table.Row {
	out := make(table.Row, len(row))
	for i, cell := range row {
		if cell.IsMissing() {
			out[i] = "NULL"
			continue
		}
		out[i] = cell.String()
	}
	return out
}
