package output

import (
	"encoding/json"

	"github.com/akettabi/cellgrid-go/pkg/cellgrid/models"
)

type columnJSON struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type sheetJSON struct {
	Columns []columnJSON `json:"columns"`
	Rows    [][]any      `json:"rows"`
}

// ToJSON serializes the sheet to JSON, missing cells as null.
func ToJSON(s *models.Sheet, pretty bool) ([]byte, error) {
	doc := sheetJSON{Columns: make([]columnJSON, 0, s.NumColumns())}
	for _, col := range s.Columns() {
		doc.Columns = append(doc.Columns, columnJSON{Name: col.Name, Kind: col.Kind.String()})
	}
	for _, row := range s.Rows() {
		out := make([]any, len(row))
		for j, cell := range row {
			out[j] = cellValue(cell)
		}
		doc.Rows = append(doc.Rows, out)
	}
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

func cellValue(c models.Cell) any {
	switch c.Kind() {
	case models.KindInt:
		v, _ := c.Int()
		return v
	case models.KindFloat:
		v, _ := c.Float()
		return v
	case models.KindBool:
		v, _ := c.Bool()
		return v
	case models.KindText:
		v, _ := c.Text()
		return v
	}
	return nil
}
