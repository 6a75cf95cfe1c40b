package loader

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ledgerlens-dev/ledgerlens/internal/model"
)

// CSVLoader reads a comma-separated statement export.
type CSVLoader struct{}

// Format returns "csv".
func (l *CSVLoader) Format() string { return "csv" }

// Load materializes a CSV file into a table. Ragged records are allowed;
// the engine pads short rows itself.
func (l *CSVLoader) Load(r io.Reader) (model.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return model.Table{}, fmt.Errorf("reading CSV: %w", err)
	}

	table := model.Table{Rows: make([][]model.Cell, len(records))}
	for i, rec := range records {
		cells := make([]model.Cell, len(rec))
		for j, v := range rec {
			cells[j] = parseCell(v)
		}
		table.Rows[i] = cells
	}
	return table, nil
}
