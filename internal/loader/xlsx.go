package loader

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ledgerlens-dev/ledgerlens/internal/model"
)

// XLSXLoader reads the first worksheet of an Excel workbook.
type XLSXLoader struct{}

// Format returns "xlsx".
func (l *XLSXLoader) Format() string { return "xlsx" }

// Load materializes the first sheet into a table. Cell formatting is
// discarded; only the displayed values survive.
func (l *XLSXLoader) Load(r io.Reader) (model.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return model.Table{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return model.Table{}, fmt.Errorf("workbook has no sheets")
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return model.Table{}, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}

	table := model.Table{Rows: make([][]model.Cell, len(raw))}
	for i, row := range raw {
		cells := make([]model.Cell, len(row))
		for j, v := range row {
			cells[j] = parseCell(v)
		}
		table.Rows[i] = cells
	}
	return table, nil
}
