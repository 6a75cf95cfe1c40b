// Package model holds the shared data types of the statement parser: cells
// and tables on the input side, columns, accounts, and reports on the
// output side. It has no behavior beyond cheap accessors so every stage can
// depend on it without cycles.
package model

import "github.com/shopspring/decimal"

// CellKind discriminates what a Cell holds.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellNumber
	CellText
)

// Cell is one table cell, already typed by the loader. Number is only
// meaningful when Kind is CellNumber, Text only when Kind is CellText.
type Cell struct {
	Kind   CellKind
	Number decimal.Decimal
	Text   string
}

// EmptyCell returns a cell holding nothing.
func EmptyCell() Cell {
	return Cell{Kind: CellEmpty}
}

// NumberCell returns a cell holding a numeric value.
func NumberCell(d decimal.Decimal) Cell {
	return Cell{Kind: CellNumber, Number: d}
}

// TextCell returns a cell holding text.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// IsNumber reports whether the cell holds a numeric value.
func (c Cell) IsNumber() bool {
	return c.Kind == CellNumber
}

// IsEmpty reports whether the cell holds nothing.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// String renders the cell's content; empty cells render as "".
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return c.Number.String()
	case CellText:
		return c.Text
	default:
		return ""
	}
}

// Table is a materialized grid of cells. Rows may be ragged; CellAt pads
// reads past a short row with empty cells.
type Table struct {
	Rows [][]Cell
}

// Width returns the widest row's length.
func (t Table) Width() int {
	w := 0
	for _, row := range t.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// CellAt returns the cell at (row, col), or an empty cell when the row is
// shorter than col.
func (t Table) CellAt(row, col int) Cell {
	if row < 0 || row >= len(t.Rows) {
		return EmptyCell()
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return EmptyCell()
	}
	return r[col]
}

// Row is a data row below the header, keyed by its source index.
type Row struct {
	Index int
	Label string
	Cells []Cell
}
