// Package engine wires the classification, extraction, hierarchy, and
// validation stages into a single parse over a materialized table. The
// engine holds no state across invocations: every call derives fresh
// columns, rows, and accounts, so concurrent parses need no coordination.
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerlens-dev/ledgerlens/internal/classify"
	"github.com/ledgerlens-dev/ledgerlens/internal/extract"
	"github.com/ledgerlens-dev/ledgerlens/internal/hierarchy"
	"github.com/ledgerlens-dev/ledgerlens/internal/model"
	"github.com/ledgerlens-dev/ledgerlens/internal/quality"
)

// InvalidInputError is the engine's one fatal condition: a table with zero
// rows or zero columns, on which no classification is meaningful. Every
// other anomaly degrades into the report instead.
type InvalidInputError struct {
	Rows    int
	Columns int
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: table has %d rows and %d columns", e.Rows, e.Columns)
}

// Config controls a parse. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	Patterns          classify.Patterns
	SubtotalTolerance decimal.Decimal // relative, 0.01 = 1%
	SubtotalPolicy    extract.Policy
}

// DefaultConfig returns the built-in bilingual patterns, a 1% subtotal
// tolerance, and the first-column-wins conflict policy.
func DefaultConfig() Config {
	return Config{
		Patterns:          classify.DefaultPatterns(),
		SubtotalTolerance: decimal.NewFromFloat(0.01),
		SubtotalPolicy:    extract.PolicyFirst,
	}
}

// Result is the complete outcome of one parse, owned by the caller.
type Result struct {
	HeaderRow int
	Columns   []model.Column
	Forest    []*model.Account
	Report    *model.ClassificationReport
}

// Parse runs the full pipeline: header-row selection, column
// classification, per-row value extraction, tree construction, and subtotal
// validation. It fails only on structurally empty input.
func Parse(table model.Table, cfg Config) (*Result, error) {
	if len(table.Rows) == 0 || table.Width() == 0 {
		return nil, InvalidInputError{Rows: len(table.Rows), Columns: table.Width()}
	}
	if cfg.SubtotalPolicy == "" {
		cfg.SubtotalPolicy = extract.PolicyFirst
	}

	classifier := classify.NewClassifier(cfg.Patterns)
	headerRow := classifier.SelectHeaderRow(table)
	columns := classifier.Columns(table, headerRow)

	var (
		accounts  []*model.Account
		conflicts []model.Variance
		rows      = make(map[int]model.Row)
	)
	for i := headerRow + 1; i < len(table.Rows); i++ {
		label := table.CellAt(i, 0).String()
		if label == "" {
			continue
		}
		row := model.Row{Index: i, Label: label, Cells: table.Rows[i]}
		rows[i] = row

		res := extract.Value(row.Cells, columns, cfg.SubtotalTolerance, cfg.SubtotalPolicy)
		name := hierarchy.CleanName(label)
		if res.Conflict != nil {
			v := *res.Conflict
			v.Row = i
			v.Account = name
			conflicts = append(conflicts, v)
		}

		accounts = append(accounts, &model.Account{
			Name:       name,
			RawLabel:   label,
			Row:        i,
			Depth:      hierarchy.Depth(label),
			Value:      res.Value,
			Provenance: res.Provenance,
			NoData:     res.NoData,
		})
	}

	forest := hierarchy.Build(accounts)
	report := quality.Validate(forest, rows, columns, cfg.SubtotalTolerance, conflicts)

	return &Result{
		HeaderRow: headerRow,
		Columns:   columns,
		Forest:    forest,
		Report:    report,
	}, nil
}
