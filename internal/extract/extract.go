// Package extract computes the single authoritative value for a statement
// row. A present subtotal always beats summing the periods it aggregates:
// summing both is the double-counting bug this rule exists to prevent.
package extract

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerlens-dev/ledgerlens/internal/model"
)

// Policy selects which subtotal wins when a row carries several subtotal
// columns that disagree.
type Policy string

const (
	// PolicyFirst takes the first subtotal by column order.
	PolicyFirst Policy = "first"
	// PolicyLargest takes the subtotal with the largest absolute value.
	PolicyLargest Policy = "largest"
	// PolicyAverage takes the mean of all present subtotals.
	PolicyAverage Policy = "average"
)

// Result is the outcome of extracting one row.
type Result struct {
	Value      decimal.Decimal
	Provenance model.Provenance
	NoData     bool            // no eligible column held a number
	Conflict   *model.Variance // set when subtotal columns disagree beyond tolerance
}

// Value extracts the authoritative value for a row given the column
// classification map. Rules, in priority order:
//
//  1. A present non-zero subtotal column wins (ProvenanceSubtotal). When
//     several subtotal columns disagree beyond tolerance, the policy picks
//     the winner and the disagreement is recorded as a conflict.
//  2. Otherwise period and plain value columns are summed
//     (ProvenanceSummed). Note, ratio, and unknown columns are never read.
//  3. A row with no eligible numeric value yields zero, ProvenanceSummed,
//     and NoData set. That is expected input, not an error.
func Value(cells []model.Cell, columns []model.Column, tolerance decimal.Decimal, policy Policy) Result {
	var subtotals []decimal.Decimal
	for _, col := range columns {
		if col.Label != model.LabelSubtotal || col.Index >= len(cells) {
			continue
		}
		cell := cells[col.Index]
		if cell.IsNumber() && !cell.Number.IsZero() {
			subtotals = append(subtotals, cell.Number)
		}
	}

	if len(subtotals) > 0 {
		res := Result{Value: pick(subtotals, policy), Provenance: model.ProvenanceSubtotal}
		res.Conflict = subtotalConflict(subtotals, tolerance)
		return res
	}

	sum := decimal.Zero
	found := false
	for _, col := range columns {
		if !col.Label.IncludeInSums() || col.Index >= len(cells) {
			continue
		}
		cell := cells[col.Index]
		if cell.IsNumber() {
			sum = sum.Add(cell.Number)
			found = true
		}
	}
	return Result{Value: sum, Provenance: model.ProvenanceSummed, NoData: !found}
}

// SumEligible sums the period and plain value columns of a row. The
// validator uses it to recompute what extraction would have produced without
// the subtotal shortcut.
func SumEligible(cells []model.Cell, columns []model.Column) decimal.Decimal {
	sum := decimal.Zero
	for _, col := range columns {
		if !col.Label.IncludeInSums() || col.Index >= len(cells) {
			continue
		}
		if cells[col.Index].IsNumber() {
			sum = sum.Add(cells[col.Index].Number)
		}
	}
	return sum
}

// pick applies the conflict policy to the present subtotal values, which are
// ordered by column.
func pick(subtotals []decimal.Decimal, policy Policy) decimal.Decimal {
	switch policy {
	case PolicyLargest:
		chosen := subtotals[0]
		for _, v := range subtotals[1:] {
			if v.Abs().GreaterThan(chosen.Abs()) {
				chosen = v
			}
		}
		return chosen
	case PolicyAverage:
		sum := decimal.Zero
		for _, v := range subtotals {
			sum = sum.Add(v)
		}
		return sum.Div(decimal.NewFromInt(int64(len(subtotals))))
	default:
		return subtotals[0]
	}
}

// subtotalConflict reports the spread between disagreeing subtotal columns,
// measured relative to the first one, or nil when they agree within
// tolerance.
func subtotalConflict(subtotals []decimal.Decimal, tolerance decimal.Decimal) *model.Variance {
	if len(subtotals) < 2 {
		return nil
	}
	lo, hi := subtotals[0], subtotals[0]
	for _, v := range subtotals[1:] {
		if v.LessThan(lo) {
			lo = v
		}
		if v.GreaterThan(hi) {
			hi = v
		}
	}
	first := subtotals[0]
	spread := hi.Sub(lo)
	if spread.Div(first.Abs()).LessThanOrEqual(tolerance) {
		return nil
	}
	return &model.Variance{
		Kind:     model.VarianceSubtotalConflict,
		Declared: first,
		Summed:   hi,
		Diff:     spread,
		Pct:      spread.Div(first.Abs()),
	}
}
