package model

import "github.com/shopspring/decimal"

// VarianceKind distinguishes how a variance was detected.
type VarianceKind string

const (
	// VarianceSubtotalMismatch means a declared subtotal disagrees with the
	// independently summed period values beyond tolerance.
	VarianceSubtotalMismatch VarianceKind = "subtotal_mismatch"
	// VarianceSubtotalConflict means multiple subtotal columns disagree with
	// each other in the same row.
	VarianceSubtotalConflict VarianceKind = "subtotal_conflict"
)

// Variance describes one row where a declared subtotal and the recomputed
// period sum (or two subtotal columns) disagree beyond tolerance.
type Variance struct {
	Kind     VarianceKind
	Row      int
	Account  string
	Declared decimal.Decimal // value read from the subtotal column
	Summed   decimal.Decimal // independently recomputed sum
	Diff     decimal.Decimal // absolute difference
	Pct      decimal.Decimal // relative difference, 0.5 = 50%
}

// Reconciliation compares a parent account's extracted value against the sum
// of its children's values.
type Reconciliation struct {
	Account     string
	ParentValue decimal.Decimal
	ChildrenSum decimal.Decimal
	Diff        decimal.Decimal
	Within      bool // true when the difference is inside tolerance
}

// ExcludedColumn names a column left out of value extraction and why.
type ExcludedColumn struct {
	Index  int
	Label  Label
	Reason string
}

// ClassificationReport summarizes what the engine decided and how well the
// declared subtotals held up. It annotates; it never corrects.
type ClassificationReport struct {
	ColumnCounts    map[Label]int
	Excluded        []ExcludedColumn
	Variances       []Variance
	Reconciliations []Reconciliation
	NoDataRows      []int    // source row indices that yielded value 0 with no inputs
	SafeAccounts    []string // leaf accounts safe to aggregate upward
	// ValidatedSubtotals counts accounts whose value came from a subtotal
	// column and was cross-checked.
	ValidatedSubtotals int
	// QualityScore is 1 minus the flagged-variance share, floored at 0.
	QualityScore decimal.Decimal
}

// FlaggedVariances counts subtotal-mismatch variances, the ones that lower
// the quality score.
func (r *ClassificationReport) FlaggedVariances() int {
	n := 0
	for _, v := range r.Variances {
		if v.Kind == VarianceSubtotalMismatch {
			n++
		}
	}
	return n
}
