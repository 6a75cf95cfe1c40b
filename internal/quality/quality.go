// Package quality cross-checks the extracted account forest against the
// source's own declared subtotals and scores the overall data quality. It
// only annotates findings; correcting bad data is the caller's decision,
// never performed silently.
package quality

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerlens-dev/ledgerlens/internal/extract"
	"github.com/ledgerlens-dev/ledgerlens/internal/model"
)

var one = decimal.NewFromInt(1)

// Validate builds the ClassificationReport for a parsed statement.
//
// For every account whose value came from a subtotal column, the sum of the
// row's period/value columns is recomputed and compared against the declared
// subtotal; a relative difference above tolerance is flagged. The aggregate
// quality score is 1 minus the flagged share of validated subtotals, floored
// at 0. Parent/child reconciliation and leaf-safety findings are advisory
// and do not affect the score.
func Validate(roots []*model.Account, rows map[int]model.Row, columns []model.Column, tolerance decimal.Decimal, conflicts []model.Variance) *model.ClassificationReport {
	report := &model.ClassificationReport{
		ColumnCounts: make(map[model.Label]int),
	}

	for _, col := range columns {
		report.ColumnCounts[col.Label]++
		if reason := exclusionReason(col.Label); reason != "" {
			report.Excluded = append(report.Excluded, model.ExcludedColumn{
				Index:  col.Index,
				Label:  col.Label,
				Reason: reason,
			})
		}
	}

	report.Variances = append(report.Variances, conflicts...)

	// Subtotal cross-check is only meaningful when the row has eligible
	// columns to recompute from.
	eligible := false
	for _, col := range columns {
		if col.Label.IncludeInSums() {
			eligible = true
			break
		}
	}

	model.WalkForest(roots, func(a *model.Account) {
		if a.NoData {
			report.NoDataRows = append(report.NoDataRows, a.Row)
		}
		if a.IsLeaf() && !a.NoData {
			report.SafeAccounts = append(report.SafeAccounts, a.Name)
		}

		if a.Provenance == model.ProvenanceSubtotal && eligible {
			row, ok := rows[a.Row]
			if !ok {
				return
			}
			report.ValidatedSubtotals++

			summed := extract.SumEligible(row.Cells, columns)
			diff := a.Value.Sub(summed).Abs()
			pct := diff.Div(a.Value.Abs())
			if pct.GreaterThan(tolerance) {
				report.Variances = append(report.Variances, model.Variance{
					Kind:     model.VarianceSubtotalMismatch,
					Row:      a.Row,
					Account:  a.Name,
					Declared: a.Value,
					Summed:   summed,
					Diff:     diff,
					Pct:      pct,
				})
			}
		}
	})

	report.Reconciliations = reconcile(roots, tolerance)
	report.QualityScore = score(report)
	return report
}

// reconcile compares each parent account's value against the sum of its
// children's values, the original double-counting tell: a parent that
// disagrees with its children means someone's value is wrong or re-summed.
func reconcile(roots []*model.Account, tolerance decimal.Decimal) []model.Reconciliation {
	var recs []model.Reconciliation
	model.WalkForest(roots, func(a *model.Account) {
		if a.IsLeaf() || a.NoData {
			return
		}
		childrenSum := decimal.Zero
		counted := 0
		for _, c := range a.Children {
			if !c.NoData {
				childrenSum = childrenSum.Add(c.Value)
				counted++
			}
		}
		if counted == 0 || (a.Value.IsZero() && childrenSum.IsZero()) {
			return
		}

		diff := a.Value.Sub(childrenSum).Abs()
		// Tolerance is relative to the parent, floored at one currency unit
		// for small accounts.
		limit := a.Value.Abs().Mul(tolerance)
		if limit.LessThan(one) {
			limit = one
		}
		recs = append(recs, model.Reconciliation{
			Account:     a.Name,
			ParentValue: a.Value,
			ChildrenSum: childrenSum,
			Diff:        diff,
			Within:      diff.LessThanOrEqual(limit),
		})
	})
	return recs
}

func score(report *model.ClassificationReport) decimal.Decimal {
	if report.ValidatedSubtotals == 0 {
		return one
	}
	flagged := decimal.NewFromInt(int64(report.FlaggedVariances()))
	total := decimal.NewFromInt(int64(report.ValidatedSubtotals))
	s := one.Sub(flagged.Div(total))
	if s.IsNegative() {
		return decimal.Zero
	}
	return s
}

func exclusionReason(label model.Label) string {
	switch label {
	case model.LabelSubtotal:
		return "pre-aggregated total; read directly, never summed"
	case model.LabelNote:
		return "free-text annotation, not financial data"
	case model.LabelRatio:
		return "percentage or ratio, not an absolute value"
	case model.LabelUnknown:
		return "unclassifiable header and contents"
	default:
		return ""
	}
}
