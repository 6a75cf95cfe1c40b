package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerlens-dev/ledgerlens/internal/model"
)

var hundred = decimal.NewFromInt(100)

// RenderTree writes the account forest as an indented text tree.
func RenderTree(w io.Writer, roots []*model.Account) {
	for _, root := range roots {
		renderAccount(w, root, 0)
	}
}

func renderAccount(w io.Writer, a *model.Account, indent int) {
	tag := "leaf"
	switch {
	case !a.IsLeaf() && !a.NoData:
		tag = "parent+value"
	case !a.IsLeaf():
		tag = "parent"
	case a.NoData:
		tag = "no data"
	}

	fmt.Fprintf(w, "%s%s  %s  [%s, %s]\n",
		strings.Repeat("  ", indent), a.Name, a.Value.StringFixed(2), tag, a.Provenance)

	for _, c := range a.Children {
		renderAccount(w, c, indent+1)
	}
}

// RenderReport writes the classification report as plain text: per-column
// decisions, exclusions, variances, reconciliation, and the quality score.
func RenderReport(w io.Writer, columns []model.Column, report *model.ClassificationReport) {
	fmt.Fprintln(w, "columns:")
	for _, col := range columns {
		matched := col.Matched
		if matched == "" {
			matched = "-"
		}
		fmt.Fprintf(w, "  %d %-24q %-8s (%s)\n", col.Index, col.Header, col.Label, matched)
	}

	if len(report.Excluded) > 0 {
		fmt.Fprintln(w, "excluded from sums:")
		for _, ex := range report.Excluded {
			fmt.Fprintf(w, "  column %d [%s]: %s\n", ex.Index, ex.Label, ex.Reason)
		}
	}

	if len(report.Variances) > 0 {
		fmt.Fprintln(w, "variances:")
		for _, v := range report.Variances {
			fmt.Fprintf(w, "  row %d %s [%s]: declared %s vs summed %s (%s%%)\n",
				v.Row, v.Account, v.Kind, v.Declared.StringFixed(2), v.Summed.StringFixed(2),
				v.Pct.Mul(hundred).StringFixed(1))
		}
	}

	for _, rec := range report.Reconciliations {
		if rec.Within {
			continue
		}
		fmt.Fprintf(w, "parent/child mismatch: %s parent %s vs children %s\n",
			rec.Account, rec.ParentValue.StringFixed(2), rec.ChildrenSum.StringFixed(2))
	}

	if len(report.NoDataRows) > 0 {
		fmt.Fprintf(w, "rows with no data: %d\n", len(report.NoDataRows))
	}
	fmt.Fprintf(w, "safe leaf accounts: %d\n", len(report.SafeAccounts))
	fmt.Fprintf(w, "quality score: %s\n", report.QualityScore.StringFixed(2))
}
