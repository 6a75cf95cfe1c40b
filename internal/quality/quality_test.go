package quality

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlens-dev/ledgerlens/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func num(s string) model.Cell {
	return model.NumberCell(dec(s))
}

var tol = dec("0.01")

func periodSubtotalColumns() []model.Column {
	return []model.Column{
		{Index: 0, Label: model.LabelUnknown},
		{Index: 1, Label: model.LabelPeriod},
		{Index: 2, Label: model.LabelPeriod},
		{Index: 3, Label: model.LabelSubtotal},
	}
}

func TestValidate_FlagsSubtotalMismatch(t *testing.T) {
	// Periods sum to 100 but the declared subtotal reads 150: 50% off,
	// far beyond the 1% tolerance.
	account := &model.Account{
		Name: "营业费用", Row: 1,
		Value: dec("150"), Provenance: model.ProvenanceSubtotal,
	}
	rows := map[int]model.Row{
		1: {Index: 1, Cells: []model.Cell{model.TextCell("营业费用"), num("40"), num("60"), num("150")}},
	}

	report := Validate([]*model.Account{account}, rows, periodSubtotalColumns(), tol, nil)

	require.Len(t, report.Variances, 1)
	v := report.Variances[0]
	assert.Equal(t, model.VarianceSubtotalMismatch, v.Kind)
	assert.Equal(t, "营业费用", v.Account)
	assert.True(t, v.Declared.Equal(dec("150")))
	assert.True(t, v.Summed.Equal(dec("100")))
	assert.True(t, report.QualityScore.LessThan(dec("1")), "score must drop below 1")
}

func TestValidate_CleanSubtotalScoresOne(t *testing.T) {
	account := &model.Account{
		Name: "营业费用", Row: 1,
		Value: dec("100"), Provenance: model.ProvenanceSubtotal,
	}
	rows := map[int]model.Row{
		1: {Index: 1, Cells: []model.Cell{model.TextCell("营业费用"), num("40"), num("60"), num("100")}},
	}

	report := Validate([]*model.Account{account}, rows, periodSubtotalColumns(), tol, nil)

	assert.Empty(t, report.Variances)
	assert.Equal(t, 1, report.ValidatedSubtotals)
	assert.True(t, report.QualityScore.Equal(dec("1")))
}

func TestValidate_ScoreAggregation(t *testing.T) {
	// Two validated subtotals, one flagged: score 0.5.
	good := &model.Account{
		Name: "好行", Row: 1,
		Value: dec("100"), Provenance: model.ProvenanceSubtotal,
	}
	bad := &model.Account{
		Name: "坏行", Row: 2,
		Value: dec("150"), Provenance: model.ProvenanceSubtotal,
	}
	rows := map[int]model.Row{
		1: {Index: 1, Cells: []model.Cell{model.TextCell("好行"), num("40"), num("60"), num("100")}},
		2: {Index: 2, Cells: []model.Cell{model.TextCell("坏行"), num("40"), num("60"), num("150")}},
	}

	report := Validate([]*model.Account{good, bad}, rows, periodSubtotalColumns(), tol, nil)

	assert.Equal(t, 2, report.ValidatedSubtotals)
	assert.Equal(t, 1, report.FlaggedVariances())
	assert.True(t, report.QualityScore.Equal(dec("0.5")), "got %s", report.QualityScore)
}

func TestValidate_NoSubtotalsScoresOne(t *testing.T) {
	account := &model.Account{
		Name: "食品收入", Row: 1,
		Value: dec("100"), Provenance: model.ProvenanceSummed,
	}
	rows := map[int]model.Row{
		1: {Index: 1, Cells: []model.Cell{model.TextCell("食品收入"), num("40"), num("60"), model.EmptyCell()}},
	}

	report := Validate([]*model.Account{account}, rows, periodSubtotalColumns(), tol, nil)

	assert.Zero(t, report.ValidatedSubtotals)
	assert.True(t, report.QualityScore.Equal(dec("1")))
}

func TestValidate_SkipsCheckWithoutEligibleColumns(t *testing.T) {
	// Only a subtotal column: there is nothing to recompute from, so the
	// cross-check would flag every row spuriously.
	cols := []model.Column{
		{Index: 0, Label: model.LabelUnknown},
		{Index: 1, Label: model.LabelSubtotal},
	}
	account := &model.Account{
		Name: "合计行", Row: 1,
		Value: dec("100"), Provenance: model.ProvenanceSubtotal,
	}
	rows := map[int]model.Row{
		1: {Index: 1, Cells: []model.Cell{model.TextCell("合计行"), num("100")}},
	}

	report := Validate([]*model.Account{account}, rows, cols, tol, nil)
	assert.Empty(t, report.Variances)
	assert.Zero(t, report.ValidatedSubtotals)
}

func TestValidate_ColumnSummary(t *testing.T) {
	report := Validate(nil, nil, periodSubtotalColumns(), tol, nil)

	assert.Equal(t, 2, report.ColumnCounts[model.LabelPeriod])
	assert.Equal(t, 1, report.ColumnCounts[model.LabelSubtotal])
	assert.Equal(t, 1, report.ColumnCounts[model.LabelUnknown])

	// Subtotal and unknown columns are excluded from sums, with reasons.
	require.Len(t, report.Excluded, 2)
	indices := []int{report.Excluded[0].Index, report.Excluded[1].Index}
	assert.Equal(t, []int{0, 3}, indices)
	for _, ex := range report.Excluded {
		assert.NotEmpty(t, ex.Reason)
	}
}

func TestValidate_MergesExtractionConflicts(t *testing.T) {
	conflicts := []model.Variance{{
		Kind: model.VarianceSubtotalConflict, Row: 3, Account: "冲突行",
		Declared: dec("100"), Summed: dec("150"), Diff: dec("50"), Pct: dec("0.5"),
	}}

	report := Validate(nil, nil, periodSubtotalColumns(), tol, conflicts)

	require.Len(t, report.Variances, 1)
	assert.Equal(t, model.VarianceSubtotalConflict, report.Variances[0].Kind)
	// Conflicts are informational; they do not drag the score down.
	assert.True(t, report.QualityScore.Equal(dec("1")))
}

func TestValidate_Reconciliation(t *testing.T) {
	child1 := &model.Account{Name: "食品收入", Row: 2, Value: dec("60"), Provenance: model.ProvenanceSummed}
	child2 := &model.Account{Name: "酒水收入", Row: 3, Value: dec("40"), Provenance: model.ProvenanceSummed}
	parent := &model.Account{
		Name: "营业收入", Row: 1,
		Value: dec("100"), Provenance: model.ProvenanceSummed,
		Children: []*model.Account{child1, child2},
	}
	child1.Parent = parent
	child2.Parent = parent

	report := Validate([]*model.Account{parent}, nil, nil, tol, nil)

	require.Len(t, report.Reconciliations, 1)
	rec := report.Reconciliations[0]
	assert.Equal(t, "营业收入", rec.Account)
	assert.True(t, rec.Within)

	// Now break the parent value.
	parent.Value = dec("500")
	report = Validate([]*model.Account{parent}, nil, nil, tol, nil)
	require.Len(t, report.Reconciliations, 1)
	assert.False(t, report.Reconciliations[0].Within)
}

func TestValidate_SafeAccountsAreLeavesWithData(t *testing.T) {
	child := &model.Account{Name: "食品收入", Row: 2, Value: dec("60"), Provenance: model.ProvenanceSummed}
	empty := &model.Account{Name: "空行", Row: 3, NoData: true, Provenance: model.ProvenanceSummed}
	parent := &model.Account{
		Name: "营业收入", Row: 1,
		Value: dec("60"), Provenance: model.ProvenanceSummed,
		Children: []*model.Account{child, empty},
	}
	child.Parent = parent
	empty.Parent = parent

	report := Validate([]*model.Account{parent}, nil, nil, tol, nil)

	assert.Equal(t, []string{"食品收入"}, report.SafeAccounts)
	assert.Equal(t, []int{3}, report.NoDataRows)
}
