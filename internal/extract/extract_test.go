package extract

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

// Columns matching the 会计项目/5月/6月/7月/合计/占比 layout.
func statementColumns() []model.Column {
	return []model.Column{
		{Index: 0, Label: model.LabelUnknown},
		{Index: 1, Label: model.LabelPeriod},
		{Index: 2, Label: model.LabelPeriod},
		{Index: 3, Label: model.LabelPeriod},
		{Index: 4, Label: model.LabelSubtotal},
		{Index: 5, Label: model.LabelRatio},
	}
}

var tol = dec("0.01")

func TestValue_SubtotalWins(t *testing.T) {
	cells := []model.Cell{
		model.TextCell("长期待摊费用"),
		num("23538"), num("24603"), num("25765"),
		num("73906"),
		model.TextCell("15%"),
	}

	res := Value(cells, statementColumns(), tol, PolicyFirst)
	assert.True(t, res.Value.Equal(dec("73906")), "got %s", res.Value)
	assert.Equal(t, model.ProvenanceSubtotal, res.Provenance)
	assert.False(t, res.NoData)
	assert.Nil(t, res.Conflict)
}

func TestValue_FallsBackToSummingPeriods(t *testing.T) {
	cells := []model.Cell{
		model.TextCell("长期待摊费用"),
		num("23538"), num("24603"), num("25765"),
		model.EmptyCell(), // subtotal missing for this row
		model.TextCell("15%"),
	}

	res := Value(cells, statementColumns(), tol, PolicyFirst)
	assert.True(t, res.Value.Equal(dec("73906")), "got %s", res.Value)
	assert.Equal(t, model.ProvenanceSummed, res.Provenance)
	assert.False(t, res.NoData)
}

func TestValue_NeverReadsNoteRatioUnknown(t *testing.T) {
	// Even numeric-looking values in excluded columns must not leak in.
	cols := []model.Column{
		{Index: 0, Label: model.LabelUnknown},
		{Index: 1, Label: model.LabelPeriod},
		{Index: 2, Label: model.LabelRatio},
		{Index: 3, Label: model.LabelNote},
	}
	cells := []model.Cell{num("999"), num("100"), num("0.15"), num("42")}

	res := Value(cells, cols, tol, PolicyFirst)
	assert.True(t, res.Value.Equal(dec("100")), "got %s", res.Value)
	assert.Equal(t, model.ProvenanceSummed, res.Provenance)
}

func TestValue_NegativeAndZeroValues(t *testing.T) {
	cols := []model.Column{
		{Index: 0, Label: model.LabelPeriod},
		{Index: 1, Label: model.LabelPeriod},
		{Index: 2, Label: model.LabelValue},
	}
	cells := []model.Cell{num("-50"), num("0"), num("30")}

	res := Value(cells, cols, tol, PolicyFirst)
	assert.True(t, res.Value.Equal(dec("-20")), "got %s", res.Value)
	assert.False(t, res.NoData)
}

func TestValue_NoDataRow(t *testing.T) {
	cells := []model.Cell{
		model.TextCell("其他说明"),
		model.EmptyCell(), model.EmptyCell(), model.EmptyCell(),
		model.EmptyCell(),
		model.EmptyCell(),
	}

	res := Value(cells, statementColumns(), tol, PolicyFirst)
	assert.True(t, res.Value.IsZero())
	assert.Equal(t, model.ProvenanceSummed, res.Provenance)
	assert.True(t, res.NoData)
}

func TestValue_ZeroSubtotalTreatedAsAbsent(t *testing.T) {
	cells := []model.Cell{
		model.TextCell("x"),
		num("10"), num("20"), num("30"),
		num("0"), // filler zero, not a declared total
		model.EmptyCell(),
	}

	res := Value(cells, statementColumns(), tol, PolicyFirst)
	assert.True(t, res.Value.Equal(dec("60")), "got %s", res.Value)
	assert.Equal(t, model.ProvenanceSummed, res.Provenance)
}

func conflictColumns() []model.Column {
	return []model.Column{
		{Index: 0, Label: model.LabelSubtotal},
		{Index: 1, Label: model.LabelSubtotal},
	}
}

func TestValue_ConflictingSubtotals(t *testing.T) {
	cells := []model.Cell{num("100"), num("150")}

	res := Value(cells, conflictColumns(), tol, PolicyFirst)
	assert.True(t, res.Value.Equal(dec("100")), "first column wins by default")
	require.NotNil(t, res.Conflict)
	assert.Equal(t, model.VarianceSubtotalConflict, res.Conflict.Kind)
	assert.True(t, res.Conflict.Diff.Equal(dec("50")))
}

func TestValue_ConflictPolicies(t *testing.T) {
	cells := []model.Cell{num("100"), num("150")}

	res := Value(cells, conflictColumns(), tol, PolicyLargest)
	assert.True(t, res.Value.Equal(dec("150")), "got %s", res.Value)

	res = Value(cells, conflictColumns(), tol, PolicyAverage)
	assert.True(t, res.Value.Equal(dec("125")), "got %s", res.Value)
}

func TestValue_AgreeingSubtotalsNoConflict(t *testing.T) {
	cells := []model.Cell{num("100"), num("100.5")}

	res := Value(cells, conflictColumns(), tol, PolicyFirst)
	assert.True(t, res.Value.Equal(dec("100")))
	assert.Nil(t, res.Conflict, "0.5%% apart is within the 1%% tolerance")
}

func TestSumEligible(t *testing.T) {
	cells := []model.Cell{
		model.TextCell("x"),
		num("23538"), num("24603"), num("25765"),
		num("99999"), // subtotal must not be included
		num("0.15"),
	}

	sum := SumEligible(cells, statementColumns())
	assert.True(t, sum.Equal(dec("73906")), "got %s", sum)
}
