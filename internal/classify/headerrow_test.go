package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerlens-dev/ledgerlens/internal/model"
)

func TestSelectHeaderRow_PromotesBelowPlaceholders(t *testing.T) {
	c := NewClassifier(Patterns{})
	table := model.Table{Rows: [][]model.Cell{
		{text("Unnamed: 0"), text("Unnamed: 1"), text("Unnamed: 2"), text("Unnamed: 3")},
		{text("会计项目"), text("5月"), text("6月"), text("合计")},
		{text("食品收入"), num("100"), num("200"), num("300")},
	}}

	assert.Equal(t, 1, c.SelectHeaderRow(table))
}

func TestSelectHeaderRow_EmptyCellsCountAsPlaceholders(t *testing.T) {
	c := NewClassifier(Patterns{})
	table := model.Table{Rows: [][]model.Cell{
		{model.EmptyCell(), model.EmptyCell(), text("Column_2")},
		{text("项目"), text("1月"), text("总计")},
	}}

	assert.Equal(t, 1, c.SelectHeaderRow(table))
}

func TestSelectHeaderRow_KeepsRealHeader(t *testing.T) {
	c := NewClassifier(Patterns{})
	table := model.Table{Rows: [][]model.Cell{
		{text("会计项目"), text("5月"), text("6月"), text("合计")},
		{text("食品收入"), num("100"), num("200"), num("300")},
	}}

	assert.Equal(t, 0, c.SelectHeaderRow(table))
}

func TestSelectHeaderRow_NoPromotionWithoutBetterCandidate(t *testing.T) {
	c := NewClassifier(Patterns{})

	// Row 0 is generic, but row 1 resolves no more patterns than row 0 does.
	table := model.Table{Rows: [][]model.Cell{
		{text("Unnamed: 0"), text("Unnamed: 1")},
		{num("100"), num("200")},
	}}
	assert.Equal(t, 0, c.SelectHeaderRow(table))

	// A single-row table cannot promote anything.
	single := model.Table{Rows: [][]model.Cell{
		{model.EmptyCell(), model.EmptyCell()},
	}}
	assert.Equal(t, 0, c.SelectHeaderRow(single))
}
