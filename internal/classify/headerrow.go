package classify

import (
	"regexp"
	"strings"

	"github.com/ledgerlens-dev/ledgerlens/internal/model"
)

// placeholderRe matches auto-generated column labels with no semantic
// content ("Unnamed: 3", "Column_2", "col 4", ...).
var placeholderRe = regexp.MustCompile(`^(?i)(unnamed[:：]?\s*\d*|column[ _]?\d+|col[ _]?\d+|field[ _]?\d+|列\d*)$`)

// SelectHeaderRow decides whether the true header row is the nominal first
// row or the one below it. Some sources place real labels one row beneath a
// placeholder header; when more than half of row 0 is empty or generic and
// row 1 resolves to a higher proportion of recognizable header patterns,
// row 1 is promoted. Only one promotion is attempted.
func (c *Classifier) SelectHeaderRow(t model.Table) int {
	width := t.Width()
	if len(t.Rows) < 2 || width == 0 {
		return 0
	}

	generic := 0
	for j := 0; j < width; j++ {
		if isPlaceholder(t.CellAt(0, j)) {
			generic++
		}
	}
	if generic*2 <= width {
		return 0
	}

	if c.patternHits(t, 1) > c.patternHits(t, 0) {
		return 1
	}
	return 0
}

// patternHits counts cells in a row whose text matches a header pattern.
func (c *Classifier) patternHits(t model.Table, row int) int {
	hits := 0
	for j := 0; j < t.Width(); j++ {
		if c.HeaderMatch(t.CellAt(row, j).String()) {
			hits++
		}
	}
	return hits
}

func isPlaceholder(cell model.Cell) bool {
	if cell.IsEmpty() {
		return true
	}
	if cell.Kind != model.CellText {
		return false
	}
	return placeholderRe.MatchString(strings.TrimSpace(cell.Text))
}
