// Package classify decides what each column of a financial statement means:
// a reporting period, a precomputed subtotal, a ratio, a note, or a plain
// numeric column. Getting this right is what prevents subtotal columns from
// being double counted into extracted values.
package classify

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerlens-dev/ledgerlens/internal/model"
)

// sampleLimit caps how many non-empty cells below the header are inspected
// per column.
const sampleLimit = 10

var one = decimal.NewFromInt(1)

// Classifier assigns labels to columns from header text and cell samples.
// It holds read-only pattern sets and is safe for concurrent use.
type Classifier struct {
	patterns Patterns
}

// NewClassifier creates a Classifier. Empty pattern sets fall back to the
// bilingual defaults.
func NewClassifier(p Patterns) *Classifier {
	return &Classifier{patterns: p.merged()}
}

// Classify assigns a label to a single column. The decision runs in fixed
// priority order, first match wins; unmatched input degrades to LabelUnknown
// rather than erroring, because garbled headers are expected input.
// The second return value names the pattern or sample rule that decided.
func (c *Classifier) Classify(header string, samples []model.Cell) (model.Label, string) {
	if pat, ok := matchAny(header, c.patterns.Note); ok {
		return model.LabelNote, pat
	}
	if pat, ok := matchAny(header, c.patterns.Ratio); ok {
		return model.LabelRatio, pat
	}
	if samplesLookLikeRatios(samples) {
		return model.LabelRatio, "sample:bounded"
	}
	if pat, ok := matchAny(header, c.patterns.Subtotal); ok {
		return model.LabelSubtotal, pat
	}
	if pat, ok := matchAny(header, c.patterns.Period); ok {
		return model.LabelPeriod, pat
	}
	if samplesMostlyNumeric(samples) {
		return model.LabelValue, "sample:numeric"
	}
	return model.LabelUnknown, ""
}

// HeaderMatch reports whether the text matches any header pattern
// (note/ratio/subtotal/period), ignoring cell samples. Used by header-row
// detection to score candidate rows.
func (c *Classifier) HeaderMatch(text string) bool {
	for _, set := range [][]string{c.patterns.Note, c.patterns.Ratio, c.patterns.Subtotal, c.patterns.Period} {
		if _, ok := matchAny(text, set); ok {
			return true
		}
	}
	return false
}

// Columns classifies every column of the table, sampling cell values below
// the header row.
func (c *Classifier) Columns(t model.Table, headerRow int) []model.Column {
	width := t.Width()
	cols := make([]model.Column, width)
	for j := 0; j < width; j++ {
		header := t.CellAt(headerRow, j).String()

		var samples []model.Cell
		for i := headerRow + 1; i < len(t.Rows) && len(samples) < sampleLimit; i++ {
			cell := t.CellAt(i, j)
			if !cell.IsEmpty() {
				samples = append(samples, cell)
			}
		}

		label, matched := c.Classify(header, samples)
		cols[j] = model.Column{Index: j, Header: header, Label: label, Matched: matched}
	}
	return cols
}

func matchAny(header string, patterns []string) (string, bool) {
	h := strings.ToLower(strings.TrimSpace(header))
	if h == "" {
		return "", false
	}
	for _, p := range patterns {
		if p != "" && strings.Contains(h, strings.ToLower(p)) {
			return p, true
		}
	}
	return "", false
}

// samplesLookLikeRatios reports whether the sampled cells are predominantly
// values bounded in [-1, 1] or text carrying a percent marker.
func samplesLookLikeRatios(samples []model.Cell) bool {
	if len(samples) == 0 {
		return false
	}
	hits := 0
	for _, s := range samples {
		switch s.Kind {
		case model.CellNumber:
			if s.Number.Abs().LessThanOrEqual(one) {
				hits++
			}
		case model.CellText:
			t := strings.TrimSpace(s.Text)
			if strings.HasSuffix(t, "%") || strings.HasSuffix(t, "％") {
				hits++
			}
		}
	}
	return hits*2 > len(samples)
}

// samplesMostlyNumeric reports whether a strict majority of the sampled
// cells hold numbers.
func samplesMostlyNumeric(samples []model.Cell) bool {
	if len(samples) == 0 {
		return false
	}
	numeric := 0
	for _, s := range samples {
		if s.IsNumber() {
			numeric++
		}
	}
	return numeric*2 > len(samples)
}
