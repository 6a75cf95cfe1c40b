package model

// Label is the semantic class assigned to a column.
type Label string

const (
	// LabelPeriod is a per-period value column (a month, a quarter, a year).
	LabelPeriod Label = "period"
	// LabelSubtotal is a pre-aggregated total column. Read directly, never
	// summed together with period columns.
	LabelSubtotal Label = "subtotal"
	// LabelNote is a free-text annotation column.
	LabelNote Label = "note"
	// LabelRatio is a percentage or ratio column.
	LabelRatio Label = "ratio"
	// LabelValue is a numeric column recognized from its contents rather
	// than its header.
	LabelValue Label = "value"
	// LabelUnknown marks a column nothing matched.
	LabelUnknown Label = "unknown"
)

// IncludeInSums reports whether values in a column of this label may be
// added together when computing a row's value.
func (l Label) IncludeInSums() bool {
	return l == LabelPeriod || l == LabelValue
}

// Column is one classified column of the table.
type Column struct {
	Index  int
	Header string
	Label  Label
	// Matched names the pattern or sample rule that decided the label;
	// empty for unknown columns.
	Matched string
}
