package model

import "github.com/shopspring/decimal"

// Provenance records where an account's extracted value came from.
type Provenance string

const (
	// ProvenanceSubtotal means the value was read directly from a declared
	// subtotal column.
	ProvenanceSubtotal Provenance = "subtotal_column"
	// ProvenanceSummed means the value was computed by summing period and
	// plain value columns.
	ProvenanceSummed Provenance = "summed_periods"
)

// Account is a node in the extracted hierarchy. Children are owned by their
// parent; Parent is a lookup-only back-reference and is nil for roots.
type Account struct {
	Name       string // canonical name, numbering markers stripped
	RawLabel   string // label text as it appeared in the source row
	Row        int    // source row index
	Depth      int    // 1-based hierarchy level
	Value      decimal.Decimal
	Provenance Provenance
	NoData     bool // no eligible column held a numeric value for this row

	Children []*Account
	Parent   *Account
}

// IsLeaf reports whether the account has no children. Leaf values are the
// ones safe to aggregate upward without double counting.
func (a *Account) IsLeaf() bool {
	return len(a.Children) == 0
}

// Walk visits the account and every descendant in depth-first source order.
func (a *Account) Walk(fn func(*Account)) {
	fn(a)
	for _, c := range a.Children {
		c.Walk(fn)
	}
}

// WalkForest visits every account in the forest in depth-first source order.
func WalkForest(roots []*Account, fn func(*Account)) {
	for _, r := range roots {
		r.Walk(fn)
	}
}
