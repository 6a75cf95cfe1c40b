// Package export renders a parsed account forest for downstream consumers:
// CSV for machines, indented text for terminals.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ledgerlens-dev/ledgerlens/internal/model"
)

const (
	numFields     = 6
	colName       = 0
	colDepth      = 1
	colValue      = 2
	colProvenance = 3
	colParent     = 4
	colRow        = 5
)

// WriteForest writes the account forest as CSV in depth-first source order.
func WriteForest(w io.Writer, roots []*model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"account_name", "depth", "value", "provenance", "parent", "source_row"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	var werr error
	model.WalkForest(roots, func(a *model.Account) {
		if werr != nil {
			return
		}
		if err := cw.Write(MarshalAccount(a)); err != nil {
			werr = fmt.Errorf("writing account %q: %w", a.Name, err)
		}
	})
	if werr != nil {
		return werr
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(a *model.Account) []string {
	row := make([]string, numFields)
	row[colName] = a.Name
	row[colDepth] = strconv.Itoa(a.Depth)
	row[colValue] = a.Value.String()
	row[colProvenance] = string(a.Provenance)
	if a.Parent != nil {
		row[colParent] = a.Parent.Name
	}
	row[colRow] = strconv.Itoa(a.Row)
	return row
}
