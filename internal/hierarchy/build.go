package hierarchy

import "github.com/ledgerlens-dev/ledgerlens/internal/model"

// Build links a depth-annotated account list into an ordered forest in one
// linear pass. It maintains a stack of currently open ancestors: each account
// pops the stack to the nearest shallower level and attaches there, or
// becomes a new root when none remains. Rows at equal depth under the same
// parent stay siblings in source order.
//
// A malformed depth (below 1) truncates to a new root instead of failing the
// parse; partial trees beat total failure on dirty input.
func Build(accounts []*model.Account) []*model.Account {
	var roots []*model.Account
	var stack []*model.Account

	for _, a := range accounts {
		if a.Depth < 1 {
			a.Depth = 1
		}

		for len(stack) > 0 && stack[len(stack)-1].Depth >= a.Depth {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			roots = append(roots, a)
		} else {
			parent := stack[len(stack)-1]
			a.Parent = parent
			parent.Children = append(parent.Children, a)
		}
		stack = append(stack, a)
	}

	return roots
}
