package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerlens-dev/ledgerlens/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ledgerlens",
		Short:   "Extract validated account trees from financial statement spreadsheets",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newColumnsCommand())
	rootCmd.AddCommand(newInitConfigCommand())

	return rootCmd
}
