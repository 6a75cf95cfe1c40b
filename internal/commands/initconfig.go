package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ledgerlens-dev/ledgerlens/internal/config"
)

func newInitConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-config [directory]",
		Short: "Write a ledgerlens.yaml with the default bilingual patterns",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			path := filepath.Join(dir, "ledgerlens.yaml")
			if err := config.Save(path, config.Default()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	return cmd
}
