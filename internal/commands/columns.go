package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newColumnsCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "columns <file>",
		Short: "Show how each column of a statement was classified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := parseFile(args[0], configPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "header row: %d\n", result.HeaderRow)
			for _, col := range result.Columns {
				matched := col.Matched
				if matched == "" {
					matched = "-"
				}
				fmt.Fprintf(out, "%d\t%q\t%s\t%s\n", col.Index, col.Header, col.Label, matched)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to ledgerlens.yaml (built-in defaults if omitted)")

	return cmd
}
