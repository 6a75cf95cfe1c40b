package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgerlens-dev/ledgerlens/internal/config"
	"github.com/ledgerlens-dev/ledgerlens/internal/engine"
	"github.com/ledgerlens-dev/ledgerlens/internal/export"
	"github.com/ledgerlens-dev/ledgerlens/internal/loader"
	"github.com/ledgerlens-dev/ledgerlens/internal/model"
	"github.com/ledgerlens-dev/ledgerlens/internal/runlog"
)

func newParseCommand() *cobra.Command {
	var configPath string
	var csvOut string
	var logDir string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a statement and print the extracted account tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], configPath, csvOut, logDir)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to ledgerlens.yaml (built-in defaults if omitted)")
	cmd.Flags().StringVar(&csvOut, "csv", "", "also write the forest as CSV to this path")
	cmd.Flags().StringVar(&logDir, "log-dir", "", "append a run-log entry under this directory")

	return cmd
}

func runParse(cmd *cobra.Command, file, configPath, csvOut, logDir string) error {
	result, err := parseFile(file, configPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	export.RenderTree(out, result.Forest)
	fmt.Fprintln(out)
	export.RenderReport(out, result.Columns, result.Report)

	if csvOut != "" {
		f, err := os.Create(csvOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", csvOut, err)
		}
		defer f.Close()
		if err := export.WriteForest(f, result.Forest); err != nil {
			return fmt.Errorf("writing forest CSV: %w", err)
		}
	}

	if logDir != "" {
		accounts := 0
		model.WalkForest(result.Forest, func(*model.Account) { accounts++ })
		entry := runlog.Entry{
			Timestamp:    time.Now(),
			File:         file,
			HeaderRow:    result.HeaderRow,
			Accounts:     accounts,
			Variances:    len(result.Report.Variances),
			QualityScore: result.Report.QualityScore.StringFixed(2),
		}
		if err := runlog.Append(logDir, []runlog.Entry{entry}); err != nil {
			return fmt.Errorf("appending run log: %w", err)
		}
	}

	return nil
}

// parseFile loads the table with the loader matching the file extension and
// runs the engine over it.
func parseFile(file, configPath string) (*engine.Result, error) {
	engineCfg := engine.DefaultConfig()
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		engineCfg = cfg.Engine()
	}

	l := loader.DefaultRegistry().ForFile(file)
	if l == nil {
		return nil, fmt.Errorf("no loader for file %s", file)
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", file, err)
	}
	defer f.Close()

	table, err := l.Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", file, err)
	}

	return engine.Parse(table, engineCfg)
}
