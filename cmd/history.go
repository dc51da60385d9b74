package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tclemos/cpu-bench/benchmark"
)

var historyLimit int

// historyCmd lists comparisons stored by `run --history-db`
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded benchmark comparisons, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := historyPath
		if !cmd.Flags().Changed("history-db") {
			cfg, err := benchmark.LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			path = cfg.HistoryPath
		}
		return printHistory(cmd.OutOrStdout(), path, historyLimit)
	},
}

func printHistory(w io.Writer, path string, limit int) error {
	store, err := benchmark.OpenPebbleHistory(benchmark.HistoryConfig{Path: path, ReadOnly: true})
	if err != nil {
		return err
	}
	defer store.Close()

	comparisons, err := store.List(limit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}
	if len(comparisons) == 0 {
		fmt.Fprintln(w, "No comparisons recorded")
		return nil
	}
	for _, cmp := range comparisons {
		fmt.Fprintln(w, benchmark.FormatComparison(cmp))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyPath, "history-db", "", "Pebble directory written by 'run --history-db'")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum number of comparisons to show (0 for all)")
}
