package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tclemos/cpu-bench/benchmark"
)

var (
	instances   int
	loops       int
	workload    string
	mode        string
	benchmarkID string
	logFormat   string
	historyPath string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the parallel vs serial benchmark",
	Example: `  # Four calls of 2^26 iterations each
  cpu-bench run

  # Eight calls of 2^28 iterations, keep the result
  cpu-bench run -i 8 -n 28 --history-db ./history`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := runConfig(cmd.Flags())
		if err != nil {
			return err
		}
		if _, err := benchmark.RunBenchmark(cfg); err != nil {
			return fmt.Errorf("benchmark failed: %w", err)
		}
		return nil
	},
}

// runConfig loads the config file and applies the flags the user set explicitly.
func runConfig(flags *pflag.FlagSet) (benchmark.Config, error) {
	cfg, err := benchmark.LoadConfig(cfgFile)
	if err != nil {
		return cfg, err
	}

	if flags.Changed("instances") {
		cfg.Instances = instances
	}
	if flags.Changed("loops") {
		cfg.Loops = loops
	}
	if flags.Changed("workload") {
		cfg.Workload = workload
	}
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("benchmark-id") {
		cfg.BenchmarkID = benchmarkID
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = logFormat
	}
	if flags.Changed("history-db") {
		cfg.HistoryPath = historyPath
	}
	return cfg, nil
}

func init() {
	rootCmd.AddCommand(runCmd)
	bindRunFlags(runCmd.Flags())
}

func bindRunFlags(flags *pflag.FlagSet) {
	defaults := benchmark.DefaultConfig()
	flags.IntVarP(&instances, "instances", "i", defaults.Instances, "Number of computations")
	flags.IntVarP(&loops, "loops", "n", defaults.Loops, "2^n number of iterations per computation")
	flags.StringVar(&workload, "workload", defaults.Workload, "Workload type: 'count' or 'keccak'")
	flags.StringVar(&mode, "mode", defaults.Mode, "Drivers to run: 'both', 'parallel' or 'serial'")
	flags.StringVar(&benchmarkID, "benchmark-id", defaults.BenchmarkID, "Optional benchmark ID tag for logs and history")
	flags.StringVar(&logFormat, "log-format", defaults.LogFormat, "Log format: 'json' or 'console'")
	flags.StringVar(&historyPath, "history-db", "", "Pebble directory to record the comparison in (disabled if empty)")
}
