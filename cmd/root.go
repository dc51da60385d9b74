package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cpu-bench",
	Short: "Compare parallel and serial execution of a CPU-bound workload",
	Long: `cpu-bench runs a synthetic CPU-bound workload several times, first across a
pool of workers and then one call after the other, and reports how much wall
clock time the parallel run saved.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file with run defaults")
}
