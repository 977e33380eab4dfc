// =============================================================================
// Sales Totals - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Running the root
// command without a subcommand processes the stores directory, exactly like
// 'salestotals process'.
//
// COBRA CLI STRUCTURE:
//   rootCmd (salestotals)
//   ├── processCmd (salestotals process)
//   └── versionCmd (salestotals version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// defaultConfigFile is read when present; its absence is not an error.
const defaultConfigFile = "salestotals.yaml"

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// storesDir and outputDir override the configured directories when set.
var (
	storesDir string
	outputDir string
)

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "salestotals",
	Short: "Sales Totals - Aggregate store sales files into a totals log and report",
	Long: `Sales Totals scans a stores directory recursively for JSON sales files,
adds up the "total" field of each file, and writes two artifacts to the
output directory:

  totals.txt       one line per run with the grand total (appended)
  salesReport.txt  a readable summary with a per-file breakdown (overwritten)

Files whose total is missing or null are skipped. A file that is not valid
JSON aborts the run before the summary report is written.

Example Usage:
  salestotals                                   # Process ./stores into ./salesTotalDir
  salestotals process --stores ./data --output ./out
  salestotals --config ./salestotals.yaml -v`,

	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcessCommand(cmd)
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	// --config flag: YAML configuration file. A missing file is only an error
	// when the flag is given explicitly.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		defaultConfigFile,
		"Path to the configuration file",
	)

	// --verbose flag: Enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)

	rootCmd.PersistentFlags().StringVar(
		&storesDir,
		"stores",
		"",
		"Stores directory to scan (overrides stores_dir)",
	)

	rootCmd.PersistentFlags().StringVar(
		&outputDir,
		"output",
		"",
		"Output directory (overrides output_dir)",
	)
}
