// =============================================================================
// Sales Totals - Process Command
// =============================================================================
//
// This file defines the 'process' command, which runs the aggregation
// pipeline.
//
// COMMAND USAGE:
//   salestotals process [--stores DIR] [--output DIR]
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Create the output directory
//   3. Discover store files in the stores directory (recursive)
//   4. Aggregate their totals
//   5. Append the grand total to the totals log
//   6. Write the summary report (and the workbook, when configured)
//
// Every step runs sequentially. The first failure stops the run.
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ginjaninja78/sales-totals/internal/aggregator"
	"github.com/ginjaninja78/sales-totals/internal/config"
	"github.com/ginjaninja78/sales-totals/internal/logging"
	"github.com/ginjaninja78/sales-totals/internal/report"
	"github.com/ginjaninja78/sales-totals/pkg/utils"
)

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Aggregate store sales files and write the totals log and report",
	Long: `The process command scans the stores directory recursively for sales files,
sums their "total" fields, appends the grand total to the totals log and
rewrites the summary report.

A missing stores directory, an unreadable file or a file that is not valid
JSON stops the run with a non-zero exit status.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcessCommand(cmd)
	},
}

func init() {
	rootCmd.AddCommand(processCmd)
}

// runProcessCommand resolves configuration and logging, then runs the pipeline.
func runProcessCommand(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return runProcess(cfg, logger, cmd.OutOrStdout())
}

// loadConfig reads the configuration file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	required := cmd.Flags().Changed("config")

	cfg, err := config.Load(cfgFile, required)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if storesDir != "" {
		cfg.StoresDir = storesDir
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	return cfg, nil
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcess runs the pipeline for cfg and prints the completion message to out.
// Every log entry of the run carries the same run_id.
func runProcess(cfg *config.Config, logger *zap.Logger, out io.Writer) error {
	logger = logging.WithRunID(logger)
	logger.Info("Starting sales processing",
		zap.String("stores_dir", cfg.StoresDir),
		zap.String("output_dir", cfg.OutputDir))

	fm := utils.NewFileManager(cfg.StoresDir, cfg.OutputDir)

	// The output directory is created before discovery, so a run that fails
	// on a missing stores directory still leaves it behind.
	if err := fm.EnsureOutputDir(); err != nil {
		return err
	}

	logger.Debug("Discovering sales files", zap.String("extension", cfg.Extension))

	files, err := fm.DiscoverSalesFiles(cfg.Extension)
	if err != nil {
		return fmt.Errorf("failed to discover sales files: %w", err)
	}

	logger.Info("Discovered sales files", zap.Int("count", len(files)))

	summary, err := aggregator.Calculate(files, logger)
	if err != nil {
		return fmt.Errorf("failed to calculate sales total: %w", err)
	}

	logger.Info("Calculated sales total",
		zap.Float64("total", summary.TotalSales),
		zap.Int("files_with_total", summary.FileCount()),
		zap.Int("files_skipped", len(files)-summary.FileCount()))

	if err := report.AppendTotal(cfg.TotalsPath(), summary.TotalSales); err != nil {
		return err
	}

	if err := report.WriteSummary(cfg.ReportPath(), summary); err != nil {
		return err
	}

	if path := cfg.WorkbookPath(); path != "" {
		if err := report.WriteWorkbook(path, summary); err != nil {
			return err
		}
		logger.Debug("Wrote summary workbook", zap.String("path", path))
	}

	fmt.Fprintf(out, "Sales processing complete. Check '%s' for outputs.\n", cfg.OutputDir)

	return nil
}
