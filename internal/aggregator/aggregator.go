// =============================================================================
// Sales Totals - Aggregator Module
// =============================================================================
//
// This module turns a list of store files into a SalesSummary.
//
// AGGREGATION PIPELINE (per file, in input order):
//   1. Read the whole file
//   2. Parse it as a sales record
//   3. Skip the file if it has no total
//   4. Add the total to the running sum and record a detail line
//
// FAILURE MODEL:
//   Fail-fast. The first unreadable or unparseable file aborts the whole
//   calculation and no summary is returned. Only a missing or null total is
//   tolerated.
//
// =============================================================================

package aggregator

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ginjaninja78/sales-totals/internal/types"
)

// Calculate aggregates the given store files into a summary.
//
// PARAMETERS:
//   - files: Paths to the store files, in discovery order.
//   - logger: Receives per-file debug entries. nil disables logging.
//
// RETURNS:
//   - The summary, with details in the same order as files.
//   - An error naming the first file that could not be read or parsed.
func Calculate(files []string, logger *zap.Logger) (types.SalesSummary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	summary := types.SalesSummary{
		Details: []types.SalesDetail{},
	}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return types.SalesSummary{}, fmt.Errorf("failed to read %s: %w", file, err)
		}

		record, err := ParseRecord(data)
		if err != nil {
			return types.SalesSummary{}, fmt.Errorf("%s: %w", file, err)
		}

		if !record.HasTotal() {
			logger.Debug("Skipping file without total", zap.String("file", file))
			continue
		}

		fileTotal := *record.Total
		summary.TotalSales += fileTotal
		summary.Details = append(summary.Details, types.SalesDetail{
			FileName:  filepath.Base(file),
			FileTotal: fileTotal,
		})

		logger.Debug("Added file total",
			zap.String("file", file),
			zap.Float64("total", fileTotal))
	}

	return summary, nil
}
