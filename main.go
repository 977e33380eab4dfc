// =============================================================================
// Sales Totals - Main Entry Point
// =============================================================================
//
// USAGE:
//   salestotals            - Process ./stores into ./salesTotalDir
//   salestotals process    - Same, as an explicit subcommand
//   salestotals version    - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Configuration, aggregation, reporting, logging
//   - pkg/           : File system utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/sales-totals/cmd"
)

func main() {
	cmd.Execute()
}
