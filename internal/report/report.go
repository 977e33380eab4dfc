// =============================================================================
// Sales Totals - Report Module
// =============================================================================
//
// This module writes the artifacts of a run:
//   1. Totals log: one plain number per run, appended
//   2. Summary report: fixed text layout, overwritten every run
//   3. Summary workbook: optional .xlsx copy of the report (workbook.go)
//
// REPORT LAYOUT:
//   Sales Summary
//   ----------------------------
//    Total Sales: $1,234.50
//
//    Details:
//     store1.json: $1,000.00
//     store2.json: $234.50
//
// No locking is performed. Concurrent runs against the same output
// directory may interleave writes.
//
// =============================================================================

package report

import (
	"bufio"
	"fmt"
	"math/big"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ginjaninja78/sales-totals/internal/types"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// Title is the first line of the summary report.
	Title = "Sales Summary"

	// Separator is the second line of the summary report.
	Separator = "----------------------------"

	// currencyDecimals is the number of decimals shown for amounts.
	currencyDecimals = 2
)

// LineEnding is the line terminator used for every written line.
var LineEnding = lineEndingFor(runtime.GOOS)

func lineEndingFor(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// =============================================================================
// FORMATTING
// =============================================================================

// FormatCurrency renders a value as dollars with two decimals and thousands
// separators, e.g. 1234.5 -> "$1,234.50".
//
// The value is rounded from its exact binary form, so 2.675 (stored as
// 2.67499...) renders as "$2.67". Integer digits are grouped at any magnitude.
func FormatCurrency(v float64) string {
	digits := strconv.FormatFloat(v, 'f', currencyDecimals, 64)

	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	intPart, fracPart, _ := strings.Cut(digits, ".")
	n, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		// NaN and infinities have no digits to group.
		return "$" + sign + digits
	}

	return "$" + sign + humanize.BigComma(n) + "." + fracPart
}

// FormatTotal renders a value the way the totals log stores it: the shortest
// plain decimal that round-trips, e.g. 100.5 -> "100.5", 1000 -> "1000".
func FormatTotal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RenderSummary returns the summary report lines in order.
// The details marker is a single entry holding a line break followed by the
// label, so the written report shows an empty line before " Details:".
func RenderSummary(summary types.SalesSummary) []string {
	lines := make([]string, 0, 4+len(summary.Details))
	lines = append(lines,
		Title,
		Separator,
		fmt.Sprintf(" Total Sales: %s", FormatCurrency(summary.TotalSales)),
		LineEnding+" Details:",
	)

	for _, detail := range summary.Details {
		lines = append(lines, fmt.Sprintf("  %s: %s", detail.FileName, FormatCurrency(detail.FileTotal)))
	}

	return lines
}

// =============================================================================
// WRITERS
// =============================================================================

// AppendTotal appends the grand total as a single line to the totals log.
// The file is created if it doesn't exist and is never truncated.
func AppendTotal(path string, total float64) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open totals log: %w", err)
	}

	if _, err := file.WriteString(FormatTotal(total) + LineEnding); err != nil {
		file.Close()
		return fmt.Errorf("failed to append to totals log: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close totals log: %w", err)
	}

	return nil
}

// WriteSummary overwrites the summary report file.
//
// PARAMETERS:
//   - path: The report file path.
//   - summary: The aggregation result.
//
// RETURNS:
//   - An error if the file cannot be created or written.
func WriteSummary(path string, summary types.SalesSummary) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary report: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	for _, line := range RenderSummary(summary) {
		if _, err := writer.WriteString(line + LineEnding); err != nil {
			return fmt.Errorf("failed to write summary report: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush summary report: %w", err)
	}

	return file.Close()
}
