package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/sales-totals/internal/types"
)

// WorkbookSheet is the name of the sheet holding the summary.
const WorkbookSheet = "Sales Summary"

// detailsStartRow is the first row of per-file lines in the workbook.
const detailsStartRow = 5

// WriteWorkbook writes the summary as an .xlsx workbook.
//
// Layout:
//   A1  Sales Summary
//   A2  Total Sales | B2 <total>
//   A4  File        | B4 Total
//   A5.. one row per detail, in order
//
// Totals are written as numbers with a "#,##0.00" display format.
func WriteWorkbook(path string, summary types.SalesSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", WorkbookSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	money, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return fmt.Errorf("failed to create number style: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	cells := map[string]interface{}{
		"A1": Title,
		"A2": "Total Sales",
		"B2": summary.TotalSales,
		"A4": "File",
		"B4": "Total",
	}
	for cell, value := range cells {
		if err := f.SetCellValue(WorkbookSheet, cell, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", cell, err)
		}
	}

	if err := f.SetCellStyle(WorkbookSheet, "A1", "A1", bold); err != nil {
		return err
	}
	if err := f.SetCellStyle(WorkbookSheet, "A4", "B4", bold); err != nil {
		return err
	}
	if err := f.SetCellStyle(WorkbookSheet, "B2", "B2", money); err != nil {
		return err
	}

	for i, detail := range summary.Details {
		row := detailsStartRow + i
		if err := f.SetSheetRow(WorkbookSheet, fmt.Sprintf("A%d", row), &[]interface{}{detail.FileName, detail.FileTotal}); err != nil {
			return fmt.Errorf("failed to write detail row %d: %w", row, err)
		}
	}

	if n := len(summary.Details); n > 0 {
		last := fmt.Sprintf("B%d", detailsStartRow+n-1)
		if err := f.SetCellStyle(WorkbookSheet, fmt.Sprintf("B%d", detailsStartRow), last, money); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(WorkbookSheet, "A", "A", 32); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}
