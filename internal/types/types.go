// =============================================================================
// Sales Totals - Shared Types
// =============================================================================
//
// This package contains the value types passed between pipeline stages.
// Types defined here are used by:
//   - aggregator
//   - report
//
// All of them are built and consumed within a single run.
//
// =============================================================================

package types

// =============================================================================
// INPUT RECORD
// =============================================================================

// SalesRecord is the decoded content of a single store file.
type SalesRecord struct {
	// Total is the store's sales total.
	// nil when the field is absent or null; such a file contributes nothing.
	// A present zero is a real contribution and is kept distinct from nil.
	Total *float64 `json:"total"`
}

// HasTotal reports whether the record carries a total.
func (r SalesRecord) HasTotal() bool {
	return r.Total != nil
}

// =============================================================================
// AGGREGATE RESULT
// =============================================================================

// SalesDetail is the per-file line item of a summary.
type SalesDetail struct {
	// FileName is the base name of the source file (no directories).
	FileName string

	// FileTotal is the raw total read from the file.
	FileTotal float64
}

// SalesSummary is the result of aggregating a set of store files.
//
// TotalSales always equals the sum of Details[i].FileTotal, accumulated in
// Details order.
type SalesSummary struct {
	TotalSales float64
	Details    []SalesDetail
}

// FileCount returns the number of files that contributed a total.
func (s SalesSummary) FileCount() int {
	return len(s.Details)
}

// Sum recomputes the total from the details in order.
func (s SalesSummary) Sum() float64 {
	var total float64
	for _, d := range s.Details {
		total += d.FileTotal
	}
	return total
}
