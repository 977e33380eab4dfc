package aggregator

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ginjaninja78/sales-totals/internal/types"
)

// utf8BOM is dropped from the start of a store file before decoding.
var utf8BOM = []byte("\xEF\xBB\xBF")

// ParseRecord decodes the content of a store file.
//
// Empty content and a bare JSON null decode to a record without a total.
// Content that is not a JSON object, or whose total is neither a number nor
// null, is an error.
func ParseRecord(data []byte) (types.SalesRecord, error) {
	var record types.SalesRecord

	data = bytes.TrimPrefix(data, utf8BOM)

	if len(bytes.TrimSpace(data)) == 0 {
		return record, nil
	}

	if err := json.Unmarshal(data, &record); err != nil {
		return types.SalesRecord{}, fmt.Errorf("failed to parse sales record: %w", err)
	}

	return record, nil
}
