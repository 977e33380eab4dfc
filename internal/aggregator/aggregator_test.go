package aggregator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ginjaninja78/sales-totals/internal/types"
)

func writeStore(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		hasTotal bool
		total    float64
		wantErr  bool
	}{
		{name: "number", input: `{"total": 100.5}`, hasTotal: true, total: 100.5},
		{name: "integer", input: `{"total": 1000}`, hasTotal: true, total: 1000},
		{name: "zero is present", input: `{"total": 0}`, hasTotal: true, total: 0},
		{name: "negative", input: `{"total": -12.25}`, hasTotal: true, total: -12.25},
		{name: "extra fields ignored", input: `{"store": "201", "total": 7, "items": [1, 2]}`, hasTotal: true, total: 7},
		{name: "key case-insensitive", input: `{"Total": 3}`, hasTotal: true, total: 3},
		{name: "null total", input: `{"total": null}`},
		{name: "missing total", input: `{"overallTotal": 5}`},
		{name: "null document", input: `null`},
		{name: "empty content", input: "  \n"},
		{name: "byte order mark", input: "\xef\xbb\xbf{\"total\": 5}", hasTotal: true, total: 5},
		{name: "byte order mark only", input: "\xef\xbb\xbf"},
		{name: "byte order mark not leading", input: "{\"total\": 5}\xef\xbb\xbf", wantErr: true},
		{name: "not json", input: `total = 5`, wantErr: true},
		{name: "truncated", input: `{"total": 5`, wantErr: true},
		{name: "array document", input: `[{"total": 5}]`, wantErr: true},
		{name: "string total", input: `{"total": "5"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := ParseRecord([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.hasTotal, record.HasTotal())
			if tt.hasTotal {
				assert.Equal(t, tt.total, *record.Total)
			}
		})
	}
}

func TestCalculateNoFiles(t *testing.T) {
	summary, err := Calculate(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.TotalSales)
	assert.Empty(t, summary.Details)
}

func TestCalculateSkipsNullTotals(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeStore(t, dir, "a/sales.json", `{"total": 100.5}`),
		writeStore(t, dir, "b/sales.json", `{"total": null}`),
	}

	summary, err := Calculate(files, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 100.5, summary.TotalSales)
	assert.Equal(t, []types.SalesDetail{{FileName: "sales.json", FileTotal: 100.5}}, summary.Details)
}

func TestCalculatePreservesInputOrder(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeStore(t, dir, "zeta.json", `{"total": 3}`),
		writeStore(t, dir, "alpha.json", `{"total": 1}`),
		writeStore(t, dir, "none.json", `{}`),
		writeStore(t, dir, "mid.json", `{"total": 2}`),
	}

	summary, err := Calculate(files, nil)
	require.NoError(t, err)

	names := make([]string, 0, len(summary.Details))
	for _, d := range summary.Details {
		names = append(names, d.FileName)
	}
	assert.Equal(t, []string{"zeta.json", "alpha.json", "mid.json"}, names)
	assert.LessOrEqual(t, summary.FileCount(), len(files))
}

func TestCalculateTotalMatchesDetails(t *testing.T) {
	dir := t.TempDir()
	values := []string{"0.1", "0.2", "0.3", "1e3", "-42.42", "19.99", "0"}
	var files []string
	for i, v := range values {
		files = append(files, writeStore(t, dir, filepath.Join("store", string(rune('a'+i))+".json"), `{"total": `+v+`}`))
	}

	summary, err := Calculate(files, nil)
	require.NoError(t, err)
	assert.Len(t, summary.Details, len(values))
	assert.Equal(t, summary.Sum(), summary.TotalSales)
}

func TestCalculateAbortsOnMalformedFile(t *testing.T) {
	dir := t.TempDir()
	bad := writeStore(t, dir, "bad.json", `{"total": `)
	files := []string{
		writeStore(t, dir, "good.json", `{"total": 10}`),
		bad,
		writeStore(t, dir, "after.json", `{"total": 20}`),
	}

	summary, err := Calculate(files, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
	assert.Empty(t, summary.Details)
	assert.Equal(t, 0.0, summary.TotalSales)
}

func TestCalculateAbortsOnUnreadableFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone.json")

	_, err := Calculate([]string{missing}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCalculateLogsSkippedFiles(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	dir := t.TempDir()
	files := []string{
		writeStore(t, dir, "skip.json", `{"total": null}`),
		writeStore(t, dir, "keep.json", `{"total": 5}`),
	}

	_, err := Calculate(files, zap.New(core))
	require.NoError(t, err)

	skipped := logs.FilterMessage("Skipping file without total").All()
	require.Len(t, skipped, 1)
	assert.Equal(t, files[0], skipped[0].ContextMap()["file"])
	assert.Equal(t, 1, logs.FilterMessage("Added file total").Len())
}
