package enrich

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salescope/salescope/internal/model"
)

func TestFormatRow(t *testing.T) {
	matched := model.EnrichedTransaction{
		ValidTransaction: validTxn("T001", "P101", "Laptop"),
		Metadata: &model.ProductMetadata{
			Title:    "Laptop Pro",
			Category: "laptops",
			Brand:    "Apple",
			Rating:   4.7,
		},
	}
	assert.Equal(t,
		"T001|2024-12-01|P101|Laptop|2|500|C001|North|laptops|Apple|4.7",
		FormatRow(matched))

	unmatched := model.EnrichedTransaction{ValidTransaction: validTxn("T002", "P999", "Widget")}
	assert.Equal(t,
		"T002|2024-12-01|P999|Widget|2|500|C001|North|||",
		FormatRow(unmatched))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "enriched_sales_data.txt")

	enriched := []model.EnrichedTransaction{
		{ValidTransaction: validTxn("T001", "P101", "Laptop")},
		{ValidTransaction: validTxn("T002", "P102", "Mouse")},
	}
	require.NoError(t, WriteFile(path, enriched))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "T001|"))
	assert.True(t, strings.HasPrefix(lines[2], "T002|"))
}

func TestWriteFileEmptySet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enriched_sales_data.txt")

	require.NoError(t, WriteFile(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Header+"\n", string(data))
}
