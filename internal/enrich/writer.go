package enrich

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/salescope/salescope/internal/model"
)

// Header is the column row of the enriched data file: the original 8 input
// columns plus the 3 metadata columns, empty when no catalog entry matched.
const Header = "TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region|Category|Brand|Rating"

// WriteFile writes the enriched transactions to a pipe-delimited file,
// creating parent directories as needed.
func WriteFile(path string, enriched []model.EnrichedTransaction) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create enriched data file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(Header + "\n"); err != nil {
		return fmt.Errorf("failed to write enriched data: %w", err)
	}
	for _, e := range enriched {
		if _, err := w.WriteString(FormatRow(e) + "\n"); err != nil {
			return fmt.Errorf("failed to write enriched data: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write enriched data: %w", err)
	}

	return nil
}

// FormatRow renders one enriched transaction as a pipe-delimited row.
func FormatRow(e model.EnrichedTransaction) string {
	category, brand, rating := "", "", ""
	if e.Metadata != nil {
		category = e.Metadata.Category
		brand = e.Metadata.Brand
		rating = strconv.FormatFloat(e.Metadata.Rating, 'f', -1, 64)
	}

	return strings.Join([]string{
		e.TransactionID,
		e.DateString(),
		e.ProductID,
		e.ProductName,
		strconv.Itoa(e.Quantity),
		strconv.FormatFloat(e.UnitPrice, 'f', -1, 64),
		e.CustomerID,
		e.Region,
		category,
		brand,
		rating,
	}, "|")
}
