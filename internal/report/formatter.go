// Package report renders the human-readable sales analytics report. The
// formatter is pure: it consumes the analytics summary and run statistics
// and produces text, so it can be exercised without running the pipeline.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/salescope/salescope/internal/analytics"
	"github.com/salescope/salescope/internal/enrich"
	"github.com/salescope/salescope/internal/model"
	"github.com/salescope/salescope/internal/validation"
)

const lineWidth = 60

// Input carries everything one report needs.
type Input struct {
	GeneratedAt time.Time
	Summary     *analytics.Summary
	Enrichment  enrich.Stats
	Rejected    []model.RejectedTransaction
	// ParsedCount is the number of candidate records parsed from the file.
	ParsedCount int
	// CatalogAvailable is false when the metadata fetch failed and the run
	// degraded to an empty mapping.
	CatalogAvailable bool
}

// Formatter renders reports with configurable ranking sizes.
type Formatter struct {
	topN         int
	lowQtyCutoff int
	printer      *message.Printer
}

// NewFormatter creates a report formatter. Non-positive arguments fall back
// to top 5 rankings and a low-quantity cutoff of 10.
func NewFormatter(topN, lowQtyCutoff int) *Formatter {
	if topN <= 0 {
		topN = 5
	}
	if lowQtyCutoff <= 0 {
		lowQtyCutoff = 10
	}
	return &Formatter{
		topN:         topN,
		lowQtyCutoff: lowQtyCutoff,
		printer:      message.NewPrinter(language.English),
	}
}

// Format renders the full report. All monetary values are rounded to two
// decimal places here, at presentation time.
func (f *Formatter) Format(in Input) string {
	var b strings.Builder

	f.writeHeader(&b, in)
	f.writeOverallSummary(&b, in.Summary)
	f.writeRegionPerformance(&b, in.Summary)
	f.writeTopProducts(&b, in.Summary)
	f.writeTopCustomers(&b, in.Summary)
	f.writeDailyTrend(&b, in.Summary)
	f.writePerformanceAnalysis(&b, in.Summary)
	f.writeDataQuality(&b, in)
	f.writeEnrichmentSummary(&b, in)

	b.WriteString(rule("=") + "\n")
	b.WriteString("           END OF REPORT\n")
	b.WriteString(rule("=") + "\n")

	return b.String()
}

// WriteFile writes the report to path, creating parent directories.
func WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (f *Formatter) money(v float64) string {
	return "$" + f.printer.Sprintf("%.2f", v)
}

func rule(ch string) string {
	return strings.Repeat(ch, lineWidth)
}

func (f *Formatter) writeHeader(b *strings.Builder, in Input) {
	b.WriteString(rule("=") + "\n")
	b.WriteString("           SALES ANALYTICS REPORT\n")
	fmt.Fprintf(b, "         Generated: %s\n", in.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(b, "         Records Processed: %d\n", in.ParsedCount)
	b.WriteString(rule("=") + "\n\n")
}

func (f *Formatter) writeOverallSummary(b *strings.Builder, s *analytics.Summary) {
	b.WriteString("OVERALL SUMMARY\n")
	b.WriteString(rule("-") + "\n")
	fmt.Fprintf(b, "Total Revenue:        %s\n", f.money(s.TotalRevenue))
	fmt.Fprintf(b, "Total Transactions:   %d\n", s.TransactionCount)
	fmt.Fprintf(b, "Average Order Value:  %s\n", f.money(s.AverageOrderValue))

	dateRange := "N/A"
	if !s.FirstDate.IsZero() {
		dateRange = fmt.Sprintf("%s to %s",
			s.FirstDate.Format("2006-01-02"),
			s.LastDate.Format("2006-01-02"))
	}
	fmt.Fprintf(b, "Date Range:           %s\n\n", dateRange)
}

func (f *Formatter) writeRegionPerformance(b *strings.Builder, s *analytics.Summary) {
	b.WriteString("REGION-WISE PERFORMANCE\n")
	b.WriteString(rule("-") + "\n")
	fmt.Fprintf(b, "%-15s %-20s %-12s %s\n", "Region", "Sales", "% of Total", "Transactions")
	b.WriteString(rule("-") + "\n")
	for _, r := range s.RegionsBySales() {
		fmt.Fprintf(b, "%-15s %-20s %6.2f%%      %5d\n",
			r.Region, f.money(r.TotalSales), r.Percentage, r.TransactionCount)
	}
	b.WriteString("\n")
}

func (f *Formatter) writeTopProducts(b *strings.Builder, s *analytics.Summary) {
	fmt.Fprintf(b, "TOP %d PRODUCTS\n", f.topN)
	b.WriteString(rule("-") + "\n")
	fmt.Fprintf(b, "%-6s %-25s %-12s %s\n", "Rank", "Product Name", "Quantity", "Revenue")
	b.WriteString(rule("-") + "\n")
	for i, p := range s.TopProducts(f.topN) {
		fmt.Fprintf(b, "%-6d %-25s %-12d %s\n", i+1, p.ProductName, p.UnitsSold, f.money(p.Revenue))
	}
	b.WriteString("\n")
}

func (f *Formatter) writeTopCustomers(b *strings.Builder, s *analytics.Summary) {
	fmt.Fprintf(b, "TOP %d CUSTOMERS\n", f.topN)
	b.WriteString(rule("-") + "\n")
	fmt.Fprintf(b, "%-6s %-15s %-20s %s\n", "Rank", "Customer ID", "Total Spent", "Order Count")
	b.WriteString(rule("-") + "\n")
	for i, c := range s.TopCustomers(f.topN) {
		fmt.Fprintf(b, "%-6d %-15s %-20s %5d\n", i+1, c.CustomerID, f.money(c.TotalSpent), c.OrderCount)
	}
	b.WriteString("\n")
}

func (f *Formatter) writeDailyTrend(b *strings.Builder, s *analytics.Summary) {
	b.WriteString("DAILY SALES TREND\n")
	b.WriteString(rule("-") + "\n")
	fmt.Fprintf(b, "%-15s %-20s %-15s %s\n", "Date", "Revenue", "Transactions", "Unique Customers")
	b.WriteString(rule("-") + "\n")
	for _, d := range s.Trend() {
		fmt.Fprintf(b, "%-15s %-20s %8d      %8d\n",
			d.Date.Format("2006-01-02"), f.money(d.Revenue), d.TransactionCount, d.UniqueCustomers)
	}
	b.WriteString("\n")
}

func (f *Formatter) writePerformanceAnalysis(b *strings.Builder, s *analytics.Summary) {
	b.WriteString("PRODUCT PERFORMANCE ANALYSIS\n")
	b.WriteString(rule("-") + "\n")

	if s.BestDay != nil {
		fmt.Fprintf(b, "Best Selling Day: %s (Revenue: %s, Transactions: %d)\n\n",
			s.BestDay.Date.Format("2006-01-02"), f.money(s.BestDay.Revenue), s.BestDay.TransactionCount)
	} else {
		b.WriteString("Best Selling Day: N/A\n\n")
	}

	if len(s.Underperforming) > 0 {
		b.WriteString("Underperforming Products (below revenue threshold):\n")
		for _, id := range s.Underperforming {
			p := s.Products[id]
			fmt.Fprintf(b, "  - %s (%s): %s\n", p.ProductName, p.ProductID, f.money(p.Revenue))
		}
	} else {
		b.WriteString("No underperforming products found.\n")
	}
	b.WriteString("\n")

	low := s.LowQuantityProducts(f.lowQtyCutoff)
	if len(low) > 0 {
		fmt.Fprintf(b, "Low Performing Products (Quantity < %d):\n", f.lowQtyCutoff)
		for _, p := range low {
			fmt.Fprintf(b, "  - %s: %d units, %s\n", p.ProductName, p.UnitsSold, f.money(p.Revenue))
		}
	} else {
		b.WriteString("No low performing products found.\n")
	}
	b.WriteString("\n")

	b.WriteString("Average Transaction Value per Region:\n")
	for _, r := range s.RegionsBySales() {
		fmt.Fprintf(b, "  %s: %s\n", r.Region, f.money(r.Average))
	}
	b.WriteString("\n")
}

func (f *Formatter) writeDataQuality(b *strings.Builder, in Input) {
	b.WriteString("DATA QUALITY\n")
	b.WriteString(rule("-") + "\n")
	fmt.Fprintf(b, "Valid Transactions:    %d\n", in.Summary.TransactionCount)
	fmt.Fprintf(b, "Rejected Transactions: %d\n", len(in.Rejected))

	if len(in.Rejected) > 0 {
		b.WriteString("Rejections by reason:\n")
		counts := validation.CountByReason(in.Rejected)
		for _, reason := range []model.RejectionReason{
			model.ReasonMalformedRow,
			model.ReasonMissingField,
			model.ReasonInvalidIDFormat,
			model.ReasonNonNumericField,
			model.ReasonNonPositiveValue,
			model.ReasonInvalidDate,
		} {
			if n := counts[reason]; n > 0 {
				fmt.Fprintf(b, "  - %s: %d\n", reason.Description(), n)
			}
		}
	}
	b.WriteString("\n")
}

func (f *Formatter) writeEnrichmentSummary(b *strings.Builder, in Input) {
	b.WriteString("API ENRICHMENT SUMMARY\n")
	b.WriteString(rule("-") + "\n")

	if !in.CatalogAvailable {
		b.WriteString("Warning: product catalog was unavailable; no metadata attached.\n\n")
	}

	fmt.Fprintf(b, "Total Transactions Enriched:  %d\n", in.Enrichment.Total)
	fmt.Fprintf(b, "Successful Matches:           %d\n", in.Enrichment.Matched)
	fmt.Fprintf(b, "Success Rate:                 %.2f%%\n\n", in.Enrichment.SuccessRate())

	if len(in.Enrichment.Unmatched) > 0 {
		b.WriteString("Products that couldn't be enriched:\n")
		for _, p := range in.Enrichment.Unmatched {
			fmt.Fprintf(b, "  - %s - %s\n", p.ProductID, p.ProductName)
		}
	} else if in.Enrichment.Total > 0 {
		b.WriteString("All products were successfully enriched!\n")
	}
	b.WriteString("\n")
}
