package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/salescope/salescope/internal/analytics"
	"github.com/salescope/salescope/internal/catalog"
	"github.com/salescope/salescope/internal/cli"
	"github.com/salescope/salescope/internal/common"
	"github.com/salescope/salescope/internal/config"
	"github.com/salescope/salescope/internal/enrich"
	"github.com/salescope/salescope/internal/report"
	"github.com/salescope/salescope/internal/salesfile"
	"github.com/salescope/salescope/internal/validation"
)

const pipelineStages = 8

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full sales analytics pipeline",
		Long: `Run the full pipeline: read the sales data file, validate and classify
records, compute analytics, fetch product catalog metadata, enrich the
valid transactions, and write the enriched data file plus the report.

Examples:
  # Run with configured paths
  salescope run

  # Run against a specific file
  salescope run --input ~/Downloads/sales_data.txt

  # Analyze only the North region, skipping the catalog fetch
  salescope run --region North --no-fetch`,
		RunE: runPipeline,
	}

	cmd.Flags().StringP("input", "i", "", "input sales data file (overrides config)")
	cmd.Flags().String("report", "", "report output path (overrides config)")
	cmd.Flags().String("enriched", "", "enriched data output path (overrides config)")
	cmd.Flags().Bool("no-fetch", false, "skip the product catalog fetch")
	cmd.Flags().BoolP("dry-run", "d", false, "run the pipeline without writing output files")
	cmd.Flags().String("region", "", "only analyze transactions from this region")
	cmd.Flags().Float64("min-amount", 0, "only analyze transactions with line total at or above this amount")
	cmd.Flags().Float64("max-amount", 0, "only analyze transactions with line total at or below this amount")

	return cmd
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	settings := config.Load()

	if path, _ := cmd.Flags().GetString("input"); path != "" {
		settings.InputPath = config.ExpandPath(path)
	}
	if path, _ := cmd.Flags().GetString("report"); path != "" {
		settings.ReportPath = config.ExpandPath(path)
	}
	if path, _ := cmd.Flags().GetString("enriched"); path != "" {
		settings.EnrichedPath = config.ExpandPath(path)
	}
	noFetch, _ := cmd.Flags().GetBool("no-fetch")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	var filter analytics.Filter
	filter.Region, _ = cmd.Flags().GetString("region")
	if cmd.Flags().Changed("min-amount") {
		v, _ := cmd.Flags().GetFloat64("min-amount")
		filter.MinAmount = &v
	}
	if cmd.Flags().Changed("max-amount") {
		v, _ := cmd.Flags().GetFloat64("max-amount")
		filter.MaxAmount = &v
	}

	fmt.Println(cli.FormatTitle("SALES ANALYTICS SYSTEM"))
	progress := cli.NewStageProgress(os.Stderr, pipelineStages)

	// Read
	reader := salesfile.NewReader(settings.InputEncodings...)
	lines, skipped, err := reader.ReadFile(settings.InputPath)
	if err != nil {
		return common.NewUserError("failed to read sales data", err)
	}
	slog.Info("Read sales data",
		"file", settings.InputPath,
		"lines", len(lines),
		"skipped", skipped)
	progress.Step("Parsing records...")

	// Parse
	candidates := salesfile.NewParser().Parse(lines)
	progress.Step("Validating transactions...")

	// Validate
	valids, rejects := validation.NewValidator().Classify(candidates)
	slog.Info("Validation complete",
		"valid", len(valids),
		"rejected", len(rejects))
	if len(valids) == 0 {
		slog.Warn("Input produced no valid transactions", "error", common.ErrNoTransactions)
	}

	if !filter.IsZero() {
		var filterSummary analytics.FilterSummary
		valids, filterSummary = filter.Apply(valids)
		slog.Info("Applied filters",
			"removed_by_region", filterSummary.RemovedByRegion,
			"removed_by_amount", filterSummary.RemovedByAmount,
			"remaining", filterSummary.FinalCount)
	}
	progress.Step("Analyzing sales data...")

	// Analyze
	summary := analytics.NewEngine(settings.UnderperformFactor).Analyze(valids)
	progress.Step("Fetching product catalog...")

	// Fetch catalog; any failure degrades to an empty mapping.
	mapping := catalog.Mapping{}
	catalogAvailable := false
	switch {
	case noFetch:
		slog.Info("Catalog fetch disabled, proceeding unenriched")
	default:
		client := catalog.NewClient(settings.CatalogURL, settings.CatalogTimeout, settings.CatalogRetry)
		products, fetchErr := client.FetchAll(ctx)
		if fetchErr != nil {
			slog.Warn("Product catalog unavailable, continuing without enrichment",
				"error", fetchErr)
		} else {
			mapping = catalog.BuildMapping(products)
			catalogAvailable = true
		}
	}
	progress.Step("Enriching transactions...")

	// Enrich
	enriched, enrichStats := enrich.Merge(valids, mapping)
	progress.Step("Writing enriched data...")

	// Write enriched file
	if !dryRun {
		if err := enrich.WriteFile(settings.EnrichedPath, enriched); err != nil {
			return common.NewUserError("failed to save enriched data", err)
		}
	}
	progress.Step("Writing report...")

	// Report
	formatter := report.NewFormatter(settings.TopN, settings.LowQtyCutoff)
	content := formatter.Format(report.Input{
		GeneratedAt:      time.Now(),
		Summary:          summary,
		Enrichment:       enrichStats,
		Rejected:         rejects,
		ParsedCount:      len(candidates),
		CatalogAvailable: catalogAvailable,
	})
	if !dryRun {
		if err := report.WriteFile(settings.ReportPath, content); err != nil {
			return common.NewUserError("failed to save report", err)
		}
	}
	progress.Step("Done")

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Valid: %d | Rejected: %d", summary.TransactionCount, len(rejects))))
	if !catalogAvailable && !noFetch {
		fmt.Println(cli.FormatWarning("product catalog unavailable; output is unenriched"))
	}
	if dryRun {
		fmt.Println(cli.SubtleStyle.Render("dry run: no output files written"))
	} else {
		fmt.Println(cli.FormatSuccess("Enriched data: " + settings.EnrichedPath))
		fmt.Println(cli.FormatSuccess("Report: " + settings.ReportPath))
	}

	return nil
}
