package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/salescope/salescope/internal/analytics"
	"github.com/salescope/salescope/internal/catalog"
	"github.com/salescope/salescope/internal/common"
	"github.com/salescope/salescope/internal/config"
	"github.com/salescope/salescope/internal/enrich"
	"github.com/salescope/salescope/internal/report"
	"github.com/salescope/salescope/internal/salesfile"
	"github.com/salescope/salescope/internal/validation"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute analytics and print the report without enrichment",
		Long: `Parse, validate, and analyze the sales data, printing the report to
stdout. The product catalog is not fetched and no files are written.

Examples:
  # Print the report for the configured input file
  salescope analyze

  # Analyze a specific file
  salescope analyze --input data/sales_data.txt`,
		RunE: runAnalyze,
	}

	cmd.Flags().StringP("input", "i", "", "input sales data file (overrides config)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	settings := config.Load()
	if path, _ := cmd.Flags().GetString("input"); path != "" {
		settings.InputPath = config.ExpandPath(path)
	}

	reader := salesfile.NewReader(settings.InputEncodings...)
	lines, _, err := reader.ReadFile(settings.InputPath)
	if err != nil {
		return common.NewUserError("failed to read sales data", err)
	}

	candidates := salesfile.NewParser().Parse(lines)
	valids, rejects := validation.NewValidator().Classify(candidates)
	summary := analytics.NewEngine(settings.UnderperformFactor).Analyze(valids)
	_, enrichStats := enrich.Merge(valids, catalog.Mapping{})

	formatter := report.NewFormatter(settings.TopN, settings.LowQtyCutoff)
	fmt.Print(formatter.Format(report.Input{
		GeneratedAt:      time.Now(),
		Summary:          summary,
		Enrichment:       enrichStats,
		Rejected:         rejects,
		ParsedCount:      len(candidates),
		CatalogAvailable: false,
	}))

	return nil
}
