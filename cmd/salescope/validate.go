package main

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"github.com/salescope/salescope/internal/cli"
	"github.com/salescope/salescope/internal/common"
	"github.com/salescope/salescope/internal/config"
	"github.com/salescope/salescope/internal/model"
	"github.com/salescope/salescope/internal/salesfile"
	"github.com/salescope/salescope/internal/validation"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Parse and validate the sales data without running analytics",
		Long: `Parse the sales data file and classify every record, printing a
summary of valid and rejected transactions with per-reason counts.

Examples:
  # Validate the configured input file
  salescope validate

  # Validate a specific file, listing each rejected row
  salescope validate --input data/sales_data.txt --verbose`,
		RunE: runValidate,
	}

	cmd.Flags().StringP("input", "i", "", "input sales data file (overrides config)")
	cmd.Flags().BoolP("verbose", "v", false, "list each rejected row with its reason")

	return cmd
}

func runValidate(cmd *cobra.Command, _ []string) error {
	settings := config.Load()
	if path, _ := cmd.Flags().GetString("input"); path != "" {
		settings.InputPath = config.ExpandPath(path)
	}
	verbose, _ := cmd.Flags().GetBool("verbose")

	reader := salesfile.NewReader(settings.InputEncodings...)
	lines, skipped, err := reader.ReadFile(settings.InputPath)
	if err != nil {
		return common.NewUserError("failed to read sales data", err)
	}

	candidates := salesfile.NewParser().Parse(lines)
	valids, rejects := validation.NewValidator().Classify(candidates)

	slog.Info("Validation complete",
		"file", settings.InputPath,
		"parsed", len(candidates),
		"skipped_lines", skipped)

	fmt.Println(cli.FormatTitle("Validation Summary"))
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Valid: %d", len(valids))))
	if len(rejects) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No rejected transactions."))
		return nil
	}

	fmt.Println(cli.FormatWarning(fmt.Sprintf("Rejected: %d", len(rejects))))

	counts := validation.CountByReason(rejects)
	reasons := make([]string, 0, len(counts))
	for reason := range counts {
		reasons = append(reasons, string(reason))
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		r := model.RejectionReason(reason)
		fmt.Printf("  %s: %d\n", r.Description(), counts[r])
	}

	if verbose {
		fmt.Println()
		for _, r := range rejects {
			fmt.Printf("  line %d [%s]: %s\n",
				r.Transaction.Line, r.Reason.Description(), r.Transaction.RawLine)
		}
	}

	return nil
}
