// Package config provides typed access to the application configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/salescope/salescope/internal/analytics"
	"github.com/salescope/salescope/internal/catalog"
	"github.com/salescope/salescope/internal/salesfile"
	"github.com/salescope/salescope/internal/service"
)

// Settings is the resolved pipeline configuration.
type Settings struct {
	InputPath          string
	InputEncodings     []string
	ReportPath         string
	EnrichedPath       string
	CatalogURL         string
	CatalogTimeout     time.Duration
	CatalogRetry       service.RetryOptions
	TopN               int
	UnderperformFactor float64
	LowQtyCutoff       int
}

// SetDefaults registers configuration defaults with viper.
func SetDefaults() {
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
	viper.SetDefault("input.path", "data/sales_data.txt")
	viper.SetDefault("input.encodings", salesfile.DefaultEncodings)
	viper.SetDefault("output.report", "output/sales_report.txt")
	viper.SetDefault("output.enriched", "data/enriched_sales_data.txt")
	viper.SetDefault("catalog.url", catalog.DefaultURL)
	viper.SetDefault("catalog.timeout", catalog.DefaultTimeout)
	viper.SetDefault("catalog.max_attempts", 3)
	viper.SetDefault("analytics.top_n", 5)
	viper.SetDefault("analytics.underperform_factor", analytics.DefaultUnderperformFactor)
	viper.SetDefault("analytics.low_quantity_threshold", 10)
}

// Load resolves the settings from viper, expanding paths.
func Load() Settings {
	return Settings{
		InputPath:      ExpandPath(viper.GetString("input.path")),
		InputEncodings: viper.GetStringSlice("input.encodings"),
		ReportPath:     ExpandPath(viper.GetString("output.report")),
		EnrichedPath:   ExpandPath(viper.GetString("output.enriched")),
		CatalogURL:     viper.GetString("catalog.url"),
		CatalogTimeout: viper.GetDuration("catalog.timeout"),
		CatalogRetry: service.RetryOptions{
			MaxAttempts: viper.GetInt("catalog.max_attempts"),
		},
		TopN:               viper.GetInt("analytics.top_n"),
		UnderperformFactor: viper.GetFloat64("analytics.underperform_factor"),
		LowQtyCutoff:       viper.GetInt("analytics.low_quantity_threshold"),
	}
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
