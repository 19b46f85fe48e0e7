package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"
)

// StageProgress tracks progress through the fixed pipeline stages.
type StageProgress struct {
	bar    *progressbar.ProgressBar
	writer io.Writer
}

// NewStageProgress creates a progress bar over the given number of stages.
func NewStageProgress(writer io.Writer, stages int) *StageProgress {
	bar := progressbar.NewOptions(stages,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Starting...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(writer); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)

	return &StageProgress{bar: bar, writer: writer}
}

// Step marks one stage complete and sets the description for the next.
func (p *StageProgress) Step(description string) {
	p.bar.Describe("[cyan][bold]" + description + "[reset]")
	if err := p.bar.Add(1); err != nil {
		slog.Warn("Failed to advance progress bar", "error", err)
	}
}
