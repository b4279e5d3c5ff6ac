package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fluxany/bolt/internal/config"
	"github.com/fluxany/bolt/pkg/models"
	"go.uber.org/zap"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorOrange = "\033[38;5;208m"
	colorGray   = "\033[38;5;245m"
)

// FormatDuration formats duration to a human-readable string with max 2 decimal places
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	} else if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.2fs", mins, secs)
}

// Generator renders run results to the console and, optionally, a JSON file
type Generator struct {
	config *config.Config
	logger *zap.Logger
}

// NewGenerator creates a new report generator
func NewGenerator(cfg *config.Config, logger *zap.Logger) *Generator {
	return &Generator{
		config: cfg,
		logger: logger,
	}
}

// Generate prints the console summary and writes the JSON run summary when
// configured. Returns the absolute path of the written report, if any.
func (g *Generator) Generate(results *models.RunResults) (string, error) {
	g.printConsole(results)

	if g.config.ReportFile == "" {
		return "", nil
	}

	g.logger.Info("Writing run summary",
		zap.String("output", g.config.ReportFile))

	if err := g.writeJSON(results, g.config.ReportFile); err != nil {
		return "", fmt.Errorf("failed to write run summary: %w", err)
	}

	absPath, _ := filepath.Abs(g.config.ReportFile)
	return absPath, nil
}

// printConsole prints the run summary to stdout with colors
func (g *Generator) printConsole(results *models.RunResults) {
	stats := results.Stats
	if stats == nil {
		stats = &models.RunStatistics{}
	}

	fmt.Println()
	fmt.Printf("%s%sSEARCH COMPLETE%s\n", colorBold, colorOrange, colorReset)
	fmt.Println()
	fmt.Printf("  %sRoot:%s       %s\n", colorGray, colorReset, results.Root)
	fmt.Printf("  %sArchives:%s   %d\n", colorGray, colorReset, stats.Archives)
	fmt.Printf("  %sEntries:%s    %d\n", colorGray, colorReset, stats.EntriesListed)
	fmt.Printf("  %sMatches:%s    %d\n", colorGray, colorReset, stats.MatchCount)
	if g.config.Extract {
		fmt.Printf("  %sExtracted:%s  %d\n", colorGray, colorReset, stats.Extractions)
	}
	if g.config.Invert {
		fmt.Printf("  %sInverted:%s   %d\n", colorGray, colorReset, stats.InvertedFiles)
	}
	fmt.Printf("  %sDuration:%s   %s\n", colorGray, colorReset, FormatDuration(results.Duration))
	fmt.Println()

	if results.Failed() {
		fmt.Printf("  %s%s⚠ FAILURES:%s listings %d, extractions %d, inversions %d\n",
			colorBold, colorRed, colorReset,
			stats.FailedListings, stats.FailedExtractions, stats.FailedInversions)
		fmt.Println()
		return
	}

	fmt.Printf("  %s%s✓ No failures%s\n", colorBold, colorGreen, colorReset)
	fmt.Println()
}
