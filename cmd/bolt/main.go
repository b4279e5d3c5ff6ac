package main

import (
	"fmt"
	"os"

	"github.com/fluxany/bolt/internal/config"
	"github.com/fluxany/bolt/internal/core"
	"github.com/fluxany/bolt/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version = "0.1.0"
	logger  *zap.Logger
	verbose bool
)

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the bolt command
func newRootCmd() *cobra.Command {
	var (
		extract    bool
		all        bool
		invert     bool
		outputDir  string
		regex      string
		term       string
		password   string
		include    []string
		exclude    []string
		reportFile string
		suffix     string
		tool       string
	)

	cmd := &cobra.Command{
		Use:   "bolt [flags] <directory|archive>",
		Short: "Bolt - Archive File Search",
		Long: `Recursively discover archives under a directory, list their entries through
the external archive tool, match entry names against a term or regular
expression, and optionally extract the matches.`,
		Version: version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]

			// Initialize logger based on verbose flag
			var err error
			if verbose {
				logger, err = zap.NewDevelopment()
			} else {
				// Silent logger - only errors
				cfg := zap.Config{
					Level:            zap.NewAtomicLevelAt(zapcore.ErrorLevel),
					Encoding:         "json",
					OutputPaths:      []string{"stderr"},
					ErrorOutputPaths: []string{"stderr"},
					EncoderConfig:    zap.NewProductionEncoderConfig(),
				}
				logger, err = cfg.Build()
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
				return err
			}
			defer logger.Sync()

			// Load configuration
			cfg, err := config.LoadConfig()
			if err != nil {
				logger.Error("Failed to load config", zap.Error(err))
				return err
			}

			// Override config with CLI flags
			if cmd.Flags().Changed("extract") {
				cfg.Extract = extract
			}
			if cmd.Flags().Changed("all") {
				cfg.All = all
			}
			if cmd.Flags().Changed("invert") {
				cfg.Invert = invert
			}
			if cmd.Flags().Changed("output") {
				cfg.OutputDir = outputDir
			}
			if cmd.Flags().Changed("regex") {
				cfg.Regex = regex
			}
			if cmd.Flags().Changed("term") {
				cfg.Term = term
			}
			if cmd.Flags().Changed("password") {
				cfg.Password = password
			}
			if cmd.Flags().Changed("include") {
				cfg.Include = include
			}
			if cmd.Flags().Changed("exclude") {
				cfg.Exclude = exclude
			}
			if reportFile != "" {
				cfg.ReportFile = reportFile
			}
			if cmd.Flags().Changed("suffix") {
				cfg.Suffix = suffix
			}
			if cmd.Flags().Changed("tool") {
				cfg.Tool = tool
			}
			cfg.Verbose = verbose

			if err := cfg.Validate(); err != nil {
				return err
			}

			// Create searcher; an invalid pattern aborts here, before any
			// archive is touched
			searcher, err := core.NewSearcher(cfg, logger)
			if err != nil {
				return err
			}

			searcher.SetProgressCallback(func(phase, archive, detail string) {
				switch phase {
				case "archive":
					fmt.Printf("Processing archive: %s\n", archive)
				case "match":
					fmt.Printf("Archive: %q, File: %s\n", archive, detail)
				case "tool-output":
					if verbose {
						fmt.Printf("Output: %s\n", detail)
					}
				}
			})

			results, err := searcher.Run(root)
			if err != nil {
				logger.Error("Search failed", zap.Error(err))
				return err
			}

			// Render summary and optional JSON run report
			reportPath, err := report.NewGenerator(cfg, logger).Generate(results)
			if err != nil {
				return err
			}
			if reportPath != "" {
				results.ReportPath = reportPath
				fmt.Printf("Report: %s\n", reportPath)
			}

			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Echo per-archive progress and raw tool output")

	cmd.Flags().BoolVarP(&extract, "extract", "e", false, "Extract matching entries (default: list only)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Extract whole archives instead of single entries")
	cmd.Flags().BoolVarP(&invert, "invert", "i", false, "Apply bit inversion to extracted output")
	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Extraction destination directory")
	cmd.Flags().StringVarP(&regex, "regex", "r", ".*", "Regular expression to match entry names")
	cmd.Flags().StringVarP(&term, "term", "t", "", "Substring term, takes priority over --regex")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Archive password (or BOLT_PASSWORD)")
	cmd.Flags().StringArrayVar(&include, "include", nil, "Gitignore-style include rule for entry names (repeatable)")
	cmd.Flags().StringArrayVar(&exclude, "exclude", nil, "Gitignore-style exclude rule for entry names (repeatable)")
	cmd.Flags().StringVar(&reportFile, "report", "", "Write a JSON run summary to this file")
	cmd.Flags().StringVar(&suffix, "suffix", ".7z", "Archive file suffix to discover")
	cmd.Flags().StringVar(&tool, "tool", "7z", "External archive program")

	return cmd
}
