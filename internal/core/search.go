package core

import (
	"time"

	"github.com/fluxany/bolt/internal/config"
	"github.com/fluxany/bolt/internal/filesystem"
	"github.com/fluxany/bolt/internal/match"
	"github.com/fluxany/bolt/internal/sevenzip"
	"github.com/fluxany/bolt/pkg/models"
	"go.uber.org/zap"
)

// ProgressCallback is called to report search progress. Phases: "archive"
// when an archive starts processing (detail is its path), "match" for each
// selected entry, "tool-output" with raw extraction output.
type ProgressCallback func(phase string, archive, detail string)

// Searcher drives the locate, list, match, extract, invert pipeline.
// Archives are processed one at a time, entries within an archive one at a
// time; every external invocation blocks until completion.
type Searcher struct {
	config           *config.Config
	logger           *zap.Logger
	archiver         sevenzip.Archiver
	locator          *filesystem.Locator
	filter           *match.Filter
	progressCallback ProgressCallback
}

// NewSearcher creates a searcher. The selection criterion and entry rules are
// compiled here, so an invalid pattern fails before any archive is touched.
func NewSearcher(cfg *config.Config, logger *zap.Logger) (*Searcher, error) {
	filter, err := match.NewFilter(cfg.Term, cfg.Regex, cfg.Include, cfg.Exclude)
	if err != nil {
		return nil, err
	}

	return &Searcher{
		config:   cfg,
		logger:   logger,
		archiver: sevenzip.NewExecTool(cfg.Tool, logger),
		locator:  filesystem.NewLocator(cfg.Suffix, cfg.ExcludeDirs, logger),
		filter:   filter,
	}, nil
}

// SetProgressCallback sets the progress callback function
func (s *Searcher) SetProgressCallback(cb ProgressCallback) {
	s.progressCallback = cb
}

// reportProgress calls the progress callback if set
func (s *Searcher) reportProgress(phase, archive, detail string) {
	if s.progressCallback != nil {
		s.progressCallback(phase, archive, detail)
	}
}

// Run processes every archive under root. Per-archive and per-entry failures
// are logged and counted but never abort the run.
func (s *Searcher) Run(root string) (*models.RunResults, error) {
	s.logger.Info("Starting search",
		zap.String("root", root),
		zap.Bool("extract", s.config.Extract),
		zap.Bool("all", s.config.All))

	results := &models.RunResults{
		StartTime: time.Now(),
		Root:      root,
		Stats:     &models.RunStatistics{},
	}

	archives, err := s.locator.Locate(root)
	if err != nil {
		return nil, err
	}

	wholeArchives := 0
	for _, archive := range archives {
		s.reportProgress("archive", archive, "")
		results.Stats.Archives++

		if s.processArchive(archive, results) {
			wholeArchives++
		}
	}

	// In whole-archive mode the inversion runs once over the output tree,
	// after all extractions: re-running it per archive would flip earlier
	// output back to its original content.
	if s.config.Invert && s.config.ExtractAll() && wholeArchives > 0 {
		inverted, failed := filesystem.InvertTree(s.config.OutputDir, s.logger)
		results.Stats.InvertedFiles += inverted
		results.Stats.FailedInversions += failed
	}

	results.EndTime = time.Now()
	results.Duration = results.EndTime.Sub(results.StartTime)

	s.logger.Info("Search complete",
		zap.Int("archives", results.Stats.Archives),
		zap.Int("matches", results.Stats.MatchCount),
		zap.Duration("duration", results.Duration))

	return results, nil
}

// processArchive lists one archive and handles its matching entries. Returns
// whether a whole-archive extraction succeeded for it.
func (s *Searcher) processArchive(archive string, results *models.RunResults) bool {
	names, err := s.archiver.List(archive, s.config.Password)
	if err != nil {
		// Already logged by the archiver with the tool's diagnostics
		results.Stats.FailedListings++
		return false
	}

	results.Stats.EntriesListed += len(names)

	wholeDone := false
	wholeOK := false
	for _, name := range names {
		if !s.filter.Match(name) {
			continue
		}

		results.AddMatch(&models.Entry{Archive: archive, Name: name})
		s.reportProgress("match", archive, name)

		if !s.config.Extract {
			continue
		}

		if s.config.All {
			// At most one extract-all per archive, no matter how many
			// entries matched
			if wholeDone {
				continue
			}
			wholeDone = true
			wholeOK = s.extractWhole(archive, results)
			continue
		}

		s.extractEntry(archive, name, results)
	}

	return wholeOK
}

// extractWhole runs one whole-archive extraction, reporting success
func (s *Searcher) extractWhole(archive string, results *models.RunResults) bool {
	outcome, err := s.archiver.ExtractAll(archive, s.config.OutputDir, s.config.Password)
	if outcome != nil && outcome.Output != "" {
		s.reportProgress("tool-output", archive, outcome.Output)
	}
	if err != nil {
		results.Stats.FailedExtractions++
		return false
	}

	results.Stats.Extractions++
	return true
}

// extractEntry runs one single-entry extraction and, if configured, inverts
// the extracted file in place
func (s *Searcher) extractEntry(archive, name string, results *models.RunResults) {
	outcome, err := s.archiver.ExtractEntry(archive, name, s.config.OutputDir, s.config.Password)
	if outcome != nil && outcome.Output != "" {
		s.reportProgress("tool-output", archive, outcome.Output)
	}
	if err != nil {
		results.Stats.FailedExtractions++
		return
	}

	results.Stats.Extractions++

	if !s.config.Invert {
		return
	}

	// Single-entry extraction flattens, so the output is the entry's base name
	extracted := filesystem.ExtractedPath(s.config.OutputDir, name)
	if err := filesystem.InvertFile(extracted); err != nil {
		s.logger.Error("Inversion failed",
			zap.String("archive", archive),
			zap.String("path", extracted),
			zap.Error(err))
		results.Stats.FailedInversions++
		return
	}

	results.Stats.InvertedFiles++
}
