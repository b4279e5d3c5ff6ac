package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Locator finds candidate archives under a root directory
type Locator struct {
	suffix  string
	logger  *zap.Logger
	exclude map[string]bool
}

// NewLocator creates a new archive locator. excludeDirs are directory names
// skipped during the walk.
func NewLocator(suffix string, excludeDirs []string, logger *zap.Logger) *Locator {
	// Build exclude map for fast lookup
	exclude := make(map[string]bool)
	for _, dir := range excludeDirs {
		exclude[dir] = true
	}

	return &Locator{
		suffix:  suffix,
		logger:  logger,
		exclude: exclude,
	}
}

// Locate returns the ordered archive paths under root. When root is itself a
// file it is returned as the only candidate regardless of suffix. Unreadable
// paths inside the tree are logged and skipped; an unreadable root is an error.
func (l *Locator) Locate(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot access %s: %w", root, err)
	}

	if !info.IsDir() {
		return []string{root}, nil
	}

	var archives []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			l.logger.Warn("Error accessing path", zap.String("path", path), zap.Error(err))
			return nil // Continue walking
		}

		if info.IsDir() {
			if path != root && l.exclude[info.Name()] {
				l.logger.Debug("Skipping excluded directory", zap.String("path", path))
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasSuffix(info.Name(), l.suffix) {
			archives = append(archives, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return archives, nil
}
