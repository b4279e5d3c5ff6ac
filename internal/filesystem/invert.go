package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// InvertFile complements every bit of the file's content in place, keeping
// the original length. Applying it twice restores the original content. The
// file's permissions are broadened first if it is not writable.
func InvertFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if err := ensureWritable(path, info.Mode()); err != nil {
		return fmt.Errorf("make %s writable: %w", path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	invertBytes(content)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return fmt.Errorf("open %s for rewrite: %w", path, err)
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}

	return f.Close()
}

// InvertTree applies InvertFile to every regular file under root. Failures
// are logged and counted; later files are still processed.
func InvertTree(root string, logger *zap.Logger) (inverted, failed int) {
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			logger.Warn("Error accessing path", zap.String("path", path), zap.Error(err))
			failed++
			return nil
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		if err := InvertFile(path); err != nil {
			logger.Error("Inversion failed", zap.String("path", path), zap.Error(err))
			failed++
			return nil
		}

		inverted++
		return nil
	})
	if err != nil {
		logger.Error("Inversion walk failed", zap.String("root", root), zap.Error(err))
		failed++
	}

	return inverted, failed
}

// invertBytes flips every bit of every byte in place
func invertBytes(b []byte) {
	for i := range b {
		b[i] = ^b[i]
	}
}
