package filesystem

import (
	"path"
	"path/filepath"
	"strings"
)

// ExtractedPath returns where a flat single-entry extraction lands: the
// entry's base name under outDir. Entry names may carry either separator
// depending on where the archive was produced.
func ExtractedPath(outDir, entry string) string {
	entry = strings.ReplaceAll(entry, "\\", "/")
	return filepath.Join(outDir, path.Base(entry))
}
