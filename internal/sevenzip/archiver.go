package sevenzip

import (
	"github.com/fluxany/bolt/pkg/models"
)

// Archiver is the interface to the external archive program. Implementations
// shell out to the real tool; tests substitute a fake to avoid spawning
// subprocesses.
type Archiver interface {
	// List returns the entry names recorded in the archive, in listing order.
	// A failed invocation returns an error and no entries.
	List(archive, password string) ([]string, error)

	// ExtractEntry extracts one named entry into outDir, overwriting without
	// prompting. The entry is written flat, named after its base name.
	ExtractEntry(archive, entry, outDir, password string) (*models.Outcome, error)

	// ExtractAll extracts every entry of the archive into outDir, preserving
	// the archive's internal directory structure.
	ExtractAll(archive, outDir, password string) (*models.Outcome, error)
}
