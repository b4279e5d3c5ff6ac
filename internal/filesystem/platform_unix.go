//go:build !windows
// +build !windows

package filesystem

import "os"

// ensureWritable broadens permissions so the file can be rewritten in place
// (Unix). Adds the owner write bit, never removes anything.
func ensureWritable(path string, mode os.FileMode) error {
	if mode&0200 != 0 {
		return nil
	}
	return os.Chmod(path, mode.Perm()|0200)
}
