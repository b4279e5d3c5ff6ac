//go:build windows
// +build windows

package filesystem

import "os"

// ensureWritable broadens permissions so the file can be rewritten in place
// (Windows). Chmod only toggles the read-only attribute here, so 0666 clears it.
func ensureWritable(path string, mode os.FileMode) error {
	if mode&0200 != 0 {
		return nil
	}
	return os.Chmod(path, 0666)
}
