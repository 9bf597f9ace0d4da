package paths

import (
	"os"
	"path/filepath"
)

// IsVCRoot reports whether any configured VC marker exists directly
// under dir.
func (c *Classifier) IsVCRoot(dir string) bool {
	for _, marker := range c.markers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

// FindVCRoot walks upward from start through its ancestor directories
// and returns the first one containing a VC marker, formalized with a
// trailing separator. The walk short-circuits on the first hit and
// stops at the filesystem root. When start is not a directory the walk
// begins at its parent.
//
// Remote paths always return not-found: probing markers over a remote
// mount is exactly the kind of expensive filesystem access trail
// avoids.
func (c *Classifier) FindVCRoot(start string) (string, bool) {
	if start == "" || c.IsRemote(start) {
		return "", false
	}

	dir := c.Formalize(start, true)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = filepath.Dir(filepath.Clean(dir))
	}
	dir = filepath.Clean(dir)

	for {
		if c.IsVCRoot(dir) {
			return c.Formalize(dir, false), true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
