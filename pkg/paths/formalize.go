package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// Formalize canonicalizes a path before it is stored or compared:
// tilde notation is expanded, the path is made absolute and cleaned,
// and a single trailing separator is appended iff the path is an
// existing directory. Formalize is idempotent.
//
// Remote paths are returned verbatim when skipRemote is set; local
// absolutization would mangle their access-scheme syntax.
func (c *Classifier) Formalize(path string, skipRemote bool) string {
	if path == "" {
		return path
	}
	if skipRemote && c.IsRemote(path) {
		return path
	}

	expanded := expandTilde(path)

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return expanded
	}

	// Abs strips trailing separators everywhere except the root.
	if strings.HasSuffix(abs, string(filepath.Separator)) {
		return abs
	}

	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		return abs + string(filepath.Separator)
	}
	return abs
}

// expandTilde rewrites ~ and ~/ prefixes to the current home directory.
// Paths are returned unchanged when the home directory is unknown.
func expandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
