// Package config defines the explicit configuration value threaded into
// every trail component. There is no ambient global configuration: each
// constructor receives a Config so behavior is fully deterministic under
// test.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/entrhq/trail/pkg/types"
)

// Default per-category capacity limits.
const (
	DefaultMaxFiles             = 150
	DefaultMaxDirectories       = 50
	DefaultMaxProjects          = 50
	DefaultMaxRemoteFiles       = 200
	DefaultMaxRemoteDirectories = 50
	DefaultMaxRemoteProjects    = 50
)

// DefaultStoreMode is world read/write so the store can live on a shared
// or networked home directory. It is applied best-effort after each write.
const DefaultStoreMode = os.FileMode(0666)

// Config carries every tunable the core consumes: store location and
// permission mode, per-category capacity limits, the ignore and remote
// pattern sets, and the version-control marker names used for project
// root detection.
type Config struct {
	// StorePath is the location of the plaintext store file.
	StorePath string `yaml:"store_path"`

	// StoreMode is applied to the store file after each write.
	// Failures to apply it are swallowed; it is advisory only.
	StoreMode os.FileMode `yaml:"store_mode"`

	// MaxEntries caps each category's sequence length.
	MaxEntries map[types.Category]int `yaml:"max_entries"`

	// IgnorePatterns are glob patterns matched against the full
	// normalized path; a match excludes the path from all lists.
	IgnorePatterns []string `yaml:"ignore_patterns"`

	// RemotePatterns are anchored regular expressions identifying
	// remote/virtual path syntaxes.
	RemotePatterns []string `yaml:"remote_patterns"`

	// VCMarkers are directory or file names whose presence marks a
	// version-control project root.
	VCMarkers []string `yaml:"vc_markers"`
}

// Default returns the stock configuration. The store lives at
// ~/.trail/recent.yaml; if the home directory cannot be resolved the
// store path falls back to a relative .trail/recent.yaml.
func Default() *Config {
	storePath := filepath.Join(".trail", "recent.yaml")
	if home, err := os.UserHomeDir(); err == nil {
		storePath = filepath.Join(home, ".trail", "recent.yaml")
	}

	return &Config{
		StorePath: storePath,
		StoreMode: DefaultStoreMode,
		MaxEntries: map[types.Category]int{
			types.CategoryFiles:             DefaultMaxFiles,
			types.CategoryDirectories:       DefaultMaxDirectories,
			types.CategoryProjects:          DefaultMaxProjects,
			types.CategoryRemoteFiles:       DefaultMaxRemoteFiles,
			types.CategoryRemoteDirectories: DefaultMaxRemoteDirectories,
			types.CategoryRemoteProjects:    DefaultMaxRemoteProjects,
		},
		IgnorePatterns: []string{
			"*~",
			"*/#*#",
			"*/COMMIT_EDITMSG",
		},
		RemotePatterns: []string{
			`^/[a-zA-Z0-9-]+:`,
			`^[a-zA-Z][a-zA-Z0-9+.-]*://`,
		},
		VCMarkers: []string{".git", ".hg", ".svn", ".bzr"},
	}
}

// MaxFor returns the capacity limit for a category, falling back to the
// stock defaults when the map has no entry for it.
func (c *Config) MaxFor(cat types.Category) int {
	if n, ok := c.MaxEntries[cat]; ok {
		return n
	}
	switch cat {
	case types.CategoryFiles:
		return DefaultMaxFiles
	case types.CategoryRemoteFiles:
		return DefaultMaxRemoteFiles
	default:
		return DefaultMaxDirectories
	}
}

// Validate checks the configuration for values the core cannot operate
// with.
func (c *Config) Validate() error {
	if c.StorePath == "" {
		return fmt.Errorf("store path cannot be empty")
	}
	for cat, n := range c.MaxEntries {
		if !cat.Valid() {
			return fmt.Errorf("unknown category %q in max_entries", cat)
		}
		if n < 0 {
			return fmt.Errorf("max_entries[%s] cannot be negative", cat)
		}
	}
	return nil
}
