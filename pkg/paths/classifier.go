// Package paths implements trail's path classification and
// normalization rules: ignore filtering, remote path detection,
// canonical ("formalized") path strings, and version-control project
// root discovery.
package paths

import (
	"fmt"
	"regexp"

	"github.com/gobwas/glob"

	"github.com/entrhq/trail/pkg/config"
)

// Classifier holds the compiled ignore, remote, and VC-marker rule sets
// from a Config. It is immutable after construction and safe for
// concurrent use.
type Classifier struct {
	ignore  []glob.Glob
	remote  []*regexp.Regexp
	markers []string
}

// NewClassifier compiles the pattern sets from cfg. Ignore patterns are
// globs matched against the whole path (no separator handling, so `*~`
// matches any path ending in `~`); remote patterns are regular
// expressions. A pattern that fails to compile is an error.
func NewClassifier(cfg *config.Config) (*Classifier, error) {
	c := &Classifier{
		markers: append([]string(nil), cfg.VCMarkers...),
	}

	for _, p := range cfg.IgnorePatterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		c.ignore = append(c.ignore, g)
	}

	for _, p := range cfg.RemotePatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid remote pattern %q: %w", p, err)
		}
		c.remote = append(c.remote, re)
	}

	return c, nil
}

// ShouldIgnore reports whether path matches any ignore pattern.
// The first match short-circuits.
func (c *Classifier) ShouldIgnore(path string) bool {
	for _, g := range c.ignore {
		if g.Match(path) {
			return true
		}
	}
	return false
}

// IsRemote reports whether path matches any remote pattern. Remote
// paths are never probed on the local filesystem: existence checks
// could hang on a dead network mount, so they are assumed to exist.
func (c *Classifier) IsRemote(path string) bool {
	for _, re := range c.remote {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}
