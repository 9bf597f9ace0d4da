// Package recency implements trail's list maintenance: bounded,
// deduplicated, most-recent-first path sequences per category, kept
// consistent across processes by running every operation as a full
// read-modify-write cycle against the shared store file.
package recency

import (
	"errors"
	"io/fs"
	"os"

	"github.com/entrhq/trail/pkg/config"
	"github.com/entrhq/trail/pkg/paths"
	"github.com/entrhq/trail/pkg/types"
)

// Engine applies the list maintenance rules as pure value transforms.
// Inputs are never mutated: each transform clones the record set it
// was handed and returns the new value, so callers can safely hold on
// to snapshots.
type Engine struct {
	cfg *config.Config
	cls *paths.Classifier
}

// NewEngine creates an engine over a configuration and its compiled
// classifier.
func NewEngine(cfg *config.Config, cls *paths.Classifier) *Engine {
	return &Engine{cfg: cfg, cls: cls}
}

// Push records path as the most recent entry of cat: the path is
// formalized, any prior occurrence (and any internal duplicate) is
// removed, the path is prepended, and the sequence is truncated from
// the tail to the category's capacity. Ignored paths make Push a
// no-op, reported by the second return value.
func (e *Engine) Push(rs types.RecordSet, cat types.Category, path string) (types.RecordSet, bool) {
	if e.cls.ShouldIgnore(path) {
		return rs, false
	}

	p := e.cls.Formalize(path, true)

	out := rs.Clone()
	seq := out[cat]

	next := make([]string, 0, len(seq)+1)
	next = append(next, p)
	seen := map[string]struct{}{p: {}}
	for _, entry := range seq {
		if _, dup := seen[entry]; dup {
			continue
		}
		seen[entry] = struct{}{}
		next = append(next, entry)
	}

	if max := e.cfg.MaxFor(cat); len(next) > max {
		next = next[:max]
	}

	out[cat] = next
	return out, true
}

// Refresh returns cat's current sequence after lazy pruning: ignored
// entries are dropped, non-remote entries that no longer exist locally
// are dropped, survivors are re-formalized (migrating entries stored
// under a stale normalization scheme) and deduplicated. The pruned
// record set and whether it differs from the input are returned so the
// caller can persist the cleanup.
//
// Existence is only checked here, not on Push: stat calls can be
// expensive on network mounts, so the cost is paid when a list is
// consulted rather than on every write. Remote entries are never
// probed and always survive.
func (e *Engine) Refresh(rs types.RecordSet, cat types.Category) ([]string, types.RecordSet, bool) {
	seq := rs[cat]

	kept := make([]string, 0, len(seq))
	seen := make(map[string]struct{}, len(seq))
	for _, entry := range seq {
		if e.cls.ShouldIgnore(entry) {
			continue
		}
		if !e.cls.IsRemote(entry) && !pathExists(entry) {
			continue
		}
		p := e.cls.Formalize(entry, true)
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		kept = append(kept, p)
	}

	if sequencesEqual(seq, kept) {
		return kept, rs, false
	}

	out := rs.Clone()
	out[cat] = kept
	return kept, out, true
}

// Clear empties cat's sequence.
func (e *Engine) Clear(rs types.RecordSet, cat types.Category) (types.RecordSet, bool) {
	if len(rs[cat]) == 0 {
		return rs, false
	}
	out := rs.Clone()
	out[cat] = []string{}
	return out, true
}

// Remove drops a single entry from cat, matching on the formalized
// path string.
func (e *Engine) Remove(rs types.RecordSet, cat types.Category, path string) (types.RecordSet, bool) {
	p := e.cls.Formalize(path, true)

	seq := rs[cat]
	kept := make([]string, 0, len(seq))
	for _, entry := range seq {
		if entry != p {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(seq) {
		return rs, false
	}

	out := rs.Clone()
	out[cat] = kept
	return out, true
}

// pathExists prunes only on a definitive not-exist answer. Entries
// whose status cannot be determined (e.g. a permission error on a
// parent directory) are kept rather than silently dropped.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	if err == nil {
		return true
	}
	return !errors.Is(err, fs.ErrNotExist)
}

func sequencesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
