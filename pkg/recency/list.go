package recency

import (
	"fmt"

	"github.com/entrhq/trail/pkg/config"
	"github.com/entrhq/trail/pkg/logging"
	"github.com/entrhq/trail/pkg/paths"
	"github.com/entrhq/trail/pkg/store"
	"github.com/entrhq/trail/pkg/types"
)

// List is the public face of trail. Every operation performs its own
// read-modify-write cycle against the store file and caches nothing in
// between, so concurrently running processes sharing one store stay
// consistent (last write wins; see the package documentation on the
// store gateway for the atomicity guarantee).
type List struct {
	cfg    *config.Config
	cls    *paths.Classifier
	engine *Engine
	gate   *store.FileStore
	log    *logging.Logger
}

// New builds a List from cfg, or from the stock defaults when cfg is
// nil.
func New(cfg *config.Config) (*List, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cls, err := paths.NewClassifier(cfg)
	if err != nil {
		return nil, err
	}

	// Fallback logger on error is still usable; the warning about the
	// log directory has already gone to stderr.
	logger, _ := logging.New("recency")

	return &List{
		cfg:    cfg,
		cls:    cls,
		engine: NewEngine(cfg, cls),
		gate:   store.NewFileStore(cfg.StorePath, cfg.StoreMode),
		log:    logger,
	}, nil
}

// Push records path as the most recent entry of cat. Paths classified
// remote are rerouted to cat's remote counterpart first; this is the
// only place that remapping happens. Ignored paths are a silent no-op.
func (l *List) Push(cat types.Category, path string) error {
	if !cat.Valid() {
		return fmt.Errorf("unknown category %q", cat)
	}

	if l.cls.IsRemote(path) {
		cat = cat.RemoteCounterpart()
	}

	rs, err := l.gate.Read()
	if err != nil {
		l.log.Warnf("push of %s skipped: %v", path, err)
		return err
	}

	next, pushed := l.engine.Push(rs, cat, path)
	if !pushed {
		return nil
	}

	if err := l.gate.Write(next); err != nil {
		l.log.Warnf("push of %s not persisted: %v", path, err)
		return err
	}
	return nil
}

// PushWithProject pushes path under cat and, when the path sits inside
// a version-control root, also pushes that root under projects. The
// project push goes through the same routing as any other, so a root
// reached via a remote path would land in remote-projects. In practice
// remote paths never yield a root: FindVCRoot declines to probe
// markers over remote mounts, so remote-projects only fills through
// explicit pushes.
func (l *List) PushWithProject(cat types.Category, path string) error {
	if err := l.Push(cat, path); err != nil {
		return err
	}

	root, ok := l.cls.FindVCRoot(path)
	if !ok {
		return nil
	}
	return l.Push(types.CategoryProjects, root)
}

// Get returns cat's current sequence, most recent first, after lazy
// pruning of ignored and locally-missing entries. When pruning changed
// the sequence the cleaned-up set is persisted; a failure to persist
// is logged and swallowed since the caller still got a correct answer.
func (l *List) Get(cat types.Category) ([]string, error) {
	if !cat.Valid() {
		return nil, fmt.Errorf("unknown category %q", cat)
	}

	rs, err := l.gate.Read()
	if err != nil {
		l.log.Warnf("get of %s failed: %v", cat, err)
		return nil, err
	}

	seq, next, changed := l.engine.Refresh(rs, cat)
	if changed {
		if err := l.gate.Write(next); err != nil {
			l.log.Warnf("pruned %s list not persisted: %v", cat, err)
		}
	}
	return seq, nil
}

// Clear empties cat's sequence.
func (l *List) Clear(cat types.Category) error {
	if !cat.Valid() {
		return fmt.Errorf("unknown category %q", cat)
	}

	rs, err := l.gate.Read()
	if err != nil {
		l.log.Warnf("clear of %s skipped: %v", cat, err)
		return err
	}

	next, changed := l.engine.Clear(rs, cat)
	if !changed {
		return nil
	}

	if err := l.gate.Write(next); err != nil {
		l.log.Warnf("clear of %s not persisted: %v", cat, err)
		return err
	}
	return nil
}

// Remove drops a single entry from cat, matched on its formalized
// form.
func (l *List) Remove(cat types.Category, path string) error {
	if !cat.Valid() {
		return fmt.Errorf("unknown category %q", cat)
	}

	rs, err := l.gate.Read()
	if err != nil {
		l.log.Warnf("remove of %s skipped: %v", path, err)
		return err
	}

	next, changed := l.engine.Remove(rs, cat, path)
	if !changed {
		return nil
	}

	if err := l.gate.Write(next); err != nil {
		l.log.Warnf("remove of %s not persisted: %v", path, err)
		return err
	}
	return nil
}

// FindVCRoot reports the nearest version-control root above path, if
// any.
func (l *List) FindVCRoot(path string) (string, bool) {
	return l.cls.FindVCRoot(path)
}

// IsRemote reports whether path matches a configured remote pattern.
func (l *List) IsRemote(path string) bool {
	return l.cls.IsRemote(path)
}

// StorePath returns the location of the backing store file.
func (l *List) StorePath() string {
	return l.gate.Path()
}
