// Package types defines the core value types shared across trail:
// the fixed set of recency-list categories and the RecordSet holding
// every category's ordered path sequence.
package types

import "fmt"

// Category identifies one recency list.
type Category string

const (
	CategoryFiles             Category = "files"
	CategoryDirectories       Category = "directories"
	CategoryProjects          Category = "projects"
	CategoryRemoteFiles       Category = "remote-files"
	CategoryRemoteDirectories Category = "remote-directories"
	CategoryRemoteProjects    Category = "remote-projects"
)

// categories is the canonical ordering, used for deterministic encoding.
var categories = []Category{
	CategoryFiles,
	CategoryDirectories,
	CategoryProjects,
	CategoryRemoteFiles,
	CategoryRemoteDirectories,
	CategoryRemoteProjects,
}

// remoteCounterparts maps each local category to the category a
// remote-classified path is routed to. Remote categories map to
// themselves so routing is idempotent.
var remoteCounterparts = map[Category]Category{
	CategoryFiles:             CategoryRemoteFiles,
	CategoryDirectories:       CategoryRemoteDirectories,
	CategoryProjects:          CategoryRemoteProjects,
	CategoryRemoteFiles:       CategoryRemoteFiles,
	CategoryRemoteDirectories: CategoryRemoteDirectories,
	CategoryRemoteProjects:    CategoryRemoteProjects,
}

// Categories returns the fixed category set in canonical order.
// The returned slice is a copy and safe to modify.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory validates a category name. Unknown names are an error,
// never silently mapped to a default.
func ParseCategory(name string) (Category, error) {
	c := Category(name)
	if _, ok := remoteCounterparts[c]; !ok {
		return "", fmt.Errorf("unknown category %q", name)
	}
	return c, nil
}

// Valid reports whether c is one of the six fixed categories.
func (c Category) Valid() bool {
	_, ok := remoteCounterparts[c]
	return ok
}

// RemoteCounterpart returns the category a remote path is routed to
// when pushed under c. Remote categories return themselves.
func (c Category) RemoteCounterpart() Category {
	return remoteCounterparts[c]
}

// IsRemote reports whether c is one of the remote-prefixed categories.
func (c Category) IsRemote() bool {
	switch c {
	case CategoryRemoteFiles, CategoryRemoteDirectories, CategoryRemoteProjects:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
