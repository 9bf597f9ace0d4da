package recency

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/trail/pkg/config"
	"github.com/entrhq/trail/pkg/types"
)

func newTestList(t *testing.T, mutate func(*config.Config)) *List {
	t.Helper()
	cfg := config.Default()
	cfg.StorePath = filepath.Join(t.TempDir(), "recent.yaml")
	cfg.StoreMode = 0600
	if mutate != nil {
		mutate(cfg)
	}
	list, err := New(cfg)
	require.NoError(t, err)
	return list
}

func TestListPushGet(t *testing.T) {
	list := newTestList(t, nil)

	dir := t.TempDir()
	a := touch(t, filepath.Join(dir, "a.txt"))
	b := touch(t, filepath.Join(dir, "b.txt"))

	require.NoError(t, list.Push(types.CategoryFiles, a))
	require.NoError(t, list.Push(types.CategoryFiles, b))
	require.NoError(t, list.Push(types.CategoryFiles, a))

	got, err := list.Get(types.CategoryFiles)
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, got, "revisited entry moves to the front, no duplicate")
}

func TestListSurvivesReconstruction(t *testing.T) {
	// State lives only in the store file: a second List over the same
	// path sees everything the first one wrote.
	cfg := config.Default()
	cfg.StorePath = filepath.Join(t.TempDir(), "recent.yaml")
	cfg.StoreMode = 0600

	first, err := New(cfg)
	require.NoError(t, err)

	dir := t.TempDir()
	a := touch(t, filepath.Join(dir, "a.txt"))
	require.NoError(t, first.Push(types.CategoryFiles, a))

	second, err := New(cfg)
	require.NoError(t, err)
	got, err := second.Get(types.CategoryFiles)
	require.NoError(t, err)
	assert.Equal(t, []string{a}, got)
}

func TestListRemoteRouting(t *testing.T) {
	list := newTestList(t, nil)

	remote := "/ssh:host:/etc/hosts"
	require.NoError(t, list.Push(types.CategoryFiles, remote))

	local, err := list.Get(types.CategoryFiles)
	require.NoError(t, err)
	assert.Empty(t, local, "remote path must not land under files")

	remotes, err := list.Get(types.CategoryRemoteFiles)
	require.NoError(t, err)
	assert.Equal(t, []string{remote}, remotes)
}

func TestListIgnoredPush(t *testing.T) {
	list := newTestList(t, nil)

	dir := t.TempDir()
	backup := touch(t, filepath.Join(dir, "notes.txt~"))

	// Materialize the store first so the comparison sees only the
	// effect of the push itself.
	_, err := list.Get(types.CategoryFiles)
	require.NoError(t, err)
	before, err := os.ReadFile(list.StorePath())
	require.NoError(t, err)

	require.NoError(t, list.Push(types.CategoryFiles, backup))

	after, err := os.ReadFile(list.StorePath())
	require.NoError(t, err)
	assert.Equal(t, before, after, "ignored push must not touch the store")

	got, err := list.Get(types.CategoryFiles)
	require.NoError(t, err)
	assert.NotContains(t, got, backup)
}

func TestListStoreRecreatedAfterExternalDelete(t *testing.T) {
	list := newTestList(t, nil)

	dir := t.TempDir()
	a := touch(t, filepath.Join(dir, "a.txt"))
	require.NoError(t, list.Push(types.CategoryFiles, a))

	require.NoError(t, os.Remove(list.StorePath()))

	got, err := list.Get(types.CategoryFiles)
	require.NoError(t, err)
	assert.Empty(t, got)

	// All six categories are back on disk, empty.
	data, err := os.ReadFile(list.StorePath())
	require.NoError(t, err)
	for _, cat := range types.Categories() {
		assert.Contains(t, string(data), cat.String()+":")
	}
}

func TestListGetPersistsPruning(t *testing.T) {
	list := newTestList(t, nil)

	dir := t.TempDir()
	kept := touch(t, filepath.Join(dir, "kept.txt"))
	doomed := touch(t, filepath.Join(dir, "doomed.txt"))

	require.NoError(t, list.Push(types.CategoryFiles, kept))
	require.NoError(t, list.Push(types.CategoryFiles, doomed))
	require.NoError(t, os.Remove(doomed))

	got, err := list.Get(types.CategoryFiles)
	require.NoError(t, err)
	assert.Equal(t, []string{kept}, got)

	// The prune was written back, not just filtered in memory.
	data, err := os.ReadFile(list.StorePath())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "doomed.txt")
}

func TestListUnknownCategory(t *testing.T) {
	list := newTestList(t, nil)

	bogus := types.Category("bookmarks")
	assert.Error(t, list.Push(bogus, "/x"))
	assert.Error(t, list.Clear(bogus))
	assert.Error(t, list.Remove(bogus, "/x"))

	_, err := list.Get(bogus)
	assert.Error(t, err)
}

func TestListClearAndRemove(t *testing.T) {
	list := newTestList(t, nil)

	dir := t.TempDir()
	a := touch(t, filepath.Join(dir, "a.txt"))
	b := touch(t, filepath.Join(dir, "b.txt"))

	require.NoError(t, list.Push(types.CategoryFiles, a))
	require.NoError(t, list.Push(types.CategoryFiles, b))

	require.NoError(t, list.Remove(types.CategoryFiles, a))
	got, err := list.Get(types.CategoryFiles)
	require.NoError(t, err)
	assert.Equal(t, []string{b}, got)

	require.NoError(t, list.Clear(types.CategoryFiles))
	got, err = list.Get(types.CategoryFiles)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListPushWithProject(t *testing.T) {
	list := newTestList(t, nil)
	sep := string(filepath.Separator)

	t.Run("file inside a repo records the project", func(t *testing.T) {
		dir := t.TempDir()
		repo := filepath.Join(dir, "repo")
		require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0750))
		file := touch(t, filepath.Join(repo, "main.go"))

		require.NoError(t, list.PushWithProject(types.CategoryFiles, file))

		files, err := list.Get(types.CategoryFiles)
		require.NoError(t, err)
		assert.Contains(t, files, file)

		projects, err := list.Get(types.CategoryProjects)
		require.NoError(t, err)
		assert.Contains(t, projects, repo+sep)
	})

	t.Run("file outside any repo records no project", func(t *testing.T) {
		require.NoError(t, list.Clear(types.CategoryProjects))

		dir := t.TempDir()
		file := touch(t, filepath.Join(dir, "loose.txt"))

		require.NoError(t, list.PushWithProject(types.CategoryFiles, file))

		projects, err := list.Get(types.CategoryProjects)
		require.NoError(t, err)
		assert.Empty(t, projects)
	})
}

func TestListStorePathIsDirectory(t *testing.T) {
	cfg := config.Default()
	cfg.StorePath = t.TempDir() // a directory, not a file
	list, err := New(cfg)
	require.NoError(t, err)

	assert.Error(t, list.Push(types.CategoryFiles, "/x"))

	_, err = list.Get(types.CategoryFiles)
	assert.Error(t, err)
}
