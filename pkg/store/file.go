package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/entrhq/trail/pkg/types"
)

// FileStore is the persistence gateway for the store file. It holds no
// state between calls: Read and Write each operate on the file as it
// exists at that moment, which is what lets independent processes
// share one store without coordination.
type FileStore struct {
	path string
	mode os.FileMode
}

// NewFileStore creates a gateway for the store file at path. mode is
// applied best-effort after every write.
func NewFileStore(path string, mode os.FileMode) *FileStore {
	return &FileStore{path: path, mode: mode}
}

// Path returns the store file location.
func (s *FileStore) Path() string {
	return s.path
}

// Read returns the current record set. A missing store file is created
// first, initialized with all six categories empty, so callers always
// observe a well-formed store. Malformed content is repaired to an
// empty-but-valid set rather than surfaced as an error.
func (s *FileStore) Read() (types.RecordSet, error) {
	if err := s.verify(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := s.Write(types.NewRecordSet()); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read store file %s: %w", s.path, err)
	}

	return Repair(Decode(data)), nil
}

// Write replaces the store file contents with the encoded record set.
// The bytes go to a temporary sibling first and are swapped into place
// with a rename, so a concurrent reader never observes a half-written
// store. The configured permission mode is applied afterwards;
// failures there are swallowed since the mode is advisory.
func (s *FileStore) Write(rs types.RecordSet) error {
	if err := s.verify(); err != nil {
		return err
	}

	data, err := Encode(rs)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	// The temp name must be unique per writer: independent processes
	// share this directory, and a fixed name would let one writer
	// truncate the file another is about to rename into place.
	file, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	tempPath := file.Name()

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to write temp store file: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temp store file: %w", err)
	}

	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to replace store file: %w", err)
	}

	// Advisory only, e.g. world read/write for shared home directories.
	_ = os.Chmod(s.path, s.mode)

	return nil
}

// verify guards both operations: the store path must not be a
// directory, and if the file exists it must be readable and writable.
// Violations abort the operation with a descriptive error; the caller
// reports it and continues, nothing is mutated.
func (s *FileStore) verify() error {
	info, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cannot access store file %s: %w", s.path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("store path %s is a directory, not a file", s.path)
	}

	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("store file %s is not readable: %w", s.path, err)
	}
	f.Close()

	f, err = os.OpenFile(s.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("store file %s is not writable: %w", s.path, err)
	}
	f.Close()

	return nil
}
