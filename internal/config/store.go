package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Store is where the config document lives. Read must return an error
// matching fs.ErrNotExist when there is no document yet.
type Store interface {
	Location() string
	Read() ([]byte, error)
	Write(data []byte) error
}

// FileStore keeps the config document in a file on disk.
type FileStore struct {
	Path string
}

// NewFileStore returns a FileStore for path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Location returns the file path.
func (s *FileStore) Location() string { return s.Path }

// Read returns the full file contents.
func (s *FileStore) Read() ([]byte, error) {
	return os.ReadFile(s.Path)
}

// Write creates the parent directory if needed and replaces the file.
func (s *FileStore) Write(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(s.Path, data, 0o600)
}

// MemStore is an in-memory Store, mainly for tests.
type MemStore struct {
	mu     sync.Mutex
	data   []byte
	exists bool
	writes int
}

// NewMemStore returns a MemStore holding doc. A nil doc means no document.
func NewMemStore(doc []byte) *MemStore {
	return &MemStore{data: doc, exists: doc != nil}
}

// Location implements Store.
func (s *MemStore) Location() string { return "memory" }

// Read implements Store.
func (s *MemStore) Read() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.exists {
		return nil, fs.ErrNotExist
	}
	return append([]byte(nil), s.data...), nil
}

// Write implements Store.
func (s *MemStore) Write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	s.exists = true
	s.writes++
	return nil
}

// Bytes returns the stored document.
func (s *MemStore) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.data...)
}

// Writes reports how many times the document was written.
func (s *MemStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
