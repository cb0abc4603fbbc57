package tokenstore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type file struct {
	mu   sync.Mutex
	path string
}

// NewFile returns a Store backed by a single file at path. The file is
// created on the first Set; its absence reads as "no token".
func NewFile(path string) Store {
	return &file{path: path}
}

func (f *file) Get() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, err := os.ReadFile(f.path)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(b))
}

func (f *file) Set(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}

	return os.WriteFile(f.path, []byte(token), 0o600)
}

func (f *file) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
