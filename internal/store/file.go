package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	apperrors "boxoffice/cli/internal/errors"

	"gopkg.in/yaml.v3"
)

// File is a Store persisted as a flat YAML map in a single file.
// The file is rewritten on every mutation with 0600 permissions.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile returns a File store at path. The file is created on first write.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

// Set stores value under key and rewrites the file.
func (f *File) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.load()
	if err != nil {
		return apperrors.Wrap(apperrors.StoreRead, "read "+f.path, err)
	}
	items[key] = value
	if err := f.save(items); err != nil {
		return apperrors.Wrap(apperrors.StoreWrite, "write "+f.path, err)
	}
	return nil
}

// Get returns the value under key and whether it was present.
// A missing file reads as empty.
func (f *File) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.load()
	if err != nil {
		return "", false, apperrors.Wrap(apperrors.StoreRead, "read "+f.path, err)
	}
	v, ok := items[key]
	return v, ok, nil
}

// Remove deletes key, rewriting the file only if the key existed.
func (f *File) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.load()
	if err != nil {
		return apperrors.Wrap(apperrors.StoreRead, "read "+f.path, err)
	}
	if _, ok := items[key]; !ok {
		return nil
	}
	delete(items, key)
	if err := f.save(items); err != nil {
		return apperrors.Wrap(apperrors.StoreWrite, "write "+f.path, err)
	}
	return nil
}

// Clear deletes the backing file. A missing file is not an error.
func (f *File) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return apperrors.Wrap(apperrors.StoreWrite, "remove "+f.path, err)
	}
	return nil
}

// load reads the file; a missing file is an empty map.
func (f *File) load() (map[string]string, error) {
	items := make(map[string]string)
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return items, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = make(map[string]string)
	}
	return items, nil
}

// save writes items through a temp file so readers never see a partial map.
func (f *File) save(items map[string]string) error {
	b, err := yaml.Marshal(items)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
