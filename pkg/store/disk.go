package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

const tempDir = ".tmp"

// Disk opens a flat diskv store rooted at basePath. Writes go to a temp file
// first and are renamed into place, so a reader sees either the previous or
// the next document and never a partial one.
func Disk(basePath string) (*diskv.Diskv, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	tmp := filepath.Join(basePath, tempDir)
	if err := os.MkdirAll(tmp, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return diskv.New(diskv.Options{
		BasePath:     basePath,
		TempDir:      tmp,
		CacheSizeMax: 0, // always read through to disk
	}), nil
}

// ReadDocument returns the document stored under key. ok is false when the
// key has never been written.
func ReadDocument(d *diskv.Diskv, key string) (data []byte, ok bool, err error) {
	if !d.Has(key) {
		return nil, false, nil
	}
	data, err = d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// DocumentPath is the on-disk location of key.
func DocumentPath(basePath, key string) string {
	return filepath.Join(basePath, key)
}
