package main

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
)

// Backend loads and saves the serialized scenario collection.
type Backend interface {
	// Load returns the stored document, or nil when nothing was stored yet.
	Load(ctx context.Context) ([]byte, error)
	// Save overwrites the stored document.
	Save(ctx context.Context, data []byte) error
	// Location names the document for logs.
	Location() string
}

// FileBackend keeps the collection in a single file addressed by an afs URL.
type FileBackend struct {
	fs  afs.Service
	url string
}

// NewFileBackend resolves location to an afs URL. Plain paths are made
// absolute so the backend does not depend on the working directory later.
func NewFileBackend(location string) (*FileBackend, error) {
	url := location
	if !strings.Contains(location, "://") {
		abs, err := filepath.Abs(location)
		if err != nil {
			return nil, fmt.Errorf("resolve data file %q: %w", location, err)
		}
		url = "file://" + filepath.ToSlash(abs)
	}
	return &FileBackend{fs: afs.New(), url: url}, nil
}

func (b *FileBackend) Location() string {
	return b.url
}

func (b *FileBackend) Load(ctx context.Context) ([]byte, error) {
	exists, err := b.fs.Exists(ctx, b.url)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", b.url, err)
	}
	if !exists {
		return nil, nil
	}
	data, err := b.fs.DownloadWithURL(ctx, b.url)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", b.url, err)
	}
	return data, nil
}

func (b *FileBackend) Save(ctx context.Context, data []byte) error {
	if err := b.fs.Upload(ctx, b.url, 0644, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", b.url, err)
	}
	return nil
}
