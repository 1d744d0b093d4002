package manifest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/indaco/getver/internal/core"
)

// Reader extracts versions from manifests on a filesystem.
type Reader struct {
	fs core.FileSystem
}

// NewReader creates a new Reader with the given filesystem.
func NewReader(fs core.FileSystem) *Reader {
	return &Reader{fs: fs}
}

// Read loads the manifest described by q and resolves its version field.
//
// Missing files, read failures and syntax errors are returned wrapped.
// A document of the wrong shape yields a *SchemaError.
func (r *Reader) Read(ctx context.Context, q Query) (*Result, error) {
	if q.Path == "" {
		return nil, fmt.Errorf("manifest path is required")
	}

	field := q.Field
	if field == "" {
		field = DefaultField
	}
	if err := ValidateField(field); err != nil {
		return nil, err
	}

	if !q.Format.IsValid() && q.Format != "" {
		return nil, fmt.Errorf("invalid format: %s", q.Format)
	}

	path, err := r.normalizePath(ctx, q.Path)
	if err != nil {
		return nil, err
	}
	format := q.Format.Resolve(path)

	data, err := r.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	doc, err := Decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s in %q: %w", format, path, err)
	}

	version, err := doc.Lookup(field)
	if err != nil {
		return nil, err
	}

	return &Result{
		Version: version,
		Path:    path,
		Format:  format,
		Field:   field,
	}, nil
}

// normalizePath stats path and, when it names a directory, points it at
// the DefaultManifest inside it.
func (r *Reader) normalizePath(ctx context.Context, path string) (string, error) {
	info, err := r.fs.Stat(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("manifest %q not found: %w", path, err)
		}
		return "", fmt.Errorf("failed to stat manifest %q: %w", path, err)
	}
	if info.IsDir() {
		return filepath.Join(path, DefaultManifest), nil
	}
	return path, nil
}
