package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/MKhiriev/go-playbook/internal/tenant"
)

type fileConfigFetcher struct {
	fsys fs.FS
}

// NewFileConfigFetcher returns a [ConfigFetcher] reading clients/{slug}.json
// from fsys, normally os.DirFS of the public directory.
func NewFileConfigFetcher(fsys fs.FS) ConfigFetcher {
	return &fileConfigFetcher{fsys: fsys}
}

// NewPublicDirConfigFetcher is NewFileConfigFetcher over the directory dir.
func NewPublicDirConfigFetcher(dir string) ConfigFetcher {
	return NewFileConfigFetcher(os.DirFS(dir))
}

// FetchClientConfig implements [ConfigFetcher].
func (f *fileConfigFetcher) FetchClientConfig(ctx context.Context, slug string) ([]byte, error) {
	if tenant.SanitiseSlug(slug) != slug || tenant.IsDefault(slug) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := path.Join("clients", slug+".json")
	data, err := fs.ReadFile(f.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read client config: %w", err)
	}

	return data, nil
}
