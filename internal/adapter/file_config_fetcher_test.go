package adapter

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileFetchClientConfig(t *testing.T) {
	fsys := fstest.MapFS{
		"clients/acme.json": {Data: []byte(`{"siteConfig":{"feedbackEmail":"ops@acme.test"}}`)},
	}
	f := NewFileConfigFetcher(fsys)

	data, err := f.FetchClientConfig(context.Background(), "acme")
	require.NoError(t, err)
	assert.Contains(t, string(data), "ops@acme.test")

	_, err = f.FetchClientConfig(context.Background(), "phew")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.FetchClientConfig(context.Background(), "../acme")
	assert.ErrorIs(t, err, ErrInvalidSlug)
}

func TestFileFetchClientConfig_CancelledContext(t *testing.T) {
	f := NewFileConfigFetcher(fstest.MapFS{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.FetchClientConfig(ctx, "acme")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPublicDirConfigFetcher(t *testing.T) {
	_, err := NewPublicDirConfigFetcher(t.TempDir()).FetchClientConfig(context.Background(), "acme")
	assert.ErrorIs(t, err, ErrNotFound)
}
