package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-playbook/internal/adapter"
	"github.com/MKhiriev/go-playbook/internal/clientconfig"
	"github.com/MKhiriev/go-playbook/internal/mock"
	"github.com/MKhiriev/go-playbook/internal/store"
	"github.com/MKhiriev/go-playbook/models"
)

const phewFile = `{"siteConfig":{"companyName":"Phew"}}`

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLoader(t *testing.T, fetcher adapter.ConfigFetcher, cache store.ConfigCacheRepository, clock *fakeClock) ConfigLoader {
	t.Helper()
	l, err := NewConfigLoader(fetcher, cache, clientconfig.Default(), WithClock(clock.Now))
	require.NoError(t, err)
	return l
}

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)}
}

// ── NewConfigLoader ──────────────────────────────────────────────────────────

func TestNewConfigLoader_NilFetcher(t *testing.T) {
	l, err := NewConfigLoader(nil, nil, clientconfig.Default())
	assert.Nil(t, l)
	assert.ErrorIs(t, err, ErrNilDependency)
}

// ── default slug ─────────────────────────────────────────────────────────────

func TestLoad_DefaultSlugDoesNoIO(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock.NewMockConfigFetcher(ctrl)
	cache := mock.NewMockConfigCacheRepository(ctrl)
	// no expectations: any call fails the test

	l := newTestLoader(t, fetcher, cache, newClock())

	for _, slug := range []string{"default", "DEFAULT", "", "../../etc/passwd", "acme.json"} {
		res := l.Load(context.Background(), slug)
		assert.Equal(t, "default", res.Slug, slug)
		assert.Equal(t, models.OutcomeDefault, res.Outcome, slug)
		assert.Equal(t, clientconfig.Default(), res.Config, slug)
	}
}

func TestLoad_DefaultResultIsNotAliased(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := newTestLoader(t, mock.NewMockConfigFetcher(ctrl), nil, newClock())

	first := l.LoadClientConfig(context.Background(), "default")
	first.StarterKit.EnabledCategories[0] = "mutated"
	first.Overlays["x"] = json.RawMessage(`1`)

	second := l.LoadClientConfig(context.Background(), "default")
	assert.Equal(t, clientconfig.Default(), second)
}

// ── fetch and merge ──────────────────────────────────────────────────────────

func TestLoad_FetchesMergesAndCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock.NewMockConfigFetcher(ctrl)
	cache := store.NewMemoryConfigCache()
	clock := newClock()

	fetcher.EXPECT().FetchClientConfig(gomock.Any(), "phew").Return([]byte(phewFile), nil)

	l := newTestLoader(t, fetcher, cache, clock)
	res := l.Load(context.Background(), "PHEW")

	require.Equal(t, models.OutcomeFetched, res.Outcome)
	assert.Equal(t, "phew", res.Slug)
	assert.Equal(t, "Phew", res.Config.SiteConfig.CompanyName)
	assert.Equal(t, clientconfig.Default().SiteConfig.AppTitle, res.Config.SiteConfig.AppTitle)

	raw, err := cache.GetItem(context.Background(), "playbook-client-config-phew")
	require.NoError(t, err)

	var entry models.CachedClientConfig
	require.NoError(t, json.Unmarshal(raw, &entry))
	assert.Equal(t, clock.Now().UnixMilli(), entry.Timestamp)
	assert.Equal(t, "Phew", entry.Config.SiteConfig.CompanyName)
}

func TestLoad_FetchFailureFallsBack(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "not found", err: fmt.Errorf("%w: clients/ghost.json", adapter.ErrNotFound)},
		{name: "network", err: errors.New("dial tcp: connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fetcher := mock.NewMockConfigFetcher(ctrl)
			cache := mock.NewMockConfigCacheRepository(ctrl)

			cache.EXPECT().GetItem(gomock.Any(), "playbook-client-config-ghost").Return(nil, store.ErrCacheItemNotFound)
			fetcher.EXPECT().FetchClientConfig(gomock.Any(), "ghost").Return(nil, tt.err)
			// nothing is written to the cache

			res := newTestLoader(t, fetcher, cache, newClock()).Load(context.Background(), "ghost")

			assert.Equal(t, models.OutcomeFellBack, res.Outcome)
			assert.True(t, res.FellBack())
			assert.ErrorIs(t, res.Reason, tt.err)
			assert.Equal(t, clientconfig.Default(), res.Config)
		})
	}
}

func TestLoad_MalformedTenantFileFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock.NewMockConfigFetcher(ctrl)
	cache := store.NewMemoryConfigCache()

	fetcher.EXPECT().FetchClientConfig(gomock.Any(), "acme").Return([]byte(`{"siteConfig": [}`), nil)

	res := newTestLoader(t, fetcher, cache, newClock()).Load(context.Background(), "acme")

	assert.Equal(t, models.OutcomeFellBack, res.Outcome)
	assert.ErrorIs(t, res.Reason, clientconfig.ErrMalformedClientConfig)
	assert.Equal(t, clientconfig.Default(), res.Config)

	_, err := cache.GetItem(context.Background(), CacheKey("acme"))
	assert.ErrorIs(t, err, store.ErrCacheItemNotFound)
}

func TestLoad_WrongTypedFieldDiscardsWholeFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock.NewMockConfigFetcher(ctrl)

	fetcher.EXPECT().FetchClientConfig(gomock.Any(), "acme").
		Return([]byte(`{"siteConfig":{"companyName":"Acme","primaryColour":7}}`), nil)

	res := newTestLoader(t, fetcher, store.NewMemoryConfigCache(), newClock()).Load(context.Background(), "acme")

	assert.Equal(t, models.OutcomeFellBack, res.Outcome)
	assert.ErrorIs(t, res.Reason, clientconfig.ErrMalformedSection)
	assert.Equal(t, clientconfig.Default(), res.Config)
}

// ── cache TTL ────────────────────────────────────────────────────────────────

func TestLoad_CacheTTLBoundary(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock.NewMockConfigFetcher(ctrl)
	cache := store.NewMemoryConfigCache()
	clock := newClock()

	fetcher.EXPECT().FetchClientConfig(gomock.Any(), "phew").Return([]byte(phewFile), nil).Times(2)

	l := newTestLoader(t, fetcher, cache, clock)
	ctx := context.Background()

	assert.Equal(t, models.OutcomeFetched, l.Load(ctx, "phew").Outcome)

	clock.Advance(3_599_999 * time.Millisecond)
	res := l.Load(ctx, "phew")
	assert.Equal(t, models.OutcomeCached, res.Outcome)
	assert.Equal(t, "Phew", res.Config.SiteConfig.CompanyName)

	clock.Advance(time.Millisecond)
	assert.Equal(t, models.OutcomeFetched, l.Load(ctx, "phew").Outcome)
}

func TestLoad_ExpiredEntryIsRemoved(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock.NewMockConfigFetcher(ctrl)
	cache := mock.NewMockConfigCacheRepository(ctrl)
	clock := newClock()

	stale, err := json.Marshal(models.CachedClientConfig{
		Config:    clientconfig.Default(),
		Timestamp: clock.Now().Add(-2 * time.Hour).UnixMilli(),
	})
	require.NoError(t, err)

	key := CacheKey("acme")
	gomock.InOrder(
		cache.EXPECT().GetItem(gomock.Any(), key).Return(stale, nil),
		cache.EXPECT().RemoveItem(gomock.Any(), key).Return(nil),
		fetcher.EXPECT().FetchClientConfig(gomock.Any(), "acme").Return([]byte(`{}`), nil),
		cache.EXPECT().SetItem(gomock.Any(), key, gomock.Any()).Return(nil),
	)

	res := newTestLoader(t, fetcher, cache, clock).Load(context.Background(), "acme")
	assert.Equal(t, models.OutcomeFetched, res.Outcome)
}

func TestLoad_CorruptEntryIsRemoved(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock.NewMockConfigFetcher(ctrl)
	cache := mock.NewMockConfigCacheRepository(ctrl)

	key := CacheKey("acme")
	gomock.InOrder(
		cache.EXPECT().GetItem(gomock.Any(), key).Return([]byte("not json"), nil),
		cache.EXPECT().RemoveItem(gomock.Any(), key).Return(nil),
		fetcher.EXPECT().FetchClientConfig(gomock.Any(), "acme").Return([]byte(`{}`), nil),
		cache.EXPECT().SetItem(gomock.Any(), key, gomock.Any()).Return(nil),
	)

	res := newTestLoader(t, fetcher, cache, newClock()).Load(context.Background(), "acme")
	assert.Equal(t, models.OutcomeFetched, res.Outcome)
}

func TestLoad_CacheErrorsAreAbsorbed(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock.NewMockConfigFetcher(ctrl)
	cache := mock.NewMockConfigCacheRepository(ctrl)

	key := CacheKey("acme")
	cache.EXPECT().GetItem(gomock.Any(), key).Return(nil, store.ErrCacheUnavailable)
	fetcher.EXPECT().FetchClientConfig(gomock.Any(), "acme").Return([]byte(`{"siteConfig":{"appTitle":"Acme Playbook"}}`), nil)
	cache.EXPECT().SetItem(gomock.Any(), key, gomock.Any()).Return(store.ErrCacheNotMigrated)

	res := newTestLoader(t, fetcher, cache, newClock()).Load(context.Background(), "acme")
	assert.Equal(t, models.OutcomeFetched, res.Outcome)
	assert.Equal(t, "Acme Playbook", res.Config.SiteConfig.AppTitle)
}

func TestLoad_NilCacheAlwaysFetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock.NewMockConfigFetcher(ctrl)
	fetcher.EXPECT().FetchClientConfig(gomock.Any(), "acme").Return([]byte(`{}`), nil).Times(2)

	l := newTestLoader(t, fetcher, nil, newClock())
	assert.Equal(t, models.OutcomeFetched, l.Load(context.Background(), "acme").Outcome)
	assert.Equal(t, models.OutcomeFetched, l.Load(context.Background(), "acme").Outcome)
}

func TestWithTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock.NewMockConfigFetcher(ctrl)
	clock := newClock()

	fetcher.EXPECT().FetchClientConfig(gomock.Any(), "acme").Return([]byte(`{}`), nil).Times(2)

	l, err := NewConfigLoader(fetcher, store.NewMemoryConfigCache(), clientconfig.Default(),
		WithClock(clock.Now), WithTTL(time.Minute), WithTTL(0))
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeFetched, l.Load(context.Background(), "acme").Outcome)
	clock.Advance(59 * time.Second)
	assert.Equal(t, models.OutcomeCached, l.Load(context.Background(), "acme").Outcome)
	clock.Advance(time.Second)
	assert.Equal(t, models.OutcomeFetched, l.Load(context.Background(), "acme").Outcome)
}

func TestDefaultCacheTTL(t *testing.T) {
	assert.Equal(t, int64(3_600_000), DefaultCacheTTL.Milliseconds())
}
