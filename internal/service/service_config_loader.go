package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/MKhiriev/go-playbook/internal/adapter"
	"github.com/MKhiriev/go-playbook/internal/clientconfig"
	"github.com/MKhiriev/go-playbook/internal/logger"
	"github.com/MKhiriev/go-playbook/internal/store"
	"github.com/MKhiriev/go-playbook/internal/tenant"
	"github.com/MKhiriev/go-playbook/models"
)

const (
	// CacheKeyPrefix prefixes the slug in cache keys.
	CacheKeyPrefix = "playbook-client-config-"

	// DefaultCacheTTL is the maximum age of a served cache entry.
	DefaultCacheTTL = time.Hour
)

// CacheKey returns the cache key of slug.
func CacheKey(slug string) string {
	return CacheKeyPrefix + slug
}

type configLoader struct {
	fetcher  adapter.ConfigFetcher
	cache    store.ConfigCacheRepository
	defaults models.ClientConfig

	ttl    time.Duration
	now    func() time.Time
	logger *logger.Logger
}

// LoaderOption customises a loader built by [NewConfigLoader].
type LoaderOption func(*configLoader)

// WithTTL sets the cache time-to-live. Non-positive values are ignored.
func WithTTL(ttl time.Duration) LoaderOption {
	return func(l *configLoader) {
		if ttl > 0 {
			l.ttl = ttl
		}
	}
}

// WithClock replaces time.Now, for tests and previews.
func WithClock(now func() time.Time) LoaderOption {
	return func(l *configLoader) {
		if now != nil {
			l.now = now
		}
	}
}

// WithLogger sets the logger used for cache and fetch diagnostics.
func WithLogger(log *logger.Logger) LoaderOption {
	return func(l *configLoader) {
		if log != nil {
			l.logger = log
		}
	}
}

// NewConfigLoader builds a [ConfigLoader] that reads tenant files through
// fetcher and keeps merged results in cache. cache may be nil, in which case
// every non-default load fetches. defaults is copied; later changes to the
// caller's value do not leak into the loader.
func NewConfigLoader(fetcher adapter.ConfigFetcher, cache store.ConfigCacheRepository, defaults models.ClientConfig, opts ...LoaderOption) (ConfigLoader, error) {
	if fetcher == nil {
		return nil, ErrNilDependency
	}

	l := &configLoader{
		fetcher:  fetcher,
		cache:    cache,
		defaults: defaults.Clone(),
		ttl:      DefaultCacheTTL,
		now:      time.Now,
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// Load resolves slug in this order: sanitise; the default slug returns the
// defaults with no I/O; a cache entry younger than the TTL is served; an
// older one is removed; otherwise the tenant file is fetched, merged onto the
// defaults and cached. Fetch, parse and merge failures yield the defaults
// with [models.OutcomeFellBack].
func (l *configLoader) Load(ctx context.Context, slug string) models.LoadResult {
	slug = tenant.SanitiseSlug(slug)
	log := l.logger.WithClient(slug)

	if tenant.IsDefault(slug) {
		return models.LoadResult{Slug: slug, Config: l.defaults.Clone(), Outcome: models.OutcomeDefault}
	}

	key := CacheKey(slug)
	if cfg, ok := l.readCache(ctx, log, key); ok {
		return models.LoadResult{Slug: slug, Config: cfg, Outcome: models.OutcomeCached}
	}

	data, err := l.fetcher.FetchClientConfig(ctx, slug)
	if err != nil {
		log.Warn().Err(err).Msg("client config fetch failed, using defaults")
		return l.fellBack(slug, err)
	}

	merged, err := clientconfig.MergeBytes(l.defaults, data)
	if err != nil {
		log.Warn().Err(err).Msg("client config is malformed, using defaults")
		return l.fellBack(slug, err)
	}

	l.writeCache(ctx, log, key, merged)

	return models.LoadResult{Slug: slug, Config: merged, Outcome: models.OutcomeFetched}
}

// LoadClientConfig implements [ConfigLoader].
func (l *configLoader) LoadClientConfig(ctx context.Context, slug string) models.ClientConfig {
	return l.Load(ctx, slug).Config
}

func (l *configLoader) fellBack(slug string, reason error) models.LoadResult {
	return models.LoadResult{
		Slug:    slug,
		Config:  l.defaults.Clone(),
		Outcome: models.OutcomeFellBack,
		Reason:  reason,
	}
}

// readCache returns a live cache entry. Expired and unreadable entries are
// removed; cache errors count as a miss.
func (l *configLoader) readCache(ctx context.Context, log *logger.Logger, key string) (models.ClientConfig, bool) {
	if l.cache == nil {
		return models.ClientConfig{}, false
	}

	raw, err := l.cache.GetItem(ctx, key)
	if errors.Is(err, store.ErrCacheItemNotFound) {
		return models.ClientConfig{}, false
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("error reading client config cache")
		return models.ClientConfig{}, false
	}

	var entry models.CachedClientConfig
	if err = json.Unmarshal(raw, &entry); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding unreadable cache entry")
		l.removeCache(ctx, log, key)
		return models.ClientConfig{}, false
	}

	age := l.now().UnixMilli() - entry.Timestamp
	if age >= l.ttl.Milliseconds() {
		log.Debug().Int64("age_ms", age).Msg("cache entry expired")
		l.removeCache(ctx, log, key)
		return models.ClientConfig{}, false
	}

	entry.Config.Normalize()
	return entry.Config, true
}

func (l *configLoader) writeCache(ctx context.Context, log *logger.Logger, key string, cfg models.ClientConfig) {
	if l.cache == nil {
		return
	}

	raw, err := json.Marshal(models.CachedClientConfig{Config: cfg, Timestamp: l.now().UnixMilli()})
	if err != nil {
		log.Warn().Err(err).Msg("error encoding cache entry")
		return
	}

	if err = l.cache.SetItem(ctx, key, raw); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("error writing client config cache")
	}
}

func (l *configLoader) removeCache(ctx context.Context, log *logger.Logger, key string) {
	if err := l.cache.RemoveItem(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("error removing client config cache entry")
	}
}
