package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-playbook/internal/logger"
)

const (
	configCacheTable       = "client_config_cache"
	configCacheKeyColumn   = "cache_key"
	configCacheValueColumn = "cache_value"
	configCacheTimeColumn  = "updated_at"

	upsertConfigCacheSuffix = "ON CONFLICT (cache_key) DO UPDATE SET " +
		"cache_value = excluded.cache_value, updated_at = excluded.updated_at"
)

// configCacheRepository is the SQL-backed implementation of
// [ConfigCacheRepository]. It works on SQLite and PostgreSQL; the dialect of
// the [DB] selects the placeholder format.
type configCacheRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewConfigCacheRepository constructs a [ConfigCacheRepository] over db.
func NewConfigCacheRepository(db *DB, logger *logger.Logger) ConfigCacheRepository {
	logger.Debug().Msg("creating client config cache repository")
	return &configCacheRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *configCacheRepository) GetItem(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(configCacheValueColumn).
		From(configCacheTable).
		Where(sq.Eq{configCacheKeyColumn: key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrCacheItemNotFound
	case err != nil:
		log.Err(err).Str("func", "*configCacheRepository.GetItem").Str("key", key).Msg("error reading cache item")
		return nil, cacheError(ErrExecutingQuery, err)
	}

	return []byte(value), nil
}

func (r *configCacheRepository) SetItem(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert(configCacheTable).
		Columns(configCacheKeyColumn, configCacheValueColumn, configCacheTimeColumn).
		Values(key, string(value), r.now().UTC()).
		Suffix(upsertConfigCacheSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*configCacheRepository.SetItem").Str("key", key).Msg("error writing cache item")
		return cacheError(ErrExecutingStatement, err)
	}

	return nil
}

func (r *configCacheRepository) RemoveItem(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Delete(configCacheTable).
		Where(sq.Eq{configCacheKeyColumn: key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*configCacheRepository.RemoveItem").Str("key", key).Msg("error removing cache item")
		return cacheError(ErrExecutingStatement, err)
	}

	return nil
}
