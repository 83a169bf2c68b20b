package store

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-playbook/internal/config"
	"github.com/MKhiriev/go-playbook/internal/logger"
)

// Storages groups the storage repositories passed to the service layer.
type Storages struct {
	// ConfigCache keeps merged client configurations between loads.
	ConfigCache ConfigCacheRepository

	closer io.Closer
}

// NewStorages initialises the cache backend selected by cfg.Cache.DSN:
//   - empty DSN: in-process memory;
//   - postgres:// or postgresql:// URL: PostgreSQL through pgx;
//   - anything else: an SQLite database file.
//
// SQL backends are migrated before use.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	dsn := cfg.Cache.DSN
	if dsn == "" {
		log.Debug().Msg("using in-memory client config cache")
		return &Storages{ConfigCache: NewMemoryConfigCache()}, nil
	}

	var (
		db  *DB
		err error
	)
	switch {
	case isPostgresDSN(dsn):
		db, err = NewConnectPostgres(ctx, dsn, log)
	case strings.Contains(dsn, "://"):
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDSN, dsn[:strings.Index(dsn, "://")])
	default:
		db, err = NewConnectSQLite(ctx, dsn, log)
	}
	if err != nil {
		return nil, fmt.Errorf("cache database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		ConfigCache: NewConfigCacheRepository(db, log),
		closer:      db,
	}, nil
}

// Close releases the database connection of SQL backends.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
