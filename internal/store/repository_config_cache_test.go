package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-playbook/internal/logger"
	"github.com/MKhiriev/go-playbook/migrations"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestCacheRepo(t *testing.T, dialect string) (*configCacheRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &configCacheRepository{
		db:     &DB{DB: db, dialect: dialect, logger: l},
		logger: l,
		now:    func() time.Time { return fixedNow },
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// ── GetItem ───────────────────────────────────────────────────────────────────

func TestGetItem_Postgres_Success(t *testing.T) {
	repo, mock := newTestCacheRepo(t, migrations.DialectPostgres)

	mock.ExpectQuery(`SELECT cache_value FROM client_config_cache WHERE cache_key = \$1`).
		WithArgs("playbook-client-config-acme").
		WillReturnRows(sqlmock.NewRows([]string{"cache_value"}).AddRow(`{"timestamp":1}`))

	value, err := repo.GetItem(context.Background(), "playbook-client-config-acme")
	require.NoError(t, err)
	assert.Equal(t, `{"timestamp":1}`, string(value))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetItem_SQLite_UsesQuestionPlaceholders(t *testing.T) {
	repo, mock := newTestCacheRepo(t, migrations.DialectSQLite)

	mock.ExpectQuery(`SELECT cache_value FROM client_config_cache WHERE cache_key = \?`).
		WithArgs("k").
		WillReturnRows(sqlmock.NewRows([]string{"cache_value"}).AddRow("v"))

	value, err := repo.GetItem(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(value))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetItem_NotFound(t *testing.T) {
	repo, mock := newTestCacheRepo(t, migrations.DialectPostgres)

	mock.ExpectQuery(`SELECT cache_value FROM client_config_cache`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetItem(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCacheItemNotFound)
}

func TestGetItem_UndefinedTable(t *testing.T) {
	repo, mock := newTestCacheRepo(t, migrations.DialectPostgres)

	mock.ExpectQuery(`SELECT cache_value FROM client_config_cache`).
		WithArgs("k").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.GetItem(context.Background(), "k")
	assert.ErrorIs(t, err, ErrCacheNotMigrated)
}

func TestGetItem_ConnectionFailure(t *testing.T) {
	repo, mock := newTestCacheRepo(t, migrations.DialectPostgres)

	mock.ExpectQuery(`SELECT cache_value FROM client_config_cache`).
		WithArgs("k").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.GetItem(context.Background(), "k")
	assert.ErrorIs(t, err, ErrCacheUnavailable)
}

func TestGetItem_OtherError(t *testing.T) {
	repo, mock := newTestCacheRepo(t, migrations.DialectPostgres)
	boom := errors.New("boom")

	mock.ExpectQuery(`SELECT cache_value FROM client_config_cache`).
		WithArgs("k").
		WillReturnError(boom)

	_, err := repo.GetItem(context.Background(), "k")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, boom)
}

// ── SetItem ───────────────────────────────────────────────────────────────────

func TestSetItem_Upserts(t *testing.T) {
	repo, mock := newTestCacheRepo(t, migrations.DialectPostgres)

	mock.ExpectExec(`INSERT INTO client_config_cache .* ON CONFLICT \(cache_key\) DO UPDATE`).
		WithArgs("k", `{"config":{}}`, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetItem(context.Background(), "k", []byte(`{"config":{}}`))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetItem_ExecError(t *testing.T) {
	repo, mock := newTestCacheRepo(t, migrations.DialectSQLite)

	mock.ExpectExec(`INSERT INTO client_config_cache`).
		WithArgs("k", "v", fixedNow).
		WillReturnError(errors.New("disk I/O error"))

	err := repo.SetItem(context.Background(), "k", []byte("v"))
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── RemoveItem ────────────────────────────────────────────────────────────────

func TestRemoveItem_Success(t *testing.T) {
	repo, mock := newTestCacheRepo(t, migrations.DialectPostgres)

	mock.ExpectExec(`DELETE FROM client_config_cache WHERE cache_key = \$1`).
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.RemoveItem(context.Background(), "k"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveItem_UndefinedTable(t *testing.T) {
	repo, mock := newTestCacheRepo(t, migrations.DialectPostgres)

	mock.ExpectExec(`DELETE FROM client_config_cache`).
		WithArgs("k").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	err := repo.RemoveItem(context.Background(), "k")
	assert.ErrorIs(t, err, ErrCacheNotMigrated)
}

// ── ClassifyPgError ───────────────────────────────────────────────────────────

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		code string
		want ErrorClassification
	}{
		{pgerrcode.ConnectionFailure, Retryable},
		{pgerrcode.DeadlockDetected, Retryable},
		{pgerrcode.CannotConnectNow, Retryable},
		{pgerrcode.UniqueViolation, NonRetryable},
		{pgerrcode.UndefinedTable, NonRetryable},
		{"XX000", NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPgError(&pgconn.PgError{Code: tt.code}))
		})
	}
}
