package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification indicates whether a failed database operation may
// succeed if attempted again.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	NonRetryable ErrorClassification = iota

	// Retryable indicates a transient failure (connection loss, deadlock).
	Retryable
)

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return Retryable

	// Class 40: transaction rollback
	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return Retryable

	// Class 57: operator intervention
	case pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}

// cacheError translates a driver error into a store sentinel, wrapping op
// when no specific sentinel applies.
func cacheError(op error, err error) error {
	if postgresError(err) == pgerrcode.UndefinedTable {
		return errors.Join(ErrCacheNotMigrated, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && ClassifyPgError(pgErr) == Retryable {
		return errors.Join(ErrCacheUnavailable, err)
	}

	return errors.Join(op, err)
}
