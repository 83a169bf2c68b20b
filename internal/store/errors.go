package store

import "errors"

// Sentinel errors returned by cache repositories. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCacheItemNotFound is returned by GetItem when no entry is stored
	// under the requested key.
	ErrCacheItemNotFound = errors.New("cache item not found")

	// ErrCacheNotMigrated is returned when the cache table does not exist,
	// i.e. migrations were never applied to the database.
	ErrCacheNotMigrated = errors.New("cache table does not exist")

	// ErrCacheUnavailable is returned when the database reports a transient
	// connection failure.
	ErrCacheUnavailable = errors.New("cache database is unavailable")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a cache row fails.
	ErrScanningRow = errors.New("failed to scan cache row")

	// ErrUnsupportedDSN is returned when the cache DSN names an unknown
	// scheme.
	ErrUnsupportedDSN = errors.New("unsupported cache dsn")
)
