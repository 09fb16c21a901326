package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProjectNotFound is returned when a read or update targets a project
	// id that does not exist.
	ErrProjectNotFound = errors.New("project was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result set fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrOpeningSession is returned when a dedicated connection cannot be
	// taken from the pool for a request.
	ErrOpeningSession = errors.New("failed to open database session")

	// ErrUnsupportedDriver is returned for a storage driver other than
	// sqlite3 or pgx.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
