package api

import "errors"

// ErrDatabaseUnavailable is reported by the health endpoint when the
// database does not answer.
var ErrDatabaseUnavailable = errors.New("database is unavailable")
