package sqlstore

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"social-api/internal/repository"
)

// isConstraint reports whether the driver rejected a write on an integrity
// constraint: unique, foreign key or not null.
func isConstraint(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "23"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}

func storeError(op string, err error) error {
	if isConstraint(err) {
		return repository.Conflict(op, err)
	}
	return repository.Fail(op, err)
}

func one[T any](v *T, err error, op string) (*T, error) {
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, storeError(op, err)
	}
	return v, nil
}
