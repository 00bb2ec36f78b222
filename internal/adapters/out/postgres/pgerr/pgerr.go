// Package pgerr translates PostgreSQL driver errors into the errs taxonomy.
package pgerr

import (
	"errors"

	"quickdrop/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// UniqueViolation is the SQLSTATE of a unique index violation (class 23).
const UniqueViolation = "23505"

// Translate turns a unique violation into a ConflictError on entity and
// returns every other error unchanged.
func Translate(err error, entity string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == UniqueViolation {
		return errs.NewConflictErrorWithCause(entity+" already exists", errors.New(pgErr.ConstraintName))
	}
	return err
}
