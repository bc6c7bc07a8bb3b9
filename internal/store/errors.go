package store

import (
	"errors"
	"fmt"

	"github.com/FelipePedraza/libreriaSoftware/internal/usecase"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// mapWriteError turns a unique-constraint violation into usecase.ErrConflict
// so callers can distinguish it from transient storage failures.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %s", usecase.ErrConflict, pgErr.ConstraintName)
	}
	return err
}
