package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pvoloshyn/airdesk/internal/domain"
)

// pgxNoRows is returned when an update or delete matched no rows, so
// mutations report missing records the same way QueryRow lookups do.
var pgxNoRows = pgx.ErrNoRows

const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// wrapPgError converts constraint failures reported by postgres into
// domain.ConstraintViolation. Other errors, including pgx.ErrNoRows, pass
// through unchanged.
func wrapPgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation, codeForeignKeyViolation, codeCheckViolation:
			return &domain.ConstraintViolation{
				Constraint: pgErr.ConstraintName,
				Table:      pgErr.TableName,
				Detail:     pgErr.Detail,
			}
		}
	}
	return err
}
