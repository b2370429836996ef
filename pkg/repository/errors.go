package repository

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL unique_violation
const uniqueViolationCode = "23505"

// MapError translates database errors to domain errors: sql.ErrNoRows
// becomes notFoundErr and a unique violation becomes duplicateErr.
// Anything else passes through unchanged.
func MapError(err error, notFoundErr, duplicateErr error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return notFoundErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return duplicateErr
	}

	return err
}
