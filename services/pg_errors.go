package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes the write paths react to.
const (
	pgSerializationFailure = "40001"
	pgUniqueViolation      = "23505"
)

// isSerializationFailure reports whether err is a Postgres serialization
// abort, the losing side of two overlapping serializable transactions.
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgSerializationFailure
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation, so racing inserts can be mapped to a conflict response
// instead of a server error.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
