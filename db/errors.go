package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Howling-Techie/be-nc-news/apperror"
)

// PostgreSQL error codes the services care about.
const (
	// CodeUniqueViolation is raised on duplicate keys (usernames, slugs,
	// ledger rows racing past their upsert).
	CodeUniqueViolation = "23505"
	// CodeForeignKeyViolation is raised when a referenced row is missing.
	CodeForeignKeyViolation = "23503"
	// CodeInvalidTextRepresentation is raised when a malformed literal
	// (e.g. a non-numeric article id) reaches the query layer.
	CodeInvalidTextRepresentation = "22P02"
)

// IsPgCode reports whether err is a PostgreSQL error with the given code.
func IsPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// IsUniqueViolation reports whether err is a unique-constraint violation.
func IsUniqueViolation(err error) bool {
	return IsPgCode(err, CodeUniqueViolation)
}

// TranslateError gives storage faults a second chance at a useful client
// outcome: datatype errors become 400, cancelled deadlines become 503, and
// anything else is a 500 with the supplied message. Errors that are already
// *apperror.AppError pass through unchanged.
func TranslateError(err error, message string) error {
	if err == nil {
		return nil
	}
	if _, ok := apperror.FromError(err); ok {
		return err
	}
	if IsPgCode(err, CodeInvalidTextRepresentation) {
		return apperror.NewBadRequestError("Invalid datatype in request", err)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperror.NewUnavailableError("Request timed out", err)
	}
	return apperror.NewDatabaseError(message, err)
}
