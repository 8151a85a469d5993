package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	apperrors "privatemarkets/internal/errors"
)

// Postgres SQLSTATE codes translated into client errors.
const (
	pgUniqueViolation        = "23505"
	pgForeignKeyViolation    = "23503"
	pgCheckViolation         = "23514"
	pgNotNullViolation       = "23502"
	pgInvalidTextRepr        = "22P02"
	pgInvalidDatetimeFormat  = "22007"
	pgDatetimeFieldOverflow  = "22008"
	pgNumericValueOutOfRange = "22003"
)

// TranslateError maps a datastore error into an AppError. It is the only
// place raw driver errors are inspected; callers get AppErrors with the raw
// error kept as Internal for logging. AppErrors pass through unchanged.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Wrap(apperrors.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.Wrap(apperrors.ErrDuplicateRecord, err)
		case pgForeignKeyViolation:
			return apperrors.Wrap(apperrors.ErrReferencedRecordMissing, err)
		case pgCheckViolation, pgNotNullViolation, pgNumericValueOutOfRange:
			return apperrors.Wrap(apperrors.ErrInvalidData, err)
		case pgInvalidTextRepr, pgInvalidDatetimeFormat, pgDatetimeFieldOverflow:
			return apperrors.Wrap(apperrors.ErrInvalidFormat, err)
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.Wrap(apperrors.ErrDuplicateRecord, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.Wrap(apperrors.ErrReferencedRecordMissing, err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return apperrors.Wrap(apperrors.ErrInvalidData, err)
	}

	// SQLite reports constraint failures only through the message text.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint failed"), strings.Contains(msg, "duplicate key"):
		return apperrors.Wrap(apperrors.ErrDuplicateRecord, err)
	case strings.Contains(msg, "foreign key constraint failed"):
		return apperrors.Wrap(apperrors.ErrReferencedRecordMissing, err)
	case strings.Contains(msg, "check constraint failed"), strings.Contains(msg, "not null constraint failed"):
		return apperrors.Wrap(apperrors.ErrInvalidData, err)
	}

	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

// TranslateNotFound is TranslateError with a specific not-found sentinel.
func TranslateNotFound(err error, notFound *apperrors.AppError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return TranslateError(err)
}
