package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	apperrors "privatemarkets/internal/errors"
	"privatemarkets/internal/testutil"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", gorm.ErrRecordNotFound, "NOT_FOUND"},
		{"pg unique", &pgconn.PgError{Code: pgUniqueViolation}, "DUPLICATE_RECORD"},
		{"pg foreign key", &pgconn.PgError{Code: pgForeignKeyViolation}, "REFERENCED_RECORD_MISSING"},
		{"pg check", &pgconn.PgError{Code: pgCheckViolation}, "INVALID_DATA"},
		{"pg bad uuid text", &pgconn.PgError{Code: pgInvalidTextRepr}, "INVALID_FORMAT"},
		{"pg other", &pgconn.PgError{Code: "40001"}, "INTERNAL_ERROR"},
		{"wrapped pg", fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgUniqueViolation}), "DUPLICATE_RECORD"},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, "DUPLICATE_RECORD"},
		{"sqlite unique", errors.New("UNIQUE constraint failed: investors.email"), "DUPLICATE_RECORD"},
		{"sqlite foreign key", errors.New("FOREIGN KEY constraint failed"), "REFERENCED_RECORD_MISSING"},
		{"sqlite check", errors.New("CHECK constraint failed: chk_funds_status"), "INVALID_DATA"},
		{"unknown", errors.New("connection reset"), "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TranslateError(tt.err)
			testutil.AssertAppError(t, got, tt.want)
			if !errors.Is(got, tt.err) {
				t.Error("expected raw error kept as internal")
			}
		})
	}

	t.Run("nil", func(t *testing.T) {
		if TranslateError(nil) != nil {
			t.Error("expected nil")
		}
	})

	t.Run("app errors pass through", func(t *testing.T) {
		if got := TranslateError(apperrors.ErrFundNotFound); got != apperrors.ErrFundNotFound {
			t.Errorf("expected sentinel unchanged, got %v", got)
		}
	})
}

func TestTranslateNotFound(t *testing.T) {
	got := TranslateNotFound(fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound), apperrors.ErrInvestorNotFound)
	testutil.AssertAppError(t, got, "INVESTOR_NOT_FOUND")

	got = TranslateNotFound(errors.New("boom"), apperrors.ErrInvestorNotFound)
	testutil.AssertAppError(t, got, "INTERNAL_ERROR")
}
