package services

import (
	"github.com/shopspring/decimal"

	apperrors "privatemarkets/internal/errors"
	"privatemarkets/internal/uuid"
)

// normalizeID returns the lowercase form of a canonical UUID. Anything else
// is reported as the given not-found error, since no record can carry it.
func normalizeID(id string, notFound *apperrors.AppError) (string, error) {
	if !uuid.IsCanonical(id) {
		return "", notFound
	}
	normalized, err := uuid.Normalize(id)
	if err != nil {
		return "", notFound
	}
	return normalized, nil
}

// roundCents rounds a USD amount half away from zero to the two decimals
// the numeric(18,2) columns keep, so a created record matches a fetched one.
func roundCents(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}
