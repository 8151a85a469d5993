package services

import (
	"context"

	"gorm.io/gorm"

	"privatemarkets/internal/analytics"
	"privatemarkets/internal/database"
	apperrors "privatemarkets/internal/errors"
	"privatemarkets/internal/models"
)

// analyticsService loads a fund and its investments and hands them to the
// aggregator. Nothing is cached; every call reads current data.
type analyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB) AnalyticsServicer {
	return &analyticsService{db: db}
}

// GetFundAnalytics computes the analytics record for a fund.
func (s *analyticsService) GetFundAnalytics(ctx context.Context, fundID string) (*analytics.FundAnalytics, error) {
	fundID, err := normalizeID(fundID, apperrors.ErrFundNotFound)
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)

	var fund models.Fund
	if err := db.Where("id = ?", fundID).First(&fund).Error; err != nil {
		return nil, database.TranslateNotFound(err, apperrors.ErrFundNotFound)
	}

	var investments []models.Investment
	if err := db.Preload("Investor").
		Where("fund_id = ?", fundID).
		Order("amount_usd DESC, created_at ASC, id ASC").
		Find(&investments).Error; err != nil {
		return nil, database.TranslateError(err)
	}

	result := analytics.Compute(&fund, investments)
	return &result, nil
}
