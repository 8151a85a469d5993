package services

import (
	"context"

	"gorm.io/gorm"

	"privatemarkets/internal/database"
	apperrors "privatemarkets/internal/errors"
	"privatemarkets/internal/models"
)

// fundService handles fund-related business logic.
type fundService struct {
	db *gorm.DB
}

// NewFundService creates a new FundServicer.
func NewFundService(db *gorm.DB) FundServicer {
	return &fundService{db: db}
}

// GetAllFunds returns every fund, newest first.
func (s *fundService) GetAllFunds(ctx context.Context) ([]models.Fund, error) {
	funds := []models.Fund{}
	if err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&funds).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return funds, nil
}

// GetFundByID retrieves a fund by ID.
func (s *fundService) GetFundByID(ctx context.Context, id string) (*models.Fund, error) {
	id, err := normalizeID(id, apperrors.ErrFundNotFound)
	if err != nil {
		return nil, err
	}

	var fund models.Fund
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&fund).Error; err != nil {
		return nil, database.TranslateNotFound(err, apperrors.ErrFundNotFound)
	}
	return &fund, nil
}

// CreateFund persists a new fund and returns it with its generated ID and
// creation time.
func (s *fundService) CreateFund(ctx context.Context, input FundInput) (*models.Fund, error) {
	if input.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "fund name is required")
	}

	fund := &models.Fund{
		Name:          input.Name,
		VintageYear:   input.VintageYear,
		TargetSizeUSD: roundCents(input.TargetSizeUSD),
		Status:        input.Status,
	}
	if err := s.db.WithContext(ctx).Create(fund).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return fund, nil
}

// UpdateFund replaces every writable field of an existing fund. The
// existence check and the write share one transaction.
func (s *fundService) UpdateFund(ctx context.Context, id string, input FundInput) (*models.Fund, error) {
	id, err := normalizeID(id, apperrors.ErrFundNotFound)
	if err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "fund name is required")
	}

	var fund models.Fund
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&fund).Error; err != nil {
			return database.TranslateNotFound(err, apperrors.ErrFundNotFound)
		}

		fund.Name = input.Name
		fund.VintageYear = input.VintageYear
		fund.TargetSizeUSD = roundCents(input.TargetSizeUSD)
		fund.Status = input.Status

		if err := tx.Select("name", "vintage_year", "target_size_usd", "status").Updates(&fund).Error; err != nil {
			return database.TranslateError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &fund, nil
}
