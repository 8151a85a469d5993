package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"privatemarkets/internal/database"
	apperrors "privatemarkets/internal/errors"
	"privatemarkets/internal/models"
)

// investorService handles investor-related business logic.
type investorService struct {
	db *gorm.DB
}

// NewInvestorService creates a new InvestorServicer.
func NewInvestorService(db *gorm.DB) InvestorServicer {
	return &investorService{db: db}
}

// GetAllInvestors returns every investor, newest first.
func (s *investorService) GetAllInvestors(ctx context.Context) ([]models.Investor, error) {
	investors := []models.Investor{}
	if err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&investors).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return investors, nil
}

// GetInvestorByID retrieves an investor by ID.
func (s *investorService) GetInvestorByID(ctx context.Context, id string) (*models.Investor, error) {
	id, err := normalizeID(id, apperrors.ErrInvestorNotFound)
	if err != nil {
		return nil, err
	}

	var investor models.Investor
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&investor).Error; err != nil {
		return nil, database.TranslateNotFound(err, apperrors.ErrInvestorNotFound)
	}
	return &investor, nil
}

// CreateInvestor persists a new investor. Emails are unique across investors;
// a clash is reported as a conflict and nothing is written.
func (s *investorService) CreateInvestor(ctx context.Context, input InvestorInput) (*models.Investor, error) {
	if input.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "investor name is required")
	}

	investor := &models.Investor{
		Name:         input.Name,
		InvestorType: input.InvestorType,
		Email:        strings.TrimSpace(input.Email),
	}
	if err := s.db.WithContext(ctx).Create(investor).Error; err != nil {
		translated := database.TranslateError(err)
		var appErr *apperrors.AppError
		if errors.As(translated, &appErr) && appErr.Code == apperrors.ErrDuplicateRecord.Code {
			return nil, apperrors.Wrap(apperrors.ErrDuplicateEmail, err)
		}
		return nil, translated
	}
	return investor, nil
}
