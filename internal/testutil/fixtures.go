package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"privatemarkets/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestFund creates a fundraising fund with a $250M target.
func CreateTestFund(t *testing.T, db *gorm.DB) *models.Fund {
	t.Helper()
	return CreateTestFundWithTarget(t, db, 250_000_000)
}

// CreateTestFundWithTarget creates a fundraising fund with the given target size.
func CreateTestFundWithTarget(t *testing.T, db *gorm.DB, target float64) *models.Fund {
	t.Helper()

	fund := &models.Fund{
		Name:          fmt.Sprintf("Test Fund %d", nextID()),
		VintageYear:   2024,
		TargetSizeUSD: target,
		Status:        models.FundStatusFundraising,
	}
	if err := db.Create(fund).Error; err != nil {
		t.Fatalf("failed to create test fund: %v", err)
	}
	return fund
}

// CreateTestInvestor creates an investor of the given type with a unique email.
func CreateTestInvestor(t *testing.T, db *gorm.DB, investorType models.InvestorType) *models.Investor {
	t.Helper()
	n := nextID()
	return CreateTestInvestorWithEmail(t, db, fmt.Sprintf("Investor %d", n), investorType, fmt.Sprintf("investor%d@test.com", n))
}

// CreateTestInvestorWithEmail creates an investor with the given name, type and email.
func CreateTestInvestorWithEmail(t *testing.T, db *gorm.DB, name string, investorType models.InvestorType, email string) *models.Investor {
	t.Helper()

	investor := &models.Investor{
		Name:         name,
		InvestorType: investorType,
		Email:        email,
	}
	if err := db.Create(investor).Error; err != nil {
		t.Fatalf("failed to create test investor: %v", err)
	}
	return investor
}

// CreateTestInvestment records an investment dated today.
func CreateTestInvestment(t *testing.T, db *gorm.DB, fundID, investorID string, amount float64) *models.Investment {
	t.Helper()
	return CreateTestInvestmentOn(t, db, fundID, investorID, amount, time.Now().UTC().Truncate(24*time.Hour))
}

// CreateTestInvestmentOn records an investment on the given date.
func CreateTestInvestmentOn(t *testing.T, db *gorm.DB, fundID, investorID string, amount float64, date time.Time) *models.Investment {
	t.Helper()

	investment := &models.Investment{
		FundID:         fundID,
		InvestorID:     investorID,
		AmountUSD:      amount,
		InvestmentDate: date,
	}
	if err := db.Create(investment).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return investment
}
