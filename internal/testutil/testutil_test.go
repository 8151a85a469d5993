package testutil_test

import (
	"testing"

	"privatemarkets/internal/errors"
	"privatemarkets/internal/models"
	"privatemarkets/internal/testutil"
	"privatemarkets/internal/uuid"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"funds", "investors", "investments", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	db1 := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db1)
	db2 := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db2)

	testutil.CreateTestFund(t, db1)

	testutil.AssertCount(t, db1, "funds", 1)
	testutil.AssertCount(t, db2, "funds", 0)
}

func TestSetupTestDB_ForeignKeysEnforced(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	err := db.Create(&models.Investment{
		FundID:     uuid.New(),
		InvestorID: uuid.New(),
		AmountUSD:  100,
	}).Error
	if err == nil {
		t.Fatal("expected foreign key violation")
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	fund := testutil.CreateTestFund(t, db)
	if !uuid.IsCanonical(fund.ID) {
		t.Fatalf("fund should have a uuid ID, got %q", fund.ID)
	}
	if fund.TargetSizeUSD != 250_000_000 {
		t.Errorf("expected target 250000000, got %f", fund.TargetSizeUSD)
	}

	investor := testutil.CreateTestInvestor(t, db, models.InvestorTypeInstitution)
	if investor.InvestorType != models.InvestorTypeInstitution {
		t.Errorf("expected Institution, got %s", investor.InvestorType)
	}

	inv := testutil.CreateTestInvestment(t, db, fund.ID, investor.ID, 1_000_000)
	if inv.AmountUSD != 1_000_000 {
		t.Errorf("expected amount 1000000, got %f", inv.AmountUSD)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrFundNotFound, "custom message")
	testutil.AssertAppError(t, err, "FUND_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
