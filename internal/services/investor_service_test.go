package services

import (
	"context"
	"testing"
	"time"

	"privatemarkets/internal/models"
	"privatemarkets/internal/testutil"
	"privatemarkets/internal/uuid"
)

func TestCreateInvestor(t *testing.T) {
	ctx := context.Background()

	t.Run("round_trip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestorService(db)

		created, err := svc.CreateInvestor(ctx, InvestorInput{
			Name:         "John Smith Family Office",
			InvestorType: models.InvestorTypeFamilyOffice,
			Email:        "investments@smithfamily.com",
		})
		testutil.AssertNoError(t, err)

		fetched, err := svc.GetInvestorByID(ctx, created.ID)
		testutil.AssertNoError(t, err)
		if fetched.Name != created.Name || fetched.InvestorType != models.InvestorTypeFamilyOffice ||
			fetched.Email != "investments@smithfamily.com" {
			t.Errorf("unexpected investor: %+v", fetched)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestorService(db)

		input := InvestorInput{
			Name:         "CalPERS",
			InvestorType: models.InvestorTypeInstitution,
			Email:        "privateequity@calpers.ca.gov",
		}
		_, err := svc.CreateInvestor(ctx, input)
		testutil.AssertNoError(t, err)

		input.Name = "CalPERS Duplicate"
		_, err = svc.CreateInvestor(ctx, input)
		testutil.AssertAppError(t, err, "DUPLICATE_RECORD")
		testutil.AssertCount(t, db, "investors", 1)
	})

	t.Run("unknown_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestorService(db)

		_, err := svc.CreateInvestor(ctx, InvestorInput{
			Name:         "Bank",
			InvestorType: "Bank",
			Email:        "bank@example.com",
		})
		testutil.AssertAppError(t, err, "INVALID_DATA")
		testutil.AssertCount(t, db, "investors", 0)
	})
}

func TestGetInvestorByID(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewInvestorService(db)

	_, err := svc.GetInvestorByID(ctx, uuid.New())
	testutil.AssertAppError(t, err, "INVESTOR_NOT_FOUND")
}

func TestGetAllInvestors(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewInvestorService(db)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, email := range []string{"first@example.com", "second@example.com"} {
		investor := &models.Investor{
			Base:         models.Base{CreatedAt: base.Add(time.Duration(i) * time.Minute)},
			Name:         email,
			InvestorType: models.InvestorTypeIndividual,
			Email:        email,
		}
		if err := db.Create(investor).Error; err != nil {
			t.Fatalf("failed to create investor: %v", err)
		}
	}

	investors, err := svc.GetAllInvestors(ctx)
	testutil.AssertNoError(t, err)
	if len(investors) != 2 {
		t.Fatalf("expected 2 investors, got %d", len(investors))
	}
	if investors[0].Email != "second@example.com" {
		t.Errorf("expected newest investor first, got %s", investors[0].Email)
	}
}
