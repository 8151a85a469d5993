package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"privatemarkets/internal/config"
	"privatemarkets/internal/database"
	"privatemarkets/internal/logger"
	"privatemarkets/internal/models"
	"privatemarkets/internal/services"
)

type seedInvestment struct {
	investor int
	fund     int
	amount   float64
	date     string
}

var (
	seedFunds = []services.FundInput{
		{Name: "Growth Fund I", VintageYear: 2024, TargetSizeUSD: 250000000, Status: models.FundStatusFundraising},
		{Name: "Venture Fund II", VintageYear: 2023, TargetSizeUSD: 150000000, Status: models.FundStatusInvesting},
		{Name: "Innovation Fund", VintageYear: 2025, TargetSizeUSD: 500000000, Status: models.FundStatusFundraising},
	}

	seedInvestors = []services.InvestorInput{
		{Name: "Goldman Sachs Asset Management", InvestorType: models.InvestorTypeInstitution, Email: "investments@gsam.com"},
		{Name: "CalPERS", InvestorType: models.InvestorTypeInstitution, Email: "privateequity@calpers.ca.gov"},
		{Name: "John Smith Family Office", InvestorType: models.InvestorTypeFamilyOffice, Email: "investments@smithfamily.com"},
		{Name: "Jane Doe", InvestorType: models.InvestorTypeIndividual, Email: "jane.doe@email.com"},
	}

	seedInvestments = []seedInvestment{
		{investor: 0, fund: 0, amount: 50000000, date: "2024-03-15"},
		{investor: 1, fund: 0, amount: 75000000, date: "2024-04-20"},
		{investor: 0, fund: 1, amount: 30000000, date: "2023-08-10"},
	}
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	reset := flag.Bool("reset", false, "clear all tables before seeding (requires ALLOW_DESTRUCTIVE_OPS)")
	flag.Parse()

	if err := run(context.Background(), *reset); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run(ctx context.Context, reset bool) error {
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dbManager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnw("failed to close database pool", "error", err)
		}
	}()

	if reset {
		if err := dbManager.ClearAll(); err != nil {
			return fmt.Errorf("failed to reset database: %w", err)
		}
	}

	funds := services.NewFundService(dbManager.DB())
	investors := services.NewInvestorService(dbManager.DB())
	investments := services.NewInvestmentService(dbManager.DB())

	fundIDs := make([]string, 0, len(seedFunds))
	for _, input := range seedFunds {
		fund, err := funds.CreateFund(ctx, input)
		if err != nil {
			return fmt.Errorf("failed to create fund %q: %w", input.Name, err)
		}
		fundIDs = append(fundIDs, fund.ID)
	}

	investorIDs := make([]string, 0, len(seedInvestors))
	for _, input := range seedInvestors {
		investor, err := investors.CreateInvestor(ctx, input)
		if err != nil {
			return fmt.Errorf("failed to create investor %q: %w", input.Name, err)
		}
		investorIDs = append(investorIDs, investor.ID)
	}

	for _, s := range seedInvestments {
		date, err := time.Parse("2006-01-02", s.date)
		if err != nil {
			return err
		}
		if _, err := investments.CreateInvestment(ctx, services.InvestmentInput{
			FundID:         fundIDs[s.fund],
			InvestorID:     investorIDs[s.investor],
			AmountUSD:      s.amount,
			InvestmentDate: date,
		}); err != nil {
			return fmt.Errorf("failed to create investment: %w", err)
		}
	}

	log.Infof("Seeded %d funds, %d investors, %d investments",
		len(fundIDs), len(investorIDs), len(seedInvestments))
	return nil
}
