// Package analytics derives fund-level statistics from a fund and its
// investments. Everything here is a pure computation over already loaded
// records; loading is the caller's job.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"privatemarkets/internal/models"
)

// ManagementFeeRate is the annual management fee charged on capital raised.
const ManagementFeeRate = 0.02

// TopInvestorLimit caps the number of investors reported in TopInvestors.
const TopInvestorLimit = 5

// FundAnalytics is the aggregate view of a single fund.
type FundAnalytics struct {
	FundID            string                   `json:"fund_id"`
	TotalRaised       float64                  `json:"total_raised"`
	TargetSize        float64                  `json:"target_size"`
	UtilizationPct    float64                  `json:"utilization_pct"`
	InvestorCount     int                      `json:"investor_count"`
	AverageInvestment float64                  `json:"average_investment"`
	TopInvestors      []TopInvestor            `json:"top_investors"`
	ByInvestorType    map[string]TypeBreakdown `json:"by_investor_type"`
	FeeDistribution   FeeDistribution          `json:"fee_distribution"`
}

// TopInvestor is one entry of the investor concentration ranking.
type TopInvestor struct {
	InvestorID    string  `json:"investor_id"`
	InvestorName  string  `json:"investor_name"`
	TotalInvested float64 `json:"total_invested"`
	Percentage    float64 `json:"percentage"`
	Rank          int     `json:"rank"`
}

// TypeBreakdown summarizes the investments made by one investor type.
type TypeBreakdown struct {
	Count      int     `json:"count"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
}

// FeeDistribution is the management fee and its split across investors.
type FeeDistribution struct {
	TotalManagementFee float64         `json:"total_management_fee"`
	ByInvestor         []FeeAllocation `json:"by_investor"`
}

// FeeAllocation is one investor's share of the management fee.
type FeeAllocation struct {
	InvestorID     string  `json:"investor_id"`
	InvestorName   string  `json:"investor_name"`
	InvestedAmount float64 `json:"invested_amount"`
	Fee            float64 `json:"fee"`
	Percentage     float64 `json:"percentage"`
}

// Holding is an investor's combined position in a fund.
type Holding struct {
	InvestorID   string
	InvestorName string
	Amount       decimal.Decimal
}

var (
	hundred = decimal.NewFromInt(100)
	cent    = decimal.New(1, -2)
)

// Compute builds the analytics record for fund. investments must belong to
// fund and are expected in gateway order (amount descending); that order
// fixes summation and breaks ranking ties. Each investment's Investor should
// be preloaded so names and types can be reported.
func Compute(fund *models.Fund, investments []models.Investment) FundAnalytics {
	result := FundAnalytics{
		FundID:         fund.ID,
		TargetSize:     fund.TargetSizeUSD,
		InvestorCount:  len(investments),
		TopInvestors:   []TopInvestor{},
		ByInvestorType: map[string]TypeBreakdown{},
		FeeDistribution: FeeDistribution{
			ByInvestor: []FeeAllocation{},
		},
	}

	var totalRaised float64
	total := decimal.Zero
	for _, inv := range investments {
		totalRaised += inv.AmountUSD
		total = total.Add(decimal.NewFromFloat(inv.AmountUSD))
	}
	result.TotalRaised = totalRaised

	if fund.TargetSizeUSD > 0 {
		result.UtilizationPct = round2(total.Div(decimal.NewFromFloat(fund.TargetSizeUSD)).Mul(hundred))
	}
	if len(investments) > 0 {
		result.AverageInvestment = round2(total.Div(decimal.NewFromInt(int64(len(investments)))))
	}

	typeTotals := map[string]decimal.Decimal{}
	for _, inv := range investments {
		investorType := ""
		if inv.Investor != nil {
			investorType = string(inv.Investor.InvestorType)
		}
		entry := result.ByInvestorType[investorType]
		entry.Count++
		entry.Total += inv.AmountUSD
		result.ByInvestorType[investorType] = entry
		typeTotals[investorType] = typeTotals[investorType].Add(decimal.NewFromFloat(inv.AmountUSD))
	}
	for investorType, entry := range result.ByInvestorType {
		entry.Percentage = percentage(typeTotals[investorType], total)
		result.ByInvestorType[investorType] = entry
	}

	holdings := RankHoldings(investments)
	for i, h := range holdings {
		if i == TopInvestorLimit {
			break
		}
		result.TopInvestors = append(result.TopInvestors, TopInvestor{
			InvestorID:    h.InvestorID,
			InvestorName:  h.InvestorName,
			TotalInvested: h.Amount.InexactFloat64(),
			Percentage:    percentage(h.Amount, total),
			Rank:          i + 1,
		})
	}

	totalFee := total.Mul(decimal.NewFromFloat(ManagementFeeRate)).Round(2)
	result.FeeDistribution.TotalManagementFee = totalFee.InexactFloat64()
	result.FeeDistribution.ByInvestor = AllocateManagementFees(totalFee, holdings)

	return result
}

// RankHoldings combines investments per investor and orders the holdings by
// amount descending. Equal amounts keep the order in which each investor
// first appears in investments.
func RankHoldings(investments []models.Investment) []Holding {
	index := map[string]int{}
	holdings := make([]Holding, 0, len(investments))
	for _, inv := range investments {
		amount := decimal.NewFromFloat(inv.AmountUSD)
		if i, ok := index[inv.InvestorID]; ok {
			holdings[i].Amount = holdings[i].Amount.Add(amount)
			continue
		}
		name := ""
		if inv.Investor != nil {
			name = inv.Investor.Name
		}
		index[inv.InvestorID] = len(holdings)
		holdings = append(holdings, Holding{
			InvestorID:   inv.InvestorID,
			InvestorName: name,
			Amount:       amount,
		})
	}

	sort.SliceStable(holdings, func(i, j int) bool {
		return holdings[i].Amount.GreaterThan(holdings[j].Amount)
	})
	return holdings
}

// AllocateManagementFees splits totalFee across holdings in proportion to
// their amounts. Each share is floored to cents and the cents left over are
// handed out one at a time in holding order (largest holder first when
// holdings are ranked), so shares are never negative and always sum to
// totalFee exactly. With nothing invested every share is zero.
func AllocateManagementFees(totalFee decimal.Decimal, holdings []Holding) []FeeAllocation {
	allocations := make([]FeeAllocation, 0, len(holdings))
	if len(holdings) == 0 {
		return allocations
	}

	total := decimal.Zero
	for _, h := range holdings {
		total = total.Add(h.Amount)
	}

	fees := make([]decimal.Decimal, len(holdings))
	if total.IsPositive() {
		allocated := decimal.Zero
		for i, h := range holdings {
			fees[i] = totalFee.Mul(h.Amount).Div(total).RoundFloor(2)
			allocated = allocated.Add(fees[i])
		}
		leftover := totalFee.Sub(allocated).Mul(hundred).IntPart()
		for i := int64(0); i < leftover; i++ {
			idx := int(i) % len(fees)
			fees[idx] = fees[idx].Add(cent)
		}
	}

	for i, h := range holdings {
		allocations = append(allocations, FeeAllocation{
			InvestorID:     h.InvestorID,
			InvestorName:   h.InvestorName,
			InvestedAmount: h.Amount.InexactFloat64(),
			Fee:            fees[i].InexactFloat64(),
			Percentage:     percentage(h.Amount, total),
		})
	}
	return allocations
}

// percentage returns part as a share of whole, in percent to two decimals.
// A zero whole yields zero.
func percentage(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	return round2(part.Div(whole).Mul(hundred))
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
