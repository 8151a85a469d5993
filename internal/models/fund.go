package models

// FundStatus represents the lifecycle stage of a fund.
type FundStatus string

const (
	FundStatusFundraising FundStatus = "Fundraising"
	FundStatusInvesting   FundStatus = "Investing"
	FundStatusClosed      FundStatus = "Closed"
)

// FundStatuses lists every valid fund status in display order.
var FundStatuses = []string{
	string(FundStatusFundraising),
	string(FundStatusInvesting),
	string(FundStatusClosed),
}

// Fund represents a pooled investment vehicle with a fundraising target.
type Fund struct {
	Base
	Name          string     `gorm:"not null" json:"name"`
	VintageYear   int        `gorm:"not null;check:chk_funds_vintage_year,vintage_year BETWEEN 1900 AND 2100" json:"vintage_year"`
	TargetSizeUSD float64    `gorm:"type:numeric(18,2);not null;check:chk_funds_target_size,target_size_usd >= 0" json:"target_size_usd"`
	Status        FundStatus `gorm:"not null;check:chk_funds_status,status IN ('Fundraising','Investing','Closed')" json:"status"`
}
