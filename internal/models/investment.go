package models

import "time"

// Investment is a capital commitment by one investor into one fund.
type Investment struct {
	Base
	InvestorID     string    `gorm:"type:uuid;not null;index" json:"investor_id"`
	FundID         string    `gorm:"type:uuid;not null;index" json:"fund_id"`
	AmountUSD      float64   `gorm:"type:numeric(18,2);not null;check:chk_investments_amount,amount_usd >= 0" json:"amount_usd"`
	InvestmentDate time.Time `gorm:"type:date;not null" json:"investment_date"`

	// Relationships
	Investor *Investor `gorm:"foreignKey:InvestorID;constraint:OnDelete:RESTRICT" json:"investor,omitempty"`
	Fund     *Fund     `gorm:"foreignKey:FundID;constraint:OnDelete:RESTRICT" json:"-"`
}
