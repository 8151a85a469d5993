package models

// InvestorType categorizes who is committing capital.
type InvestorType string

const (
	InvestorTypeIndividual   InvestorType = "Individual"
	InvestorTypeInstitution  InvestorType = "Institution"
	InvestorTypeFamilyOffice InvestorType = "Family Office"
)

// InvestorTypes lists every valid investor type in display order.
var InvestorTypes = []string{
	string(InvestorTypeIndividual),
	string(InvestorTypeInstitution),
	string(InvestorTypeFamilyOffice),
}

// Investor represents an individual, institution or family office.
type Investor struct {
	Base
	Name         string       `gorm:"not null" json:"name"`
	InvestorType InvestorType `gorm:"not null;check:chk_investors_type,investor_type IN ('Individual','Institution','Family Office')" json:"investor_type"`
	Email        string       `gorm:"uniqueIndex;not null" json:"email"`
}
