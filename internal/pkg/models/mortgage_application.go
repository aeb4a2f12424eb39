package models

import (
	"github.com/shopspring/decimal"
)

// MortgageApplication carries only the attributes the schedule run touches.
// A nil pointer means the attribute was not present on the record.
type MortgageApplication struct {
	ID              string           `json:"-"`
	Name            string           `json:"contoso_name,omitempty"`
	Status          *int             `json:"contoso_applicationstatus,omitempty"`
	TermMonths      *int             `json:"contoso_mortgageterm,omitempty"`
	PrincipalAmount *decimal.Decimal `json:"contoso_mortgageamount,omitempty"`
	RiskScore       *int64           `json:"contoso_riskscores,omitempty"`
	SalesTaxRate    *decimal.Decimal `json:"contoso_salestaxrate,omitempty"`
	OwnerReference  *string          `json:"ownerid,omitempty"`
}

func (a *MortgageApplication) HasStatus() bool          { return a.Status != nil }
func (a *MortgageApplication) HasTermMonths() bool      { return a.TermMonths != nil }
func (a *MortgageApplication) HasPrincipalAmount() bool { return a.PrincipalAmount != nil }
func (a *MortgageApplication) HasRiskScore() bool       { return a.RiskScore != nil }
func (a *MortgageApplication) HasSalesTaxRate() bool    { return a.SalesTaxRate != nil }
func (a *MortgageApplication) HasOwnerReference() bool  { return a.OwnerReference != nil }

// HasScheduleInputs reports whether term, principal, risk score and tax rate are all populated.
func (a *MortgageApplication) HasScheduleInputs() bool {
	return a.HasTermMonths() && a.HasPrincipalAmount() && a.HasRiskScore() && a.HasSalesTaxRate()
}

// MergeScheduleInputs fills schedule inputs from a re-read record. Attributes
// absent from the re-read stay as they were on the trigger payload.
func (a *MortgageApplication) MergeScheduleInputs(full *MortgageApplication) {
	if full == nil {
		return
	}
	if full.HasTermMonths() {
		a.TermMonths = full.TermMonths
	}
	if full.HasPrincipalAmount() {
		a.PrincipalAmount = full.PrincipalAmount
	}
	if full.HasRiskScore() {
		a.RiskScore = full.RiskScore
	}
	if full.HasSalesTaxRate() {
		a.SalesTaxRate = full.SalesTaxRate
	}
	if !a.HasOwnerReference() && full.HasOwnerReference() {
		a.OwnerReference = full.OwnerReference
	}
	if a.Name == "" {
		a.Name = full.Name
	}
}
