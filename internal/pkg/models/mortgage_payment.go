package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MortgagePayment is one scheduled monthly installment of an application.
type MortgagePayment struct {
	ApplicationID  string
	Name           string
	SequenceNumber int
	Label          string
	DueDate        time.Time
	Amount         decimal.Decimal
	OwnerReference *string
}
