package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MortgageApplication struct {
	ID             string                `bson:"_id"`
	Name           string                `bson:"contoso_name,omitempty"`
	Status         *int32                `bson:"contoso_applicationstatus,omitempty"`
	MortgageTerm   *int32                `bson:"contoso_mortgageterm,omitempty"`
	MortgageAmount *primitive.Decimal128 `bson:"contoso_mortgageamount,omitempty"`
	RiskScore      *int64                `bson:"contoso_riskscores,omitempty"`
	SalesTaxRate   *primitive.Decimal128 `bson:"contoso_salestaxrate,omitempty"`
	OwnerID        *string               `bson:"ownerid,omitempty"`
}

type MortgagePayment struct {
	ID                    primitive.ObjectID   `bson:"_id"`
	Name                  string               `bson:"contoso_name"`
	MortgageApplicationID string               `bson:"contoso_mortgageapplication"`
	DueDate               time.Time            `bson:"contoso_duedate"`
	PaymentAmount         primitive.Decimal128 `bson:"contoso_paymentamount"`
	PaymentNumber         string               `bson:"contoso_paymentnumber"`
	SequenceNumber        int32                `bson:"sequenceNumber"`
	OwnerID               *string              `bson:"ownerid,omitempty"`
	CreatedAt             time.Time            `bson:"createdAt"`
}
