package consts

// Logical entity names as exposed by the host record store.
const (
	MortgageApplicationEntity = "contoso_mortgageapplication"
	MortgagePaymentEntity     = "contoso_mortgagepayment"
)

// ApplicationStatusApproved is the option-set code of the "Approved" application status.
const ApplicationStatusApproved = 463270002

// Rate components, in percentage points per year.
const (
	BaseAPR   = 20
	APRMargin = 20
)

// Mortgage application columns re-read when a trigger payload is partial.
const (
	ColumnMortgageTerm   = "contoso_mortgageterm"
	ColumnMortgageAmount = "contoso_mortgageamount"
	ColumnRiskScore      = "contoso_riskscores"
	ColumnSalesTaxRate   = "contoso_salestaxrate"
)

// RequiredApplicationColumns is the exact column set of the retrieve call.
var RequiredApplicationColumns = []string{
	ColumnMortgageTerm,
	ColumnMortgageAmount,
	ColumnRiskScore,
	ColumnSalesTaxRate,
}

const PaymentLabelFormat = "Payment %d"
