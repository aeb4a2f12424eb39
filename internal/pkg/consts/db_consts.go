package consts

const (
	MortgageApplicationCollection = "mortgageApplications"
	MortgagePaymentCollection     = "mortgagePayments"
)

// Redis keys
const (
	TraceKeyPrefix = "trace:"
)
