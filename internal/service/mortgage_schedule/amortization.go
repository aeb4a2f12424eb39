package mortgageschedule

import (
	"fmt"
	"math"
	"time"

	"mortgageschedule/internal/pkg/consts"

	"github.com/shopspring/decimal"
)

var (
	monthsPerYearPercent = decimal.NewFromInt(1200)
	one                  = decimal.NewFromInt(1)
)

// BlendAPR returns base + margin + log10(riskScore) + salesTaxRate, in percent.
func BlendAPR(riskScore int64, salesTaxRate decimal.Decimal) (decimal.Decimal, error) {
	if riskScore <= 0 {
		return decimal.Zero, fmt.Errorf("%w: got %d", ErrNonPositiveRiskScore, riskScore)
	}
	riskAdjustment := decimal.NewFromFloat(math.Log10(float64(riskScore)))
	return decimal.NewFromInt(consts.BaseAPR).
		Add(decimal.NewFromInt(consts.APRMargin)).
		Add(riskAdjustment).
		Add(salesTaxRate), nil
}

// MonthlyRate converts an annual percentage into a per-month fraction.
func MonthlyRate(apr decimal.Decimal) decimal.Decimal {
	return apr.Div(monthsPerYearPercent)
}

// MonthlyPayment is the level annuity payment Pv*r / (1 - (1+r)^-n), rounded to cents.
// The caller guarantees n > 0.
func MonthlyPayment(principal, rate decimal.Decimal, n int) (decimal.Decimal, error) {
	if rate.IsZero() {
		return decimal.Zero, ErrZeroMonthlyRate
	}
	growth, err := one.Add(rate).PowInt32(int32(n))
	if err != nil {
		return decimal.Zero, err
	}
	denominator := growth.Sub(one)
	if denominator.IsZero() {
		return decimal.Zero, ErrZeroMonthlyRate
	}
	return principal.Mul(rate).Mul(growth).Div(denominator).Round(2), nil
}

// AddMonths moves t forward by months calendar months. When the day does not
// exist in the target month it is clamped to that month's last day.
func AddMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	total := int(month) - 1 + months
	year += floorDiv(total, 12)
	target := time.Month(total-floorDiv(total, 12)*12 + 1)

	if last := daysIn(year, target, t.Location()); day > last {
		day = last
	}
	return time.Date(year, target, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
