package mortgageschedule

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlendAPR(t *testing.T) {
	apr, err := BlendAPR(100, decimal.NewFromInt(5))

	require.NoError(t, err)
	assert.True(t, apr.Equal(decimal.NewFromInt(47)), apr.String())
}

func TestBlendAPR_RiskScoreOfOneAddsNothing(t *testing.T) {
	apr, err := BlendAPR(1, decimal.RequireFromString("2.5"))

	require.NoError(t, err)
	assert.Equal(t, "42.5", apr.String())
}

func TestBlendAPR_NonPositiveRiskScore(t *testing.T) {
	for _, score := range []int64{0, -10} {
		_, err := BlendAPR(score, decimal.NewFromInt(5))
		assert.ErrorIs(t, err, ErrNonPositiveRiskScore)
	}
}

func TestMonthlyRate(t *testing.T) {
	rate := MonthlyRate(decimal.NewFromInt(48))

	assert.Equal(t, "0.04", rate.String())
}

func TestMonthlyPayment_MatchesAnnuityFormula(t *testing.T) {
	rate := MonthlyRate(decimal.NewFromInt(47))

	payment, err := MonthlyPayment(decimal.NewFromInt(200000), rate, 12)
	require.NoError(t, err)

	r := 47.0 / 1200
	expected := 200000 * r / (1 - math.Pow(1+r, -12))
	got, _ := payment.Float64()
	assert.InDelta(t, expected, got, 0.01)
	assert.Equal(t, int32(-2), payment.Exponent())
}

func TestMonthlyPayment_SingleMonth(t *testing.T) {
	payment, err := MonthlyPayment(decimal.NewFromInt(1000), decimal.RequireFromString("0.01"), 1)

	require.NoError(t, err)
	assert.Equal(t, "1010", payment.String())
}

func TestMonthlyPayment_ZeroRate(t *testing.T) {
	_, err := MonthlyPayment(decimal.NewFromInt(1000), decimal.Zero, 12)

	assert.ErrorIs(t, err, ErrZeroMonthlyRate)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"mid month", date(2024, time.March, 15), 1, date(2024, time.April, 15)},
		{"clamps to leap february", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"clamps to short february", date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{"recovers day after short month", date(2024, time.January, 31), 2, date(2024, time.March, 31)},
		{"crosses year", date(2024, time.November, 30), 3, date(2025, time.February, 28)},
		{"many years", date(2024, time.February, 29), 48, date(2028, time.February, 29)},
		{"negative", date(2024, time.March, 31), -1, date(2024, time.February, 29)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.start, tt.months))
		})
	}
}

func TestAddMonths_KeepsTimeOfDay(t *testing.T) {
	got := AddMonths(fixedStart, 1)

	assert.Equal(t, time.Date(2024, time.February, 29, 9, 30, 0, 0, time.UTC), got)
}

func TestAddMonths_StrictlyIncreasing(t *testing.T) {
	prev := fixedStart
	for i := 1; i <= 360; i++ {
		next := AddMonths(fixedStart, i)
		assert.True(t, next.After(prev), "month %d: %v is not after %v", i, next, prev)
		prev = next
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
