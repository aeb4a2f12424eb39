package mortgageschedule

import (
	"context"
	"time"

	"mortgageschedule/internal/pkg/consts"
	"mortgageschedule/internal/pkg/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

var fixedStart = time.Date(2024, time.January, 31, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedStart }

type MockRecordStore struct {
	mock.Mock
}

func (m *MockRecordStore) RetrieveApplication(ctx context.Context, id string, columns []string) (*models.MortgageApplication, error) {
	args := m.Called(ctx, id, columns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MortgageApplication), args.Error(1)
}

func (m *MockRecordStore) CreatePayment(ctx context.Context, payment models.MortgagePayment) (string, error) {
	args := m.Called(ctx, payment)
	return args.String(0), args.Error(1)
}

// createdPayments returns the payments passed to CreatePayment, in call order.
func (m *MockRecordStore) createdPayments() []models.MortgagePayment {
	var out []models.MortgagePayment
	for _, call := range m.Calls {
		if call.Method == "CreatePayment" {
			out = append(out, call.Arguments.Get(1).(models.MortgagePayment))
		}
	}
	return out
}

type recordingSink struct {
	lines []string
}

func (s *recordingSink) Trace(_ context.Context, message string) {
	s.lines = append(s.lines, message)
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func approvedTarget() *models.TargetEntity {
	return &models.TargetEntity{
		LogicalName: consts.MortgageApplicationEntity,
		ID:          "app-1",
		Attributes: models.MortgageApplication{
			Name:            "Contoso mortgage",
			Status:          intPtr(consts.ApplicationStatusApproved),
			TermMonths:      intPtr(12),
			PrincipalAmount: decPtr("200000"),
			RiskScore:       int64Ptr(100),
			SalesTaxRate:    decPtr("5"),
		},
	}
}
