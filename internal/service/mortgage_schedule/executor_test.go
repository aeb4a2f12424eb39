package mortgageschedule

import (
	"context"
	"errors"
	"math"
	"testing"

	"mortgageschedule/internal/pkg/consts"
	"mortgageschedule/internal/pkg/log_messages"
	"mortgageschedule/internal/pkg/models"
	storemodels "mortgageschedule/internal/pkg/store/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestExecutor(store *MockRecordStore, sink *recordingSink) *Executor {
	return NewExecutor(store, sink, WithClock(fixedClock))
}

func assertBracketed(t *testing.T, lines []string) {
	t.Helper()
	require.NotEmpty(t, lines)
	assert.Equal(t, log_messages.TraceExecutionStarted, lines[0])
	assert.Equal(t, log_messages.TraceExecutionCompleted, lines[len(lines)-1])
}

func TestExecute_ApprovedApplication(t *testing.T) {
	store := new(MockRecordStore)
	sink := &recordingSink{}
	store.On("CreatePayment", mock.Anything, mock.Anything).Return("id", nil)

	result, err := newTestExecutor(store, sink).Execute(context.Background(), approvedTarget())

	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Equal(t, 12, result.PaymentsCreated)

	r := 47.0 / 1200
	expected := 200000 * r / (1 - math.Pow(1+r, -12))
	got, _ := result.MonthlyPayment.Float64()
	assert.InDelta(t, expected, got, 0.01)

	payments := store.createdPayments()
	require.Len(t, payments, 12)
	for i, p := range payments {
		assert.Equal(t, i+1, p.SequenceNumber)
		assert.Equal(t, AddMonths(fixedStart, i+1), p.DueDate)
		assert.True(t, p.Amount.Equal(result.MonthlyPayment))
		if i > 0 {
			assert.True(t, p.DueDate.After(payments[i-1].DueDate))
		}
	}
	store.AssertNotCalled(t, "RetrieveApplication", mock.Anything, mock.Anything, mock.Anything)
	assertBracketed(t, sink.lines)
}

func TestExecute_RunningTwiceDuplicatesSchedule(t *testing.T) {
	store := new(MockRecordStore)
	store.On("CreatePayment", mock.Anything, mock.Anything).Return("id", nil)
	exec := newTestExecutor(store, &recordingSink{})

	_, err := exec.Execute(context.Background(), approvedTarget())
	require.NoError(t, err)
	_, err = exec.Execute(context.Background(), approvedTarget())
	require.NoError(t, err)

	store.AssertNumberOfCalls(t, "CreatePayment", 24)
}

func TestExecute_Skips(t *testing.T) {
	notApproved := approvedTarget()
	notApproved.Attributes.Status = intPtr(463270000)

	wrongType := approvedTarget()
	wrongType.LogicalName = consts.MortgagePaymentEntity

	for name, tc := range map[string]struct {
		target *models.TargetEntity
		reason SkipReason
	}{
		"not approved": {notApproved, SkipNotApproved},
		"wrong type":   {wrongType, SkipWrongEntityType},
		"no target":    {nil, SkipTargetMissing},
	} {
		t.Run(name, func(t *testing.T) {
			store := new(MockRecordStore)
			sink := &recordingSink{}

			result, err := newTestExecutor(store, sink).Execute(context.Background(), tc.target)

			require.NoError(t, err)
			assert.True(t, result.Skipped)
			assert.Equal(t, tc.reason, result.SkipReason)
			assert.Zero(t, result.PaymentsCreated)
			store.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
			assertBracketed(t, sink.lines)
			assert.Len(t, sink.lines, 3)
		})
	}
}

func TestExecute_ZeroTermCreatesNothing(t *testing.T) {
	store := new(MockRecordStore)
	target := approvedTarget()
	target.Attributes.TermMonths = intPtr(0)

	result, err := newTestExecutor(store, &recordingSink{}).Execute(context.Background(), target)

	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Zero(t, result.PaymentsCreated)
	store.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
}

func TestExecute_ComputationErrorIsUnexpectedFailure(t *testing.T) {
	store := new(MockRecordStore)
	sink := &recordingSink{}
	target := approvedTarget()
	target.Attributes.RiskScore = int64Ptr(0)

	_, err := newTestExecutor(store, sink).Execute(context.Background(), target)

	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, log_messages.ExecutionFailedUnexpected, execErr.Message)
	assert.ErrorIs(t, err, ErrNonPositiveRiskScore)
	store.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
	assertBracketed(t, sink.lines)
	assert.Contains(t, sink.lines[len(sink.lines)-2], "Exception: ")
}

func TestExecute_ZeroRateIsFatal(t *testing.T) {
	store := new(MockRecordStore)
	target := approvedTarget()
	target.Attributes.RiskScore = int64Ptr(1)
	target.Attributes.SalesTaxRate = decPtr("-40")

	_, err := newTestExecutor(store, &recordingSink{}).Execute(context.Background(), target)

	assert.ErrorIs(t, err, ErrZeroMonthlyRate)
	store.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
}

func TestExecute_MissingRiskScoreRetrievesOnce(t *testing.T) {
	store := new(MockRecordStore)
	target := approvedTarget()
	target.Attributes.RiskScore = nil
	store.On("RetrieveApplication", mock.Anything, "app-1", consts.RequiredApplicationColumns).
		Return(&models.MortgageApplication{RiskScore: int64Ptr(100)}, nil).Once()
	store.On("CreatePayment", mock.Anything, mock.Anything).Return("id", nil)

	result, err := newTestExecutor(store, &recordingSink{}).Execute(context.Background(), target)

	require.NoError(t, err)
	assert.Equal(t, 12, result.PaymentsCreated)
	store.AssertNumberOfCalls(t, "RetrieveApplication", 1)
}

func TestExecute_StoreFaultsAreServiceFaults(t *testing.T) {
	t.Run("not found on retrieve", func(t *testing.T) {
		store := new(MockRecordStore)
		sink := &recordingSink{}
		target := approvedTarget()
		target.Attributes.TermMonths = nil
		notFound := &storemodels.NotFoundError{EntityType: consts.MortgageApplicationEntity, ID: "app-1"}
		store.On("RetrieveApplication", mock.Anything, "app-1", mock.Anything).Return(nil, notFound)

		_, err := newTestExecutor(store, sink).Execute(context.Background(), target)

		var execErr *ExecutionError
		require.ErrorAs(t, err, &execErr)
		assert.Equal(t, log_messages.ExecutionFailedServiceFault, execErr.Message)
		assert.Same(t, notFound, execErr.Cause)
		assertBracketed(t, sink.lines)
		assert.Contains(t, sink.lines[len(sink.lines)-2], "ServiceFault: ")
	})

	t.Run("fault on create keeps earlier payments", func(t *testing.T) {
		store := new(MockRecordStore)
		fault := &storemodels.ServiceFault{Operation: "create", EntityType: consts.MortgagePaymentEntity, Code: 11000, Err: errors.New("duplicate key")}
		store.On("CreatePayment", mock.Anything, mock.MatchedBy(func(p models.MortgagePayment) bool {
			return p.SequenceNumber < 5
		})).Return("id", nil)
		store.On("CreatePayment", mock.Anything, mock.MatchedBy(func(p models.MortgagePayment) bool {
			return p.SequenceNumber == 5
		})).Return("", fault)

		result, err := newTestExecutor(store, &recordingSink{}).Execute(context.Background(), approvedTarget())

		var execErr *ExecutionError
		require.ErrorAs(t, err, &execErr)
		assert.Equal(t, log_messages.ExecutionFailedServiceFault, execErr.Message)
		assert.Equal(t, 4, result.PaymentsCreated)
		store.AssertNumberOfCalls(t, "CreatePayment", 5)
	})
}

func TestExecute_UnstructuredStoreFailure(t *testing.T) {
	store := new(MockRecordStore)
	store.On("CreatePayment", mock.Anything, mock.Anything).Return("", errors.New("connection reset"))

	_, err := newTestExecutor(store, &recordingSink{}).Execute(context.Background(), approvedTarget())

	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, log_messages.ExecutionFailedUnexpected, execErr.Message)
	assert.EqualError(t, execErr.Cause, "connection reset")
	store.AssertNumberOfCalls(t, "CreatePayment", 1)
}

func TestExecutionError_Message(t *testing.T) {
	err := &ExecutionError{Message: "failed", Cause: errors.New("cause")}

	assert.Equal(t, "failed: cause", err.Error())
	assert.Equal(t, "failed", (&ExecutionError{Message: "failed"}).Error())
}
