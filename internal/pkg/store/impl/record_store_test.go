package impl

import (
	"context"
	"errors"
	"testing"

	"mortgageschedule/internal/pkg/consts"
	"mortgageschedule/internal/pkg/models"
	storemodels "mortgageschedule/internal/pkg/store/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) GetApplicationColumns(ctx context.Context, id string, columns []string) (*models.MortgageApplication, error) {
	args := m.Called(ctx, id, columns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MortgageApplication), args.Error(1)
}

type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) CreatePayment(ctx context.Context, payment models.MortgagePayment) (string, error) {
	args := m.Called(ctx, payment)
	return args.String(0), args.Error(1)
}

func TestRetrieveApplication(t *testing.T) {
	apps := new(MockApplicationRepo)
	store := NewRecordStore(apps, new(MockPaymentRepo))
	expected := &models.MortgageApplication{ID: "app-1"}
	apps.On("GetApplicationColumns", mock.Anything, "app-1", []string{"a"}).Return(expected, nil)

	app, err := store.RetrieveApplication(context.Background(), "app-1", []string{"a"})

	require.NoError(t, err)
	assert.Same(t, expected, app)
}

func TestRetrieveApplication_NotFoundPassesThrough(t *testing.T) {
	apps := new(MockApplicationRepo)
	store := NewRecordStore(apps, new(MockPaymentRepo))
	notFound := &storemodels.NotFoundError{EntityType: "contoso_mortgageapplication", ID: "x"}
	apps.On("GetApplicationColumns", mock.Anything, "x", mock.Anything).Return(nil, notFound)

	_, err := store.RetrieveApplication(context.Background(), "x", nil)

	assert.Same(t, notFound, err)
}

func TestRetrieveApplication_CommandErrorBecomesServiceFault(t *testing.T) {
	apps := new(MockApplicationRepo)
	store := NewRecordStore(apps, new(MockPaymentRepo))
	cmdErr := mongo.CommandError{Code: 13, Message: "not authorized", Name: "Unauthorized"}
	apps.On("GetApplicationColumns", mock.Anything, "app-1", mock.Anything).Return(nil, cmdErr)

	_, err := store.RetrieveApplication(context.Background(), "app-1", nil)

	var fault *storemodels.ServiceFault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, operationRetrieve, fault.Operation)
	assert.Equal(t, consts.MortgageApplicationEntity, fault.EntityType)
	assert.Equal(t, 13, fault.Code)
}

func TestCreatePayment_WriteExceptionBecomesServiceFault(t *testing.T) {
	payments := new(MockPaymentRepo)
	store := NewRecordStore(new(MockApplicationRepo), payments)
	writeErr := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Index: 0, Code: 11000, Message: "duplicate key"}}}
	payments.On("CreatePayment", mock.Anything, mock.Anything).Return("", writeErr)

	_, err := store.CreatePayment(context.Background(), models.MortgagePayment{})

	var fault *storemodels.ServiceFault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, operationCreate, fault.Operation)
	assert.Equal(t, consts.MortgagePaymentEntity, fault.EntityType)
	assert.Equal(t, 11000, fault.Code)
	assert.Contains(t, fault.Error(), "during create of contoso_mortgagepayment (code 11000)")
}

func TestCreatePayment_WriteConcernErrorCode(t *testing.T) {
	payments := new(MockPaymentRepo)
	store := NewRecordStore(new(MockApplicationRepo), payments)
	writeErr := mongo.WriteException{WriteConcernError: &mongo.WriteConcernError{Code: 64, Message: "waiting for replication timed out"}}
	payments.On("CreatePayment", mock.Anything, mock.Anything).Return("", writeErr)

	_, err := store.CreatePayment(context.Background(), models.MortgagePayment{})

	var fault *storemodels.ServiceFault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, 64, fault.Code)
}

func TestCreatePayment_UnstructuredErrorPassesThrough(t *testing.T) {
	payments := new(MockPaymentRepo)
	store := NewRecordStore(new(MockApplicationRepo), payments)
	plain := errors.New("connection reset")
	payments.On("CreatePayment", mock.Anything, mock.Anything).Return("", plain)

	_, err := store.CreatePayment(context.Background(), models.MortgagePayment{})

	var fault *storemodels.ServiceFault
	assert.False(t, errors.As(err, &fault))
	assert.Same(t, plain, err)
}

func TestCreatePayment_ReturnsID(t *testing.T) {
	payments := new(MockPaymentRepo)
	store := NewRecordStore(new(MockApplicationRepo), payments)
	payments.On("CreatePayment", mock.Anything, mock.Anything).Return("65f0c0ffee", nil)

	id, err := store.CreatePayment(context.Background(), models.MortgagePayment{SequenceNumber: 1})

	require.NoError(t, err)
	assert.Equal(t, "65f0c0ffee", id)
}
