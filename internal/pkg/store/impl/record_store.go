package impl

import (
	"context"
	"errors"

	"mortgageschedule/internal/pkg/consts"
	"mortgageschedule/internal/pkg/models"
	storemodels "mortgageschedule/internal/pkg/store/models"
	"mortgageschedule/internal/service/interfaces"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	operationRetrieve = "retrieve"
	operationCreate   = "create"
)

// RecordStore exposes the application and payment repositories as the host record store.
type RecordStore struct {
	applications interfaces.MortgageApplicationRepositoryInterface
	payments     interfaces.MortgagePaymentRepositoryInterface
}

func NewRecordStore(
	applications interfaces.MortgageApplicationRepositoryInterface,
	payments interfaces.MortgagePaymentRepositoryInterface,
) *RecordStore {
	return &RecordStore{applications: applications, payments: payments}
}

func (s *RecordStore) RetrieveApplication(
	ctx context.Context,
	id string,
	columns []string,
) (*models.MortgageApplication, error) {
	app, err := s.applications.GetApplicationColumns(ctx, id, columns)
	if err != nil {
		return nil, classifyStoreError(operationRetrieve, consts.MortgageApplicationEntity, err)
	}
	return app, nil
}

func (s *RecordStore) CreatePayment(ctx context.Context, payment models.MortgagePayment) (string, error) {
	id, err := s.payments.CreatePayment(ctx, payment)
	if err != nil {
		return "", classifyStoreError(operationCreate, consts.MortgagePaymentEntity, err)
	}
	return id, nil
}

// classifyStoreError turns server-reported driver errors into a ServiceFault.
// Anything else (network, decode, client-side) is returned unchanged.
func classifyStoreError(operation, entityType string, err error) error {
	var notFound *storemodels.NotFoundError
	if errors.As(err, &notFound) {
		return err
	}
	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) {
		return &storemodels.ServiceFault{
			Operation:  operation,
			EntityType: entityType,
			Code:       faultCode(err),
			Err:        err,
		}
	}
	return err
}

func faultCode(err error) int {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return int(cmdErr.Code)
	}
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		if len(writeErr.WriteErrors) > 0 {
			return writeErr.WriteErrors[0].Code
		}
		if writeErr.WriteConcernError != nil {
			return writeErr.WriteConcernError.Code
		}
	}
	return 0
}
