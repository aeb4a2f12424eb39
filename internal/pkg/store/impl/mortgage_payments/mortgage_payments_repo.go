package mortgage_payments

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mortgageschedule/internal/pkg/consts"
	mongodb "mortgageschedule/internal/pkg/db/mongo"
	"mortgageschedule/internal/pkg/logger"
	"mortgageschedule/internal/pkg/models"
	storemodels "mortgageschedule/internal/pkg/store/models"
	"mortgageschedule/internal/pkg/store/repository"
	"mortgageschedule/internal/service/interfaces"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MortgagePaymentRepository struct {
	repo interfaces.MortgagePaymentStoreInterface
	now  func() time.Time
}

func NewMortgagePaymentRepository(client *mongodb.MongoClient) *MortgagePaymentRepository {
	collection := client.Database.Collection(consts.MortgagePaymentCollection)
	repo := repository.NewMongoRepository[storemodels.MortgagePayment](collection)
	return &MortgagePaymentRepository{repo: repo, now: time.Now}
}

func NewMortgagePaymentRepositoryWithInterface(repo interfaces.MortgagePaymentStoreInterface) *MortgagePaymentRepository {
	return &MortgagePaymentRepository{repo: repo, now: time.Now}
}

// CreatePayment inserts a single payment document and returns its hex id.
func (r *MortgagePaymentRepository) CreatePayment(ctx context.Context, payment models.MortgagePayment) (string, error) {
	amount, err := primitive.ParseDecimal128(payment.Amount.String())
	if err != nil {
		return "", fmt.Errorf("payment amount %s: %w", payment.Amount.String(), err)
	}

	doc := storemodels.MortgagePayment{
		ID:                    primitive.NewObjectID(),
		Name:                  payment.Name,
		MortgageApplicationID: payment.ApplicationID,
		DueDate:               payment.DueDate,
		PaymentAmount:         amount,
		PaymentNumber:         payment.Label,
		SequenceNumber:        int32(payment.SequenceNumber),
		OwnerID:               payment.OwnerReference,
		CreatedAt:             r.now().UTC(),
	}

	if _, err := r.repo.Create(ctx, doc); err != nil {
		logger.CtxError(ctx, "Error inserting mortgage payment", err,
			slog.String("application_id", payment.ApplicationID),
			slog.Int("sequence_number", payment.SequenceNumber),
		)
		return "", err
	}

	logger.CtxDebug(ctx, "Inserted mortgage payment",
		slog.String("payment_id", doc.ID.Hex()),
		slog.String("application_id", payment.ApplicationID),
		slog.Int("sequence_number", payment.SequenceNumber),
	)
	return doc.ID.Hex(), nil
}
