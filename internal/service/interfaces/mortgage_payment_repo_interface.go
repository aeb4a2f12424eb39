package interfaces

import (
	"context"

	"mortgageschedule/internal/pkg/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type MortgagePaymentRepositoryInterface interface {
	CreatePayment(ctx context.Context, payment models.MortgagePayment) (string, error)
}

type MortgagePaymentStoreInterface interface {
	Create(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error)
}
