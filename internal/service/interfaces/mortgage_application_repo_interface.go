package interfaces

import (
	"context"

	"mortgageschedule/internal/pkg/models"
	storemodels "mortgageschedule/internal/pkg/store/models"

	"go.mongodb.org/mongo-driver/mongo/options"
)

type MortgageApplicationRepositoryInterface interface {
	GetApplicationColumns(ctx context.Context, id string, columns []string) (*models.MortgageApplication, error)
}

type MortgageApplicationStoreInterface interface {
	FindOne(ctx context.Context, filter interface{}, opt *options.FindOneOptions) (storemodels.MortgageApplication, error)
}
