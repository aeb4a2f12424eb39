package mortgage_applications

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mortgageschedule/internal/pkg/consts"
	mongodb "mortgageschedule/internal/pkg/db/mongo"
	"mortgageschedule/internal/pkg/logger"
	"mortgageschedule/internal/pkg/models"
	storemodels "mortgageschedule/internal/pkg/store/models"
	"mortgageschedule/internal/pkg/store/repository"
	"mortgageschedule/internal/service/interfaces"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MortgageApplicationRepository struct {
	repo interfaces.MortgageApplicationStoreInterface
}

func NewMortgageApplicationRepository(client *mongodb.MongoClient) *MortgageApplicationRepository {
	collection := client.Database.Collection(consts.MortgageApplicationCollection)
	repo := repository.NewMongoRepository[storemodels.MortgageApplication](collection)
	return &MortgageApplicationRepository{repo: repo}
}

func NewMortgageApplicationRepositoryWithInterface(
	repo interfaces.MortgageApplicationStoreInterface,
) *MortgageApplicationRepository {
	return &MortgageApplicationRepository{repo: repo}
}

// GetApplicationColumns reads only the requested columns of one application.
func (r *MortgageApplicationRepository) GetApplicationColumns(
	ctx context.Context,
	id string,
	columns []string,
) (*models.MortgageApplication, error) {
	filter := bson.M{"_id": id}
	opts := options.FindOne().SetProjection(projection(columns))

	doc, err := r.repo.FindOne(ctx, filter, opts)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			logger.CtxWarn(ctx, "No mortgage application found", slog.String("application_id", id))
			return nil, &storemodels.NotFoundError{EntityType: consts.MortgageApplicationEntity, ID: id}
		}
		logger.CtxError(ctx, "Error finding mortgage application", err, slog.String("application_id", id))
		return nil, err
	}

	app, err := toApplication(doc)
	if err != nil {
		logger.CtxError(ctx, "Stored mortgage application holds an invalid decimal", err,
			slog.String("application_id", id))
		return nil, err
	}

	logger.CtxDebug(ctx, "Fetched mortgage application columns",
		slog.String("application_id", id),
		slog.Any("columns", columns),
	)
	return app, nil
}

func projection(columns []string) bson.D {
	proj := bson.D{}
	for _, c := range columns {
		proj = append(proj, bson.E{Key: c, Value: 1})
	}
	return proj
}

func toApplication(doc storemodels.MortgageApplication) (*models.MortgageApplication, error) {
	app := &models.MortgageApplication{
		ID:             doc.ID,
		Name:           doc.Name,
		OwnerReference: doc.OwnerID,
		RiskScore:      doc.RiskScore,
	}
	if doc.Status != nil {
		status := int(*doc.Status)
		app.Status = &status
	}
	if doc.MortgageTerm != nil {
		term := int(*doc.MortgageTerm)
		app.TermMonths = &term
	}
	amount, err := fromDecimal128(doc.MortgageAmount)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", consts.ColumnMortgageAmount, err)
	}
	app.PrincipalAmount = amount

	taxRate, err := fromDecimal128(doc.SalesTaxRate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", consts.ColumnSalesTaxRate, err)
	}
	app.SalesTaxRate = taxRate

	return app, nil
}

func fromDecimal128(d *primitive.Decimal128) (*decimal.Decimal, error) {
	if d == nil {
		return nil, nil
	}
	value, err := decimal.NewFromString(d.String())
	if err != nil {
		return nil, err
	}
	return &value, nil
}
