package interfaces

import (
	"context"

	"mortgageschedule/internal/pkg/models"
)

// RecordStore is the host record store as seen by the schedule run.
type RecordStore interface {
	// RetrieveApplication reads the named columns of one application. A missing
	// record yields a *NotFoundError from the store models package.
	RetrieveApplication(ctx context.Context, id string, columns []string) (*models.MortgageApplication, error)
	// CreatePayment inserts one payment and returns the assigned id.
	CreatePayment(ctx context.Context, payment models.MortgagePayment) (string, error)
}
