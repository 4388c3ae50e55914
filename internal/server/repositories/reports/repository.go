// Package reports persists uploaded test-report documents. The
// per-suite results are stored as a JSONB column; structural
// validation runs here, before any row is written.
package reports

import (
	"context"

	"github.com/dmitrijs2005/reportvault/internal/server/models"
)

type Repository interface {
	// Create validates the report and inserts it. Reports are never
	// updated after creation.
	Create(ctx context.Context, report *models.Report) (*models.Report, error)
	GetByID(ctx context.Context, id string) (*models.Report, error)
	// ListByUser returns the user's reports, newest first.
	ListByUser(ctx context.Context, userID string) ([]*models.Report, error)
	Delete(ctx context.Context, id string) error
}
