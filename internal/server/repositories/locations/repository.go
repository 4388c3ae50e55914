// Package locations persists venue records. Locations carry no owner;
// required-field validation runs on the way into storage.
package locations

import (
	"context"

	"github.com/dmitrijs2005/reportvault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, location *models.Location) (*models.Location, error)
	GetByID(ctx context.Context, id string) (*models.Location, error)
	// List returns every location. Pagination can come later; the
	// dataset is a short venue directory.
	List(ctx context.Context) ([]*models.Location, error)
}
