package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/reportvault/internal/server/models"
	"github.com/dmitrijs2005/reportvault/internal/server/repositories/repomanager"
)

// LocationService is a thin pass-through: locations have no owner, so
// there is no authorization logic beyond the route-level auth gate.
type LocationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewLocationService(db *sql.DB, m repomanager.RepositoryManager) *LocationService {
	return &LocationService{
		db:          db,
		repomanager: m,
	}
}

func (s *LocationService) Create(ctx context.Context, location *models.Location) (*models.Location, error) {
	repo := s.repomanager.Locations(s.db)
	return repo.Create(ctx, location)
}

func (s *LocationService) GetByID(ctx context.Context, id string) (*models.Location, error) {
	repo := s.repomanager.Locations(s.db)
	return repo.GetByID(ctx, id)
}

func (s *LocationService) List(ctx context.Context) ([]*models.Location, error) {
	repo := s.repomanager.Locations(s.db)
	return repo.List(ctx)
}
