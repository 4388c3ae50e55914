package locations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/reportvault/internal/common"
	"github.com/dmitrijs2005/reportvault/internal/dbx"
	"github.com/dmitrijs2005/reportvault/internal/server/models"
)

// PostgresRepository implements location storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const locationColumns = `id, name, phone_number,
		street1, street2, city, state, zip,
		parking_info, accessible, open_hour, close_hour, time_zone,
		alcohol, smoking, maximum_occupancy, created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, location *models.Location) (*models.Location, error) {

	if err := location.Validate(); err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO locations (name, phone_number,
			street1, street2, city, state, zip,
			parking_info, accessible, open_hour, close_hour, time_zone,
			alcohol, smoking, maximum_occupancy)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		location.Name, location.PhoneNumber,
		location.Street1, location.Street2, location.City, location.State, location.Zip,
		location.ParkingInfo, location.Accessible, location.Open, location.Close, location.TimeZone,
		location.Alcohol, location.Smoking, location.MaximumOccupancy).
		Scan(&location.ID, &location.CreatedAt, &location.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return location, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = $1`

	location, err := scanLocation(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return location, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	result := []*models.Location{}
	for rows.Next() {
		location, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, location)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLocation(row scanner) (*models.Location, error) {
	location := &models.Location{}
	err := row.Scan(
		&location.ID, &location.Name, &location.PhoneNumber,
		&location.Street1, &location.Street2, &location.City, &location.State, &location.Zip,
		&location.ParkingInfo, &location.Accessible, &location.Open, &location.Close, &location.TimeZone,
		&location.Alcohol, &location.Smoking, &location.MaximumOccupancy,
		&location.CreatedAt, &location.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return location, nil
}
