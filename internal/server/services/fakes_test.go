package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/reportvault/internal/dbx"
	"github.com/dmitrijs2005/reportvault/internal/server/models"
	locationsrepo "github.com/dmitrijs2005/reportvault/internal/server/repositories/locations"
	reportsrepo "github.com/dmitrijs2005/reportvault/internal/server/repositories/reports"
	usersrepo "github.com/dmitrijs2005/reportvault/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getByEmailOut *models.User
	getByEmailErr error

	getByIDOut *models.User
	getByIDErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getByEmailErr != nil {
		return nil, f.getByEmailErr
	}
	return f.getByEmailOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	return f.getByIDOut, nil
}

type fakeReportsRepo struct {
	created *models.Report

	getOut *models.Report
	getErr error

	listOut []*models.Report
	listErr error

	deleted   []string
	deleteErr error
}

func (f *fakeReportsRepo) Create(ctx context.Context, r *models.Report) (*models.Report, error) {
	f.created = r
	if r.ID == "" {
		r.ID = "r1"
	}
	return r, nil
}

func (f *fakeReportsRepo) GetByID(ctx context.Context, id string) (*models.Report, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeReportsRepo) ListByUser(ctx context.Context, userID string) ([]*models.Report, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeReportsRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeLocationsRepo struct {
	created *models.Location

	getOut *models.Location
	getErr error

	listOut []*models.Location
}

func (f *fakeLocationsRepo) Create(ctx context.Context, l *models.Location) (*models.Location, error) {
	f.created = l
	l.ID = "l1"
	return l, nil
}

func (f *fakeLocationsRepo) GetByID(ctx context.Context, id string) (*models.Location, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeLocationsRepo) List(ctx context.Context) ([]*models.Location, error) {
	return f.listOut, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeReportsRepo
	l *fakeLocationsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error        { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository             { return m.u }
func (m *fakeRepoManager) Reports(db dbx.DBTX) reportsrepo.Repository         { return m.r }
func (m *fakeRepoManager) Locations(db dbx.DBTX) locationsrepo.Repository     { return m.l }
