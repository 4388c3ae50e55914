package http

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/reportvault/internal/dbx"
	"github.com/dmitrijs2005/reportvault/internal/logging"
	"github.com/dmitrijs2005/reportvault/internal/server/auth"
	"github.com/dmitrijs2005/reportvault/internal/server/config"
	"github.com/dmitrijs2005/reportvault/internal/server/models"
	locationsrepo "github.com/dmitrijs2005/reportvault/internal/server/repositories/locations"
	reportsrepo "github.com/dmitrijs2005/reportvault/internal/server/repositories/reports"
	usersrepo "github.com/dmitrijs2005/reportvault/internal/server/repositories/users"
	"github.com/dmitrijs2005/reportvault/internal/server/services"
)

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
	// Same contract as the real repository: validate before writing.
	if err := r.Validate(); err != nil {
		return nil, err
	}
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
	if err := l.Validate(); err != nil {
		return nil, err
	}
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

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository         { return m.u }
func (m *fakeRepoManager) Reports(db dbx.DBTX) reportsrepo.Repository     { return m.r }
func (m *fakeRepoManager) Locations(db dbx.DBTX) locationsrepo.Repository { return m.l }

// testEnv holds a router wired over fake repositories, so a test can
// exercise the full request path without touching Postgres.
type testEnv struct {
	server *HTTPServer
	router http.Handler
	cfg    *config.Config
	mock   sqlmock.Sqlmock

	users     *fakeUsersRepo
	reports   *fakeReportsRepo
	locations *fakeLocationsRepo
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithConfig(t, nil)
}

// newTestEnvWithConfig lets a test adjust the config before the server
// captures it.
func newTestEnvWithConfig(t *testing.T, adjust func(*config.Config)) *testEnv {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.LoadDefaults()
	if adjust != nil {
		adjust(cfg)
	}

	m := &fakeRepoManager{
		u: &fakeUsersRepo{},
		r: &fakeReportsRepo{},
		l: &fakeLocationsRepo{},
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))

	srv := NewHTTPServer(cfg, logger,
		services.NewUserService(db, m, cfg),
		services.NewReportService(db, m, cfg),
		services.NewLocationService(db, m),
	)

	return &testEnv{
		server:    srv,
		router:    srv.routes(),
		cfg:       cfg,
		mock:      mock,
		users:     m.u,
		reports:   m.r,
		locations: m.l,
	}
}

// sessionCookie mints a cookie carrying a valid token for userID.
func (e *testEnv) sessionCookie(t *testing.T, userID string) *http.Cookie {
	t.Helper()
	token, err := auth.GenerateToken(userID, []byte(e.cfg.SecretKey))
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	return &http.Cookie{Name: sessionCookieName, Value: token}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
