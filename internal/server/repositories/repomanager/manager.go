package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/reportvault/internal/dbx"
	"github.com/dmitrijs2005/reportvault/internal/server/repositories/locations"
	"github.com/dmitrijs2005/reportvault/internal/server/repositories/reports"
	"github.com/dmitrijs2005/reportvault/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX,
// so a service can use the same repository code against *sql.DB or an
// open transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Reports(db dbx.DBTX) reports.Repository
	Locations(db dbx.DBTX) locations.Repository
}
