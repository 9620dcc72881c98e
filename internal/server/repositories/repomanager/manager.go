package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/neoinbox/internal/dbx"
	"github.com/dmitrijs2005/neoinbox/internal/server/repositories/users"
)

// Database drivers accepted by New.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// RepositoryManager opens the database for one dialect, applies its schema
// migrations and vends repositories bound to a DBTX.
type RepositoryManager interface {
	Open(ctx context.Context, dsn string) (*sql.DB, error)
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}

// New returns the RepositoryManager for driver.
func New(driver string) (RepositoryManager, error) {
	switch driver {
	case DriverSQLite, "":
		return NewSQLiteRepositoryManager(), nil
	case DriverPostgres:
		return NewPostgresRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
