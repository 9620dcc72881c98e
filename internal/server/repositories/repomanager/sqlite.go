package repomanager

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/neoinbox/internal/dbx"
	"github.com/dmitrijs2005/neoinbox/internal/server/migrations"
	"github.com/dmitrijs2005/neoinbox/internal/server/repositories/users"
	_ "modernc.org/sqlite"
)

// sqlitePragmas make concurrent writers wait on each other instead of
// failing with SQLITE_BUSY.
const sqlitePragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"

// SQLiteRepositoryManager vends SQLite-backed repositories over a single
// database file.
type SQLiteRepositoryManager struct{}

// Open opens the database file at dsn. A bare path gets the default pragmas;
// a DSN that already carries query parameters is used as is.
func (m *SQLiteRepositoryManager) Open(ctx context.Context, dsn string) (*sql.DB, error) {
	return dbx.Open(ctx, "sqlite", SQLiteDSN(dsn))
}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

// RunMigrations applies the embedded sqlite migrations.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, "sqlite3", migrations.DirSQLite)
}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

// SQLiteDSN appends the default pragmas to a bare database path.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?" + sqlitePragmas
}
