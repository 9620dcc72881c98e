package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/neoinbox/internal/server/migrations"
	"github.com/dmitrijs2005/neoinbox/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func stubGoose(t *testing.T, fn func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error) {
	t.Helper()
	orig := gooseUpContext
	gooseUpContext = fn
	t.Cleanup(func() { gooseUpContext = orig })
}

func TestNew_SelectsManager(t *testing.T) {
	m, err := New(DriverSQLite)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteRepositoryManager{}, m)

	m, err = New("")
	require.NoError(t, err)
	assert.IsType(t, &SQLiteRepositoryManager{}, m)

	m, err = New(DriverPostgres)
	require.NoError(t, err)
	assert.IsType(t, &PostgresRepositoryManager{}, m)

	_, err = New("oracle")
	assert.Error(t, err)
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	assert.IsType(t, &users.PostgresRepository{}, NewPostgresRepositoryManager().Users(db))
	assert.IsType(t, &users.SQLiteRepository{}, NewSQLiteRepositoryManager().Users(db))
}

func TestPostgresRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	stubGoose(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != migrations.DirPostgres {
			return errors.New("unexpected dir")
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	})

	m := &PostgresRepositoryManager{}
	if err := m.RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
}

func TestPostgresRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	stubGoose(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	})

	m := &PostgresRepositoryManager{}
	if err := m.RunMigrations(context.Background(), db); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestSQLiteManager_OpenMigrateTwice(t *testing.T) {
	ctx := context.Background()
	m := NewSQLiteRepositoryManager()

	db, err := m.Open(ctx, filepath.Join(t.TempDir(), "neoinbox.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, m.RunMigrations(ctx, db))
	require.NoError(t, m.RunMigrations(ctx, db), "migrations must be idempotent")

	id, err := m.Users(db).Insert(ctx, "Ann", "ann@x.com", "h")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "neoinbox.db?"+sqlitePragmas, SQLiteDSN("neoinbox.db"))
	assert.Equal(t, "file:x.db?mode=ro", SQLiteDSN("file:x.db?mode=ro"))
}
