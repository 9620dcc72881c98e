package dbx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestOpen_SQLiteMemory(t *testing.T) {
	db, err := Open(context.Background(), "sqlite", "file:dbx_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var one int
	require.NoError(t, db.QueryRow(`SELECT 1`).Scan(&one))
	require.Equal(t, 1, one)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "no-such-driver", "whatever")
	require.Error(t, err)
	require.Contains(t, err.Error(), "open no-such-driver db")
}

func TestDBTX_SatisfiedByDBAndTx(t *testing.T) {
	db, err := Open(context.Background(), "sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var _ DBTX = db

	tx, err := db.Begin()
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	var x DBTX = tx
	_, err = x.ExecContext(context.Background(), `CREATE TABLE t (id INTEGER PRIMARY KEY)`)
	require.NoError(t, err)
}
