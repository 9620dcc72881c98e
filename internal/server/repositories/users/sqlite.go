package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/neoinbox/internal/common"
	"github.com/dmitrijs2005/neoinbox/internal/dbx"
	"github.com/dmitrijs2005/neoinbox/internal/server/models"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// SQLiteRepository is the credential store over a modernc.org/sqlite database.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a repository bound to db, which may be a *sql.DB or *sql.Tx.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Insert stores a user and returns the assigned id. A taken email yields
// common.ErrorDuplicateEmail.
func (r *SQLiteRepository) Insert(ctx context.Context, name, email, passwordHash string) (int64, error) {

	query :=
		`INSERT INTO users (name, email, password_hash)
         VALUES (?, ?, ?)
		 RETURNING id
		 `

	var id int64
	err := r.db.QueryRowContext(ctx, query, name, email, passwordHash).Scan(&id)

	if err != nil {
		if isSQLiteUniqueViolation(err) {
			return 0, common.ErrorDuplicateEmail
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return id, nil
}

// FindByEmail returns the user with email or common.ErrorNotFound.
func (r *SQLiteRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, name, email, password_hash, created_at FROM users
		 WHERE email = ?
		 `

	user := &models.User{}
	var createdAt int64
	err := r.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &createdAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	user.CreatedAt = fromUnix(createdAt)

	return user, nil
}

// isSQLiteUniqueViolation matches the UNIQUE extended result code. Errors
// that do not carry a driver code fall back to the message.
func isSQLiteUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		strings.Contains(message, "users.email")
}
