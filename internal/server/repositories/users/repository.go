package users

import (
	"context"

	"github.com/dmitrijs2005/neoinbox/internal/server/models"
)

// Repository is the credential store. Insert enforces email uniqueness
// atomically and reports violations as common.ErrorDuplicateEmail;
// FindByEmail reports a missing record as common.ErrorNotFound.
type Repository interface {
	Insert(ctx context.Context, name, email, passwordHash string) (int64, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
