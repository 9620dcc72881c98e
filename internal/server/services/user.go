// Package services contains server-side business logic. This file implements
// UserService: registration and password authentication on top of the
// credential store.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/dmitrijs2005/neoinbox/internal/common"
	"github.com/dmitrijs2005/neoinbox/internal/logging"
	"github.com/dmitrijs2005/neoinbox/internal/server/password"
	"github.com/dmitrijs2005/neoinbox/internal/server/repositories/users"
)

// AuthenticatedUser is the identity released after a successful login.
// It never carries the password hash.
type AuthenticatedUser struct {
	ID   int64
	Name string
}

// UserService provides account operations:
// - Register: hash the password and store a new user
// - Authenticate: verify an email/password pair
//
// Store errors are translated into the common sentinels and never returned
// raw; the underlying cause is logged.
type UserService struct {
	repo   users.Repository
	hasher password.Hasher
	log    logging.Logger

	dummyOnce sync.Once
	dummyHash string
}

// NewUserService constructs a UserService over an explicit credential store
// and password hasher.
func NewUserService(repo users.Repository, hasher password.Hasher, log logging.Logger) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		log:    log.With("module", "services.user"),
	}
}

// Register stores a new user and returns its id. A taken email yields
// common.ErrorEmailTaken; every other failure yields common.ErrorStoreFailure.
func (s *UserService) Register(ctx context.Context, name, email, rawPassword string) (int64, error) {
	email = normalizeEmail(email)
	if err := checkLengths(name, email, rawPassword); err != nil {
		return 0, err
	}

	hash, err := s.hasher.Hash(rawPassword)
	if err != nil {
		s.log.Error(ctx, "hash password", "error", err)
		return 0, common.ErrorStoreFailure
	}

	id, err := s.repo.Insert(ctx, name, email, hash)
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateEmail) {
			return 0, common.ErrorEmailTaken
		}
		s.log.Error(ctx, "insert user", "error", err)
		return 0, common.ErrorStoreFailure
	}

	s.log.Info(ctx, "user registered", "user_id", id)
	return id, nil
}

// Authenticate verifies rawPassword against the hash stored for email.
// Unknown emails and wrong passwords both yield
// common.ErrorInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, email, rawPassword string) (*AuthenticatedUser, error) {
	email = normalizeEmail(email)

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Pay the same hashing cost as a real check.
			if dummy := s.getDummyHash(ctx); dummy != "" {
				_ = s.hasher.Compare(dummy, rawPassword)
			}
			return nil, common.ErrorInvalidCredentials
		}
		s.log.Error(ctx, "find user", "error", err)
		return nil, common.ErrorStoreFailure
	}

	if err := s.hasher.Compare(user.PasswordHash, rawPassword); err != nil {
		if !errors.Is(err, password.ErrMismatch) {
			s.log.Warn(ctx, "stored hash unusable", "user_id", user.ID, "error", err)
		}
		return nil, common.ErrorInvalidCredentials
	}

	return &AuthenticatedUser{ID: user.ID, Name: user.Name}, nil
}

// --- helpers below ---

func (s *UserService) getDummyHash(ctx context.Context) string {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash("neoinbox-dummy-password")
		if err != nil {
			s.log.Warn(ctx, "dummy hash", "error", err)
			return
		}
		s.dummyHash = h
	})
	return s.dummyHash
}

// checkLengths enforces the column bounds for callers that skip input binding.
func checkLengths(name, email, rawPassword string) error {
	switch {
	case utf8.RuneCountInString(name) > common.MaxNameLength:
		return fmt.Errorf("%w: name longer than %d characters", common.ErrorValidation, common.MaxNameLength)
	case utf8.RuneCountInString(email) > common.MaxEmailLength:
		return fmt.Errorf("%w: email longer than %d characters", common.ErrorValidation, common.MaxEmailLength)
	case len(rawPassword) > common.MaxPasswordBytes:
		return fmt.Errorf("%w: password longer than %d bytes", common.ErrorValidation, common.MaxPasswordBytes)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
