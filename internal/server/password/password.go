// Package password hashes and verifies user passwords with salted,
// work-factor tunable one-way schemes. Encoded hashes carry their own salt
// and parameters, so verification never needs outside state.
package password

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMismatch      = errors.New("password does not match hash")
	ErrMalformedHash = errors.New("malformed password hash")
	ErrUnknownScheme = errors.New("unknown password hash scheme")
)

// Scheme names accepted by New.
const (
	SchemeBcrypt   = "bcrypt"
	SchemeArgon2id = "argon2id"
)

// Hasher turns a raw password into an encoded hash and checks candidates
// against one. Compare returns ErrMismatch for a wrong password.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(encoded, password string) error
}

// Service hashes new passwords with the configured scheme and verifies any
// stored hash whose scheme it recognises, so switching schemes does not lock
// out existing users.
type Service struct {
	primary Hasher
}

// New returns a Service hashing with scheme. bcryptCost is only used by the
// bcrypt scheme; zero selects bcrypt.DefaultCost.
func New(scheme string, bcryptCost int) (*Service, error) {
	switch scheme {
	case SchemeBcrypt, "":
		b, err := NewBcrypt(bcryptCost)
		if err != nil {
			return nil, err
		}
		return &Service{primary: b}, nil
	case SchemeArgon2id:
		return &Service{primary: NewArgon2id()}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
}

func (s *Service) Hash(password string) (string, error) {
	return s.primary.Hash(password)
}

func (s *Service) Compare(encoded, password string) error {
	h, err := detect(encoded)
	if err != nil {
		return err
	}
	return h.Compare(encoded, password)
}

func detect(encoded string) (Hasher, error) {
	switch {
	case strings.HasPrefix(encoded, argon2idPrefix):
		return &Argon2id{}, nil
	case strings.HasPrefix(encoded, "$2a$"),
		strings.HasPrefix(encoded, "$2b$"),
		strings.HasPrefix(encoded, "$2y$"):
		return &Bcrypt{}, nil
	default:
		return nil, ErrUnknownScheme
	}
}
