// Package common defines shared constants and sentinel errors used across
// the credential store, the auth service and the web front. Callers should
// use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound       = errors.New("not found")
	ErrorDuplicateEmail = errors.New("duplicate email")

	// Service-level errors returned by Register.
	ErrorEmailTaken = errors.New("email already taken")

	// Service-level errors returned by Authenticate.
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Store failures of any kind, surfaced by both operations.
	ErrorStoreFailure = errors.New("store failure")

	// Boundary validation.
	ErrorValidation = errors.New("validation error")
)
