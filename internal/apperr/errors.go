// Package apperr defines the sentinel errors shared by the domain services.
// Handlers translate them to HTTP statuses with errors.Is; services wrap
// unexpected failures with fmt.Errorf("...: %w", err) instead.
package apperr

import "errors"

var (
	// ErrNotFound is returned when a looked-up entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyParticipating is returned when a user joins a session they
	// are already on the roster of. Joining is not idempotent.
	ErrAlreadyParticipating = errors.New("already participating")

	// ErrNotParticipating is returned when a user leaves a session they
	// never joined.
	ErrNotParticipating = errors.New("not participating")

	// ErrDuplicateEmail is returned by registration when the email is taken.
	ErrDuplicateEmail = errors.New("email is already taken")

	// ErrInvalidCredentials covers both unknown email and password mismatch
	// so login failures are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("bad credentials")

	// ErrForbidden is returned when the authenticated principal is not
	// allowed to perform the operation on the target record.
	ErrForbidden = errors.New("forbidden")
)
