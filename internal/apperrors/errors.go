// Package apperrors defines the stable error taxonomy shared by repositories
// and handlers. Handlers translate these into HTTP statuses; raw storage
// error text is never returned to callers.
package apperrors

import "errors"

var (
	// ErrInvalidArgument signals a malformed identifier or bad input
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSelfReference signals a toggle where the actor is (or owns) the target
	ErrSelfReference = errors.New("self reference forbidden")

	// ErrTargetNotFound signals that the toggle or listing target does not exist
	ErrTargetNotFound = errors.New("target not found")

	// ErrUnauthenticated signals a missing or unresolvable session
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrTransactionFailed signals a storage-layer abort. The whole toggle was
	// rolled back, so retrying it is safe.
	ErrTransactionFailed = errors.New("transaction failed")
)
