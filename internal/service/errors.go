package service

import "errors"

// Service-level failure taxonomy. Handlers map these to HTTP statuses;
// anything that wraps none of them is a storage failure and surfaces as a
// generic server error. No operation retries.
var (
	// ErrValidation is returned for missing or invalid input.
	ErrValidation = errors.New("invalid input")

	// ErrForbidden is returned when the caller lacks rights for the
	// target resource. No state change occurs.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned when a referenced room or entity is absent.
	ErrNotFound = errors.New("not found")

	// ErrCredential is returned for a bad login or a bad/expired token;
	// the client must re-authenticate.
	ErrCredential = errors.New("invalid credentials")
)
