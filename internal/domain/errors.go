package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")

	// Escalation-chain failures. Both are terminal for a single message's
	// chain and are logged, never surfaced to the chat response.
	ErrFamilyNotFound = errors.New("family not found")
	ErrStoreFailure   = errors.New("store failure")
)
