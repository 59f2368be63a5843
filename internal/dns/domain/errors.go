package domain

import "nathanbeddoewebdev/dnsimple/dnsimple"

// Re-export the API client's sentinel errors so DNS callers can classify
// provider failures without importing the client package directly.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = dnsimple.ErrNotFound

	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = dnsimple.ErrUnauthorized

	// ErrRateLimited indicates the provider throttled the request.
	ErrRateLimited = dnsimple.ErrRateLimited

	// ErrConflict indicates a state or uniqueness conflict.
	ErrConflict = dnsimple.ErrConflict

	// ErrValidation indicates the provider rejected the record parameters.
	ErrValidation = dnsimple.ErrValidation
)
