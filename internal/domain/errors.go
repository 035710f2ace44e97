package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrServerOffline indicates the catalog endpoint is unreachable
	ErrServerOffline = errors.New("catalog server is unreachable")

	// ErrUnexpectedStatus indicates the catalog answered with a non-200 status
	ErrUnexpectedStatus = errors.New("unexpected catalog response status")

	// ErrInvalidPage indicates a page number below 1
	ErrInvalidPage = errors.New("page number must be 1 or greater")
)
