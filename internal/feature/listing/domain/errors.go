package domain

import "errors"

var (
	// ErrInvalidListing is the base error for submissions missing
	// required fields. Field errors below wrap it so handlers can
	// classify with errors.Is.
	ErrInvalidListing = errors.New("invalid listing data")

	ErrListingNotFound = errors.New("listing not found")
)
