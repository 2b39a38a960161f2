package domain

import "errors"

var (
	// ErrZoneNotFound indicates the hosted zone does not exist at the provider.
	ErrZoneNotFound = errors.New("hosted zone not found")

	// ErrConflict indicates an existing record set differs from the desired
	// one and overwrite was not permitted.
	ErrConflict = errors.New("record already exists with different value")

	// ErrZoneBusy indicates the provider is still processing a prior change
	// to the same zone. This is the only error class a commit retries on.
	ErrZoneBusy = errors.New("prior request to the zone still in progress")
)
