package repositories

import "errors"

// Error kinds the repositories report. Callers match these with errors.Is
// to decide between a 404 and a storage failure.
var (
	// ErrProductNotFound is returned when no product row exists for an id.
	ErrProductNotFound = errors.New("product not found")

	// ErrUserNotFound is returned when no user row matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrStorage wraps any unexpected failure from the database layer.
	ErrStorage = errors.New("storage error")
)
