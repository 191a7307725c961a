package domain

import (
	"github.com/allisson/svcguard/internal/errors"
)

// Record error definitions.
var (
	// ErrRecordNotFound indicates a record with the specified ID was not found.
	ErrRecordNotFound = errors.Wrap(errors.ErrNotFound, "record not found")
)
