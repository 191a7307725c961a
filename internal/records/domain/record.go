// Package domain defines the core domain models for records with encrypted fields.
// A record's value is encrypted before it reaches durable storage and decrypted
// on read; the database only ever sees the encoded envelope string in the slot
// the plaintext would occupy.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxRecordNameLength is the maximum allowed length for record names.
// Aligns with the database schema constraint (VARCHAR(255)).
const MaxRecordNameLength = 255

// Record represents a stored record whose value field is sensitive.
type Record struct {
	// ID is the unique identifier for this record.
	ID uuid.UUID
	// Name is a human-readable label for the record.
	Name string
	// Value holds the sensitive field. In memory it is plaintext; in the
	// database it is the encrypted envelope string. The use case converts
	// between the two around repository calls.
	Value string `json:"-"`
	// CreatedAt is the UTC timestamp when the record was created.
	CreatedAt time.Time
	// UpdatedAt is the UTC timestamp of the last value update.
	UpdatedAt time.Time
}
