// Package usecase implements business logic for records with encrypted fields.
// The use case wraps the field cipher around repository reads and writes so
// plaintext never reaches durable storage and ciphertext never leaves the
// storage boundary.
package usecase

import (
	"context"

	"github.com/google/uuid"

	recordsDomain "github.com/allisson/svcguard/internal/records/domain"
)

// RecordRepository defines the interface for Record persistence operations.
// Implementations store and return the encrypted envelope string in the
// record's Value field.
type RecordRepository interface {
	Create(ctx context.Context, record *recordsDomain.Record) error
	GetByID(ctx context.Context, recordID uuid.UUID) (*recordsDomain.Record, error)
	Update(ctx context.Context, record *recordsDomain.Record) error
	Delete(ctx context.Context, recordID uuid.UUID) error
	List(ctx context.Context, offset, limit int) ([]*recordsDomain.Record, error)
}

// RecordUseCase defines the interface for record management business logic.
type RecordUseCase interface {
	// Create encrypts value and persists a new record.
	Create(ctx context.Context, name, value string) (*recordsDomain.Record, error)
	// Get retrieves a record and decrypts its value.
	Get(ctx context.Context, recordID uuid.UUID) (*recordsDomain.Record, error)
	// Update re-encrypts the new value (fresh IV) and persists it.
	Update(ctx context.Context, recordID uuid.UUID, value string) (*recordsDomain.Record, error)
	// Delete removes a record.
	Delete(ctx context.Context, recordID uuid.UUID) error
	// List returns record metadata without values.
	List(ctx context.Context, offset, limit int) ([]*recordsDomain.Record, error)
}
