package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/svcguard/internal/database"
	fieldService "github.com/allisson/svcguard/internal/fieldcrypto/service"
	recordsDomain "github.com/allisson/svcguard/internal/records/domain"
)

// recordUseCase implements the RecordUseCase interface.
type recordUseCase struct {
	txManager   database.TxManager
	recordRepo  RecordRepository
	fieldCipher fieldService.FieldCipher
}

// NewRecordUseCase creates a record use case with its dependencies.
func NewRecordUseCase(
	txManager database.TxManager,
	recordRepo RecordRepository,
	fieldCipher fieldService.FieldCipher,
) RecordUseCase {
	return &recordUseCase{
		txManager:   txManager,
		recordRepo:  recordRepo,
		fieldCipher: fieldCipher,
	}
}

// Create encrypts value and persists a new record.
func (r *recordUseCase) Create(
	ctx context.Context,
	name, value string,
) (*recordsDomain.Record, error) {
	encrypted, err := r.fieldCipher.Encrypt(value)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := &recordsDomain.Record{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      name,
		Value:     encrypted,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	// Return the plaintext in memory; the stored form stays encrypted.
	record.Value = value
	return record, nil
}

// Get retrieves a record and decrypts its value. A tampered or corrupted
// stored value surfaces as fieldcrypto's ErrDecryptionFailed rather than a
// placeholder string.
func (r *recordUseCase) Get(
	ctx context.Context,
	recordID uuid.UUID,
) (*recordsDomain.Record, error) {
	record, err := r.recordRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	plaintext, err := r.fieldCipher.Decrypt(record.Value)
	if err != nil {
		return nil, err
	}
	record.Value = plaintext

	return record, nil
}

// Update re-encrypts the new value with a fresh IV and persists it. The read
// and write run in one transaction so a concurrent delete cannot resurrect
// the record.
func (r *recordUseCase) Update(
	ctx context.Context,
	recordID uuid.UUID,
	value string,
) (*recordsDomain.Record, error) {
	encrypted, err := r.fieldCipher.Encrypt(value)
	if err != nil {
		return nil, err
	}

	var updated *recordsDomain.Record
	err = r.txManager.WithTx(ctx, func(txCtx context.Context) error {
		record, err := r.recordRepo.GetByID(txCtx, recordID)
		if err != nil {
			return err
		}

		record.Value = encrypted
		record.UpdatedAt = time.Now().UTC()

		if err := r.recordRepo.Update(txCtx, record); err != nil {
			return err
		}

		updated = record
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated.Value = value
	return updated, nil
}

// Delete removes a record.
func (r *recordUseCase) Delete(ctx context.Context, recordID uuid.UUID) error {
	return r.recordRepo.Delete(ctx, recordID)
}

// List returns record metadata without values.
func (r *recordUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*recordsDomain.Record, error) {
	return r.recordRepo.List(ctx, offset, limit)
}
