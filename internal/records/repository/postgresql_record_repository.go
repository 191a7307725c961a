// Package repository implements data persistence for records.
// Repositories support both PostgreSQL and MySQL. The value column always
// holds the encrypted envelope string; repositories never see plaintext.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/svcguard/internal/database"
	apperrors "github.com/allisson/svcguard/internal/errors"
	recordsDomain "github.com/allisson/svcguard/internal/records/domain"
)

// PostgreSQLRecordRepository implements Record persistence for PostgreSQL databases.
type PostgreSQLRecordRepository struct {
	db *sql.DB
}

// NewPostgreSQLRecordRepository creates a new PostgreSQL Record repository instance.
func NewPostgreSQLRecordRepository(db *sql.DB) *PostgreSQLRecordRepository {
	return &PostgreSQLRecordRepository{db: db}
}

// Create inserts a new record into the PostgreSQL database.
func (p *PostgreSQLRecordRepository) Create(ctx context.Context, record *recordsDomain.Record) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO records (id, name, value, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		record.ID,
		record.Name,
		record.Value,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create record")
	}
	return nil
}

// GetByID retrieves a record by its ID.
func (p *PostgreSQLRecordRepository) GetByID(
	ctx context.Context,
	recordID uuid.UUID,
) (*recordsDomain.Record, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, value, created_at, updated_at
			  FROM records
			  WHERE id = $1
			  LIMIT 1`

	var record recordsDomain.Record
	err := querier.QueryRowContext(ctx, query, recordID).Scan(
		&record.ID,
		&record.Name,
		&record.Value,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, recordsDomain.ErrRecordNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get record by id")
	}

	return &record, nil
}

// Update replaces the stored value of a record and bumps its update timestamp.
func (p *PostgreSQLRecordRepository) Update(ctx context.Context, record *recordsDomain.Record) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE records
			  SET value = $1, updated_at = $2
			  WHERE id = $3`

	result, err := querier.ExecContext(
		ctx,
		query,
		record.Value,
		record.UpdatedAt,
		record.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update record")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check updated rows")
	}
	if rows == 0 {
		return recordsDomain.ErrRecordNotFound
	}

	return nil
}

// Delete removes a record by its ID.
func (p *PostgreSQLRecordRepository) Delete(ctx context.Context, recordID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM records WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, recordID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete record")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check deleted rows")
	}
	if rows == 0 {
		return recordsDomain.ErrRecordNotFound
	}

	return nil
}

// List returns record metadata ordered by creation time, newest first.
// The value column is intentionally not selected.
func (p *PostgreSQLRecordRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*recordsDomain.Record, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, created_at, updated_at
			  FROM records
			  ORDER BY created_at DESC
			  OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list records")
	}
	defer rows.Close() //nolint:errcheck

	var records []*recordsDomain.Record
	for rows.Next() {
		var record recordsDomain.Record
		if err := rows.Scan(
			&record.ID,
			&record.Name,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan record")
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate records")
	}

	return records, nil
}
