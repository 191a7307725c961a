package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/svcguard/internal/database"
	apperrors "github.com/allisson/svcguard/internal/errors"
	recordsDomain "github.com/allisson/svcguard/internal/records/domain"
)

// MySQLRecordRepository implements Record persistence for MySQL databases.
type MySQLRecordRepository struct {
	db *sql.DB
}

// NewMySQLRecordRepository creates a new MySQL Record repository instance.
func NewMySQLRecordRepository(db *sql.DB) *MySQLRecordRepository {
	return &MySQLRecordRepository{db: db}
}

// Create inserts a new record into the MySQL database.
func (m *MySQLRecordRepository) Create(ctx context.Context, record *recordsDomain.Record) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO records (id, name, value, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(
		ctx,
		query,
		record.ID.String(),
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
func (m *MySQLRecordRepository) GetByID(
	ctx context.Context,
	recordID uuid.UUID,
) (*recordsDomain.Record, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, value, created_at, updated_at
			  FROM records
			  WHERE id = ?
			  LIMIT 1`

	var record recordsDomain.Record
	var id string
	err := querier.QueryRowContext(ctx, query, recordID.String()).Scan(
		&id,
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

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to parse record id")
	}
	record.ID = parsed

	return &record, nil
}

// Update replaces the stored value of a record and bumps its update timestamp.
func (m *MySQLRecordRepository) Update(ctx context.Context, record *recordsDomain.Record) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE records
			  SET value = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(
		ctx,
		query,
		record.Value,
		record.UpdatedAt,
		record.ID.String(),
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
func (m *MySQLRecordRepository) Delete(ctx context.Context, recordID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM records WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, recordID.String())
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
func (m *MySQLRecordRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*recordsDomain.Record, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, created_at, updated_at
			  FROM records
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list records")
	}
	defer rows.Close() //nolint:errcheck

	var records []*recordsDomain.Record
	for rows.Next() {
		var record recordsDomain.Record
		var id string
		if err := rows.Scan(
			&id,
			&record.Name,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan record")
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to parse record id")
		}
		record.ID = parsed
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate records")
	}

	return records, nil
}
