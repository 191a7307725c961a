package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/svcguard/internal/errors"
	recordsDomain "github.com/allisson/svcguard/internal/records/domain"
)

func TestMySQLRecordRepository_Create(t *testing.T) {
	db, mock := newPostgreSQLMock(t)
	repo := NewMySQLRecordRepository(db)
	record := testRecord()

	// MySQL stores the UUID as its string form.
	mock.ExpectExec("INSERT INTO records").
		WithArgs(record.ID.String(), record.Name, record.Value, record.CreatedAt, record.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), record)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLRecordRepository_GetByID(t *testing.T) {
	db, mock := newPostgreSQLMock(t)
	repo := NewMySQLRecordRepository(db)
	record := testRecord()

	rows := sqlmock.NewRows([]string{"id", "name", "value", "created_at", "updated_at"}).
		AddRow(record.ID.String(), record.Name, record.Value, record.CreatedAt, record.UpdatedAt)

	mock.ExpectQuery("SELECT id, name, value, created_at, updated_at").
		WithArgs(record.ID.String()).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, record.Name, got.Name)
	assert.Equal(t, record.Value, got.Value)
}

func TestMySQLRecordRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newPostgreSQLMock(t)
	repo := NewMySQLRecordRepository(db)
	recordID := uuid.Must(uuid.NewV7())

	mock.ExpectQuery("SELECT id, name, value, created_at, updated_at").
		WithArgs(recordID.String()).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.GetByID(context.Background(), recordID)
	assert.Nil(t, got)
	assert.True(t, apperrors.Is(err, recordsDomain.ErrRecordNotFound))
}

func TestMySQLRecordRepository_Update(t *testing.T) {
	db, mock := newPostgreSQLMock(t)
	repo := NewMySQLRecordRepository(db)
	record := testRecord()

	mock.ExpectExec("UPDATE records").
		WithArgs(record.Value, record.UpdatedAt, record.ID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), record)
	assert.NoError(t, err)
}

func TestMySQLRecordRepository_Update_NotFound(t *testing.T) {
	db, mock := newPostgreSQLMock(t)
	repo := NewMySQLRecordRepository(db)
	record := testRecord()

	mock.ExpectExec("UPDATE records").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), record)
	assert.True(t, apperrors.Is(err, recordsDomain.ErrRecordNotFound))
}

func TestMySQLRecordRepository_Delete(t *testing.T) {
	db, mock := newPostgreSQLMock(t)
	repo := NewMySQLRecordRepository(db)
	recordID := uuid.Must(uuid.NewV7())

	mock.ExpectExec("DELETE FROM records").
		WithArgs(recordID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), recordID)
	assert.NoError(t, err)
}

func TestMySQLRecordRepository_Delete_NotFound(t *testing.T) {
	db, mock := newPostgreSQLMock(t)
	repo := NewMySQLRecordRepository(db)
	recordID := uuid.Must(uuid.NewV7())

	mock.ExpectExec("DELETE FROM records").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), recordID)
	assert.True(t, apperrors.Is(err, recordsDomain.ErrRecordNotFound))
}

func TestMySQLRecordRepository_List(t *testing.T) {
	db, mock := newPostgreSQLMock(t)
	repo := NewMySQLRecordRepository(db)

	id1 := uuid.Must(uuid.NewV7())
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
		AddRow(id1.String(), "only", now, now)

	// MySQL pagination binds limit before offset.
	mock.ExpectQuery("SELECT id, name, created_at, updated_at").
		WithArgs(50, 10).
		WillReturnRows(rows)

	records, err := repo.List(context.Background(), 10, 50)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, id1, records[0].ID)
	assert.Empty(t, records[0].Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}
