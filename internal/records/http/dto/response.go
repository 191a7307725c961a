package dto

import (
	"time"

	recordsDomain "github.com/allisson/svcguard/internal/records/domain"
)

// RecordResponse is the full record representation returned by create, get
// and update. The value is plaintext: it was decrypted (or never left
// memory) on the way here.
type RecordResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordMetadataResponse is the record representation without its value,
// used by list.
type RecordMetadataResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListRecordsResponse wraps a page of record metadata.
type ListRecordsResponse struct {
	Records []RecordMetadataResponse `json:"records"`
	Offset  int                      `json:"offset"`
	Limit   int                      `json:"limit"`
}

// MapRecordToResponse converts a domain record to its full response form.
func MapRecordToResponse(record *recordsDomain.Record) RecordResponse {
	return RecordResponse{
		ID:        record.ID.String(),
		Name:      record.Name,
		Value:     record.Value,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

// MapRecordsToListResponse converts a page of domain records to the list response.
func MapRecordsToListResponse(records []*recordsDomain.Record, offset, limit int) ListRecordsResponse {
	items := make([]RecordMetadataResponse, 0, len(records))
	for _, record := range records {
		items = append(items, RecordMetadataResponse{
			ID:        record.ID.String(),
			Name:      record.Name,
			CreatedAt: record.CreatedAt,
			UpdatedAt: record.UpdatedAt,
		})
	}
	return ListRecordsResponse{
		Records: items,
		Offset:  offset,
		Limit:   limit,
	}
}
