// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	recordsDomain "github.com/allisson/svcguard/internal/records/domain"
	customValidation "github.com/allisson/svcguard/internal/validation"
)

// CreateRecordRequest contains the parameters for creating a record.
type CreateRecordRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Validate checks if the create record request is valid.
func (r *CreateRecordRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			customValidation.NoWhitespace,
			validation.Length(1, recordsDomain.MaxRecordNameLength),
		),
		validation.Field(&r.Value,
			validation.Required,
			validation.Length(1, 0), // At least 1 character
		),
	)
}

// UpdateRecordRequest contains the parameters for updating a record's value.
type UpdateRecordRequest struct {
	Value string `json:"value"`
}

// Validate checks if the update record request is valid.
func (r *UpdateRecordRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Value,
			validation.Required,
			validation.Length(1, 0), // At least 1 character
		),
	)
}
