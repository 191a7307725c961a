// Package http provides HTTP handlers for record management operations.
// Record values are encrypted at rest; handlers never see ciphertext.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/svcguard/internal/httputil"
	"github.com/allisson/svcguard/internal/records/http/dto"
	recordsUseCase "github.com/allisson/svcguard/internal/records/usecase"
	signingHTTP "github.com/allisson/svcguard/internal/signing/http"
	customValidation "github.com/allisson/svcguard/internal/validation"
)

// RecordHandler handles HTTP requests for record management operations.
type RecordHandler struct {
	recordUseCase recordsUseCase.RecordUseCase
	logger        *slog.Logger
}

// NewRecordHandler creates a new record handler with required dependencies.
func NewRecordHandler(
	recordUseCase recordsUseCase.RecordUseCase,
	logger *slog.Logger,
) *RecordHandler {
	return &RecordHandler{
		recordUseCase: recordUseCase,
		logger:        logger,
	}
}

// CreateHandler creates a new record with an encrypted value.
// POST /v1/records
// Returns 201 Created with the record, value in plaintext.
func (h *RecordHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateRecordRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	record, err := h.recordUseCase.Create(c.Request.Context(), req.Name, req.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("record created",
		slog.String("record_id", record.ID.String()),
		slog.String("caller_service_id", callerServiceID(c)),
	)

	response := dto.MapRecordToResponse(record)
	c.JSON(http.StatusCreated, response)
}

// GetHandler retrieves a record and decrypts its value.
// GET /v1/records/:id
// Returns 200 OK with plaintext value.
func (h *RecordHandler) GetHandler(c *gin.Context) {
	recordID, err := parseRecordID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	record, err := h.recordUseCase.Get(c.Request.Context(), recordID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapRecordToResponse(record)
	c.JSON(http.StatusOK, response)
}

// UpdateHandler replaces a record's value, re-encrypting with a fresh IV.
// PUT /v1/records/:id
// Returns 200 OK with the updated record.
func (h *RecordHandler) UpdateHandler(c *gin.Context) {
	recordID, err := parseRecordID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateRecordRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	record, err := h.recordUseCase.Update(c.Request.Context(), recordID, req.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("record updated",
		slog.String("record_id", record.ID.String()),
		slog.String("caller_service_id", callerServiceID(c)),
	)

	response := dto.MapRecordToResponse(record)
	c.JSON(http.StatusOK, response)
}

// DeleteHandler removes a record.
// DELETE /v1/records/:id
// Returns 204 No Content.
func (h *RecordHandler) DeleteHandler(c *gin.Context) {
	recordID, err := parseRecordID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.recordUseCase.Delete(c.Request.Context(), recordID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("record deleted",
		slog.String("record_id", recordID.String()),
		slog.String("caller_service_id", callerServiceID(c)),
	)

	// Return 204 No Content with empty body
	c.Data(http.StatusNoContent, "application/json", nil)
}

// ListHandler retrieves record metadata with pagination support.
// GET /v1/records?offset=0&limit=50
// Returns 200 OK with a paginated list, values excluded.
func (h *RecordHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	records, err := h.recordUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapRecordsToListResponse(records, offset, limit)
	c.JSON(http.StatusOK, response)
}

// parseRecordID extracts and validates the record id path parameter.
func parseRecordID(c *gin.Context) (uuid.UUID, error) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid record id: must be a valid uuid")
	}
	return recordID, nil
}

// callerServiceID returns the verified caller identity set by the
// verification middleware, or an empty string if none is present.
func callerServiceID(c *gin.Context) string {
	serviceID, _ := signingHTTP.GetCaller(c.Request.Context())
	return serviceID
}
