package httputil

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/svcguard/internal/errors"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestHandleErrorGin(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantStatusCode int
		wantErrorCode  string
	}{
		{
			name:           "not found",
			err:            apperrors.Wrap(apperrors.ErrNotFound, "record not found"),
			wantStatusCode: http.StatusNotFound,
			wantErrorCode:  "not_found",
		},
		{
			name:           "conflict",
			err:            apperrors.Wrap(apperrors.ErrConflict, "duplicate"),
			wantStatusCode: http.StatusConflict,
			wantErrorCode:  "conflict",
		},
		{
			name:           "invalid input",
			err:            apperrors.Wrap(apperrors.ErrInvalidInput, "bad field"),
			wantStatusCode: http.StatusUnprocessableEntity,
			wantErrorCode:  "invalid_input",
		},
		{
			name:           "unauthorized",
			err:            apperrors.Wrap(apperrors.ErrUnauthorized, "signature mismatch"),
			wantStatusCode: http.StatusUnauthorized,
			wantErrorCode:  "unauthorized",
		},
		{
			name:           "forbidden",
			err:            apperrors.ErrForbidden,
			wantStatusCode: http.StatusForbidden,
			wantErrorCode:  "forbidden",
		},
		{
			name:           "unknown error",
			err:            assert.AnError,
			wantStatusCode: http.StatusInternalServerError,
			wantErrorCode:  "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext()
			HandleErrorGin(c, tt.err, testLogger())

			assert.Equal(t, tt.wantStatusCode, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.wantErrorCode, response.Error)
		})
	}

	t.Run("unauthorized message does not leak details", func(t *testing.T) {
		c, w := testContext()
		HandleErrorGin(c, apperrors.Wrap(apperrors.ErrUnauthorized, "invalid signature"), testLogger())

		assert.NotContains(t, w.Body.String(), "invalid signature")
	})

	t.Run("nil error writes nothing", func(t *testing.T) {
		c, w := testContext()
		HandleErrorGin(c, nil, testLogger())
		assert.Empty(t, w.Body.Bytes())
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		c, w := testContext()
		HandleErrorGin(c, assert.AnError, nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandleBadRequestGin(t *testing.T) {
	c, w := testContext()
	HandleBadRequestGin(c, assert.AnError, testLogger())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bad_request")
}

func TestHandleValidationErrorGin(t *testing.T) {
	c, w := testContext()
	HandleValidationErrorGin(c, assert.AnError, testLogger())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "validation_error", response.Error)
	assert.Equal(t, assert.AnError.Error(), response.Message)
}
