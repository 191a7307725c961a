package validation

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/svcguard/internal/errors"
)

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"non-blank string", "api-token", false},
		{"blank string", "   ", true},
		{"tab and newline", "\t\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NotBlank.Validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNoWhitespace(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"clean string", "api-token", false},
		{"internal space is allowed", "api token", false},
		{"leading space", " api-token", true},
		{"trailing space", "api-token ", true},
		{"trailing newline", "api-token\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NoWhitespace.Validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBase64(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{"valid base64", base64.StdEncoding.EncodeToString([]byte("payload")), false},
		{"empty string passes", "", false},
		{"invalid base64", "!!not base64!!", true},
		{"non-string value", 42, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Base64.Validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWrapValidationError(t *testing.T) {
	t.Run("wraps as invalid input", func(t *testing.T) {
		err := WrapValidationError(assert.AnError)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		assert.Contains(t, err.Error(), assert.AnError.Error())
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		assert.Nil(t, WrapValidationError(nil))
	})
}
