package domain

import (
	"github.com/allisson/svcguard/internal/errors"
)

// Field encryption error definitions.
var (
	// ErrKeyMaterialTooShort indicates the configured key material is missing
	// or shorter than MinKeyMaterialSize. Fatal at construction time.
	ErrKeyMaterialTooShort = errors.Wrap(errors.ErrInvalidInput, "field encryption key material missing or too short")

	// ErrInvalidEnvelope indicates the encoded field is not valid base64 or is
	// too short to contain an IV and an authentication tag.
	ErrInvalidEnvelope = errors.Wrap(errors.ErrInvalidInput, "invalid encrypted field envelope")

	// ErrDecryptionFailed indicates authenticated decryption failed: the data
	// was corrupted or tampered with, or the wrong key was used. Surfaced as a
	// typed error so callers can detect and alert instead of silently storing
	// a placeholder.
	ErrDecryptionFailed = errors.New("field decryption failed")

	// ErrEncryptionFailed indicates the encryption primitive itself failed
	// (e.g., the random IV could not be generated). Should be exceedingly rare.
	ErrEncryptionFailed = errors.New("field encryption failed")
)
