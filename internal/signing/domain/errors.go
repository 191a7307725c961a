package domain

import (
	"github.com/allisson/svcguard/internal/errors"
)

// Verification rejection errors. All wrap errors.ErrUnauthorized so the HTTP
// layer maps every rejection to a 401-class response without leaking which
// check failed to the caller. The specific reason stays observable in logs
// and metrics via RejectionReason.
var (
	// ErrMissingHeaders indicates one or more signature headers are absent or empty.
	ErrMissingHeaders = errors.Wrap(errors.ErrUnauthorized, "missing signature headers")

	// ErrUnknownService indicates the claimed service identity is not in the registry.
	ErrUnknownService = errors.Wrap(errors.ErrUnauthorized, "unknown service")

	// ErrInvalidOrExpiredTimestamp indicates the timestamp is unparsable or outside the replay window.
	ErrInvalidOrExpiredTimestamp = errors.Wrap(errors.ErrUnauthorized, "invalid or expired timestamp")

	// ErrInvalidServiceCredentials indicates the service is known but has no usable secret key.
	ErrInvalidServiceCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid service credentials")

	// ErrInvalidSignature indicates the supplied signature does not match the recomputed one.
	ErrInvalidSignature = errors.Wrap(errors.ErrUnauthorized, "invalid signature")

	// ErrMissingSignerKey indicates an outbound signer was constructed without a secret key.
	ErrMissingSignerKey = errors.Wrap(errors.ErrInvalidInput, "signer has no secret key configured")
)

// RejectionReason returns a stable label for a verification rejection,
// suitable for metrics and structured logs. Returns "unknown" for errors
// that are not verification rejections.
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingHeaders):
		return "missing_headers"
	case errors.Is(err, ErrUnknownService):
		return "unknown_service"
	case errors.Is(err, ErrInvalidOrExpiredTimestamp):
		return "invalid_or_expired_timestamp"
	case errors.Is(err, ErrInvalidServiceCredentials):
		return "invalid_service_credentials"
	case errors.Is(err, ErrInvalidSignature):
		return "invalid_signature"
	default:
		return "unknown"
	}
}
