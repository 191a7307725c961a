// Package service implements the service-to-service request signing
// primitives: the HMAC signature codec, the outbound request signer, and the
// inbound request verifier. All operations are synchronous, CPU-bound, and
// stateless beyond the immutable key registry, so they are safe for
// concurrent use without locking.
package service

import (
	"net/http"

	signingDomain "github.com/allisson/svcguard/internal/signing/domain"
)

// RequestSigner produces authentication headers for outbound requests.
type RequestSigner interface {
	// Sign computes the signature envelope for an outbound call described by
	// method, path and raw body bytes (nil or empty when there is no body).
	Sign(method, path string, body []byte) signingDomain.SignedRequestEnvelope

	// SignRequest injects the three authentication headers into req. It reads
	// and restores the request body; method, path and body are never altered.
	SignRequest(req *http.Request) error
}

// VerifyRequest describes one inbound request as reconstructed from the HTTP
// message: the actual method, path and body plus the three header values as
// received (empty string when a header is absent).
type VerifyRequest struct {
	Method    string
	Path      string
	Body      []byte
	ServiceID string
	Timestamp string
	Signature string
}

// RequestVerifier checks inbound request signatures. Verify returns nil on
// acceptance or one of the typed rejection errors from the signing domain;
// each request is verified exactly once, no check is retried.
type RequestVerifier interface {
	Verify(req VerifyRequest) error
}
