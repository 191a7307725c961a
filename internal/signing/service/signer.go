package service

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	signingDomain "github.com/allisson/svcguard/internal/signing/domain"
)

// OutboundSigner signs outbound requests on behalf of one service identity.
// Construction fails when the identity has no secret key, so a process can
// never start in a state where it would silently emit unsigned requests.
type OutboundSigner struct {
	identity signingDomain.ServiceIdentity
	now      func() time.Time
}

// NewOutboundSigner creates a signer for the given identity. Returns
// ErrMissingSignerKey when the identity carries no secret key.
func NewOutboundSigner(identity signingDomain.ServiceIdentity) (*OutboundSigner, error) {
	if !identity.HasKey() {
		return nil, signingDomain.ErrMissingSignerKey
	}
	return &OutboundSigner{identity: identity, now: time.Now}, nil
}

// NewOutboundSignerWithClock creates a signer with an injected clock.
// Intended for tests that need deterministic timestamps.
func NewOutboundSignerWithClock(
	identity signingDomain.ServiceIdentity,
	now func() time.Time,
) (*OutboundSigner, error) {
	signer, err := NewOutboundSigner(identity)
	if err != nil {
		return nil, err
	}
	signer.now = now
	return signer, nil
}

// Sign computes the signature envelope for an outbound call. The timestamp
// is the current Unix time in seconds; the signature covers the canonical
// string METHOD:PATH:TIMESTAMP:BODY.
func (s *OutboundSigner) Sign(method, path string, body []byte) signingDomain.SignedRequestEnvelope {
	timestamp := s.now().Unix()
	canonical := signingDomain.CanonicalString(method, path, timestamp, body)
	return signingDomain.SignedRequestEnvelope{
		ServiceID:        s.identity.ID,
		TimestampSeconds: timestamp,
		Method:           method,
		Path:             path,
		Body:             body,
		SignatureHex:     SignCanonical(canonical, s.identity.Key),
	}
}

// SignRequest injects the three authentication headers into req. The request
// body is read to compute the signature and restored afterwards; method,
// path and body are never altered. The signed path is the URL path without
// its query string.
func (s *OutboundSigner) SignRequest(req *http.Request) error {
	body, err := requestBody(req)
	if err != nil {
		return fmt.Errorf("failed to read request body for signing: %w", err)
	}

	envelope := s.Sign(req.Method, req.URL.Path, body)
	for name, value := range envelope.Headers() {
		req.Header.Set(name, value)
	}
	return nil
}

// requestBody returns the request body bytes and leaves req.Body readable.
func requestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	// Prefer GetBody so retries keep working on the original body.
	if req.GetBody != nil {
		rc, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		defer rc.Close() //nolint:errcheck
		return io.ReadAll(rc)
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	if err := req.Body.Close(); err != nil {
		return nil, err
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}
