package http

import (
	"net/http"

	signingService "github.com/allisson/svcguard/internal/signing/service"
)

// SigningTransport is an http.RoundTripper that signs every outbound request
// with the process's own service identity before delegating to the base
// transport. Only headers are added; method, URL and body pass through
// untouched.
//
// Usage:
//
//	client := &http.Client{
//	    Transport: NewSigningTransport(signer, nil),
//	}
//	resp, err := client.Post(url, "application/json", body)
type SigningTransport struct {
	signer signingService.RequestSigner
	base   http.RoundTripper
}

// NewSigningTransport creates a signing transport. A nil base falls back to
// http.DefaultTransport.
func NewSigningTransport(signer signingService.RequestSigner, base http.RoundTripper) *SigningTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &SigningTransport{signer: signer, base: base}
}

// RoundTrip implements http.RoundTripper. The request is cloned before
// signing, per the RoundTripper contract that the original request must not
// be mutated.
func (t *SigningTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	signed := req.Clone(req.Context())
	if err := t.signer.SignRequest(signed); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(signed)
}
