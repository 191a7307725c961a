package domain

import (
	"strconv"
	"strings"
)

// SignedRequestEnvelope is the transient description of one signed request.
// It is produced by the outbound signer and reconstructed independently by
// the verifier from the incoming HTTP message; it is never persisted.
type SignedRequestEnvelope struct {
	ServiceID        string
	TimestampSeconds int64
	Method           string
	Path             string
	Body             []byte
	SignatureHex     string
}

// CanonicalString builds the exact byte string signed by both sides:
// "METHOD:PATH:TIMESTAMP:BODY", colon-joined, with the method upper-cased,
// the path taken without its query string, the timestamp as decimal Unix
// seconds, and the raw body bytes passed through verbatim (empty when the
// request has no body). The body is deliberately never re-serialized: the
// bytes actually sent are the bytes that get signed, so unstable JSON key
// ordering cannot produce signature mismatches.
func CanonicalString(method, path string, timestampSeconds int64, body []byte) string {
	var b strings.Builder
	b.Grow(len(method) + len(path) + len(body) + 24)
	b.WriteString(strings.ToUpper(method))
	b.WriteByte(':')
	b.WriteString(path)
	b.WriteByte(':')
	b.WriteString(strconv.FormatInt(timestampSeconds, 10))
	b.WriteByte(':')
	b.Write(body)
	return b.String()
}

// CanonicalString returns the canonical form of the envelope's request.
func (e SignedRequestEnvelope) CanonicalString() string {
	return CanonicalString(e.Method, e.Path, e.TimestampSeconds, e.Body)
}

// Headers returns the three authentication headers carried by the envelope.
func (e SignedRequestEnvelope) Headers() map[string]string {
	return map[string]string{
		HeaderServiceID: e.ServiceID,
		HeaderTimestamp: strconv.FormatInt(e.TimestampSeconds, 10),
		HeaderSignature: e.SignatureHex,
	}
}
