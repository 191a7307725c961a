// Package domain defines service-to-service request signing domain models.
package domain

import "time"

// HTTP headers carrying the request signature. Header names are
// case-insensitive on the wire; these are the canonical lowercase forms.
const (
	// HeaderServiceID carries the calling service's identity string.
	HeaderServiceID = "x-service-id"
	// HeaderTimestamp carries the signing time as decimal Unix seconds.
	HeaderTimestamp = "x-request-timestamp"
	// HeaderSignature carries the lowercase hex HMAC-SHA256 signature.
	HeaderSignature = "x-request-signature"
)

// DefaultReplayWindow bounds how old a signed request may be. A request whose
// timestamp is exactly the window's age is still accepted; one second older
// is rejected. Replay within the window is an accepted residual risk: there
// is no nonce cache.
const DefaultReplayWindow = 300 * time.Second
