package service

import (
	"strconv"
	"time"

	signingDomain "github.com/allisson/svcguard/internal/signing/domain"
)

// InboundVerifier checks inbound request signatures against the immutable
// key registry. Checks run in a fixed order and short-circuit on the first
// failure:
//
//  1. header presence   → ErrMissingHeaders
//  2. known service     → ErrUnknownService
//  3. fresh timestamp   → ErrInvalidOrExpiredTimestamp
//  4. key present       → ErrInvalidServiceCredentials
//  5. signature match   → ErrInvalidSignature
//
// A request whose timestamp is exactly replayWindow old is still accepted;
// one second older is rejected. Timestamps slightly in the future (clock
// skew between services) verify: only age beyond the window is rejected.
type InboundVerifier struct {
	registry     *signingDomain.KeyRegistry
	replayWindow time.Duration
	now          func() time.Time
}

// NewInboundVerifier creates a verifier backed by the given registry.
// A non-positive replayWindow falls back to the default of 300 seconds.
func NewInboundVerifier(registry *signingDomain.KeyRegistry, replayWindow time.Duration) *InboundVerifier {
	if replayWindow <= 0 {
		replayWindow = signingDomain.DefaultReplayWindow
	}
	return &InboundVerifier{
		registry:     registry,
		replayWindow: replayWindow,
		now:          time.Now,
	}
}

// NewInboundVerifierWithClock creates a verifier with an injected clock.
// Intended for tests that exercise the replay-window boundary.
func NewInboundVerifierWithClock(
	registry *signingDomain.KeyRegistry,
	replayWindow time.Duration,
	now func() time.Time,
) *InboundVerifier {
	verifier := NewInboundVerifier(registry, replayWindow)
	verifier.now = now
	return verifier
}

// Verify runs the check sequence for one inbound request. Returns nil when
// all checks pass, or the typed rejection error of the first failed check.
func (v *InboundVerifier) Verify(req VerifyRequest) error {
	// 1. All three headers must be present and non-empty.
	if req.ServiceID == "" || req.Timestamp == "" || req.Signature == "" {
		return signingDomain.ErrMissingHeaders
	}

	// 2. The claimed identity must be registered.
	identity, ok := v.registry.Lookup(req.ServiceID)
	if !ok {
		return signingDomain.ErrUnknownService
	}

	// 3. The timestamp must parse and be within the replay window.
	timestamp, err := strconv.ParseInt(req.Timestamp, 10, 64)
	if err != nil {
		return signingDomain.ErrInvalidOrExpiredTimestamp
	}
	age := v.now().Unix() - timestamp
	if age > int64(v.replayWindow/time.Second) {
		return signingDomain.ErrInvalidOrExpiredTimestamp
	}

	// 4. A known service without a configured secret never authenticates.
	if !identity.HasKey() {
		return signingDomain.ErrInvalidServiceCredentials
	}

	// 5. Recompute the signature from the actual inbound message and compare
	// in constant time.
	canonical := signingDomain.CanonicalString(req.Method, req.Path, timestamp, req.Body)
	expected := SignCanonical(canonical, identity.Key)
	if !ConstantTimeEqual([]byte(req.Signature), []byte(expected)) {
		return signingDomain.ErrInvalidSignature
	}

	return nil
}
