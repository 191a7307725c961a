package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	signingDomain "github.com/allisson/svcguard/internal/signing/domain"
	signingHTTP "github.com/allisson/svcguard/internal/signing/http"
	signingService "github.com/allisson/svcguard/internal/signing/service"
)

// KeyRegistry returns the immutable registry of trusted service keys.
func (c *Container) KeyRegistry() *signingDomain.KeyRegistry {
	c.keyRegistryInit.Do(func() {
		c.keyRegistry = signingDomain.NewKeyRegistry(c.config.ServiceAuthKeys)
	})
	return c.keyRegistry
}

// InboundVerifier returns the inbound request signature verifier.
func (c *Container) InboundVerifier() *signingService.InboundVerifier {
	c.inboundVerifierInit.Do(func() {
		c.inboundVerifier = signingService.NewInboundVerifier(
			c.KeyRegistry(),
			c.config.ServiceAuthReplayWindow,
		)
	})
	return c.inboundVerifier
}

// OutboundSigner returns the signer for this process's own identity.
// Fails when SERVICE_KEY is not configured: a process can never start in a
// state where it would emit unsigned requests.
func (c *Container) OutboundSigner() (*signingService.OutboundSigner, error) {
	var err error
	c.outboundSignerInit.Do(func() {
		c.outboundSigner, err = c.initOutboundSigner()
		if err != nil {
			c.initErrors["outboundSigner"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["outboundSigner"]; exists {
		return nil, storedErr
	}
	return c.outboundSigner, nil
}

// VerificationMiddleware returns the gin middleware that authenticates
// inbound requests via signature headers.
func (c *Container) VerificationMiddleware() (gin.HandlerFunc, error) {
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for verification middleware: %w", err)
	}

	return signingHTTP.VerificationMiddleware(
		c.InboundVerifier(),
		businessMetrics,
		c.Logger(),
	), nil
}

// initOutboundSigner creates the outbound signer from the configured identity.
func (c *Container) initOutboundSigner() (*signingService.OutboundSigner, error) {
	identity := signingDomain.ServiceIdentity{
		ID:  c.config.ServiceID,
		Key: []byte(c.config.ServiceKey),
	}

	signer, err := signingService.NewOutboundSigner(identity)
	if err != nil {
		return nil, fmt.Errorf("failed to create outbound signer: %w", err)
	}
	return signer, nil
}

// rateLimitMiddleware returns the per-service rate limit middleware, or nil
// when rate limiting is disabled.
func (c *Container) rateLimitMiddleware() gin.HandlerFunc {
	if !c.config.RateLimitEnabled {
		return nil
	}
	return signingHTTP.RateLimitMiddleware(
		c.config.RateLimitRequestsPerSec,
		c.config.RateLimitBurst,
		c.Logger(),
	)
}
