package http

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/svcguard/internal/httputil"
	"github.com/allisson/svcguard/internal/metrics"
	signingDomain "github.com/allisson/svcguard/internal/signing/domain"
	signingService "github.com/allisson/svcguard/internal/signing/service"
)

// VerificationMiddleware authenticates inbound requests via the three
// signature headers (x-service-id, x-request-timestamp, x-request-signature).
//
// The middleware:
//  1. Reads the raw request body and restores it for downstream handlers,
//     so the bytes actually received are the bytes verified
//  2. Reconstructs the request description from the actual method and path
//  3. Runs the verifier's check sequence
//  4. Stores the verified caller identity in the request context on success
//
// Every rejection maps to 401 Unauthorized. The response never echoes the
// service ID, the supplied signature, or key material; the rejection reason
// is recorded only in logs (as an error kind) and metrics (as a label).
func VerificationMiddleware(
	verifier signingService.RequestVerifier,
	businessMetrics metrics.BusinessMetrics,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := readBody(c.Request)
		if err != nil {
			logger.Warn("signature verification failed: unreadable body")
			httputil.HandleBadRequestGin(c, err, logger)
			c.Abort()
			return
		}

		req := signingService.VerifyRequest{
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Body:      body,
			ServiceID: c.GetHeader(signingDomain.HeaderServiceID),
			Timestamp: c.GetHeader(signingDomain.HeaderTimestamp),
			Signature: c.GetHeader(signingDomain.HeaderSignature),
		}

		if err := verifier.Verify(req); err != nil {
			reason := signingDomain.RejectionReason(err)
			logger.Debug("signature verification rejected",
				slog.String("reason", reason))
			businessMetrics.RecordOperation(c.Request.Context(), "signing", "verify", reason)
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		businessMetrics.RecordOperation(c.Request.Context(), "signing", "verify", "accepted")

		ctx := WithCaller(c.Request.Context(), req.ServiceID)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("signature verification accepted",
			slog.String("service_id", req.ServiceID))

		c.Next()
	}
}

// readBody drains the request body and replaces it with a replayable copy.
func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if err := r.Body.Close(); err != nil {
		return nil, err
	}
	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}
