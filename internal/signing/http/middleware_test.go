package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/svcguard/internal/metrics"
	signingDomain "github.com/allisson/svcguard/internal/signing/domain"
	signingService "github.com/allisson/svcguard/internal/signing/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newVerifiedRouter(t *testing.T, now int64) (*gin.Engine, *signingService.OutboundSigner) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := signingDomain.NewKeyRegistry(map[string]string{"billing-api": "k"})
	verifier := signingService.NewInboundVerifierWithClock(
		registry,
		300*time.Second,
		func() time.Time { return time.Unix(now, 0).UTC() },
	)

	router := gin.New()
	router.Use(VerificationMiddleware(verifier, metrics.NewNoOpBusinessMetrics(), testLogger()))
	router.POST("/v1/records", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		require.NoError(t, err)

		caller, _ := GetCaller(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"caller": caller,
			"body":   string(body),
		})
	})

	signer, err := signingService.NewOutboundSignerWithClock(
		signingDomain.ServiceIdentity{ID: "billing-api", Key: []byte("k")},
		func() time.Time { return time.Unix(now, 0).UTC() },
	)
	require.NoError(t, err)

	return router, signer
}

func TestVerificationMiddleware_Accepted(t *testing.T) {
	router, signer := newVerifiedRouter(t, 1700000000)

	payload := `{"name":"test"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/records", strings.NewReader(payload))
	require.NoError(t, signer.SignRequest(req))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// Caller identity and the replayable body both reached the handler.
	assert.Contains(t, w.Body.String(), `"caller":"billing-api"`)
	assert.Contains(t, w.Body.String(), `test`)
}

func TestVerificationMiddleware_MissingHeaders(t *testing.T) {
	router, _ := newVerifiedRouter(t, 1700000000)

	req := httptest.NewRequest(http.MethodPost, "/v1/records", strings.NewReader("{}"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized")
	// The response body never reveals which check failed.
	assert.NotContains(t, w.Body.String(), "missing")
}

func TestVerificationMiddleware_UnknownService(t *testing.T) {
	router, signer := newVerifiedRouter(t, 1700000000)

	req := httptest.NewRequest(http.MethodPost, "/v1/records", strings.NewReader("{}"))
	require.NoError(t, signer.SignRequest(req))
	req.Header.Set(signingDomain.HeaderServiceID, "rogue-api")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerificationMiddleware_ExpiredTimestamp(t *testing.T) {
	// Server clock is 301 seconds past the signing time.
	router, _ := newVerifiedRouter(t, 1700000301)

	signer, err := signingService.NewOutboundSignerWithClock(
		signingDomain.ServiceIdentity{ID: "billing-api", Key: []byte("k")},
		func() time.Time { return time.Unix(1700000000, 0).UTC() },
	)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/records", strings.NewReader("{}"))
	require.NoError(t, signer.SignRequest(req))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerificationMiddleware_TamperedBody(t *testing.T) {
	router, signer := newVerifiedRouter(t, 1700000000)

	envelope := signer.Sign("POST", "/v1/records", []byte(`{"name":"a"}`))

	req := httptest.NewRequest(http.MethodPost, "/v1/records", strings.NewReader(`{"name":"b"}`))
	req.Header.Set(signingDomain.HeaderServiceID, envelope.ServiceID)
	req.Header.Set(signingDomain.HeaderTimestamp, strconv.FormatInt(envelope.TimestampSeconds, 10))
	req.Header.Set(signingDomain.HeaderSignature, envelope.SignatureHex)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerificationMiddleware_QueryStringIgnored(t *testing.T) {
	gin.SetMode(gin.TestMode)

	registry := signingDomain.NewKeyRegistry(map[string]string{"billing-api": "k"})
	verifier := signingService.NewInboundVerifierWithClock(
		registry,
		300*time.Second,
		func() time.Time { return time.Unix(1700000000, 0).UTC() },
	)

	router := gin.New()
	router.Use(VerificationMiddleware(verifier, metrics.NewNoOpBusinessMetrics(), testLogger()))
	router.GET("/v1/records", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	signer, err := signingService.NewOutboundSignerWithClock(
		signingDomain.ServiceIdentity{ID: "billing-api", Key: []byte("k")},
		func() time.Time { return time.Unix(1700000000, 0).UTC() },
	)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/records?offset=10&limit=5", nil)
	require.NoError(t, signer.SignRequest(req))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
