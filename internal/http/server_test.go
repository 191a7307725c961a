package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/svcguard/internal/metrics"
	recordsDomain "github.com/allisson/svcguard/internal/records/domain"
	recordsHTTP "github.com/allisson/svcguard/internal/records/http"
	signingDomain "github.com/allisson/svcguard/internal/signing/domain"
	signingHTTP "github.com/allisson/svcguard/internal/signing/http"
	signingService "github.com/allisson/svcguard/internal/signing/service"
)

// stubRecordUseCase is a minimal use case for router wiring tests.
type stubRecordUseCase struct{}

func (s *stubRecordUseCase) Create(_ context.Context, name, value string) (*recordsDomain.Record, error) {
	now := time.Now().UTC()
	return &recordsDomain.Record{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      name,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *stubRecordUseCase) Get(_ context.Context, recordID uuid.UUID) (*recordsDomain.Record, error) {
	return &recordsDomain.Record{ID: recordID, Name: "stub"}, nil
}

func (s *stubRecordUseCase) Update(_ context.Context, recordID uuid.UUID, value string) (*recordsDomain.Record, error) {
	return &recordsDomain.Record{ID: recordID, Name: "stub", Value: value}, nil
}

func (s *stubRecordUseCase) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (s *stubRecordUseCase) List(_ context.Context, _, _ int) ([]*recordsDomain.Record, error) {
	return []*recordsDomain.Record{}, nil
}

func serverTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestServer(t *testing.T) (*Server, *signingService.OutboundSigner) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := serverTestLogger()
	registry := signingDomain.NewKeyRegistry(map[string]string{
		"billing-api": "shared-secret",
	})
	verifier := signingService.NewInboundVerifier(registry, 300*time.Second)

	handler := recordsHTTP.NewRecordHandler(&stubRecordUseCase{}, logger)

	server := NewServer("localhost", 8080, RouterOptions{
		Logger: logger,
		VerificationMiddleware: signingHTTP.VerificationMiddleware(
			verifier,
			metrics.NewNoOpBusinessMetrics(),
			logger,
		),
		RecordHandler: handler,
	})

	signer, err := signingService.NewOutboundSigner(signingDomain.ServiceIdentity{
		ID:  "billing-api",
		Key: []byte("shared-secret"),
	})
	require.NoError(t, err)

	return server, signer
}

func TestServer_HealthEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	server.GetHandler().ServeHTTP(w, req)

	// Health stays outside the authenticated group.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestServer_APIRequiresSignature(t *testing.T) {
	server, signer := newTestServer(t)

	t.Run("unsigned request rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/records", nil)
		w := httptest.NewRecorder()
		server.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "unauthorized")
	})

	t.Run("signed request reaches handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/records", nil)
		require.NoError(t, signer.SignRequest(req))

		w := httptest.NewRecorder()
		server.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"records"`)
	})

	t.Run("signature from unknown service rejected", func(t *testing.T) {
		unknownSigner, err := signingService.NewOutboundSigner(signingDomain.ServiceIdentity{
			ID:  "rogue-api",
			Key: []byte("rogue-secret"),
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/v1/records", nil)
		require.NoError(t, unknownSigner.SignRequest(req))

		w := httptest.NewRecorder()
		server.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestServer_PanicRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := serverTestLogger()

	router := gin.New()
	router.Use(RecoveryMiddleware(logger))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestReadinessHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	router := gin.New()
	router.GET("/ready", ReadinessHandler(ctx))

	t.Run("ready while context is live", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ready")
	})

	t.Run("not ready after shutdown begins", func(t *testing.T) {
		cancel()

		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "not ready")
	})
}
