package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedRouter(rps float64, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	// Simulate the verification middleware having established the caller.
	router.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(WithCaller(c.Request.Context(), "billing-api"))
		c.Next()
	})
	router.Use(RateLimitMiddleware(rps, burst, testLogger()))
	router.GET("/v1/records", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRateLimitMiddleware_AllowsWithinBurst(t *testing.T) {
	router := newRateLimitedRouter(1, 3)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/records", nil))
		assert.Equal(t, http.StatusOK, w.Code, "request %d within burst should pass", i+1)
	}
}

func TestRateLimitMiddleware_RejectsOverBurst(t *testing.T) {
	router := newRateLimitedRouter(0.001, 1)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/records", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/records", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
}

func TestRateLimitMiddleware_IndependentPerService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		serviceID := c.GetHeader("x-test-caller")
		c.Request = c.Request.WithContext(WithCaller(c.Request.Context(), serviceID))
		c.Next()
	})
	router.Use(RateLimitMiddleware(0.001, 1, testLogger()))
	router.GET("/v1/records", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Exhaust billing-api's bucket.
	req := httptest.NewRequest(http.MethodGet, "/v1/records", nil)
	req.Header.Set("x-test-caller", "billing-api")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/records", nil)
	req.Header.Set("x-test-caller", "billing-api")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// A different service keeps its own bucket.
	req = httptest.NewRequest(http.MethodGet, "/v1/records", nil)
	req.Header.Set("x-test-caller", "orders-api")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitMiddleware_NoCallerInContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimitMiddleware(10, 10, testLogger()))
	router.GET("/v1/records", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/records", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
