package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"employee-manager/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func setupLimitedRouter(r rate.Limit, b int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RateLimitByIP(r, b))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return router
}

func TestRateLimitByIP(t *testing.T) {
	t.Run("allows requests within the burst", func(t *testing.T) {
		router := setupLimitedRouter(1, 3)

		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("rejects once the bucket is drained", func(t *testing.T) {
		router := setupLimitedRouter(rate.Limit(0.001), 1)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "Too Many Requests")
	})

	t.Run("limiter instances are per key", func(t *testing.T) {
		limiter := middleware.NewIPRateLimiter(1, 1)

		a := limiter.GetLimiter("10.0.0.1")
		b := limiter.GetLimiter("10.0.0.2")
		assert.NotSame(t, a, b)
		assert.Same(t, a, limiter.GetLimiter("10.0.0.1"))
	})
}
