package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/elidotco/bookingformspace/internal/config"
)

func rateLimitTestRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	rm := NewRateLimiterMiddleware(cfg)
	r := gin.New()
	r.Use(rm.Limit())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.POST("/api/booking", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func doRequest(r *gin.Engine, method, path string) int {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	req.Header.Set("User-Agent", "test-agent")
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_SoftLimitOnSubmissions(t *testing.T) {
	cfg := &config.Config{
		RateLimitSoftBucketSize: 2,
		RateLimitSoftRefillRate: 0,
		RateLimitHardBucketSize: 100,
		RateLimitHardRefillRate: 0,
	}
	r := rateLimitTestRouter(cfg)

	assert.Equal(t, http.StatusOK, doRequest(r, "POST", "/api/booking"))
	assert.Equal(t, http.StatusOK, doRequest(r, "POST", "/api/booking"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(r, "POST", "/api/booking"))
}

func TestRateLimiter_SoftLimitDoesNotApplyToReads(t *testing.T) {
	cfg := &config.Config{
		RateLimitSoftBucketSize: 1,
		RateLimitSoftRefillRate: 0,
		RateLimitHardBucketSize: 100,
		RateLimitHardRefillRate: 0,
	}
	r := rateLimitTestRouter(cfg)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, doRequest(r, "GET", "/"))
	}
}

func TestRateLimiter_HardLimit(t *testing.T) {
	cfg := &config.Config{
		RateLimitSoftBucketSize: 100,
		RateLimitSoftRefillRate: 0,
		RateLimitHardBucketSize: 3,
		RateLimitHardRefillRate: 0,
	}
	r := rateLimitTestRouter(cfg)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doRequest(r, "GET", "/"))
	}
	assert.Equal(t, http.StatusTooManyRequests, doRequest(r, "GET", "/"))
}
