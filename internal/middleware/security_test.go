package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/", handlers...)
	return r
}

func doGet(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestBearerAuth(t *testing.T) {
	r := newEngine(BearerAuth("tok"))

	w := doGet(r, "Bearer tok")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestBearerAuthRejects(t *testing.T) {
	r := newEngine(BearerAuth("tok"))

	for _, header := range []string{"", "Bearer wrong", "tok", "bearer tok", "Bearer tok "} {
		w := doGet(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.Equal(t, "Unauthorized", w.Body.String(), "header %q", header)
	}
}

func TestRateLimiterReusesPerIP(t *testing.T) {
	rl := NewRateLimiter()
	assert.Same(t, rl.GetLimiter("10.0.0.1"), rl.GetLimiter("10.0.0.1"))
	assert.NotSame(t, rl.GetLimiter("10.0.0.1"), rl.GetLimiter("10.0.0.2"))
}

func TestRateLimitMiddlewareAllowsBurst(t *testing.T) {
	r := newEngine(RateLimitMiddleware(NewRateLimiter()))

	for i := 0; i < 5; i++ {
		w := doGet(r, "")
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitMiddlewareBlocksExcess(t *testing.T) {
	r := newEngine(RateLimitMiddleware(NewRateLimiter()))

	blocked := false
	for i := 0; i < 50; i++ {
		if doGet(r, "").Code == http.StatusTooManyRequests {
			blocked = true
			break
		}
	}
	assert.True(t, blocked)
}
