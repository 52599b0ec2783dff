package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdd-roadmap/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(mw Middleware, trustedProxies ...string) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		panic(err)
	}
	r.Use(mw.RequestID())
	r.GET("/limited", mw.RateLimit(), func(c *gin.Context) {
		id, _ := c.Request.Context().Value(log.RequestIDKey).(string)
		c.String(http.StatusOK, id)
	})
	return r
}

func get(r http.Handler, ip string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/limited", nil)
	req.RemoteAddr = ip + ":1234"
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	// 10 per minute gives a burst of one request
	r := newRouter(New(log.NewNop(), 10))

	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1", nil).Code)

	w := get(r, "10.0.0.1", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")

	// another client has its own bucket
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.2", nil).Code)
}

func TestRateLimit_ForwardedForFromTrustedProxy(t *testing.T) {
	r := newRouter(New(log.NewNop(), 10), "10.0.0.0/8")

	h := http.Header{"X-Forwarded-For": {"203.0.113.7, 10.0.0.1"}}
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1", h).Code)
	// same client behind another proxy shares the bucket
	assert.Equal(t, http.StatusTooManyRequests, get(r, "10.0.0.9", h).Code)
}

func TestRateLimit_IgnoresSpoofedForwardedFor(t *testing.T) {
	r := newRouter(New(log.NewNop(), 10))

	assert.Equal(t, http.StatusOK, get(r, "198.51.100.4", http.Header{"X-Forwarded-For": {"203.0.113.1"}}).Code)
	// rotating the header does not buy a fresh bucket
	assert.Equal(t, http.StatusTooManyRequests, get(r, "198.51.100.4", http.Header{"X-Forwarded-For": {"203.0.113.2"}}).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "198.51.100.4", http.Header{"X-Real-IP": {"203.0.113.3"}}).Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	r := newRouter(New(log.NewNop(), 0))
	for i := 0; i < 20; i++ {
		require.Equal(t, http.StatusOK, get(r, "10.0.0.1", nil).Code)
	}
}

func TestRequestID(t *testing.T) {
	r := newRouter(New(log.NewNop(), 0))

	w := get(r, "10.0.0.1", nil)
	id := w.Header().Get(HeaderRequestID)
	assert.Len(t, id, 36)
	assert.Equal(t, id, w.Body.String())

	w = get(r, "10.0.0.1", http.Header{HeaderRequestID: {"abc-123"}})
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "abc-123", w.Body.String())
}
