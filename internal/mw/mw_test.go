package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimit(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(1), 2)
	r := gin.New()
	r.Use(RateLimit(limiter, zap.NewNop()))
	r.POST("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/x", nil)
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestIPRateLimiter_Sweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewIPRateLimiter(rate.Limit(5), 5)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow("10.0.0.1"))
	now = now.Add(5 * time.Minute)
	assert.True(t, limiter.Allow("10.0.0.2"))
	assert.Equal(t, 2, limiter.Sweep())

	now = now.Add(6 * time.Minute)
	assert.Equal(t, 1, limiter.Sweep())
}

func TestRateLimit_EvictsIdleVisitors(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewIPRateLimiter(rate.Limit(5), 5)
	limiter.now = func() time.Time { return now }

	r := gin.New()
	r.Use(RateLimit(limiter, zap.NewNop()))
	r.POST("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	send := func(ip string) {
		req := httptest.NewRequest(http.MethodPost, "/x", nil)
		req.RemoteAddr = ip + ":40000"
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	send("10.0.0.1")
	send("10.0.0.2")
	assert.Len(t, limiter.visitors, 2)

	now = now.Add(11 * time.Minute)
	send("10.0.0.3")
	assert.Len(t, limiter.visitors, 1)
	assert.Contains(t, limiter.visitors, "10.0.0.3")
}

func TestPageCache(t *testing.T) {
	calls := 0
	r := gin.New()
	r.Use(NewPageCache(time.Minute).Handler())
	r.GET("/", func(c *gin.Context) {
		calls++
		c.String(http.StatusOK, "home")
	})

	get := func(target string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		return w
	}

	first := get("/")
	assert.Equal(t, "miss", first.Header().Get(CacheHeader))
	second := get("/")
	assert.Equal(t, "hit", second.Header().Get(CacheHeader))
	assert.Equal(t, "home", second.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", second.Header().Get("Content-Type"))
	assert.Equal(t, 1, calls)

	get("/?faq=1")
	assert.Equal(t, 2, calls, "query strings bypass the cache")
}

func TestPageCache_SkipsErrors(t *testing.T) {
	calls := 0
	r := gin.New()
	r.Use(NewPageCache(time.Minute).Handler())
	r.GET("/broken", func(c *gin.Context) {
		calls++
		c.String(http.StatusInternalServerError, "nope")
	})

	for i := 0; i < 2; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/broken", nil))
	}
	assert.Equal(t, 2, calls)
}

func TestPageCache_HonoursNoStore(t *testing.T) {
	calls := 0
	r := gin.New()
	r.Use(NewPageCache(time.Minute).Handler())
	r.GET("/fresh", func(c *gin.Context) {
		calls++
		c.Header("Cache-Control", "no-store")
		c.String(http.StatusOK, "fresh")
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fresh", nil))
		assert.Equal(t, "miss", w.Header().Get(CacheHeader))
	}
	assert.Equal(t, 2, calls)
}

func TestCacheableRequest(t *testing.T) {
	assert.True(t, cacheableRequest(httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.False(t, cacheableRequest(httptest.NewRequest(http.MethodGet, "/?sidebar=open", nil)))
	assert.False(t, cacheableRequest(httptest.NewRequest(http.MethodPost, "/", nil)))
}
