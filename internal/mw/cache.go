package mw

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

// CacheHeader reports whether a page was served from the cache.
const CacheHeader = "X-Bookit-Cache"

// PageCache keeps rendered public pages in memory, keyed by path.
type PageCache struct {
	pages *cache.Cache
	ttl   time.Duration
}

// NewPageCache creates a cache whose pages expire after ttl.
func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{pages: cache.New(ttl, 2*ttl), ttl: ttl}
}

type renderedPage struct {
	contentType string
	body        []byte
}

type pageRecorder struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (w *pageRecorder) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *pageRecorder) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Handler serves repeated GETs of a page from the cache. Requests with a
// query string are personalised views and always reach the handler.
func (p *PageCache) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cacheableRequest(c.Request) {
			c.Next()
			return
		}

		key := c.Request.URL.Path
		if hit, found := p.pages.Get(key); found {
			page := hit.(renderedPage)
			c.Header(CacheHeader, "hit")
			c.Data(http.StatusOK, page.contentType, page.body)
			c.Abort()
			return
		}

		rec := &pageRecorder{ResponseWriter: c.Writer, buf: &bytes.Buffer{}}
		c.Writer = rec
		c.Header(CacheHeader, "miss")

		c.Next()

		if cacheableResponse(rec.Status(), rec.Header()) {
			p.pages.Set(key, renderedPage{
				contentType: rec.Header().Get("Content-Type"),
				body:        rec.buf.Bytes(),
			}, p.ttl)
		}
	}
}

func cacheableRequest(r *http.Request) bool {
	return r.Method == http.MethodGet && r.URL.RawQuery == ""
}

func cacheableResponse(status int, h http.Header) bool {
	if status != http.StatusOK || h.Get("Set-Cookie") != "" {
		return false
	}
	return !strings.Contains(h.Get("Cache-Control"), "no-store")
}
