package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

const (
	responseMetaKey  = "response_meta"
	requestStartKey  = "request_start"
	cacheHitKey      = "cache_hit"
	processingTimeMS = "processing_time_ms"
)

// WithResponseMeta prepares the per-request meta map and records when the request started.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(requestStartKey, time.Now())
		c.Set(responseMetaKey, map[string]interface{}{})
		c.Next()
	}
}

// Meta returns the request's meta map with processing_time_ms measured from the start recorded
// by WithResponseMeta. Without that middleware the timing is left out.
func Meta(c *gin.Context) map[string]interface{} {
	if c == nil {
		return nil
	}
	var start time.Time
	if raw, ok := c.Get(requestStartKey); ok {
		start, _ = raw.(time.Time)
	}
	return ResponseMeta(c, start)
}

// SetCacheHit records whether the response was served from cache.
func SetCacheHit(c *gin.Context, hit bool) {
	SetMeta(c, cacheHitKey, hit)
}

// SetMeta stores a key in the response meta block.
func SetMeta(c *gin.Context, key string, value interface{}) {
	ensureMeta(c)[key] = value
}

// ResponseMeta returns the request's meta map with processing_time_ms measured from start.
func ResponseMeta(c *gin.Context, start time.Time) map[string]interface{} {
	if c == nil {
		return nil
	}
	meta := ensureMeta(c)
	if !start.IsZero() {
		meta[processingTimeMS] = time.Since(start).Milliseconds()
	}
	return meta
}

// ExtractMeta returns the metadata map stored on the context.
func ExtractMeta(c *gin.Context) map[string]interface{} {
	if c == nil {
		return nil
	}
	if meta, exists := c.Get(responseMetaKey); exists {
		if typed, ok := meta.(map[string]interface{}); ok {
			return typed
		}
	}
	return nil
}

func ensureMeta(c *gin.Context) map[string]interface{} {
	if meta := ExtractMeta(c); meta != nil {
		return meta
	}
	meta := make(map[string]interface{})
	if c != nil {
		c.Set(responseMetaKey, meta)
	}
	return meta
}
