package middleware

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"regexp"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/logger"
)

const (
	requestIDHeader     = "X-Request-ID"
	requestIDContextKey = "request_id"
)

// Accepted shape for an upstream-supplied id.
var upstreamIDPattern = regexp.MustCompile(`^[A-Za-z0-9-]{1,64}$`)

var idFallbackCounter atomic.Uint64

// RequestID tags every request with an id, echoes it in the X-Request-ID
// response header, and attaches it to the request context so all log lines
// of the request carry it.
//
// When trustUpstream is true a well-formed incoming X-Request-ID is reused;
// otherwise a fresh random id is generated unconditionally.
func RequestID(trustUpstream bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var id string
		if trustUpstream {
			if upstream := c.GetHeader(requestIDHeader); upstreamIDPattern.MatchString(upstream) {
				id = upstream
			}
		}
		if id == "" {
			id = newRequestID()
		}

		c.Set(requestIDContextKey, id)
		c.Header(requestIDHeader, id)

		ctx := logger.WithContextAttrs(c.Request.Context(), slog.String(requestIDContextKey, id))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetRequestID returns the id assigned to this request, or "" before the
// RequestID middleware has run.
func GetRequestID(c *gin.Context) string {
	if v, ok := c.Get(requestIDContextKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// newRequestID returns 32 hex characters of randomness. If the system random
// source fails, a timestamp+counter pair keeps ids unique within the process.
func newRequestID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		binary.BigEndian.PutUint64(b[:8], uint64(time.Now().UnixNano()))
		binary.BigEndian.PutUint64(b[8:], idFallbackCounter.Add(1))
	}
	return hex.EncodeToString(b)
}
