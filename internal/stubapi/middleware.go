package stubapi

import (
	"bytes"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/heartlinkhq/admin-console/pkg/httputil"
)

// requestID tags every request for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// accessLog writes one structured line per request.
func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		s.log.Debug("request",
			"id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(started).String(),
		)
	}
}

// recovery converts panics into an error envelope instead of a dropped
// connection.
func (s *Server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				s.log.Warn("panic recovered", "panic", r, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, httputil.Response{
					Success: false,
					Message: "internal server error",
				})
			}
		}()
		c.Next()
	}
}

// authenticate requires a valid bearer token and stores the caller's id.
func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httputil.Response{
				Success: false,
				Message: "missing or malformed authorization header",
			})
			return
		}

		userID, err := s.verifyToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httputil.Response{
				Success: false,
				Message: "invalid token",
			})
			return
		}

		c.Set("user_id", userID.String())
		c.Next()
	}
}

// idempotency replays the stored response when a mutation retries with the
// Idempotency-Key it already answered, so a double submit never applies twice.
func (s *Server) idempotency() gin.HandlerFunc {
	var (
		mu   sync.Mutex
		seen = make(map[string]storedResponse)
	)
	return func(c *gin.Context) {
		key := c.GetHeader("Idempotency-Key")
		if key == "" || c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		mu.Lock()
		cached, ok := seen[key]
		mu.Unlock()
		if ok {
			c.Data(cached.status, "application/json", cached.body)
			c.Abort()
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder
		c.Next()

		mu.Lock()
		seen[key] = storedResponse{status: recorder.Status(), body: recorder.buf.Bytes()}
		mu.Unlock()
	}
}

// storedResponse is one answered mutation, keyed by its Idempotency-Key.
type storedResponse struct {
	status int
	body   []byte
}

// bodyRecorder copies the response body as the handler writes it.
type bodyRecorder struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (r *bodyRecorder) Write(p []byte) (int, error) {
	r.buf.Write(p)
	return r.ResponseWriter.Write(p)
}

func (r *bodyRecorder) WriteString(v string) (int, error) {
	r.buf.WriteString(v)
	return r.ResponseWriter.WriteString(v)
}

// rateLimit applies a global token-bucket limit.
func (s *Server) rateLimit() gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(s.cfg.RateLimit.RequestsPerSecond), s.cfg.RateLimit.Burst)
	return func(c *gin.Context) {
		if !s.cfg.RateLimit.Enabled {
			c.Next()
			return
		}
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httputil.Response{
				Success: false,
				Message: "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
