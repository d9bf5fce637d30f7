package middleware

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-catalog-api/internal/apperror"
	"github.com/iyhunko/product-catalog-api/internal/config"
	"github.com/iyhunko/product-catalog-api/internal/metrics"
)

// APIKeyHeader is the request header carrying the shared secret.
const APIKeyHeader = "X-API-Key"

type Middleware struct {
	config *config.Config
}

// New initializes the middleware with the given configuration.
// We don't need ctx here because it always has Gin context.
func New(config *config.Config) *Middleware {
	return &Middleware{
		config: config,
	}
}

// RequireAPIKey rejects requests whose X-API-Key header does not equal the configured secret.
func (m *Middleware) RequireAPIKey() gin.HandlerFunc {
	secret := []byte(m.config.APIKey)
	return func(c *gin.Context) {
		key := []byte(c.GetHeader(APIKeyHeader))
		if subtle.ConstantTimeCompare(key, secret) != 1 {
			abortWithError(c, apperror.Unauthorized("Invalid API key"))
			return
		}
		c.Next()
	}
}

// Recovery is a middleware that recovers from panics and hands them to the error handler
// as internal errors instead of crashing the server.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("Panic recovered",
					slog.Any("error", rec),
					slog.String("path", c.Request.URL.Path),
					slog.String("method", c.Request.Method),
				)
				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", rec)
				}
				c.Status(http.StatusInternalServerError)
				abortWithError(c, apperror.Internal(err))
			}
		}()
		c.Next()
	}
}

// CORS allows cross-origin calls and answers preflight requests.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+APIKeyHeader)
		h.Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Logger logs every request with its method, path and arrival time, and counts it in metrics.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, strconv.Itoa(status)).Inc()
		slog.Info("request",
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Time("timestamp", start.UTC()),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
		)
	}
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
