package web

import (
	"time"

	"github.com/Semior001/wikiviews/pkg/logx"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// requestID puts a unique id into the request context and echoes it
// back in the X-Request-ID header.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()

		c.Request = c.Request.WithContext(logx.ContextWithRequestID(c.Request.Context(), id))
		c.Header("X-Request-ID", id)

		c.Next()
	}
}

// logger logs every processed request.
func logger(lg *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()

		c.Next()

		lg.InfoCtx(c.Request.Context(), "request processed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(started)),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}
