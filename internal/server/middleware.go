package server

import (
	"time"

	"github.com/arielf-camacho/cold-stream/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerRequestID = "X-Request-Id"
	keyRequestID    = "request_id"
)

// requestID injects a unique X-Request-Id header into every request/response.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(keyRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

// requestLogger attaches a request scoped logger to the request context and
// logs every request once it is served. Health checks are not logged.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := s.log.With().Str(logger.FieldRequestID, c.GetString(keyRequestID)).Logger()
		c.Request = c.Request.WithContext(log.WithContext(c.Request.Context()))

		start := time.Now()
		c.Next()

		if c.Request.URL.Path == "/healthz" {
			return
		}

		status := c.Writer.Status()
		event := log.Info()
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Int64(logger.FieldDuration, time.Since(start).Milliseconds()).
			Msg("request served")
	}
}
