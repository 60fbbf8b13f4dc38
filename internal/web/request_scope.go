package web

import (
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const CorrelationIdHeader = "x-correlation-id"

// CurrentTimeFunc Current time. Can be mocked for testing.
var CurrentTimeFunc = time.Now

// Ids coming from callers end up in every log line, keep them short and plain.
var validCorrelationId = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

// RequestScope opens the per-request context: start time, correlation id
// (taken from the caller or generated, echoed on the response) and a logger
// stored under "logger".
func RequestScope(logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("requestStartTime", CurrentTimeFunc())

		correlationId := c.GetHeader(CorrelationIdHeader)
		if !validCorrelationId.MatchString(correlationId) {
			correlationId = uuid.New().String()
		}
		c.Set("correlationId", correlationId)
		c.Header(CorrelationIdHeader, correlationId)

		requestLogger := logger.
			With().
			Str("correlationId", correlationId).
			Str("clientIp", c.ClientIP()).
			Logger()
		c.Set("logger", &requestLogger)
	}
}

func requestDuration(c *gin.Context) time.Duration {
	return CurrentTimeFunc().Sub(c.MustGet("requestStartTime").(time.Time))
}
