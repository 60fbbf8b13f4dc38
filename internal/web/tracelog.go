package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// TraceLog writes one line per request once every other handler is done.
// Failed requests are raised to warn or error, health checks drop to debug.
func TraceLog(c *gin.Context) {
	c.Next()

	logger := c.MustGet("logger").(*zerolog.Logger)
	code := c.Writer.Status()

	event := logger.WithLevel(traceLevel(c.FullPath(), code)).
		Str("label", "trace").
		Str("method", c.Request.Method).
		Str("url", c.Request.URL.Path).
		Str("route", c.FullPath()).
		Int("code", code).
		Int("size", c.Writer.Size()).
		Float64("duration", requestDuration(c).Seconds())

	if language := c.Param("language"); language != "" {
		event = event.Str("language", language)
	}
	if len(c.Errors) > 0 {
		event = event.Strs("errors", c.Errors.Errors())
	}

	event.Msg("")
}

func traceLevel(route string, code int) zerolog.Level {
	switch {
	case code >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case code >= http.StatusBadRequest:
		return zerolog.WarnLevel
	case route == "/status":
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}
