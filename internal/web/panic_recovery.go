package web

import (
	"errors"
	"net/http"
	"runtime/debug"

	"bitbucket.org/crgw/itinerary-hub/internal/tools/responding"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const unknownPanicMessage = "Unknown error, panic recovered"

// PanicRecovery turns a panicking handler into a 500 and logs the stack.
// Aborted handlers keep panicking so the server drops the connection.
func PanicRecovery(c *gin.Context) {
	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}
		if err, ok := recovered.(error); ok && errors.Is(err, http.ErrAbortHandler) {
			panic(recovered)
		}

		logger := c.MustGet("logger").(*zerolog.Logger)
		logger.Error().
			Str("label", "panic").
			Str("route", c.FullPath()).
			Interface("recovered", recovered).
			Bytes("stack", debug.Stack()).
			Msg(panicMessage(recovered))

		if c.Writer.Written() {
			c.Abort()
			return
		}
		responding.HandleError(c, http.StatusInternalServerError, panicMessage(recovered), nil)
	}()

	c.Next()
}

func panicMessage(recovered any) string {
	switch value := recovered.(type) {
	case string:
		return value
	case error:
		return value.Error()
	default:
		return unknownPanicMessage
	}
}
