package responding

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// HandleError logs the failure on the request logger and aborts with a JSON
// error body.
func HandleError(c *gin.Context, code int, message string, err error) {
	response := ErrorResponse{Message: message}
	if err != nil {
		response.Details = err.Error()
	}

	if value, ok := c.Get("logger"); ok {
		if log, ok := value.(*zerolog.Logger); ok {
			event := log.Warn()
			if code >= 500 {
				event = log.Error()
			}

			event.
				Err(err).
				Int("code", code).
				Msg(message)
		}
	}

	c.AbortWithStatusJSON(code, response)
}
