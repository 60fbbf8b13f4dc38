package middleware

import (
	"bitbucket.org/crgw/itinerary-hub/internal/translation/interfaces"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TapLogger tags the request logger with the requested and resolved language
// and a fresh operation id.
func TapLogger(c *gin.Context) {
	logger := c.MustGet("logger").(*zerolog.Logger)

	context := logger.
		With().
		Str("language", c.Params.ByName("language")).
		Str("operationId", uuid.New().String())

	if translator, ok := c.MustGet(TranslatorKey).(interfaces.WithLanguage); ok {
		context = context.Str("resolvedLanguage", string(translator.Language()))
	}

	requestLogger := context.Logger()
	c.Set("logger", &requestLogger)
}
