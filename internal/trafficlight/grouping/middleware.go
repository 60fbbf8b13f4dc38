package grouping

import (
	"bytes"
	"context"
	"net/http"

	"bitbucket.org/crgw/itinerary-hub/internal/schema"
	"bitbucket.org/crgw/itinerary-hub/internal/tools/responding"
	"bitbucket.org/crgw/itinerary-hub/internal/translation/interfaces"
	translationMiddleware "bitbucket.org/crgw/itinerary-hub/internal/translation/middleware"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// HitHeader is set on responses served from another request's result.
const HitHeader = "x-grouping-hit"

type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

type RequestManager interface {
	HandleRequest(context.Context, func() (*Response, error)) (*Response, error)
}

type MiddlewareOptions struct {
	CreateManager func(
		redis *redis.Client,
		log *zerolog.Logger,
		cacheKey string,
	) RequestManager
	RedisClient *redis.Client
}

// Middleware lets one of several identical translate requests run the
// handler; the others wait for its stored response.
func Middleware(o MiddlewareOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := c.MustGet("logger").(*zerolog.Logger)

		service, ok := c.MustGet(translationMiddleware.TranslatorKey).(interfaces.WithTranslateGrouping)
		if !ok {
			log.Warn().Msg("Grouping added to route, but translator is not WithTranslateGrouping compatible")
			c.Next()
			return
		}

		params := c.MustGet(translationMiddleware.ParamsKey).(*schema.TranslateRequestParams)

		cacheKey := service.GroupingCacheKey(c.Request.Context(), *params, log)

		groupingManager := o.CreateManager(o.RedisClient, log, cacheKey)

		requester := func() (*Response, error) {
			bodyWriter := &bodyLogWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
			c.Writer = bodyWriter

			// expects the translate handler to be called
			c.Next()

			return &Response{
				Code:    c.Writer.Status(),
				Body:    bodyWriter.body.String(),
				Headers: bodyWriter.Header(),
			}, c.Err()
		}

		response, err := groupingManager.HandleRequest(c.Request.Context(), requester)

		if !c.Writer.Written() {
			if err != nil {
				responding.HandleError(
					c,
					http.StatusInternalServerError,
					"Error translating itinerary",
					err,
				)
				return
			}

			for key, values := range response.Headers {
				for _, value := range values {
					c.Writer.Header().Add(key, value)
				}
			}

			c.Data(response.Code, gin.MIMEJSON, []byte(response.Body))
		}

		c.Abort()
	}
}
