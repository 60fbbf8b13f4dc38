package translation

import (
	"errors"
	"net/http"

	"bitbucket.org/crgw/itinerary-hub/internal/itinerary"
	"bitbucket.org/crgw/itinerary-hub/internal/schema"
	"bitbucket.org/crgw/itinerary-hub/internal/tools/redisfactory"
	"bitbucket.org/crgw/itinerary-hub/internal/tools/responding"
	"bitbucket.org/crgw/itinerary-hub/internal/trafficlight/grouping"
	translationErrors "bitbucket.org/crgw/itinerary-hub/internal/translation/errors"
	"bitbucket.org/crgw/itinerary-hub/internal/translation/factory"
	"bitbucket.org/crgw/itinerary-hub/internal/translation/interfaces"
	translationMiddleware "bitbucket.org/crgw/itinerary-hub/internal/translation/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// failureCode maps handler errors to response codes.
func failureCode(err error) int {
	if errors.Is(err, itinerary.ErrNoSectionsDetected) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func RegisterRoutes(
	router *gin.Engine,
	factory *factory.Factory,
	redisFactory *redisfactory.Factory,
) {
	group := router.Group(
		"/:language",
		translationMiddleware.PrepareLanguage(factory),
		translationMiddleware.TapLogger,
	)

	group.POST("/sections",
		translationMiddleware.PrepareParams(schema.SectionsRequestParams{}),
		func(ctx *gin.Context) {
			translatorWithSections, ok := ctx.MustGet(translationMiddleware.TranslatorKey).(interfaces.WithSections)
			if !ok {
				responding.HandleError(ctx, http.StatusBadRequest, "Sections not implemented", translationErrors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(translationMiddleware.ParamsKey).(*schema.SectionsRequestParams)
			if !ok {
				responding.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			var query schema.SectionsQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				responding.HandleError(ctx, http.StatusBadRequest, "Failed to bind query params", err)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := translatorWithSections.Sections(ctx.Request.Context(), *params, query, logger)
			if err != nil {
				responding.HandleError(ctx, failureCode(err), "Failed splitting itinerary", err)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/build",
		translationMiddleware.PrepareParams(schema.BuildRequestParams{}),
		func(ctx *gin.Context) {
			translatorWithBuild, ok := ctx.MustGet(translationMiddleware.TranslatorKey).(interfaces.WithBuild)
			if !ok {
				responding.HandleError(ctx, http.StatusBadRequest, "Build not implemented", translationErrors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(translationMiddleware.ParamsKey).(*schema.BuildRequestParams)
			if !ok {
				responding.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := translatorWithBuild.Build(ctx.Request.Context(), *params, logger)
			if err != nil {
				responding.HandleError(ctx, failureCode(err), "Failed building itinerary", err)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/serialize",
		translationMiddleware.PrepareParams(schema.SerializeRequestParams{}),
		func(ctx *gin.Context) {
			translatorWithSerialize, ok := ctx.MustGet(translationMiddleware.TranslatorKey).(interfaces.WithSerialize)
			if !ok {
				responding.HandleError(ctx, http.StatusBadRequest, "Serialize not implemented", translationErrors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(translationMiddleware.ParamsKey).(*schema.SerializeRequestParams)
			if !ok {
				responding.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := translatorWithSerialize.Serialize(ctx.Request.Context(), *params, logger)
			if err != nil {
				responding.HandleError(ctx, failureCode(err), "Failed serializing itinerary", err)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)

	group.POST("/translate",
		translationMiddleware.PrepareParams(schema.TranslateRequestParams{}),
		grouping.Middleware(grouping.MiddlewareOptions{
			CreateManager: grouping.NewRequestManager,
			RedisClient:   redisFactory.GroupingClient(),
		}),
		func(ctx *gin.Context) {
			translatorWithTranslate, ok := ctx.MustGet(translationMiddleware.TranslatorKey).(interfaces.WithTranslate)
			if !ok {
				responding.HandleError(ctx, http.StatusBadRequest, "Translate not implemented", translationErrors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(translationMiddleware.ParamsKey).(*schema.TranslateRequestParams)
			if !ok {
				responding.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			response, err := translatorWithTranslate.Translate(ctx.Request.Context(), *params, logger)
			if err != nil {
				responding.HandleError(ctx, failureCode(err), "Failed translating itinerary", err)
				return
			}

			ctx.JSON(http.StatusOK, response)
		},
	)
}
