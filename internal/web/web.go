package web

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"bitbucket.org/crgw/itinerary-hub/internal/config"
	"bitbucket.org/crgw/itinerary-hub/internal/tools/redisfactory"
	"bitbucket.org/crgw/itinerary-hub/internal/translation"
	"bitbucket.org/crgw/itinerary-hub/internal/translation/factory"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func SetupRouter(cfg *config.Config, log *zerolog.Logger, redisFactory *redisfactory.Factory) (*gin.Engine, error) {
	startTime := time.Now()

	openApiContent, err := os.ReadFile(cfg.OpenapiLocation)
	if err != nil {
		return nil, fmt.Errorf("read openapi document: %w", err)
	}

	doc, err := LoadOpenapi(openApiContent)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}

	openapiValidator, err := OpenapiValidator(doc)
	if err != nil {
		return nil, fmt.Errorf("create openapi validator: %w", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.
		Use(RequestScope(log)).
		Use(TraceLog).
		Use(PanicRecovery).
		Use(openapiValidator)

	router.GET("/status", func(c *gin.Context) {
		response := struct {
			Uptime float64 `json:"uptime"`
		}{
			Uptime: time.Since(startTime).Seconds(),
		}

		c.JSON(http.StatusOK, response)
	})

	router.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, gin.MIMEJSON, openApiContent)
	})

	pprof.Register(router)

	translation.RegisterRoutes(
		router,
		factory.NewFactory(redisFactory, cfg.BuildCacheTTL),
		redisFactory,
	)

	return router, nil
}
