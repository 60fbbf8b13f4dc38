package middleware

import (
	"net/http"

	"bitbucket.org/crgw/itinerary-hub/internal/tools/responding"
	"github.com/gin-gonic/gin"
)

type factory interface {
	GetTranslator(string) (any, error)
}

const (
	TranslatorKey string = "translator"
)

func PrepareLanguage(f factory) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		languageFromPath := ctx.Params.ByName("language")

		translator, err := f.GetTranslator(languageFromPath)
		if err != nil {
			responding.HandleError(ctx, http.StatusNotFound, "Failed to find language", err)
			return
		}

		ctx.Set(TranslatorKey, translator)
	}
}
