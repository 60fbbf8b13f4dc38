package interfaces

import (
	"context"

	"bitbucket.org/crgw/itinerary-hub/internal/itinerary"
	"bitbucket.org/crgw/itinerary-hub/internal/schema"
	"github.com/rs/zerolog"
)

type WithLanguage interface {
	Language() itinerary.Language
}

type WithSections interface {
	Sections(context.Context, schema.SectionsRequestParams, schema.SectionsQuery, *zerolog.Logger) (schema.SectionsResponse, error)
}

type WithBuild interface {
	Build(context.Context, schema.BuildRequestParams, *zerolog.Logger) (schema.BuildResponse, error)
}

type WithSerialize interface {
	Serialize(context.Context, schema.SerializeRequestParams, *zerolog.Logger) (schema.SerializeResponse, error)
}

type WithTranslate interface {
	Translate(context.Context, schema.TranslateRequestParams, *zerolog.Logger) (schema.TranslateResponse, error)
}

type WithTranslateGrouping interface {
	GroupingCacheKey(context.Context, schema.TranslateRequestParams, *zerolog.Logger) string
}
