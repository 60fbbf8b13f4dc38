package translator

import (
	"context"
	"time"

	"bitbucket.org/crgw/itinerary-hub/internal/itinerary"
	"bitbucket.org/crgw/itinerary-hub/internal/schema"
	"bitbucket.org/crgw/itinerary-hub/internal/tools/caching"
	"bitbucket.org/crgw/itinerary-hub/internal/tools/slowlog"
	"github.com/rs/zerolog"
)

// Translator renders itineraries in one language. It is safe for concurrent
// use; the only shared state is the cache.
type Translator struct {
	language itinerary.Language
	cache    *caching.Cacher
	buildTTL time.Duration
}

func New(language itinerary.Language, cache *caching.Cacher, buildTTL time.Duration) *Translator {
	return &Translator{
		language: language,
		cache:    cache,
		buildTTL: buildTTL,
	}
}

func (t *Translator) Language() itinerary.Language {
	return t.language
}

func (t *Translator) Sections(
	ctx context.Context,
	params schema.SectionsRequestParams,
	query schema.SectionsQuery,
	log *zerolog.Logger,
) (schema.SectionsResponse, error) {
	sections, err := itinerary.Split(params.Text)
	if err != nil {
		return schema.SectionsResponse{}, err
	}

	if !query.Raw {
		sections = itinerary.Normalize(sections)
	}

	log.Debug().
		Int("sections", len(sections)).
		Msg("Split itinerary text")

	return schema.SectionsResponse{Sections: sections}, nil
}

func (t *Translator) buildCacheKey(text string) string {
	return caching.Key("build", string(t.language), text)
}

func (t *Translator) Build(
	ctx context.Context,
	params schema.BuildRequestParams,
	log *zerolog.Logger,
) (schema.BuildResponse, error) {
	slowLog := slowlog.CreateLogger(log)
	key := t.buildCacheKey(params.Text)

	var response schema.BuildResponse

	slowLog.Start("build:fetchFromCache")
	hit := t.cache.Fetch(ctx, key, &response)
	slowLog.Stop("build:fetchFromCache")

	log.Info().
		Str("label", "cache").
		Bool("hit", hit).
		Str("key", key).
		Msg("")

	if hit {
		return response, nil
	}

	slowLog.Start("build:parse")
	model, err := itinerary.Build(params.Text)
	slowLog.Stop("build:parse")
	if err != nil {
		return schema.BuildResponse{}, err
	}

	slowLog.Start("build:serialize")
	response = schema.BuildResponse{
		Itinerary: model,
		Text:      itinerary.Serialize(model, t.language),
	}
	slowLog.Stop("build:serialize")

	if err := t.cache.Store(ctx, key, response, t.buildTTL); err != nil {
		log.Err(err).
			Str("label", "cache").
			Str("key", key).
			Msg("Unable to store build response")
	}

	return response, nil
}

func (t *Translator) Serialize(
	ctx context.Context,
	params schema.SerializeRequestParams,
	log *zerolog.Logger,
) (schema.SerializeResponse, error) {
	defer slowlog.CreateLogger(log).Track("serialize")()

	if params.Itinerary == nil {
		return schema.SerializeResponse{Text: itinerary.Serialize(itinerary.New(), t.language)}, nil
	}

	return schema.SerializeResponse{Text: itinerary.Serialize(*params.Itinerary, t.language)}, nil
}

func (t *Translator) Translate(
	ctx context.Context,
	params schema.TranslateRequestParams,
	log *zerolog.Logger,
) (schema.TranslateResponse, error) {
	defer slowlog.CreateLogger(log).Track("translate")()

	model, err := itinerary.Build(params.Text)
	if err != nil {
		return schema.TranslateResponse{}, err
	}

	return schema.TranslateResponse{
		Language: t.language,
		Text:     itinerary.Serialize(model, t.language),
	}, nil
}

func (t *Translator) GroupingCacheKey(
	ctx context.Context,
	params schema.TranslateRequestParams,
	log *zerolog.Logger,
) string {
	return caching.Key("translate", string(t.language), params.Text)
}
