package factory

import (
	"fmt"
	"sync"
	"time"

	"bitbucket.org/crgw/itinerary-hub/internal/itinerary"
	"bitbucket.org/crgw/itinerary-hub/internal/tools/caching"
	"bitbucket.org/crgw/itinerary-hub/internal/tools/redisfactory"
	translationErrors "bitbucket.org/crgw/itinerary-hub/internal/translation/errors"
	"bitbucket.org/crgw/itinerary-hub/internal/translation/translator"
	"golang.org/x/text/language"
)

const cacheKeyPrefix = "itinerary-hub"

// Order matches supportedTags.
var supportedLanguages = []itinerary.Language{itinerary.English, itinerary.Spanish}

var supportedTags = []language.Tag{language.English, language.Spanish}

type Factory struct {
	cache       *caching.Cacher
	buildTTL    time.Duration
	matcher     language.Matcher
	translators map[itinerary.Language]any
	mu          sync.Mutex
}

// Resolve maps a BCP 47 tag such as "es-MX" or "en-GB" to a supported
// language.
func (f *Factory) Resolve(tag string) (itinerary.Language, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("%w: %s", translationErrors.ErrorUnsupportedLanguage, tag)
	}

	_, index, confidence := f.matcher.Match(parsed)
	if confidence == language.No {
		return "", fmt.Errorf("%w: %s", translationErrors.ErrorUnsupportedLanguage, tag)
	}

	return supportedLanguages[index], nil
}

func (f *Factory) GetTranslator(tag string) (any, error) {
	lang, err := f.Resolve(tag)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.translators[lang]; !ok {
		f.translators[lang] = translator.New(lang, f.cache, f.buildTTL)
	}

	return f.translators[lang], nil
}

func NewFactory(redisFactory *redisfactory.Factory, buildTTL time.Duration) *Factory {
	return NewFactoryWithCache(caching.NewRedisCache(redisFactory.ResponsesCacheClient(), caching.WithKeyPrefix(cacheKeyPrefix)), buildTTL)
}

func NewFactoryWithCache(cache *caching.Cacher, buildTTL time.Duration) *Factory {
	return &Factory{
		cache:       cache,
		buildTTL:    buildTTL,
		matcher:     language.NewMatcher(supportedTags),
		translators: make(map[itinerary.Language]any),
	}
}
