package factory_test

import (
	"testing"
	"time"

	"bitbucket.org/crgw/itinerary-hub/internal/itinerary"
	"bitbucket.org/crgw/itinerary-hub/internal/tools/redisfactory"
	translationErrors "bitbucket.org/crgw/itinerary-hub/internal/translation/errors"
	"bitbucket.org/crgw/itinerary-hub/internal/translation/factory"
	"bitbucket.org/crgw/itinerary-hub/internal/translation/interfaces"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFactory() *factory.Factory {
	groupingClient, _ := redismock.NewClientMock()
	responsesClient, _ := redismock.NewClientMock()

	return factory.NewFactory(redisfactory.NewWithClients(groupingClient, responsesClient), time.Minute)
}

func TestResolve(t *testing.T) {
	f := newFactory()

	t.Run("should resolve supported tags", func(t *testing.T) {
		tests := []struct {
			tag      string
			expected itinerary.Language
		}{
			{"en", itinerary.English},
			{"EN", itinerary.English},
			{"en-GB", itinerary.English},
			{"es", itinerary.Spanish},
			{"es-MX", itinerary.Spanish},
			{"es-419", itinerary.Spanish},
		}

		for _, test := range tests {
			t.Run(test.tag, func(t *testing.T) {
				lang, err := f.Resolve(test.tag)

				require.NoError(t, err)
				assert.Equal(t, test.expected, lang)
			})
		}
	})

	t.Run("should refuse other tags", func(t *testing.T) {
		for _, tag := range []string{"fr", "de-DE", "ja", "not a tag"} {
			t.Run(tag, func(t *testing.T) {
				_, err := f.Resolve(tag)

				assert.ErrorIs(t, err, translationErrors.ErrorUnsupportedLanguage)
			})
		}
	})
}

func TestGetTranslator(t *testing.T) {
	f := newFactory()

	t.Run("should reuse one translator per language", func(t *testing.T) {
		first, err := f.GetTranslator("es")
		require.NoError(t, err)

		second, err := f.GetTranslator("es-MX")
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, itinerary.Spanish, first.(interfaces.WithLanguage).Language())
	})

	t.Run("should implement every operation", func(t *testing.T) {
		translator, err := f.GetTranslator("en")
		require.NoError(t, err)

		assert.Implements(t, (*interfaces.WithSections)(nil), translator)
		assert.Implements(t, (*interfaces.WithBuild)(nil), translator)
		assert.Implements(t, (*interfaces.WithSerialize)(nil), translator)
		assert.Implements(t, (*interfaces.WithTranslate)(nil), translator)
		assert.Implements(t, (*interfaces.WithTranslateGrouping)(nil), translator)
	})

	t.Run("should fail for unsupported languages", func(t *testing.T) {
		translator, err := f.GetTranslator("fr")

		assert.ErrorIs(t, err, translationErrors.ErrorUnsupportedLanguage)
		assert.Nil(t, translator)
	})
}
