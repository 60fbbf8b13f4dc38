package itineraryclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bitbucket.org/crgw/itinerary-hub/internal/config"
	"bitbucket.org/crgw/itinerary-hub/internal/itinerary"
	"bitbucket.org/crgw/itinerary-hub/internal/schema"
	"bitbucket.org/crgw/itinerary-hub/internal/tools/client"
	"bitbucket.org/crgw/itinerary-hub/internal/tools/client/itineraryclient"
	"bitbucket.org/crgw/itinerary-hub/internal/tools/redisfactory"
	translationErrors "bitbucket.org/crgw/itinerary-hub/internal/translation/errors"
	"bitbucket.org/crgw/itinerary-hub/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const englishText = "--- MAIN HEADER ---\n" +
	"- Title: Andes\n" +
	"\n" +
	"--- SECTION: Hotel Information ---\n" +
	"- HOTEL: Inn - 3 stars\n" +
	"- Check In: 2024-01-01\n" +
	"- Check In: 2024-01-03\n"

func newClient(t *testing.T) *itineraryclient.Client {
	gin.SetMode(gin.TestMode)
	log := zerolog.Nop()

	groupingClient, _ := redismock.NewClientMock()
	responsesClient, _ := redismock.NewClientMock()

	router, err := web.SetupRouter(&config.Config{
		OpenapiLocation: "../../../../api/openapi.json",
		BuildCacheTTL:   time.Minute,
	}, &log, redisfactory.NewWithClients(groupingClient, responsesClient))
	require.NoError(t, err)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return itineraryclient.NewClient(&log, client.WithBaseURL(server.URL), client.WithTimeout(5*time.Second))
}

func TestClient(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)

	t.Run("should build", func(t *testing.T) {
		response, err := c.Build(ctx, "es", englishText)
		require.NoError(t, err)

		require.Len(t, response.Itinerary.Hotels, 1)
		assert.Equal(t, []itinerary.HotelStay{{CheckIn: "2024-01-01"}, {CheckIn: "2024-01-03"}}, response.Itinerary.Hotels[0].Stays)
		assert.Contains(t, response.Text, "- Segundo Check In: 2024-01-03\n")
	})

	t.Run("should serialize", func(t *testing.T) {
		model := itinerary.New()
		model.Emergency = []string{"Guide 555"}

		response, err := c.Serialize(ctx, "en", model)
		require.NoError(t, err)

		assert.Equal(t, itinerary.Serialize(model, itinerary.English), response.Text)
	})

	t.Run("should translate", func(t *testing.T) {
		response, err := c.Translate(ctx, "es-MX", englishText)
		require.NoError(t, err)

		assert.Equal(t, itinerary.Spanish, response.Language)
		assert.Contains(t, response.Text, "--- ENCABEZADO PRINCIPAL ---\nTitulo: Andes\n")
	})

	t.Run("should split sections with query options", func(t *testing.T) {
		raw, err := c.Sections(ctx, "en", englishText, schema.SectionsQuery{Raw: true})
		require.NoError(t, err)

		normalized, err := c.Sections(ctx, "en", englishText, schema.SectionsQuery{})
		require.NoError(t, err)

		assert.Len(t, raw.Sections, 2)
		assert.Len(t, normalized.Sections, len(itinerary.SectionOrder))
	})

	t.Run("should map server errors", func(t *testing.T) {
		_, err := c.Build(ctx, "en", "no headers here")

		var apiError *itineraryclient.APIError
		require.ErrorAs(t, err, &apiError)
		assert.Equal(t, http.StatusUnprocessableEntity, apiError.Code)
		assert.ErrorIs(t, err, itinerary.ErrNoSectionsDetected)

		_, err = c.Translate(ctx, "fr", englishText)
		assert.ErrorIs(t, err, translationErrors.ErrorUnsupportedLanguage)
	})
}
