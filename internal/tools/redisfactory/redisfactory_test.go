package redisfactory_test

import (
	"testing"
	"time"

	"bitbucket.org/crgw/itinerary-hub/internal/config"
	"bitbucket.org/crgw/itinerary-hub/internal/tools/redisfactory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("should create clients from the configured uris", func(t *testing.T) {
		factory, err := redisfactory.New(config.RedisConfig{
			GroupingURI:       "redis://localhost:6379/1",
			ResponsesCacheURI: "redis://localhost:6379/2",
			DialTimeout:       4 * time.Second,
			ReadTimeout:       3 * time.Second,
			WriteTimeout:      3 * time.Second,
		})
		require.NoError(t, err)

		assert.Equal(t, 1, factory.GroupingClient().Options().DB)
		assert.Equal(t, 2, factory.ResponsesCacheClient().Options().DB)
		assert.Equal(t, 4*time.Second, factory.GroupingClient().Options().DialTimeout)
		assert.Equal(t, 3*time.Second, factory.ResponsesCacheClient().Options().ReadTimeout)

		assert.NoError(t, factory.Close())
	})

	t.Run("should fail on a malformed uri", func(t *testing.T) {
		_, err := redisfactory.New(config.RedisConfig{
			GroupingURI:       "localhost:6379",
			ResponsesCacheURI: "redis://localhost:6379/2",
		})

		assert.Error(t, err)
	})
}
