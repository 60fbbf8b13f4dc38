package redisfactory

import (
	"bitbucket.org/crgw/itinerary-hub/internal/config"
	"github.com/redis/go-redis/v9"
)

// One client per concern. A concern that needs its own database gets its own
// URI in config.RedisConfig and its own accessor here.

type Factory struct {
	groupingCache  *redis.Client
	responsesCache *redis.Client
}

func New(cfg config.RedisConfig) (*Factory, error) {
	groupingCache, err := newClient(cfg, cfg.GroupingURI)
	if err != nil {
		return nil, err
	}

	responsesCache, err := newClient(cfg, cfg.ResponsesCacheURI)
	if err != nil {
		return nil, err
	}

	return &Factory{
		groupingCache:  groupingCache,
		responsesCache: responsesCache,
	}, nil
}

// NewWithClients is used by tests to inject mocked clients.
func NewWithClients(groupingCache *redis.Client, responsesCache *redis.Client) *Factory {
	return &Factory{
		groupingCache:  groupingCache,
		responsesCache: responsesCache,
	}
}

func newClient(cfg config.RedisConfig, uri string) (*redis.Client, error) {
	opt, err := redis.ParseURL(uri)
	if err != nil {
		return nil, err
	}

	opt.DialTimeout = cfg.DialTimeout
	opt.ReadTimeout = cfg.ReadTimeout
	opt.WriteTimeout = cfg.WriteTimeout

	return redis.NewClient(opt), nil
}

func (f *Factory) GroupingClient() *redis.Client {
	return f.groupingCache
}

func (f *Factory) ResponsesCacheClient() *redis.Client {
	return f.responsesCache
}

func (f *Factory) Close() error {
	groupingErr := f.groupingCache.Close()
	responsesErr := f.responsesCache.Close()

	if groupingErr != nil {
		return groupingErr
	}
	return responsesErr
}
