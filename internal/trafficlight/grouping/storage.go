package grouping

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bitbucket.org/crgw/itinerary-hub/internal/tools/caching"
	"bitbucket.org/crgw/itinerary-hub/internal/tools/slowlog"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const lockTTL = 1 * time.Minute

type CachedValue struct {
	Code    int                 `json:"code"`
	Headers map[string][]string `json:"headers"`
	Body    string              `json:"body"`
}

type storage struct {
	redis   *redis.Client
	log     *zerolog.Logger
	slowLog slowlog.Logger
}

func (s *storage) AcquireLock(ctx context.Context, cacheKey string) (bool, error) {
	return s.redis.SetNX(ctx, cacheKey, "", lockTTL).Result()
}

func (s *storage) ReleaseLock(ctx context.Context, cacheKey string) {
	s.redis.Del(ctx, cacheKey)
}

func (s *storage) StoreResponse(ctx context.Context, responseKey string, response *Response, duration time.Duration) {
	s.slowLog.Start("grouping:compression:compress")
	bytes, _ := json.Marshal(CachedValue{
		Code:    response.Code,
		Body:    response.Body,
		Headers: response.Headers,
	})
	compressed, err := caching.Deflate(bytes)
	s.slowLog.Stop("grouping:compression:compress")

	if err != nil {
		s.log.Err(err).Msg("Unable to compress the response body")
		return
	}

	s.redis.Set(ctx, responseKey, compressed, duration)
}

// FetchResponse returns nil without an error on a cache miss.
func (s *storage) FetchResponse(ctx context.Context, responseKey string) (*CachedValue, error) {
	response, err := s.redis.Get(ctx, responseKey).Bytes()

	if errors.Is(err, redis.Nil) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	defer s.slowLog.Track("grouping:compression:decompress")()

	decompressed, err := caching.Inflate(response)
	if err != nil {
		return nil, err
	}

	value := CachedValue{}
	if err := json.Unmarshal(decompressed, &value); err != nil {
		return nil, err
	}

	return &value, nil
}
