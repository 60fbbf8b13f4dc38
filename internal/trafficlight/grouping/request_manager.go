package grouping

import (
	"context"
	"encoding/json"
	"time"

	"bitbucket.org/crgw/itinerary-hub/internal/tools/slowlog"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	// SuccessTTL keeps a 2xx JSON response for later identical requests.
	SuccessTTL = 10 * time.Minute
	// FailureTTL keeps anything else only briefly.
	FailureTTL = 1 * time.Minute

	responseKeyPrefix = "res:"
	waitInterval      = 400 * time.Millisecond
)

type Response struct {
	Code    int
	Headers map[string][]string
	Body    string
}

type Storage interface {
	AcquireLock(ctx context.Context, cacheKey string) (bool, error)
	ReleaseLock(ctx context.Context, cacheKey string)
	StoreResponse(ctx context.Context, responseKey string, response *Response, duration time.Duration)
	FetchResponse(ctx context.Context, responseKey string) (*CachedValue, error)
}

type requestManager struct {
	groupingId string
	cache      Storage
	log        *zerolog.Logger
	slowLog    slowlog.Logger
	cacheKey   string
}

func isStatusCodeAcceptable(code int) bool {
	return code >= 200 && code < 300
}

func responseTTL(response *Response) time.Duration {
	if !isStatusCodeAcceptable(response.Code) || !json.Valid([]byte(response.Body)) {
		return FailureTTL
	}
	return SuccessTTL
}

func (m *requestManager) requestAndStore(
	responseKey string,
	requester func() (*Response, error),
) (*Response, error) {
	defer m.slowLog.Track("grouping:requestAndStore")()

	response, err := requester()

	if err != nil {
		m.cache.ReleaseLock(context.Background(), m.cacheKey)
		m.log.Err(err).Msg("Unable to handle grouped request")
		return nil, err
	}

	m.cache.StoreResponse(context.Background(), responseKey, &Response{
		Code:    response.Code,
		Body:    response.Body,
		Headers: response.Headers,
	}, responseTTL(response))

	m.cache.ReleaseLock(context.Background(), m.cacheKey)

	return response, nil
}

func (m *requestManager) requestOrWait(ctx context.Context, requester func() (*Response, error)) (*Response, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, context.Canceled
		default:
		}

		responseKey := responseKeyPrefix + m.cacheKey

		m.slowLog.Start("grouping:fetchFromCache")
		response, err := m.cache.FetchResponse(ctx, responseKey)
		m.slowLog.Stop("grouping:fetchFromCache")

		if err != nil {
			m.log.Err(err).
				Str("label", "cache").
				Bool("hit", false).
				Str("key", responseKey).
				Msg("Error fetching from cache")

			return requester()
		}

		if response != nil {
			m.log.Info().
				Str("label", "cache").
				Bool("hit", true).
				Str("key", m.cacheKey).
				Msg("Used cache response")

			if response.Headers == nil {
				response.Headers = make(map[string][]string)
			}

			response.Headers[HitHeader] = []string{"hit"}

			return &Response{
				Code:    response.Code,
				Body:    response.Body,
				Headers: response.Headers,
			}, nil
		}

		canMakeTheRequest, err := m.cache.AcquireLock(ctx, m.cacheKey)

		if err != nil || canMakeTheRequest {
			return m.requestAndStore(responseKey, requester)
		}

		select {
		case <-ctx.Done():
			return nil, context.Canceled
		case <-time.After(waitInterval):
		}
	}
}

func (m *requestManager) HandleRequest(ctx context.Context, requester func() (*Response, error)) (*Response, error) {
	defer m.slowLog.Track("grouping:HandleRequest")()
	return m.requestOrWait(ctx, requester)
}

func NewRequestManager(
	redis *redis.Client,
	log *zerolog.Logger,
	cacheKey string,
) RequestManager {
	groupingId := uuid.New().String()
	logWithGroupingId := log.With().Str("groupingId", groupingId).Logger()
	slowLog := slowlog.CreateLogger(&logWithGroupingId)

	return &requestManager{
		groupingId: groupingId,
		cacheKey:   cacheKey,
		cache: &storage{
			redis:   redis,
			log:     &logWithGroupingId,
			slowLog: slowLog,
		},
		log:     &logWithGroupingId,
		slowLog: slowLog,
	}
}
