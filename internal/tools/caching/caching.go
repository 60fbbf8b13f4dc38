package caching

import (
	"bytes"
	"compress/flate"
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"
)

type Engine interface {
	Store(ctx context.Context, key string, value any, ttl time.Duration) error
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// Cacher stores JSON values deflated.
type Cacher struct {
	engine Engine
}

func NewRedisCache(redisClient *redis.Client, opts ...RedisOption) *Cacher {
	engine := &redisCache{redis: redisClient}
	for _, opt := range opts {
		opt(engine)
	}

	return &Cacher{engine: engine}
}

func NewCache(engine Engine) *Cacher {
	return &Cacher{engine: engine}
}

// Key joins the namespace with an xxhash digest of the parts. Parts are
// separated by a zero byte so ("ab", "c") and ("a", "bc") differ.
func Key(namespace string, parts ...string) string {
	digest := xxhash.New()
	for i, part := range parts {
		if i > 0 {
			_, _ = digest.Write([]byte{0})
		}
		_, _ = digest.WriteString(part)
	}

	return strings.Join([]string{namespace, strconv.FormatUint(digest.Sum64(), 16)}, ":")
}

// Deflate compresses with flate at BestSpeed.
func Deflate(uncompressed []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer, _ := flate.NewWriter(&buffer, flate.BestSpeed)

	_, err := writer.Write(uncompressed)
	if err != nil {
		return nil, err
	}

	err = writer.Close()
	if err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func Inflate(compressed []byte) ([]byte, error) {
	buffer := bytes.NewReader(compressed)
	reader := flate.NewReader(buffer)
	defer reader.Close()

	var out bytes.Buffer
	_, err := out.ReadFrom(reader)
	if err != nil {
		return []byte{}, err
	}

	return out.Bytes(), nil
}

func (c *Cacher) Store(ctx context.Context, key string, value any, ttl time.Duration) error {
	bytes, err := json.Marshal(value)
	if err != nil {
		return err
	}

	compressed, err := Deflate(bytes)
	if err != nil {
		return err
	}

	return c.engine.Store(ctx, key, compressed, ttl)
}

// Fetch reports whether a value was found and decoded into destination.
func (c *Cacher) Fetch(ctx context.Context, key string, destination any) bool {
	value, err := c.engine.Fetch(ctx, key)
	if err != nil {
		return false
	}

	if value == nil {
		return false
	}

	uncompressed, err := Inflate(value)
	if err != nil {
		return false
	}

	err = json.Unmarshal(uncompressed, destination)
	return err == nil
}
