package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "analytic:series:"

// Redis shares cached series between API replicas.
type Redis struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedis wraps client. An empty prefix falls back to "analytic:series:".
// A zero ttl keeps entries until they are overwritten.
func NewRedis(client redis.UniversalClient, prefix string, ttl time.Duration) *Redis {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Redis{client: client, prefix: prefix, ttl: ttl}
}

func (r *Redis) key(productID string) string {
	return r.prefix + productID
}

func (r *Redis) Get(ctx context.Context, productID string) (Entry, bool, error) {
	data, err := r.client.Get(ctx, r.key(productID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Entry{}, false, nil
		}
		return Entry{}, false, fmt.Errorf("get series from redis: %w", err)
	}
	e, err := decodeEntry(data)
	if err != nil {
		return Entry{}, false, err
	}
	return e, true, nil
}

func (r *Redis) Put(ctx context.Context, productID string, e Entry) error {
	data, err := encodeEntry(e)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key(productID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("put series to redis: %w", err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, productID string) error {
	if err := r.client.Del(ctx, r.key(productID)).Err(); err != nil {
		return fmt.Errorf("delete series from redis: %w", err)
	}
	return nil
}

func encodeEntry(e Entry) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal series: %w", err)
	}
	return data, nil
}

func decodeEntry(data []byte) (Entry, error) {
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return Entry{}, fmt.Errorf("unmarshal series: %w", err)
	}
	return e, nil
}
