package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Publisher emits domain events to a keyed, ordered stream. Publish is
// called only after the corresponding state mutation has committed;
// callers log publish failures instead of rolling back.
type Publisher interface {
	Publish(ctx context.Context, stream, key string, evt Event) error
}

// NewRedisClient creates the shared redis client used by both the
// publisher and the consumer. The caller owns its lifecycle and closes
// it on shutdown.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

type redisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher creates a publisher backed by redis streams. A
// stream is totally ordered, so entries added with the same key are
// observed by consumers in publish order.
func NewRedisPublisher(client *redis.Client) Publisher {
	return &redisPublisher{client: client}
}

func (p *redisPublisher) Publish(ctx context.Context, stream, key string, evt Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", evt.EventType, err)
	}

	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			"key":     key,
			"payload": string(payload),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("publish %s event to %s: %w", evt.EventType, stream, err)
	}

	return nil
}
