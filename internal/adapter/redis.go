package adapter

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisClient defines the interface for Redis operations to enable mocking.
// Redis carries the cross-process wake-up signal for the job runner; the
// durable job table stays authoritative.
//
//go:generate mockgen -source=redis.go -destination=../mocks/redis.go -package=mocks -mock_names=RedisClient=MockRedisClient
type RedisClient interface {
	// Ping checks if Redis is reachable
	Ping(ctx context.Context) error

	// Publish notifies subscribers on a channel
	Publish(ctx context.Context, channel string, message string) error

	// Subscribe returns a channel delivering messages published on channel.
	// Close the returned closer to stop the subscription.
	Subscribe(ctx context.Context, channel string) (<-chan string, func() error)

	// Close closes the Redis connection
	Close() error
}

// RealRedisClient wraps the actual Redis client
type RealRedisClient struct {
	client *redis.Client
}

// NewRedisClient creates a new Redis client
func NewRedisClient(addr, password string, db int) RedisClient {
	return &RealRedisClient{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (r *RealRedisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RealRedisClient) Publish(ctx context.Context, channel string, message string) error {
	return r.client.Publish(ctx, channel, message).Err()
}

func (r *RealRedisClient) Subscribe(ctx context.Context, channel string) (<-chan string, func() error) {
	sub := r.client.Subscribe(ctx, channel)
	out := make(chan string)

	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			select {
			case out <- msg.Payload:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, sub.Close
}

func (r *RealRedisClient) Close() error {
	return r.client.Close()
}
