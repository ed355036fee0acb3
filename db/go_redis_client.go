package db

import (
	"context"
	"fmt"

	"fantasy-stats-web/logging"

	"github.com/go-redis/redis/v8"
)

// GoRedisClient struct holds the Redis client and context
type GoRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewGoRedisClient wraps client and checks the connection.
func NewGoRedisClient(ctx context.Context, client *redis.Client) (*GoRedisClient, error) {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("could not connect to Redis: %w", err)
	}
	logging.For("Redis").Info("Connected to Redis at %s", client.Options().Addr)

	return &GoRedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

// Set sets a key-value pair in Redis
func (r *GoRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *GoRedisClient) Get(key string) (string, error) {
	value, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return value, err
}

func (r *GoRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

// Keys lists keys matching a glob pattern. It uses SCAN so large keyspaces do
// not block the server.
func (r *GoRedisClient) Keys(pattern string) ([]string, error) {
	var keys []string
	iter := r.client.Scan(r.ctx, 0, pattern, 100).Iterator()
	for iter.Next(r.ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan keys %q: %w", pattern, err)
	}
	return keys, nil
}

func (r *GoRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *GoRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}

// Close releases the underlying connection pool.
func (r *GoRedisClient) Close() error {
	return r.client.Close()
}
