package db

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key does not exist.
var ErrKeyNotFound = errors.New("key not found")

// RedisClient defines the methods available in the RedisClient
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Del(key string) error
	Keys(pattern string) ([]string, error)
	GetContext() context.Context
	Ping() error
}
