// Package redis wraps the go-redis client so repositories depend on an
// interface that miniredis-backed tests can satisfy.
package redis

import (
	"crypto/tls"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options tune the client pool
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// NewClient creates a client for a single instance at endpoint (host:port)
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	return redis.NewClient(apply(&redis.Options{Addr: endpoint}, opts)), nil
}

// NewClientFromURL creates a client from a redis:// or rediss:// URL.
// Settings in the URL win over opts.
func NewClientFromURL(rawURL string, opts *Options) (Client, error) {
	if rawURL == "" {
		return nil, errors.New("redis: url is required")
	}

	parsed, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, err
	}

	return redis.NewClient(apply(parsed, opts)), nil
}

func apply(redisOpts *redis.Options, opts *Options) *redis.Options {
	if opts == nil {
		return redisOpts
	}

	if opts.PoolSize > 0 && redisOpts.PoolSize == 0 {
		redisOpts.PoolSize = opts.PoolSize
	}
	if opts.MinIdleConns > 0 && redisOpts.MinIdleConns == 0 {
		redisOpts.MinIdleConns = opts.MinIdleConns
	}
	if opts.ConnMaxIdleTime > 0 && redisOpts.ConnMaxIdleTime == 0 {
		redisOpts.ConnMaxIdleTime = opts.ConnMaxIdleTime
	}
	if opts.MaxRetries > 0 && redisOpts.MaxRetries == 0 {
		redisOpts.MaxRetries = opts.MaxRetries
	}
	if opts.UseTLS && redisOpts.TLSConfig == nil {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return redisOpts
}
