package artifacts

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/cardgen/internal/errors"
	"github.com/KirkDiggler/cardgen/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/cardgen/internal/redis"
)

// Key pattern: export:{artifact_id}
const keyPrefix = "export:"

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	TTL    time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl must not be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedis creates a Redis backed repository. Redis expires keys on its own.
func NewRedis(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Save stores the artifact with the configured TTL
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, invalid(errInputNil)
	}
	if err := validateArtifact(input.Artifact); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	artifact := copyArtifact(input.Artifact)
	artifact.CreatedAt = now
	artifact.ExpiresAt = now.Add(r.ttl)

	payload, err := json.Marshal(artifact)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal artifact")
	}

	if err := r.client.Set(ctx, buildKey(artifact.ID), payload, r.ttl).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store artifact in Redis")
	}

	return &SaveOutput{Artifact: artifact}, nil
}

// Get retrieves an artifact by ID
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, invalid(errInputNil)
	}
	if input.ID == "" {
		return nil, invalid(errIDEmpty)
	}

	key := buildKey(input.ID)
	payload, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, notFound(input.ID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get artifact from Redis")
	}

	var artifact Artifact
	if err := json.Unmarshal(payload, &artifact); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal artifact")
	}

	if r.clock.Now().After(artifact.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, notFound(input.ID)
	}

	return &GetOutput{Artifact: &artifact}, nil
}

// Delete removes an artifact
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, invalid(errInputNil)
	}
	if input.ID == "" {
		return nil, invalid(errIDEmpty)
	}

	removed, err := r.client.Del(ctx, buildKey(input.ID)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete artifact from Redis")
	}
	if removed == 0 {
		return nil, notFound(input.ID)
	}

	return &DeleteOutput{}, nil
}

// Sweep scans export:* and removes keys that no longer decode, carry no
// TTL or are past their recorded expiry.
func (r *redisRepository) Sweep(ctx context.Context, input *SweepInput) (*SweepOutput, error) {
	if input == nil {
		return nil, invalid(errInputNil)
	}

	now := r.clock.Now()
	out := &SweepOutput{}

	iter := r.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		out.Checked++

		reason, err := r.staleReason(ctx, key, now)
		if err != nil {
			return nil, err
		}
		if reason == "" {
			continue
		}

		id := strings.TrimPrefix(key, keyPrefix)
		out.Stale = append(out.Stale, id)
		slog.Info("Stale export artifact", "artifact_id", id, "reason", reason, "dry_run", input.DryRun)

		if input.DryRun {
			continue
		}
		if err := r.client.Del(ctx, key).Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete artifact from Redis")
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan artifacts in Redis")
	}

	sort.Strings(out.Stale)
	return out, nil
}

func (r *redisRepository) staleReason(ctx context.Context, key string, now time.Time) (string, error) {
	payload, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			// expired between SCAN and GET
			return "", nil
		}
		return "", errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get artifact from Redis")
	}

	var artifact Artifact
	if err := json.Unmarshal(payload, &artifact); err != nil || artifact.ID == "" {
		return "unreadable", nil
	}
	if now.After(artifact.ExpiresAt) {
		return "expired", nil
	}

	ttl, err := r.client.TTL(ctx, key).Result()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read artifact TTL from Redis")
	}
	// -1 means the key exists without an expiry
	if ttl == -1 {
		return "no ttl", nil
	}

	return "", nil
}

func buildKey(id string) string {
	return keyPrefix + id
}
