package rolllog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/KirkDiggler/vtm-api/internal/errors"
	"github.com/KirkDiggler/vtm-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/vtm-api/internal/redis"
)

const (
	// Key pattern: roll_log:{chronicle_id}
	keyPrefix = "roll_log:"
	// DefaultMaxEntries is how many rolls a chronicle keeps in Redis
	DefaultMaxEntries = 500
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	// MaxEntries caps the list per chronicle; 0 uses DefaultMaxEntries
	MaxEntries int
	// TTL expires an idle chronicle's history; 0 keeps it forever
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("client")
	}
	if c.Clock == nil {
		vb.RequiredField("clock")
	}
	errors.ValidateNonNegative("max_entries", c.MaxEntries, vb)
	if c.TTL < 0 {
		vb.Field("ttl", "must not be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client     redisclient.Client
	clock      clock.Clock
	maxEntries int
	ttl        time.Duration
}

// NewRedisRepository creates a roll log backed by one Redis list per
// chronicle, newest first
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxEntries := cfg.MaxEntries
	if maxEntries == 0 {
		maxEntries = DefaultMaxEntries
	}

	return &redisRepository{
		client:     cfg.Client,
		clock:      cfg.Clock,
		maxEntries: maxEntries,
		ttl:        cfg.TTL,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if err := validateAppend(input); err != nil {
		return nil, err
	}

	entry := *input.Entry
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.clock.Now()
	}

	data, err := json.Marshal(&entry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal roll")
	}

	key := keyPrefix + entry.ChronicleID
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, int64(r.maxEntries-1))
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store roll in Redis")
	}

	return &AppendOutput{Entry: &entry}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.ChronicleID == "" {
		return nil, errors.InvalidArgument("chronicle ID is required")
	}
	limit := listLimit(input.Limit)

	raw, err := r.client.LRange(ctx, keyPrefix+input.ChronicleID, 0, -1).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read rolls from Redis")
	}

	entries := make([]*Entry, 0, min(limit, len(raw)))
	for _, item := range raw {
		if len(entries) == limit {
			break
		}

		var e Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			slog.Warn("Skipping unreadable roll log entry",
				"chronicle_id", input.ChronicleID,
				"error", err)
			continue
		}
		if visible(&e, input.IncludeSecret) {
			entries = append(entries, &e)
		}
	}

	return &ListOutput{Entries: entries}, nil
}
