package initiativeorders

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/vtm-api/internal/errors"
	redisclient "github.com/KirkDiggler/vtm-api/internal/redis"
	"github.com/KirkDiggler/vtm-api/internal/rules/initiative"
)

const (
	// Key pattern: initiative:order:{order_id}
	orderKeyPrefix = "initiative:order:"
	// Key pattern: initiative:session:{session_id}:active -> order_id
	sessionKeyPrefix = "initiative:session:"
	activeSuffix     = ":active"
)

// releaseScript deletes the session's active pointer only if it still points
// at the given order
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for initiative orders
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateOrder(input.Order); err != nil {
		return nil, err
	}
	order := input.Order

	data, err := json.Marshal(order)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal order")
	}

	if order.Active {
		claimed, err := r.client.SetNX(ctx, activeKey(order.SessionID), order.ID, 0).Result()
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to claim session")
		}
		if !claimed {
			return nil, errors.AlreadyExists("session already has an active initiative order").
				WithMeta("session_id", order.SessionID)
		}
	}

	if err := r.client.Set(ctx, orderKey(order.ID), data, 0).Err(); err != nil {
		if order.Active {
			_ = releaseScript.Run(ctx, r.client, []string{activeKey(order.SessionID)}, order.ID).Err()
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store order")
	}

	return &CreateOutput{Order: order}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.OrderID == "" {
		return nil, errors.InvalidArgument("order ID is required")
	}

	order, err := r.load(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Order: order}, nil
}

func (r *redisRepository) GetActive(ctx context.Context, input GetActiveInput) (*GetActiveOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	orderID, err := r.client.Get(ctx, activeKey(input.SessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no active initiative order").
				WithMeta("session_id", input.SessionID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read session")
	}

	order, err := r.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &GetActiveOutput{Order: order}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateOrder(input.Order); err != nil {
		return nil, err
	}
	order := input.Order

	data, err := json.Marshal(order)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal order")
	}

	// XX: only replace an order that exists
	stored, err := r.client.SetXX(ctx, orderKey(order.ID), data, 0).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store order")
	}
	if !stored {
		return nil, errors.NotFound("initiative order not found").WithMeta("order_id", order.ID)
	}

	if !order.Active {
		if err := releaseScript.Run(ctx, r.client, []string{activeKey(order.SessionID)}, order.ID).Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to release session")
		}
	}

	return &UpdateOutput{Order: order}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.OrderID == "" {
		return nil, errors.InvalidArgument("order ID is required")
	}

	order, err := r.load(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	if err := r.client.Del(ctx, orderKey(order.ID)).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete order")
	}
	if err := releaseScript.Run(ctx, r.client, []string{activeKey(order.SessionID)}, order.ID).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to release session")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) load(ctx context.Context, orderID string) (*initiative.Order, error) {
	data, err := r.client.Get(ctx, orderKey(orderID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("initiative order not found").WithMeta("order_id", orderID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read order")
	}

	var order initiative.Order
	if err := json.Unmarshal([]byte(data), &order); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal order")
	}
	if order.Entries == nil {
		order.Entries = []*initiative.Entry{}
	}
	return &order, nil
}

func orderKey(orderID string) string {
	return orderKeyPrefix + orderID
}

func activeKey(sessionID string) string {
	return sessionKeyPrefix + sessionID + activeSuffix
}
