package stats

import (
	"context"
	"strconv"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
	redisclient "github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/redis"
)

const counterKeyPrefix = "stats:"

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil || c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for usage counters
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Increment(ctx context.Context, input IncrementInput) (*IncrementOutput, error) {
	switch input.Counter {
	case CounterGenerated, CounterSaved, CounterShared:
	default:
		return nil, errors.InvalidArgumentf("unknown counter %q", input.Counter)
	}

	delta := input.Delta
	if delta == 0 {
		delta = 1
	}

	value, err := r.client.IncrBy(ctx, counterKeyPrefix+string(input.Counter), delta).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to increment %s", input.Counter)
	}

	return &IncrementOutput{Value: value}, nil
}

func (r *redisRepository) Get(ctx context.Context, _ GetInput) (*GetOutput, error) {
	values, err := r.client.MGet(ctx,
		counterKeyPrefix+string(CounterGenerated),
		counterKeyPrefix+string(CounterSaved),
		counterKeyPrefix+string(CounterShared),
	).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read counters")
	}

	counts := make([]int64, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "counter holds %q", raw)
		}
		counts[i] = n
	}

	return &GetOutput{Stats: &entities.UsageStats{
		TotalGenerated: counts[0],
		TotalSaved:     counts[1],
		TotalShared:    counts[2],
	}}, nil
}
