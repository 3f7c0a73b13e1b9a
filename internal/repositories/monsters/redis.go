package monsters

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/pkg/clock"
	redisclient "github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/redis"
)

const (
	monsterKeyPrefix = "monster:"
	savedIndexKey    = "monster:saved"

	// Error messages
	errMonsterNil     = "monster cannot be nil"
	errMonsterIDEmpty = "monster ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis monster repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed monster repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Monster == nil || input.Monster.Monster == nil {
		return nil, errors.InvalidArgument(errMonsterNil)
	}
	if input.Monster.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	saved := *input.Monster
	if saved.SavedAt.IsZero() {
		saved.SavedAt = r.clock.Now()
	}

	key := monsterKeyPrefix + saved.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("monster with ID %s already exists", saved.ID)
	}

	data, err := json.Marshal(&saved)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal monster")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.ZAdd(ctx, savedIndexKey, redis.Z{
		Score:  float64(saved.SavedAt.UnixNano()),
		Member: saved.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save monster")
	}

	return &CreateOutput{Monster: &saved}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	result, err := r.client.Get(ctx, monsterKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("monster with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get monster")
	}

	saved, err := decode(result)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Monster: saved}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, monsterKeyPrefix+input.ID)
	pipe.ZRem(ctx, savedIndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete monster")
	}

	return &DeleteOutput{Monster: getOutput.Monster}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.Offset < 0 || input.Limit < 0 {
		return nil, errors.InvalidArgument("offset and limit cannot be negative")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Offset + input.Limit - 1)
	}

	ids, err := r.client.ZRevRange(ctx, savedIndexKey, int64(input.Offset), stop).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read saved index")
	}

	total, err := r.client.ZCard(ctx, savedIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to count saved monsters")
	}

	slog.DebugContext(ctx, "listing saved monsters",
		"offset", input.Offset,
		"limit", input.Limit,
		"count", len(ids),
		"total", total)

	out := &ListOutput{Monsters: make([]*entities.SavedMonster, 0, len(ids)), Total: int(total)}
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = monsterKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get saved monsters")
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			slog.WarnContext(ctx, "saved monster missing, cleaning up index",
				"monster_id", ids[i],
				"index_key", savedIndexKey)
			r.client.ZRem(ctx, savedIndexKey, ids[i])
			out.Total--
			continue
		}

		saved, err := decode(raw)
		if err != nil {
			return nil, err
		}
		out.Monsters = append(out.Monsters, saved)
	}

	return out, nil
}

func (r *redisRepository) Repair(ctx context.Context, input RepairInput) (*RepairOutput, error) {
	out := &RepairOutput{}

	iter := r.client.Scan(ctx, 0, monsterKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if key == savedIndexKey {
			continue
		}
		out.Checked++

		raw, err := r.client.Get(ctx, key).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}

		id := strings.TrimPrefix(key, monsterKeyPrefix)
		saved, err := decode(raw)
		if err != nil || saved.Monster == nil || saved.ID != id {
			slog.WarnContext(ctx, "corrupted saved monster",
				"key", key,
				"dry_run", input.DryRun,
				"error", err)
			out.Corrupted = append(out.Corrupted, key)

			if !input.DryRun {
				pipe := r.client.TxPipeline()
				pipe.Del(ctx, key)
				pipe.ZRem(ctx, savedIndexKey, id)
				if _, err := pipe.Exec(ctx); err != nil {
					return nil, errors.Wrapf(err, "failed to remove %s", key)
				}
			}
			continue
		}

		if !input.DryRun {
			err := r.client.ZAdd(ctx, savedIndexKey, redis.Z{
				Score:  float64(saved.SavedAt.UnixNano()),
				Member: saved.ID,
			}).Err()
			if err != nil {
				return nil, errors.Wrapf(err, "failed to index %s", key)
			}
		}
		out.Indexed++
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan saved monsters")
	}

	slog.InfoContext(ctx, "repaired saved monsters",
		"checked", out.Checked,
		"indexed", out.Indexed,
		"corrupted", len(out.Corrupted),
		"dry_run", input.DryRun)

	return out, nil
}

func decode(raw string) (*entities.SavedMonster, error) {
	var saved entities.SavedMonster
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal monster")
	}
	return &saved, nil
}
