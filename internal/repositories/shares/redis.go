package shares

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/pkg/clock"
	redisclient "github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/redis"
)

const (
	// Key pattern: share:{id} and share:{id}:views
	shareKeyPrefix = "share:"
	viewsKeySuffix = ":views"

	// DefaultTTL is used when a share is created without a lifetime
	DefaultTTL = 7 * 24 * time.Hour

	// ExpiredRetention keeps a share readable past its expiry so lookups can
	// report it as expired rather than unknown
	ExpiredRetention = 24 * time.Hour

	// DefaultShareType labels shares created without a type
	DefaultShareType = "link"

	// Error messages
	errShareIDEmpty   = "share ID cannot be empty"
	errMonsterIDEmpty = "monster ID cannot be empty"
	errNegativeTTL    = "ttl cannot be negative"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for share links
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a share link. The record outlives its expiry by
// ExpiredRetention.
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errShareIDEmpty)
	}
	if input.MonsterID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}
	if input.TTL < 0 {
		return nil, errors.InvalidArgument(errNegativeTTL)
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	shareType := input.ShareType
	if shareType == "" {
		shareType = DefaultShareType
	}

	now := r.clock.Now()
	share := &entities.Share{
		ID:        input.ID,
		MonsterID: input.MonsterID,
		ShareType: shareType,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	data, err := json.Marshal(share)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal share")
	}

	key := shareKeyPrefix + input.ID
	created, err := r.client.SetNX(ctx, key, data, ttl+ExpiredRetention).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to store share")
	}
	if !created {
		return nil, errors.AlreadyExistsf("share %s already exists", input.ID)
	}

	if err := r.client.Set(ctx, key+viewsKeySuffix, 0, ttl+ExpiredRetention).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store share views")
	}

	return &CreateOutput{Share: share}, nil
}

// Get retrieves a share and its view count
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errShareIDEmpty)
	}

	key := shareKeyPrefix + input.ID
	pipe := r.client.Pipeline()
	shareCmd := pipe.Get(ctx, key)
	viewsCmd := pipe.Get(ctx, key+viewsKeySuffix)
	_, _ = pipe.Exec(ctx)

	data, err := shareCmd.Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("share %s not found", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get share")
	}

	var share entities.Share
	if err := json.Unmarshal(data, &share); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal share")
	}

	if share.IsExpired(r.clock.Now()) {
		return nil, errors.Expiredf("share %s expired at %s", input.ID, share.ExpiresAt.Format(time.RFC3339))
	}

	views, err := viewsCmd.Int64()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrap(err, "failed to get share views")
	}
	share.ViewCount = views

	return &GetOutput{Share: &share}, nil
}

// IncrementViews bumps the view counter, which keeps the share's lifetime
func (r *redisRepository) IncrementViews(
	ctx context.Context,
	input IncrementViewsInput,
) (*IncrementViewsOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errShareIDEmpty)
	}

	key := shareKeyPrefix + input.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to check share")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("share %s not found", input.ID)
	}

	views, err := r.client.Incr(ctx, key+viewsKeySuffix).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to increment share views")
	}

	return &IncrementViewsOutput{ViewCount: views}, nil
}
