package libraries

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/pkg/clock"
	redisclient "github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/redis"
)

const (
	libraryKeyPrefix  = "library:"
	monstersKeySuffix = ":monsters"
	libraryIndexKey   = "library:all"

	// Error messages
	errLibraryNil     = "library cannot be nil"
	errLibraryIDEmpty = "library ID cannot be empty"
	errLibraryName    = "library name cannot be empty"
	errMonsterIDEmpty = "monster ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis library repository
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

// NewRedis creates a new Redis-backed library repository
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
	if input.Library == nil {
		return nil, errors.InvalidArgument(errLibraryNil)
	}
	if input.Library.ID == "" {
		return nil, errors.InvalidArgument(errLibraryIDEmpty)
	}
	if input.Library.Name == "" {
		return nil, errors.InvalidArgument(errLibraryName)
	}

	library := *input.Library
	if library.CreatedAt.IsZero() {
		library.CreatedAt = r.clock.Now()
	}
	memberIDs := library.MonsterIDs
	library.MonsterIDs = nil

	data, err := json.Marshal(&library)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal library")
	}

	key := libraryKeyPrefix + library.ID
	created, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create library")
	}
	if !created {
		return nil, errors.AlreadyExistsf("library with ID %s already exists", library.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.SAdd(ctx, libraryIndexKey, library.ID)
	if len(memberIDs) > 0 {
		members := make([]any, len(memberIDs))
		for i, id := range memberIDs {
			members[i] = id
		}
		pipe.SAdd(ctx, key+monstersKeySuffix, members...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to index library")
	}

	library.MonsterIDs = sortedCopy(memberIDs)
	return &CreateOutput{Library: &library}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errLibraryIDEmpty)
	}

	key := libraryKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("library with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get library")
	}

	var library entities.Library
	if err := json.Unmarshal([]byte(result), &library); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal library")
	}

	ids, err := r.client.SMembers(ctx, key+monstersKeySuffix).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get library monsters")
	}
	library.MonsterIDs = sortedCopy(ids)

	return &GetOutput{Library: &library}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, libraryIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get libraries from index %s", libraryIndexKey)
	}

	libraries := make([]*entities.Library, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "library not found, cleaning up index",
					"library_id", id,
					"index_key", libraryIndexKey)
				r.client.SRem(ctx, libraryIndexKey, id)
				continue
			}
			return nil, err
		}
		libraries = append(libraries, out.Library)
	}

	sort.SliceStable(libraries, func(i, j int) bool {
		a, b := libraries[i], libraries[j]
		if a.IsOfficial != b.IsOfficial {
			return a.IsOfficial
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	return &ListOutput{Libraries: libraries}, nil
}

func (r *redisRepository) AddMonster(ctx context.Context, input AddMonsterInput) (*AddMonsterOutput, error) {
	if input.LibraryID == "" {
		return nil, errors.InvalidArgument(errLibraryIDEmpty)
	}
	if input.MonsterID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	key := libraryKeyPrefix + input.LibraryID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check library")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("library with ID %s not found", input.LibraryID)
	}

	if err := r.client.SAdd(ctx, key+monstersKeySuffix, input.MonsterID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to add monster to library")
	}

	return &AddMonsterOutput{}, nil
}

func (r *redisRepository) RemoveMonster(
	ctx context.Context,
	input RemoveMonsterInput,
) (*RemoveMonsterOutput, error) {
	if input.LibraryID == "" {
		return nil, errors.InvalidArgument(errLibraryIDEmpty)
	}
	if input.MonsterID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	key := libraryKeyPrefix + input.LibraryID + monstersKeySuffix
	if err := r.client.SRem(ctx, key, input.MonsterID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to remove monster from library")
	}

	return &RemoveMonsterOutput{}, nil
}

func sortedCopy(ids []string) []string {
	out := append(make([]string, 0, len(ids)), ids...)
	sort.Strings(out)
	return out
}
