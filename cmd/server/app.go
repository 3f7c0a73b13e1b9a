package main

import (
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/bestiary"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/config"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/generator"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/handlers/api/v1alpha1"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/handlers/rest"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/collection"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/monster"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/share"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/stats"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/pkg/clock"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/pkg/idgen"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/pkg/roll"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/redis"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/repositories/libraries"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/repositories/monsters"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/repositories/shares"
	statsrepo "github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/repositories/stats"
)

// app holds the wired services behind both transports
type app struct {
	rest  *rest.Handler
	grpc  *v1alpha1.MonsterHandler
	stats stats.Service
}

// Close unsubscribes the event listeners
func (a *app) Close() error {
	return a.stats.Close()
}

func loadBestiary(path string) (*bestiary.Bestiary, error) {
	if path == "" {
		return bestiary.Default()
	}
	return bestiary.LoadFile(path)
}

// newMonsterService wires the engine behind the monster orchestrator
func newMonsterService(bestiaryPath string, maxCount int, bus events.EventBus) (monster.Service, error) {
	tables, err := loadBestiary(bestiaryPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load bestiary")
	}

	engine, err := generator.New(&generator.Config{
		Bestiary: tables,
		Roller:   roll.New(nil),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create generator")
	}

	return monster.NewOrchestrator(&monster.Config{
		Engine:   engine,
		EventBus: bus,
		MaxCount: maxCount,
	})
}

func newApp(cfg *config.Config, client redis.Client) (*app, error) {
	bus := events.NewBus()
	clk := clock.New()

	monsterService, err := newMonsterService(cfg.BestiaryPath, cfg.MaxGenerateCount, bus)
	if err != nil {
		return nil, err
	}

	monsterRepo, err := monsters.NewRedis(&monsters.RedisConfig{Client: client, Clock: clk})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create monster repository")
	}
	libraryRepo, err := libraries.NewRedis(&libraries.RedisConfig{Client: client, Clock: clk})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create library repository")
	}
	shareRepo, err := shares.NewRedisRepository(&shares.Config{Client: client, Clock: clk})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create share repository")
	}
	statsRepo, err := statsrepo.NewRedisRepository(&statsrepo.Config{Client: client})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create stats repository")
	}

	collectionService, err := collection.NewOrchestrator(&collection.Config{
		MonsterRepo: monsterRepo,
		LibraryRepo: libraryRepo,
		IDGenerator: idgen.NewUUID(""),
		Clock:       clk,
		EventBus:    bus,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create collection service")
	}

	shareService, err := share.NewOrchestrator(&share.Config{
		ShareRepo:   shareRepo,
		MonsterRepo: monsterRepo,
		IDGenerator: idgen.NewShort(),
		EventBus:    bus,
		BaseURL:     cfg.PublicBaseURL,
		DefaultTTL:  cfg.ShareDefaultTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create share service")
	}

	statsService, err := stats.NewOrchestrator(&stats.Config{
		StatsRepo: statsRepo,
		EventBus:  bus,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create stats service")
	}

	restHandler, err := rest.NewHandler(&rest.HandlerConfig{
		MonsterService:    monsterService,
		CollectionService: collectionService,
		ShareService:      shareService,
		StatsService:      statsService,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create http handler")
	}

	grpcHandler, err := v1alpha1.NewMonsterHandler(&v1alpha1.MonsterHandlerConfig{
		MonsterService: monsterService,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create grpc handler")
	}

	return &app{
		rest:  restHandler,
		grpc:  grpcHandler,
		stats: statsService,
	}, nil
}
