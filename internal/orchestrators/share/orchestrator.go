// Package share issues and resolves expiring share links for saved monsters
package share

//go:generate mockgen -destination=mock/mock_service.go -package=sharemock github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/share Service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/pkg/idgen"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/repositories/monsters"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/repositories/shares"
)

const (
	// SharedPath is joined to the base URL to form share links
	SharedPath = "/shared/"

	// MaxTTL bounds how long a share link may live
	MaxTTL = 365 * 24 * time.Hour

	// idAttempts is how many short ids are tried before giving up on collisions
	idAttempts = 3
)

// Service defines the interface for share links
type Service interface {
	CreateShare(ctx context.Context, input *CreateShareInput) (*CreateShareOutput, error)
	GetShared(ctx context.Context, input *GetSharedInput) (*GetSharedOutput, error)
}

// Config holds the dependencies for the share orchestrator
type Config struct {
	ShareRepo   shares.Repository
	MonsterRepo monsters.Repository
	IDGenerator idgen.Generator
	EventBus    events.EventBus
	// BaseURL is the public address of the web client
	BaseURL string
	// DefaultTTL defaults to shares.DefaultTTL
	DefaultTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ShareRepo == nil {
		vb.RequiredField("ShareRepo")
	}
	if c.MonsterRepo == nil {
		vb.RequiredField("MonsterRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	errors.ValidateRequired("BaseURL", c.BaseURL, vb)
	if c.DefaultTTL < 0 || c.DefaultTTL > MaxTTL {
		vb.InvalidField("DefaultTTL", "must be between zero and one year")
	}

	return vb.Build()
}

type orchestrator struct {
	shareRepo   shares.Repository
	monsterRepo monsters.Repository
	idGen       idgen.Generator
	eventBus    events.EventBus
	baseURL     string
	defaultTTL  time.Duration
}

// NewOrchestrator creates a new share orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.DefaultTTL
	if ttl == 0 {
		ttl = shares.DefaultTTL
	}

	return &orchestrator{
		shareRepo:   cfg.ShareRepo,
		monsterRepo: cfg.MonsterRepo,
		idGen:       cfg.IDGenerator,
		eventBus:    cfg.EventBus,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		defaultTTL:  ttl,
	}, nil
}

// CreateShare issues a share link for a saved monster
func (o *orchestrator) CreateShare(ctx context.Context, input *CreateShareInput) (*CreateShareOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("monsterId", input.MonsterID, vb)
	if input.ExpiresIn < 0 || input.ExpiresIn > MaxTTL {
		vb.InvalidField("expiresIn", "must be between zero and one year")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	saved, err := o.monsterRepo.Get(ctx, monsters.GetInput{ID: input.MonsterID})
	if err != nil {
		return nil, err
	}

	ttl := input.ExpiresIn
	if ttl == 0 {
		ttl = o.defaultTTL
	}

	var created *shares.CreateOutput
	for attempt := 1; attempt <= idAttempts; attempt++ {
		created, err = o.shareRepo.Create(ctx, shares.CreateInput{
			ID:        o.idGen.Generate(),
			MonsterID: input.MonsterID,
			ShareType: input.ShareType,
			TTL:       ttl,
		})
		if !errors.IsAlreadyExists(err) {
			break
		}
		slog.WarnContext(ctx, "share id collision, retrying", "attempt", attempt)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create share")
	}

	share := created.Share
	event := entities.NewMonsterEvent(entities.EventMonsterShared, saved.Monster.ID, saved.Monster.Monster, map[string]any{
		"share_id": share.ID,
	})
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish event",
			"event", entities.EventMonsterShared,
			"error", err)
	}

	slog.InfoContext(ctx, "created share link",
		"share_id", share.ID,
		"monster_id", input.MonsterID,
		"expires_at", share.ExpiresAt)

	return &CreateShareOutput{
		ShareID:   share.ID,
		ShareURL:  o.baseURL + SharedPath + share.ID,
		ExpiresAt: share.ExpiresAt,
	}, nil
}

// GetShared resolves a share link and counts the view
func (o *orchestrator) GetShared(ctx context.Context, input *GetSharedInput) (*GetSharedOutput, error) {
	if input == nil || input.ShareID == "" {
		return nil, errors.InvalidArgument("share ID is required")
	}

	found, err := o.shareRepo.Get(ctx, shares.GetInput{ID: input.ShareID})
	if err != nil {
		return nil, err
	}
	share := found.Share

	saved, err := o.monsterRepo.Get(ctx, monsters.GetInput{ID: share.MonsterID})
	if err != nil {
		return nil, errors.Wrapf(err, "shared monster %s is gone", share.MonsterID)
	}

	views, err := o.shareRepo.IncrementViews(ctx, shares.IncrementViewsInput{ID: share.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record share view")
	}

	return &GetSharedOutput{
		Monster:   saved.Monster.Monster,
		SharedBy:  entities.AnonymousSharer,
		SharedAt:  share.CreatedAt,
		ViewCount: views.ViewCount,
	}, nil
}
