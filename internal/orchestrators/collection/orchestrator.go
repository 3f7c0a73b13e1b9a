// Package collection implements the saved monster collection: saving,
// browsing, deleting and exporting monsters and grouping them in libraries
package collection

//go:generate mockgen -destination=mock/mock_service.go -package=collectionmock github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/collection Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"golang.org/x/sync/errgroup"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/pkg/clock"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/pkg/idgen"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/repositories/libraries"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/repositories/monsters"
)

// Content types for exports
const (
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeJSON = "application/json"
)

// Service defines the interface for the saved monster collection
type Service interface {
	SaveMonster(ctx context.Context, input *SaveMonsterInput) (*SaveMonsterOutput, error)
	GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error)
	ListSaved(ctx context.Context, input *ListSavedInput) (*ListSavedOutput, error)
	DeleteMonster(ctx context.Context, input *DeleteMonsterInput) (*DeleteMonsterOutput, error)
	ListLibraries(ctx context.Context, input *ListLibrariesInput) (*ListLibrariesOutput, error)
	ExportMonster(ctx context.Context, input *ExportMonsterInput) (*ExportMonsterOutput, error)
}

// Config holds the dependencies for the collection orchestrator
type Config struct {
	MonsterRepo monsters.Repository
	LibraryRepo libraries.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
	EventBus    events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.MonsterRepo == nil {
		vb.RequiredField("MonsterRepo")
	}
	if c.LibraryRepo == nil {
		vb.RequiredField("LibraryRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

type orchestrator struct {
	monsterRepo monsters.Repository
	libraryRepo libraries.Repository
	idGen       idgen.Generator
	clock       clock.Clock
	eventBus    events.EventBus
}

// NewOrchestrator creates a new collection orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		monsterRepo: cfg.MonsterRepo,
		libraryRepo: cfg.LibraryRepo,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
		eventBus:    cfg.EventBus,
	}, nil
}

// SaveMonster stores a copy of the monster and files it in the library
func (o *orchestrator) SaveMonster(ctx context.Context, input *SaveMonsterInput) (*SaveMonsterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Monster == nil {
		vb.RequiredField("monster")
	} else {
		errors.ValidateRequired("monster.name", input.Monster.Name, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if input.LibraryID != "" {
		if _, err := o.libraryRepo.Get(ctx, libraries.GetInput{ID: input.LibraryID}); err != nil {
			return nil, errors.Wrapf(err, "failed to find library %s", input.LibraryID)
		}
	}

	created, err := o.monsterRepo.Create(ctx, monsters.CreateInput{Monster: &entities.SavedMonster{
		ID:        o.idGen.Generate(),
		LibraryID: input.LibraryID,
		Monster:   input.Monster.Clone(),
		SavedAt:   o.clock.Now(),
	}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save monster")
	}
	saved := created.Monster

	if input.LibraryID != "" {
		_, err := o.libraryRepo.AddMonster(ctx, libraries.AddMonsterInput{
			LibraryID: input.LibraryID,
			MonsterID: saved.ID,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to add monster %s to library %s", saved.ID, input.LibraryID)
		}
	}

	o.publish(ctx, entities.NewMonsterEvent(entities.EventMonsterSaved, saved.ID, saved.Monster, map[string]any{
		"library_id": saved.LibraryID,
	}))

	slog.InfoContext(ctx, "saved monster",
		"monster_id", saved.ID,
		"monster_name", saved.Monster.Name,
		"library_id", saved.LibraryID)

	return &SaveMonsterOutput{Saved: saved}, nil
}

func (o *orchestrator) GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("monster ID is required")
	}

	out, err := o.monsterRepo.Get(ctx, monsters.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	return &GetMonsterOutput{Saved: out.Monster}, nil
}

// ListSaved reads the collection and the libraries concurrently
func (o *orchestrator) ListSaved(ctx context.Context, input *ListSavedInput) (*ListSavedOutput, error) {
	if input == nil {
		input = &ListSavedInput{}
	}
	if input.Offset < 0 || input.Limit < 0 {
		return nil, errors.InvalidArgument("offset and limit cannot be negative")
	}

	var (
		saved *monsters.ListOutput
		libs  []*entities.Library
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := o.monsterRepo.List(gctx, monsters.ListInput{Offset: input.Offset, Limit: input.Limit})
		if err != nil {
			return errors.Wrap(err, "failed to list saved monsters")
		}
		saved = out
		return nil
	})
	g.Go(func() error {
		out, err := o.listLibraries(gctx)
		if err != nil {
			return err
		}
		libs = out
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ListSavedOutput{
		Monsters:   saved.Monsters,
		TotalCount: saved.Total,
		Libraries:  libs,
	}, nil
}

// DeleteMonster removes a saved monster and takes it out of its library
func (o *orchestrator) DeleteMonster(ctx context.Context, input *DeleteMonsterInput) (*DeleteMonsterOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("monster ID is required")
	}

	out, err := o.monsterRepo.Delete(ctx, monsters.DeleteInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	if libraryID := out.Monster.LibraryID; libraryID != "" {
		_, err := o.libraryRepo.RemoveMonster(ctx, libraries.RemoveMonsterInput{
			LibraryID: libraryID,
			MonsterID: input.ID,
		})
		if err != nil {
			slog.WarnContext(ctx, "failed to remove deleted monster from library",
				"monster_id", input.ID,
				"library_id", libraryID,
				"error", err)
		}
	}

	slog.InfoContext(ctx, "deleted monster", "monster_id", input.ID)

	return &DeleteMonsterOutput{}, nil
}

func (o *orchestrator) ListLibraries(ctx context.Context, _ *ListLibrariesInput) (*ListLibrariesOutput, error) {
	libs, err := o.listLibraries(ctx)
	if err != nil {
		return nil, err
	}
	return &ListLibrariesOutput{Libraries: libs}, nil
}

// ExportMonster renders a saved monster as clipboard text or a JSON download
func (o *orchestrator) ExportMonster(ctx context.Context, input *ExportMonsterInput) (*ExportMonsterOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("monster ID is required")
	}

	format := entities.ExportFormat(strings.ToLower(strings.TrimSpace(input.Format)))
	if format == "" {
		format = entities.ExportFormatText
	}
	if format != entities.ExportFormatText && format != entities.ExportFormatJSON {
		return nil, errors.InvalidArgumentf("unsupported export format %q", input.Format)
	}

	out, err := o.monsterRepo.Get(ctx, monsters.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}
	m := out.Monster.Monster

	if format == entities.ExportFormatText {
		return &ExportMonsterOutput{
			Format:      format,
			Content:     []byte(m.ClipboardText()),
			ContentType: ContentTypeText,
		}, nil
	}

	data, err := m.ExportJSON()
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode monster")
	}

	return &ExportMonsterOutput{
		Format:      format,
		Content:     data,
		ContentType: ContentTypeJSON,
		Filename:    m.ExportFilename(),
	}, nil
}

// listLibraries lists every library, creating the official one first if it
// does not exist yet
func (o *orchestrator) listLibraries(ctx context.Context) ([]*entities.Library, error) {
	if err := o.ensureOfficialLibrary(ctx); err != nil {
		return nil, err
	}

	out, err := o.libraryRepo.List(ctx, libraries.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list libraries")
	}
	return out.Libraries, nil
}

func (o *orchestrator) ensureOfficialLibrary(ctx context.Context) error {
	_, err := o.libraryRepo.Get(ctx, libraries.GetInput{ID: entities.OfficialLibraryID})
	if err == nil {
		return nil
	}
	if !errors.IsNotFound(err) {
		return errors.Wrap(err, "failed to look up official library")
	}

	_, err = o.libraryRepo.Create(ctx, libraries.CreateInput{Library: &entities.Library{
		ID:          entities.OfficialLibraryID,
		Name:        entities.OfficialLibraryName,
		Description: entities.OfficialLibraryDescription,
		IsOfficial:  true,
		CreatedAt:   o.clock.Now(),
	}})
	// Another request created it first
	if errors.IsAlreadyExists(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to create official library")
	}

	slog.InfoContext(ctx, "created official library", "library_id", entities.OfficialLibraryID)
	return nil
}

func (o *orchestrator) publish(ctx context.Context, event events.Event) {
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish event",
			"event", event.Type(),
			"error", err)
	}
}
