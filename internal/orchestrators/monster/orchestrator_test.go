package monster_test

import (
	"context"
	"sync"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/bestiary"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/generator"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/monster"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/pkg/roll"
)

// engineFunc adapts a function to the Engine interface
type engineFunc func(req generator.Request) ([]*entities.Monster, error)

func (f engineFunc) Generate(req generator.Request) ([]*entities.Monster, error) {
	return f(req)
}

type OrchestratorTestSuite struct {
	suite.Suite
	bus       events.EventBus
	mu        sync.Mutex
	published []events.Event
	orch      monster.Service
	ctx       context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = events.NewBus()
	s.published = nil
	s.bus.SubscribeFunc(entities.EventMonsterGenerated, 100, func(_ context.Context, e events.Event) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.published = append(s.published, e)
		return nil
	})

	tables, err := bestiary.Default()
	s.Require().NoError(err)
	gen, err := generator.New(&generator.Config{Bestiary: tables, Roller: roll.New(nil)})
	s.Require().NoError(err)

	orch, err := monster.NewOrchestrator(&monster.Config{Engine: gen, EventBus: s.bus})
	s.Require().NoError(err)
	s.orch = orch
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := monster.NewOrchestrator(&monster.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Engine")
	s.Contains(err.Error(), "EventBus")

	_, err = monster.NewOrchestrator(&monster.Config{
		Engine:   engineFunc(nil),
		EventBus: s.bus,
		MaxCount: -1,
	})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestGenerate() {
	s.Run("exact count with one event each", func() {
		out, err := s.orch.Generate(s.ctx, &monster.GenerateInput{
			ChallengeRating: "2",
			Type:            "undead",
			Count:           3,
		})
		s.Require().NoError(err)
		s.Len(out.Monsters, 3)
		s.Equal(entities.CR2, out.Filter.ChallengeRating)
		s.Equal(entities.EnvironmentAny, out.Filter.Environment)
		for _, m := range out.Monsters {
			s.Equal(entities.TypeUndead, m.Type)
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		s.Len(s.published, 3)
		for _, e := range s.published {
			entity, ok := entities.MonsterFromEvent(e)
			s.Require().True(ok)
			s.Empty(entity.ID)
		}
	})

	s.Run("empty input produces one monster", func() {
		out, err := s.orch.Generate(s.ctx, &monster.GenerateInput{})
		s.Require().NoError(err)
		s.Len(out.Monsters, 1)
		s.Equal(entities.AnyFilter(), out.Filter)
	})

	s.Run("advanced options reach the engine", func() {
		out, err := s.orch.Generate(s.ctx, &monster.GenerateInput{
			Algorithm:       "random",
			Complexity:      "complex",
			IncludeTreasure: true,
			IncludeLair:     true,
		})
		s.Require().NoError(err)
		m := out.Monsters[0]
		s.Equal(entities.SourceProcedural, m.Source)
		s.NotNil(m.Encounters)
		s.NotNil(m.Treasure)
		s.NotNil(m.Lair)
	})
}

func (s *OrchestratorTestSuite) TestGenerateValidation() {
	testCases := []struct {
		name  string
		input *monster.GenerateInput
	}{
		{"nil input", nil},
		{"bad rating", &monster.GenerateInput{ChallengeRating: "hard"}},
		{"bad type", &monster.GenerateInput{Type: "kaiju"}},
		{"bad environment", &monster.GenerateInput{Environment: "moon"}},
		{"negative count", &monster.GenerateInput{Count: -2}},
		{"count over the cap", &monster.GenerateInput{Count: monster.DefaultMaxCount + 1}},
		{"bad algorithm", &monster.GenerateInput{Algorithm: "chaotic"}},
		{"bad complexity", &monster.GenerateInput{Complexity: "extreme"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orch.Generate(s.ctx, tc.input)
			s.True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Empty(s.published)
}

func (s *OrchestratorTestSuite) TestEngineFailure() {
	orch, err := monster.NewOrchestrator(&monster.Config{
		Engine: engineFunc(func(generator.Request) ([]*entities.Monster, error) {
			return nil, errors.TableIntegrity("empty pool")
		}),
		EventBus: s.bus,
	})
	s.Require().NoError(err)

	_, err = orch.Generate(s.ctx, &monster.GenerateInput{})
	s.True(errors.IsTableIntegrity(err))
	s.Contains(err.Error(), "failed to generate monsters")
}

func (s *OrchestratorTestSuite) TestPublishFailureDoesNotFailGeneration() {
	s.bus.SubscribeFunc(entities.EventMonsterGenerated, 50, func(context.Context, events.Event) error {
		return errors.Unavailable("subscriber down")
	})

	out, err := s.orch.Generate(s.ctx, &monster.GenerateInput{Count: 2})
	s.Require().NoError(err)
	s.Len(out.Monsters, 2)
}
