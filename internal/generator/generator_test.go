package generator_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/bestiary"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/generator"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/pkg/roll"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/testutils"
)

const iterations = 200

type GeneratorTestSuite struct {
	suite.Suite
	tables *bestiary.Bestiary
	gen    *generator.Generator
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func (s *GeneratorTestSuite) SetupTest() {
	tables, err := bestiary.Default()
	s.Require().NoError(err)
	s.tables = tables
	s.gen = s.newGenerator(dice.DefaultRoller, nil)
}

func (s *GeneratorTestSuite) newGenerator(r dice.Roller, selector generator.Selector) *generator.Generator {
	gen, err := generator.New(&generator.Config{
		Bestiary: s.tables,
		Roller:   roll.New(r),
		Selector: selector,
	})
	s.Require().NoError(err)
	return gen
}

func (s *GeneratorTestSuite) template(name string) bestiary.Template {
	for _, t := range s.tables.Templates {
		if t.Name == name {
			return t
		}
	}
	s.FailNow("template not found", name)
	return bestiary.Template{}
}

func (s *GeneratorTestSuite) filter(cr entities.ChallengeRating, t entities.MonsterType, env entities.Environment, count int) entities.Filter {
	return entities.Filter{ChallengeRating: cr, Type: t, Environment: env, Count: count}
}

func (s *GeneratorTestSuite) TestNewRequiresDependencies() {
	_, err := generator.New(nil)
	s.Error(err)

	_, err = generator.New(&generator.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Bestiary")
	s.Contains(err.Error(), "Roller")
}

func (s *GeneratorTestSuite) TestGenerateReturnsExactlyCount() {
	algorithms := []entities.Algorithm{
		entities.AlgorithmBalanced,
		entities.AlgorithmTemplateBased,
		entities.AlgorithmRandom,
	}

	for _, alg := range algorithms {
		for count := 1; count <= 5; count++ {
			monsters, err := s.gen.Generate(generator.Request{
				Filter:    s.filter(entities.CRAny, entities.TypeAny, entities.EnvironmentAny, count),
				Algorithm: alg,
			})
			s.Require().NoError(err)
			s.Len(monsters, count, "algorithm %s", alg)
		}
	}
}

func (s *GeneratorTestSuite) TestGenerateZeroCountMakesOne() {
	monsters, err := s.gen.Generate(generator.Request{})
	s.Require().NoError(err)
	s.Len(monsters, 1)
}

func (s *GeneratorTestSuite) TestHitPointsAtLeastOneForEveryBucket() {
	for _, cr := range entities.ChallengeRatings {
		for i := 0; i < iterations; i++ {
			monsters, err := s.gen.Generate(generator.Request{
				Filter: s.filter(cr, entities.TypeAny, entities.EnvironmentAny, 1),
			})
			s.Require().NoError(err)
			s.GreaterOrEqual(monsters[0].Stats.HitPoints, 1, "challenge rating %s", cr)
		}
	}
}

func (s *GeneratorTestSuite) TestExperienceWithinBucketRange() {
	for _, cr := range entities.ChallengeRatings {
		row, err := s.tables.StatsFor(cr)
		s.Require().NoError(err)

		for i := 0; i < iterations; i++ {
			monsters, err := s.gen.Generate(generator.Request{
				Filter: s.filter(cr, entities.TypeAny, entities.EnvironmentAny, 1),
			})
			s.Require().NoError(err)

			xp := monsters[0].Stats.Experience
			s.GreaterOrEqual(xp, row.Experience.Min, "challenge rating %s", cr)
			s.LessOrEqual(xp, row.Experience.Max, "challenge rating %s", cr)
		}
	}
}

func (s *GeneratorTestSuite) TestZeroRatingAlwaysFiveExperience() {
	for i := 0; i < iterations; i++ {
		monsters, err := s.gen.Generate(generator.Request{
			Filter: s.filter(entities.CR0, entities.TypeAny, entities.EnvironmentAny, 3),
		})
		s.Require().NoError(err)
		for _, m := range monsters {
			s.Equal(5, m.Stats.Experience)
		}
	}
}

func (s *GeneratorTestSuite) TestTypeFilterIsHonoured() {
	for i := 0; i < iterations; i++ {
		monsters, err := s.gen.Generate(generator.Request{
			Filter: s.filter(entities.CRAny, entities.TypeUndead, entities.EnvironmentAny, 2),
		})
		s.Require().NoError(err)
		for _, m := range monsters {
			s.Equal(entities.TypeUndead, m.Type)
		}
	}
}

func (s *GeneratorTestSuite) TestProceduralAbilitiesDistinctAndBounded() {
	for _, cr := range entities.ChallengeRatings {
		n, _ := cr.Numeric()
		upper := min(4, n+2)

		for i := 0; i < iterations; i++ {
			m, err := s.gen.Synthesize(s.filter(cr, entities.TypeAny, entities.EnvironmentAny, 1))
			s.Require().NoError(err)

			s.GreaterOrEqual(len(m.SpecialAbilities), 1)
			s.LessOrEqual(len(m.SpecialAbilities), upper, "challenge rating %s", cr)

			seen := map[string]bool{}
			for _, a := range m.SpecialAbilities {
				s.False(seen[a], "duplicate ability %s", a)
				seen[a] = true
			}
		}
	}
}

func (s *GeneratorTestSuite) TestProceduralStatsStayInRow() {
	for _, cr := range entities.ChallengeRatings {
		row, err := s.tables.StatsFor(cr)
		s.Require().NoError(err)

		for i := 0; i < iterations; i++ {
			m, err := s.gen.Synthesize(s.filter(cr, entities.TypeAny, entities.EnvironmentAny, 1))
			s.Require().NoError(err)

			s.Equal(cr, m.ChallengeRating)
			s.Equal(entities.SourceProcedural, m.Source)
			s.Equal(row.HitDice, m.Stats.HitDice)
			s.Equal(row.Damage, m.Stats.Damage)
			s.Equal(row.Save, m.Stats.Save)
			s.GreaterOrEqual(m.Stats.ArmorClass, row.ArmorClass.Min)
			s.LessOrEqual(m.Stats.ArmorClass, row.ArmorClass.Max)
			s.GreaterOrEqual(m.Stats.Morale, row.Morale.Min)
			s.LessOrEqual(m.Stats.Morale, row.Morale.Max)
			s.NotEmpty(m.Name)
			s.NotEmpty(m.Description)
			s.NotContains(m.Description, "{")
		}
	}
}

func (s *GeneratorTestSuite) TestAnyRatingNeverDrawsSixPlus() {
	for i := 0; i < iterations; i++ {
		m, err := s.gen.Synthesize(entities.AnyFilter())
		s.Require().NoError(err)
		s.NotEqual(entities.CR6Plus, m.ChallengeRating)
		s.Contains(entities.DefaultChallengeRatings, m.ChallengeRating)
	}
}

func (s *GeneratorTestSuite) TestHighNumericRatingBucketsToSixPlus() {
	m, err := s.gen.Synthesize(s.filter("9", entities.TypeGiant, entities.EnvironmentMountain, 1))
	s.Require().NoError(err)
	s.Equal(entities.CR6Plus, m.ChallengeRating)
}

func (s *GeneratorTestSuite) TestTemplateBasedFallsBackWhenNothingMatches() {
	monsters, err := s.gen.Generate(generator.Request{
		Filter:    s.filter(entities.CR0, entities.TypeFey, entities.EnvironmentArctic, 3),
		Algorithm: entities.AlgorithmTemplateBased,
	})
	s.Require().NoError(err)
	s.Require().Len(monsters, 3)

	for _, m := range monsters {
		s.Equal(entities.SourceProcedural, m.Source)
		s.Equal(entities.TypeFey, m.Type)
		s.Equal(entities.EnvironmentArctic, m.Environment)
		s.Equal(entities.CR0, m.ChallengeRating)
	}
}

func (s *GeneratorTestSuite) TestTemplateBasedHumanoidExample() {
	goblin := s.template("Goblin Warrior")
	orc := s.template("Orc Berserker")

	for i := 0; i < iterations; i++ {
		monsters, err := s.gen.Generate(generator.Request{
			Filter:    s.filter(entities.CR1, entities.TypeHumanoid, entities.EnvironmentDungeon, 1),
			Algorithm: entities.AlgorithmTemplateBased,
		})
		s.Require().NoError(err)
		s.Require().Len(monsters, 1)

		m := monsters[0]
		s.Equal(entities.TypeHumanoid, m.Type)
		s.Equal(entities.CR1, m.ChallengeRating)
		s.Equal(entities.SourceTemplate, m.Source)

		var want bestiary.Template
		switch m.Name {
		case goblin.Name:
			want = goblin
		case orc.Name:
			want = orc
		default:
			s.FailNow("unexpected template", m.Name)
		}

		s.Equal(want.Description, m.Description)
		s.Equal(want.SpecialAbilities, m.SpecialAbilities)
		s.Equal(want.ArmorClass, m.Stats.ArmorClass)
		s.Equal(want.Movement, m.Stats.Movement)
		s.Equal(want.Damage, m.Stats.Damage)
		s.GreaterOrEqual(m.Stats.HitPoints, 1)
		s.GreaterOrEqual(m.Stats.Experience, 10)
		s.LessOrEqual(m.Stats.Experience, 25)
	}
}

func (s *GeneratorTestSuite) TestRandomDragonExample() {
	for i := 0; i < iterations; i++ {
		monsters, err := s.gen.Generate(generator.Request{
			Filter:    s.filter(entities.CR6Plus, entities.TypeDragon, entities.EnvironmentAny, 1),
			Algorithm: entities.AlgorithmRandom,
		})
		s.Require().NoError(err)
		s.Require().Len(monsters, 1)

		m := monsters[0]
		s.Equal(entities.SourceProcedural, m.Source)
		s.Equal(entities.TypeDragon, m.Type)
		s.Equal(entities.CR6Plus, m.ChallengeRating)
		s.Equal("2d8", m.Stats.Damage)
		s.GreaterOrEqual(m.Stats.Experience, 100)
		s.LessOrEqual(m.Stats.Experience, 300)
	}
}

func (s *GeneratorTestSuite) TestBalancedUsesSelector() {
	f := s.filter(entities.CR1, entities.TypeHumanoid, entities.EnvironmentDungeon, 5)

	s.Run("template selector", func() {
		gen := s.newGenerator(dice.DefaultRoller, generator.FixedSelector(generator.StrategyTemplate))
		monsters, err := gen.Generate(generator.Request{Filter: f})
		s.Require().NoError(err)
		for _, m := range monsters {
			s.Equal(entities.SourceTemplate, m.Source)
		}
	})

	s.Run("procedural selector", func() {
		gen := s.newGenerator(dice.DefaultRoller, generator.FixedSelector(generator.StrategyProcedural))
		monsters, err := gen.Generate(generator.Request{Filter: f})
		s.Require().NoError(err)
		for _, m := range monsters {
			s.Equal(entities.SourceProcedural, m.Source)
		}
	})

	s.Run("random ignores selector", func() {
		gen := s.newGenerator(dice.DefaultRoller, generator.FixedSelector(generator.StrategyTemplate))
		monsters, err := gen.Generate(generator.Request{Filter: f, Algorithm: entities.AlgorithmRandom})
		s.Require().NoError(err)
		for _, m := range monsters {
			s.Equal(entities.SourceProcedural, m.Source)
		}
	})
}

func (s *GeneratorTestSuite) TestChanceSelector() {
	selector := generator.NewChanceSelector(roll.New(testutils.NewScriptedRoller(70, 71)), generator.DefaultTemplateChance)

	strategy, err := selector.Select()
	s.Require().NoError(err)
	s.Equal(generator.StrategyTemplate, strategy)

	strategy, err = selector.Select()
	s.Require().NoError(err)
	s.Equal(generator.StrategyProcedural, strategy)
}

func (s *GeneratorTestSuite) TestInstantiateKeepsAuthoredValues() {
	t := s.template("Ancient Dragon")
	// 11d8 hit dice, then experience from the 6+ range
	scripted := testutils.NewScriptedRoller(8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 1)
	gen := s.newGenerator(scripted, nil)

	m, err := gen.Instantiate(&t)
	s.Require().NoError(err)
	s.Equal(88, m.Stats.HitPoints)
	s.Equal(100, m.Stats.Experience)
	s.Equal(t.ArmorClass, m.Stats.ArmorClass)
	s.Equal(t.Damage, m.Stats.Damage)
	s.Equal(t.Name, m.Name)
	s.Zero(scripted.Remaining())
}

func (s *GeneratorTestSuite) TestInstantiateUnreadableHitDice() {
	t := s.template("Goblin Warrior")
	t.HitDice = "special"
	gen := s.newGenerator(testutils.NewScriptedRoller(1), nil)

	m, err := gen.Instantiate(&t)
	s.Require().NoError(err)
	s.Equal(roll.DefaultHitPoints, m.Stats.HitPoints)
	s.Equal(10, m.Stats.Experience)
}

func (s *GeneratorTestSuite) TestRollerFailureIsReported() {
	gen := s.newGenerator(testutils.NewScriptedRoller(), nil)

	_, err := gen.Generate(generator.Request{Filter: entities.AnyFilter()})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to generate monster 1 of 1")
}

func (s *GeneratorTestSuite) TestExtendedFieldsOnlyWhenRequested() {
	f := s.filter(entities.CR3, entities.TypeBeast, entities.EnvironmentForest, 1)

	s.Run("absent options omit everything", func() {
		monsters, err := s.gen.Generate(generator.Request{Filter: f})
		s.Require().NoError(err)
		s.Nil(monsters[0].Encounters)
		s.Nil(monsters[0].Treasure)
		s.Nil(monsters[0].Lair)
	})

	s.Run("simple complexity omits encounters", func() {
		monsters, err := s.gen.Generate(generator.Request{Filter: f, Complexity: entities.ComplexitySimple})
		s.Require().NoError(err)
		s.Nil(monsters[0].Encounters)
	})

	s.Run("moderate with treasure and lair", func() {
		monsters, err := s.gen.Generate(generator.Request{
			Filter:          f,
			Complexity:      entities.ComplexityModerate,
			IncludeTreasure: true,
			IncludeLair:     true,
		})
		s.Require().NoError(err)

		m := monsters[0]
		s.Require().NotNil(m.Encounters)
		s.Require().NotNil(m.Treasure)
		s.Require().NotNil(m.Lair)
		s.GreaterOrEqual(m.Encounters.LairChance, 5)
		s.LessOrEqual(m.Encounters.LairChance, 95)
		s.Equal(string(entities.EnvironmentForest), m.Lair.Terrain)
	})
}
