package libraries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	apperrors "github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/pkg/clock"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/repositories/libraries"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/testutils"
)

var testNow = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

type RedisRepositoryTestSuite struct {
	suite.Suite
	server  *miniredis.Miniredis
	cleanup func()
	clock   *clock.Manual
	repo    libraries.Repository
	ctx     context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClientWithContext(s.T(), func(mr *miniredis.Miniredis) {
		s.server = mr
	})
	s.cleanup = cleanup
	s.clock = clock.NewManual(testNow)

	repo, err := libraries.NewRedis(&libraries.RedisConfig{Client: client, Clock: s.clock})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) create(id, name string, official bool) *entities.Library {
	out, err := s.repo.Create(s.ctx, libraries.CreateInput{Library: &entities.Library{
		ID:         id,
		Name:       name,
		IsOfficial: official,
	}})
	s.Require().NoError(err)
	s.clock.Advance(time.Minute)
	return out.Library
}

func (s *RedisRepositoryTestSuite) TestCreate() {
	s.Run("stamps creation time", func() {
		lib := s.create("lib_1", "Homebrew", false)
		s.Equal(testNow, lib.CreatedAt)
		s.Empty(lib.MonsterIDs)
	})

	s.Run("duplicate id", func() {
		_, err := s.repo.Create(s.ctx, libraries.CreateInput{Library: &entities.Library{ID: "lib_1", Name: "Again"}})
		s.True(apperrors.IsAlreadyExists(err))
	})

	s.Run("initial members are stored", func() {
		out, err := s.repo.Create(s.ctx, libraries.CreateInput{Library: &entities.Library{
			ID:         "lib_2",
			Name:       "Seeded",
			MonsterIDs: []string{"m2", "m1"},
		}})
		s.Require().NoError(err)
		s.Equal([]string{"m1", "m2"}, out.Library.MonsterIDs)

		got, err := s.repo.Get(s.ctx, libraries.GetInput{ID: "lib_2"})
		s.Require().NoError(err)
		s.Equal([]string{"m1", "m2"}, got.Library.MonsterIDs)
	})

	s.Run("validation", func() {
		_, err := s.repo.Create(s.ctx, libraries.CreateInput{})
		s.True(apperrors.IsInvalidArgument(err))

		_, err = s.repo.Create(s.ctx, libraries.CreateInput{Library: &entities.Library{ID: "x"}})
		s.True(apperrors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestMembership() {
	s.create("official", entities.OfficialLibraryName, true)

	_, err := s.repo.AddMonster(s.ctx, libraries.AddMonsterInput{LibraryID: "official", MonsterID: "m2"})
	s.Require().NoError(err)
	_, err = s.repo.AddMonster(s.ctx, libraries.AddMonsterInput{LibraryID: "official", MonsterID: "m1"})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, libraries.GetInput{ID: "official"})
	s.Require().NoError(err)
	s.Equal([]string{"m1", "m2"}, got.Library.MonsterIDs)
	s.True(got.Library.IsOfficial)

	_, err = s.repo.RemoveMonster(s.ctx, libraries.RemoveMonsterInput{LibraryID: "official", MonsterID: "m2"})
	s.Require().NoError(err)
	_, err = s.repo.RemoveMonster(s.ctx, libraries.RemoveMonsterInput{LibraryID: "official", MonsterID: "m9"})
	s.Require().NoError(err)

	got, err = s.repo.Get(s.ctx, libraries.GetInput{ID: "official"})
	s.Require().NoError(err)
	s.Equal([]string{"m1"}, got.Library.MonsterIDs)

	_, err = s.repo.AddMonster(s.ctx, libraries.AddMonsterInput{LibraryID: "missing", MonsterID: "m1"})
	s.True(apperrors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestList() {
	s.create("lib_b", "Second", false)
	s.create("lib_a", "Third", false)
	s.create("official", entities.OfficialLibraryName, true)

	out, err := s.repo.List(s.ctx, libraries.ListInput{})
	s.Require().NoError(err)

	names := make([]string, 0, len(out.Libraries))
	for _, l := range out.Libraries {
		names = append(names, l.Name)
	}
	s.Equal([]string{entities.OfficialLibraryName, "Second", "Third"}, names)

	s.Run("missing records are dropped from the index", func() {
		s.server.Del("library:lib_b")

		out, err := s.repo.List(s.ctx, libraries.ListInput{})
		s.Require().NoError(err)
		s.Len(out.Libraries, 2)

		members, err := s.server.Members("library:all")
		s.Require().NoError(err)
		s.ElementsMatch([]string{"lib_a", "official"}, members)
	})
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, libraries.GetInput{ID: "nope"})
	s.True(apperrors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestStorageFailures() {
	client, mock := redismock.NewClientMock()
	repo, err := libraries.NewRedis(&libraries.RedisConfig{Client: client})
	s.Require().NoError(err)

	s.Run("list index", func() {
		mock.ExpectSMembers("library:all").SetErr(errors.New("connection reset"))

		_, err := repo.List(s.ctx, libraries.ListInput{})
		s.True(apperrors.IsInternal(err))
	})

	s.Run("remove", func() {
		mock.ExpectSRem("library:official:monsters", "m1").SetErr(errors.New("connection reset"))

		_, err := repo.RemoveMonster(s.ctx, libraries.RemoveMonsterInput{LibraryID: "official", MonsterID: "m1"})
		s.Error(err)
		s.Contains(err.Error(), "failed to remove monster from library")
	})

	s.NoError(mock.ExpectationsWereMet())
}
