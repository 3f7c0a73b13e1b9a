package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/handlers/rest"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/collection"
	collectionmock "github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/collection/mock"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/monster"
	monstermock "github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/monster/mock"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/share"
	sharemock "github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/share/mock"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/stats"
	statsmock "github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/stats/mock"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/testutils"
)

var savedAt = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

type HandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	monsters   *monstermock.MockService
	collection *collectionmock.MockService
	shares     *sharemock.MockService
	stats      *statsmock.MockService
	mux        *http.ServeMux
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.monsters = monstermock.NewMockService(s.ctrl)
	s.collection = collectionmock.NewMockService(s.ctrl)
	s.shares = sharemock.NewMockService(s.ctrl)
	s.stats = statsmock.NewMockService(s.ctrl)

	h, err := rest.NewHandler(&rest.HandlerConfig{
		MonsterService:    s.monsters,
		CollectionService: s.collection,
		ShareService:      s.shares,
		StatsService:      s.stats,
	})
	s.Require().NoError(err)
	s.mux = h.Routes()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decodeError(rec *httptest.ResponseRecorder) rest.ErrorBody {
	var resp rest.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func (s *HandlerTestSuite) savedMonster() *entities.SavedMonster {
	return &entities.SavedMonster{
		ID:      "monster_1",
		Monster: testutils.CreateTestMonster(),
		SavedAt: savedAt,
	}
}

func (s *HandlerTestSuite) TestNewHandlerRequiresServices() {
	_, err := rest.NewHandler(&rest.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestRootAndHealth() {
	rec := s.do(http.MethodGet, "/api/", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"message":"Labyrinth Lord Monster Generator API"}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/healthz", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok"}`, rec.Body.String())
}

func (s *HandlerTestSuite) TestGenerate() {
	s.Run("passes every option to the service", func() {
		s.monsters.EXPECT().
			Generate(gomock.Any(), &monster.GenerateInput{
				ChallengeRating: "3",
				Type:            "undead",
				Environment:     "dungeon",
				Count:           2,
				Algorithm:       "random",
				Complexity:      "complex",
				IncludeTreasure: true,
				IncludeLair:     true,
			}).
			Return(&monster.GenerateOutput{Monsters: []*entities.Monster{
				testutils.CreateTestMonster(),
				testutils.CreateTestMonster(),
			}}, nil)

		rec := s.do(http.MethodPost, "/api/monsters/generate", `{
			"filters": {"challengeRating": "3", "type": "undead", "environment": "dungeon", "count": 2},
			"algorithm": "random",
			"complexity": "complex",
			"includeTreasure": true,
			"includeLair": true,
			"customRules": {"ignored": true}
		}`)

		s.Equal(http.StatusOK, rec.Code)
		var resp rest.GenerateResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Len(resp.Monsters, 2)
		s.Equal(testutils.TestMonsterName, resp.Monsters[0].Name)
	})

	s.Run("empty body generates with defaults", func() {
		s.monsters.EXPECT().
			Generate(gomock.Any(), &monster.GenerateInput{}).
			Return(&monster.GenerateOutput{}, nil)

		rec := s.do(http.MethodPost, "/api/monsters/generate", "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"monsters":[]}`, rec.Body.String())
	})

	s.Run("malformed JSON", func() {
		rec := s.do(http.MethodPost, "/api/monsters/generate", `{"filters":`)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("INVALID_ARGUMENT", s.decodeError(rec).Code)
	})

	s.Run("negative count is rejected before the service", func() {
		rec := s.do(http.MethodPost, "/api/monsters/generate", `{"filters":{"count":-1}}`)
		s.Equal(http.StatusBadRequest, rec.Code)

		body := s.decodeError(rec)
		s.Equal("INVALID_ARGUMENT", body.Code)
		s.Contains(body.Details, "validation_errors")
		s.Contains(body.Message, "filters.count")
	})

	s.Run("service errors map to their status", func() {
		s.monsters.EXPECT().
			Generate(gomock.Any(), gomock.Any()).
			Return(nil, errors.TableIntegrity("no templates for bucket"))

		rec := s.do(http.MethodPost, "/api/monsters/generate", `{}`)
		s.Equal(http.StatusInternalServerError, rec.Code)
		s.Equal("TABLE_INTEGRITY", s.decodeError(rec).Code)
	})
}

func (s *HandlerTestSuite) TestGenerateSimple() {
	s.monsters.EXPECT().
		Generate(gomock.Any(), &monster.GenerateInput{Type: "dragon", Count: 1}).
		Return(&monster.GenerateOutput{Monsters: []*entities.Monster{testutils.CreateTestMonster()}}, nil)

	rec := s.do(http.MethodPost, "/api/monsters/generate-simple", `{"type":"dragon","count":1}`)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestSaveMonster() {
	s.Run("saves into a library", func() {
		s.collection.EXPECT().
			SaveMonster(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, input *collection.SaveMonsterInput) (*collection.SaveMonsterOutput, error) {
				s.Equal(testutils.TestMonsterName, input.Monster.Name)
				s.Equal("official", input.LibraryID)
				return &collection.SaveMonsterOutput{Saved: s.savedMonster()}, nil
			})

		body, err := json.Marshal(rest.SaveMonsterRequest{
			Monster:   testutils.CreateTestMonster(),
			LibraryID: "official",
		})
		s.Require().NoError(err)

		rec := s.do(http.MethodPost, "/api/monsters/save", string(body))
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"success":true,"monsterId":"monster_1","message":"Monster saved successfully"}`, rec.Body.String())
	})

	s.Run("monster is required", func() {
		rec := s.do(http.MethodPost, "/api/monsters/save", `{"libraryId":"official"}`)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(s.decodeError(rec).Message, "monster")
	})
}

func (s *HandlerTestSuite) TestMyCollection() {
	s.Run("flattens saved monsters", func() {
		s.collection.EXPECT().
			ListSaved(gomock.Any(), &collection.ListSavedInput{Offset: 5, Limit: 10}).
			Return(&collection.ListSavedOutput{
				Monsters:   []*entities.SavedMonster{s.savedMonster()},
				TotalCount: 6,
			}, nil)

		rec := s.do(http.MethodGet, "/api/monsters/my-collection?offset=5&limit=10", "")
		s.Equal(http.StatusOK, rec.Code)

		var resp map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.EqualValues(6, resp["totalCount"])
		s.Equal([]any{}, resp["libraries"])

		monsters := resp["monsters"].([]any)
		s.Require().Len(monsters, 1)
		first := monsters[0].(map[string]any)
		s.Equal("monster_1", first["id"])
		s.Equal(testutils.TestMonsterName, first["name"])
		s.Equal("2025-07-01T12:00:00Z", first["savedAt"])
	})

	s.Run("bad paging parameters", func() {
		rec := s.do(http.MethodGet, "/api/monsters/my-collection?limit=-3", "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *HandlerTestSuite) TestGetSaved() {
	s.collection.EXPECT().
		GetMonster(gomock.Any(), &collection.GetMonsterInput{ID: "missing"}).
		Return(nil, errors.NotFound("monster missing not found"))

	rec := s.do(http.MethodGet, "/api/monsters/saved/missing", "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("NOT_FOUND", s.decodeError(rec).Code)
}

func (s *HandlerTestSuite) TestExportSaved() {
	s.collection.EXPECT().
		ExportMonster(gomock.Any(), &collection.ExportMonsterInput{ID: "monster_1", Format: "json"}).
		Return(&collection.ExportMonsterOutput{
			Format:      entities.ExportFormatJSON,
			Content:     []byte(`{"name":"Goblin Warrior"}`),
			ContentType: collection.ContentTypeJSON,
			Filename:    "goblin_warrior.json",
		}, nil)

	rec := s.do(http.MethodGet, "/api/monsters/saved/monster_1/export?format=json", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/json", rec.Header().Get("Content-Type"))
	s.Equal(`attachment; filename="goblin_warrior.json"`, rec.Header().Get("Content-Disposition"))
	s.Equal(`{"name":"Goblin Warrior"}`, rec.Body.String())
}

func (s *HandlerTestSuite) TestDeleteSaved() {
	s.Run("deletes", func() {
		s.collection.EXPECT().
			DeleteMonster(gomock.Any(), &collection.DeleteMonsterInput{ID: "monster_1"}).
			Return(&collection.DeleteMonsterOutput{}, nil)

		rec := s.do(http.MethodDelete, "/api/monsters/saved/monster_1", "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"success":true,"message":"Monster deleted successfully"}`, rec.Body.String())
	})

	s.Run("missing monster", func() {
		s.collection.EXPECT().
			DeleteMonster(gomock.Any(), gomock.Any()).
			Return(nil, errors.NotFound("monster gone not found"))

		rec := s.do(http.MethodDelete, "/api/monsters/saved/gone", "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *HandlerTestSuite) TestShareMonster() {
	s.Run("expiresIn is in days", func() {
		expires := savedAt.Add(3 * 24 * time.Hour)
		s.shares.EXPECT().
			CreateShare(gomock.Any(), &share.CreateShareInput{
				MonsterID: "monster_1",
				ShareType: "link",
				ExpiresIn: 3 * 24 * time.Hour,
			}).
			Return(&share.CreateShareOutput{
				ShareID:   "ab12cd34",
				ShareURL:  "http://localhost:3000/shared/ab12cd34",
				ExpiresAt: expires,
			}, nil)

		rec := s.do(http.MethodPost, "/api/monsters/share", `{"monsterId":"monster_1","shareType":"link","expiresIn":3}`)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{
			"shareUrl": "http://localhost:3000/shared/ab12cd34",
			"shareId": "ab12cd34",
			"expiresAt": "2025-07-04T12:00:00Z"
		}`, rec.Body.String())
	})

	s.Run("monster id is required", func() {
		rec := s.do(http.MethodPost, "/api/monsters/share", `{"expiresIn":3}`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("lifetime is capped at a year", func() {
		rec := s.do(http.MethodPost, "/api/monsters/share", `{"monsterId":"monster_1","expiresIn":400}`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *HandlerTestSuite) TestGetShared() {
	s.Run("resolves", func() {
		s.shares.EXPECT().
			GetShared(gomock.Any(), &share.GetSharedInput{ShareID: "ab12cd34"}).
			Return(&share.GetSharedOutput{
				Monster:   testutils.CreateTestMonster(),
				SharedBy:  entities.AnonymousSharer,
				SharedAt:  savedAt,
				ViewCount: 4,
			}, nil)

		rec := s.do(http.MethodGet, "/api/monsters/shared/ab12cd34", "")
		s.Equal(http.StatusOK, rec.Code)

		var resp rest.SharedMonsterResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("Anonymous User", resp.SharedBy)
		s.Equal(int64(4), resp.ViewCount)
		s.Equal(testutils.TestMonsterName, resp.Monster.Name)
	})

	s.Run("expired link is gone", func() {
		s.shares.EXPECT().
			GetShared(gomock.Any(), gomock.Any()).
			Return(nil, errors.Expired("share link has expired"))

		rec := s.do(http.MethodGet, "/api/monsters/shared/old", "")
		s.Equal(http.StatusGone, rec.Code)
		s.Equal("EXPIRED", s.decodeError(rec).Code)
	})
}

func (s *HandlerTestSuite) TestStats() {
	s.Run("reports counters", func() {
		s.stats.EXPECT().
			GetStats(gomock.Any(), gomock.Any()).
			Return(&stats.GetStatsOutput{Stats: &entities.UsageStats{TotalGenerated: 9, TotalSaved: 2, TotalShared: 1}}, nil)

		rec := s.do(http.MethodGet, "/api/monsters/stats", "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"totalGenerated":9,"totalSaved":2,"totalShared":1}`, rec.Body.String())
	})

	s.Run("store failure reads as zeros", func() {
		s.stats.EXPECT().
			GetStats(gomock.Any(), gomock.Any()).
			Return(nil, errors.Unavailable("redis down"))

		rec := s.do(http.MethodGet, "/api/monsters/stats", "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"totalGenerated":0,"totalSaved":0,"totalShared":0}`, rec.Body.String())
	})
}

func (s *HandlerTestSuite) TestWrongMethod() {
	rec := s.do(http.MethodGet, "/api/monsters/generate", "")
	s.Equal(http.StatusMethodNotAllowed, rec.Code)
}
