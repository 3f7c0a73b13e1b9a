package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/handlers/api/v1alpha1"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/monster"
	monstermock "github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/monster/mock"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/testutils"
)

type MonsterHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockMonster *monstermock.MockService
	handler     *v1alpha1.MonsterHandler
	ctx         context.Context
}

func TestMonsterHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MonsterHandlerTestSuite))
}

func (s *MonsterHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockMonster = monstermock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewMonsterHandler(&v1alpha1.MonsterHandlerConfig{
		MonsterService: s.mockMonster,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *MonsterHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *MonsterHandlerTestSuite) request(m map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(m)
	s.Require().NoError(err)
	return req
}

func (s *MonsterHandlerTestSuite) TestNewMonsterHandlerRequiresService() {
	_, err := v1alpha1.NewMonsterHandler(&v1alpha1.MonsterHandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *MonsterHandlerTestSuite) TestGenerate_Success() {
	s.mockMonster.EXPECT().
		Generate(s.ctx, &monster.GenerateInput{
			ChallengeRating: "1",
			Type:            "humanoid",
			Count:           2,
			Complexity:      "moderate",
			IncludeTreasure: true,
		}).
		Return(&monster.GenerateOutput{Monsters: []*entities.Monster{
			testutils.CreateTestMonster(),
			testutils.CreateTestMonsterWithExtras(),
		}}, nil)

	resp, err := s.handler.Generate(s.ctx, s.request(map[string]any{
		"filters": map[string]any{
			"challengeRating": "1",
			"type":            "humanoid",
			"count":           2,
		},
		"complexity":      "moderate",
		"includeTreasure": true,
	}))
	s.Require().NoError(err)

	monsters := resp.GetFields()["monsters"].GetListValue().GetValues()
	s.Require().Len(monsters, 2)

	first := monsters[0].GetStructValue().GetFields()
	s.Equal(testutils.TestMonsterName, first["name"].GetStringValue())
	s.Equal(float64(6), first["stats"].GetStructValue().GetFields()["ac"].GetNumberValue())
	s.NotContains(first, "treasure")

	second := monsters[1].GetStructValue().GetFields()
	s.Equal("R", second["treasure"].GetStructValue().GetFields()["individual"].GetStringValue())
}

func (s *MonsterHandlerTestSuite) TestGenerate_EmptyRequest() {
	s.mockMonster.EXPECT().
		Generate(s.ctx, &monster.GenerateInput{}).
		Return(&monster.GenerateOutput{}, nil)

	resp, err := s.handler.Generate(s.ctx, &structpb.Struct{})
	s.Require().NoError(err)
	s.Empty(resp.GetFields()["monsters"].GetListValue().GetValues())
}

func (s *MonsterHandlerTestSuite) TestGenerate_MalformedRequest() {
	resp, err := s.handler.Generate(s.ctx, s.request(map[string]any{
		"filters": "not an object",
	}))
	s.Nil(resp)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *MonsterHandlerTestSuite) TestGenerate_ServiceErrors() {
	testCases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{name: "invalid filter", err: errors.InvalidArgument("invalid challenge rating"), code: codes.InvalidArgument},
		{name: "broken tables", err: errors.TableIntegrity("empty pool"), code: codes.Internal},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockMonster.EXPECT().
				Generate(s.ctx, gomock.Any()).
				Return(nil, tc.err)

			_, err := s.handler.Generate(s.ctx, &structpb.Struct{})
			s.Equal(tc.code, status.Code(err))
		})
	}
}

func (s *MonsterHandlerTestSuite) TestGenerate_OverTheWire() {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	v1alpha1.RegisterMonsterServiceServer(srv, s.handler)
	go func() {
		_ = srv.Serve(lis)
	}()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() {
		_ = conn.Close()
	}()

	s.mockMonster.EXPECT().
		Generate(gomock.Any(), &monster.GenerateInput{Type: "undead"}).
		Return(&monster.GenerateOutput{Monsters: []*entities.Monster{testutils.CreateTestMonster()}}, nil)

	client := v1alpha1.NewMonsterServiceClient(conn)
	resp, err := client.Generate(s.ctx, s.request(map[string]any{
		"filters": map[string]any{"type": "undead"},
	}))
	s.Require().NoError(err)
	s.Len(resp.GetFields()["monsters"].GetListValue().GetValues(), 1)
}
