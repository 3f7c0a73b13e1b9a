package v1alpha1

import (
	"context"
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/orchestrators/monster"
)

// MonsterHandlerConfig holds dependencies for the monster handler
type MonsterHandlerConfig struct {
	MonsterService monster.Service
}

// Validate ensures all required dependencies are present
func (c *MonsterHandlerConfig) Validate() error {
	if c.MonsterService == nil {
		return errors.InvalidArgument("monster service is required")
	}
	return nil
}

// MonsterHandler implements MonsterServiceServer
type MonsterHandler struct {
	monsterService monster.Service
}

// NewMonsterHandler creates a new monster handler with the given configuration
func NewMonsterHandler(cfg *MonsterHandlerConfig) (*MonsterHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &MonsterHandler{
		monsterService: cfg.MonsterService,
	}, nil
}

type generateFilters struct {
	ChallengeRating string `json:"challengeRating"`
	Type            string `json:"type"`
	Environment     string `json:"environment"`
	Count           int    `json:"count"`
}

type generateRequest struct {
	Filters         generateFilters `json:"filters"`
	Algorithm       string          `json:"algorithm"`
	Complexity      string          `json:"complexity"`
	IncludeTreasure bool            `json:"includeTreasure"`
	IncludeLair     bool            `json:"includeLair"`
}

type generateResponse struct {
	Monsters []*entities.Monster `json:"monsters"`
}

// Generate produces monsters. The request and response mirror the HTTP
// POST /api/monsters/generate bodies.
func (h *MonsterHandler) Generate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in generateRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.monsterService.Generate(ctx, &monster.GenerateInput{
		ChallengeRating: in.Filters.ChallengeRating,
		Type:            in.Filters.Type,
		Environment:     in.Filters.Environment,
		Count:           in.Filters.Count,
		Algorithm:       in.Algorithm,
		Complexity:      in.Complexity,
		IncludeTreasure: in.IncludeTreasure,
		IncludeLair:     in.IncludeLair,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	monsters := out.Monsters
	if monsters == nil {
		monsters = []*entities.Monster{}
	}

	resp, err := toStruct(generateResponse{Monsters: monsters})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}

// fromStruct decodes a Struct into dst through its JSON form
func fromStruct(s *structpb.Struct, dst any) error {
	if s == nil {
		return nil
	}
	raw, err := s.MarshalJSON()
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request")
	}
	return nil
}

// toStruct encodes v as a Struct through its JSON form
func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	out := &structpb.Struct{}
	if err := out.UnmarshalJSON(raw); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}
